/*
Package domdbg implements helpers to debug markup trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"html"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/pwmeter/dom/style"
	"github.com/npillmayer/pwmeter/dom/style/cssom"
	"github.com/npillmayer/pwmeter/dom/vdom"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname     string
	NodeTmpl     *template.Template
	EdgeTmpl     *template.Template
	RuleTmpl     *template.Template
	RuleEdgeTmpl *template.Template
	RuleRuleTmpl *template.Template
}

// ToGraphViz outputs a diagram for a markup tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of the
// tree, a Writer, and an optional stylesheet.
//
// If a stylesheet is given, every element is connected to a chain of
// boxes listing the rules selecting one of its class names, including
// rules for pseudo-elements, descendants and media queries.
func ToGraphViz(root *vdom.VNode, w io.Writer, sheet cssom.StyleSheet) error {
	tmpl, err := template.New("vdom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("vnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(vnodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("vedge").Parse(vedgeTmpl))
	gparams.RuleTmpl = template.Must(template.New("rule").Funcs(
		template.FuncMap{
			"esc": html.EscapeString,
		}).Parse(ruleTmpl))
	gparams.RuleEdgeTmpl = template.Must(template.New("ruleedge").Parse(ruleEdgeTmpl))
	gparams.RuleRuleTmpl = template.Must(template.New("rulerule").Parse(ruleRuleTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams, sheet: sheet, dict: make(map[*vdom.VNode]string)}
	if root != nil {
		g.nodes(root)
	}
	if g.err == nil {
		_, g.err = w.Write([]byte("}\n"))
	}
	return g.err
}

// Dotty is a helper for testing. Given a markup tree and a testing.T, it will
// create a GraphViz image of the tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
// It requires the GraphViz 'dot' command.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *vdom.VNode, sheet cssom.StyleSheet, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "vdom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing markup digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, sheet); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	sheet  cssom.StyleSheet
	dict   map[*vdom.VNode]string
	rules  int
	err    error
}

func (g *graph) exec(tmpl *template.Template, data any) {
	if g.err == nil {
		g.err = tmpl.Execute(g.w, data)
	}
}

type node struct {
	N    *vdom.VNode
	Name string
}

func (g *graph) name(n *vdom.VNode) string {
	name := g.dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n] = name
	}
	return name
}

func (g *graph) nodes(n *vdom.VNode) {
	g.exec(g.params.NodeTmpl, &node{n, g.name(n)})
	g.styles(n)
	for _, ch := range n.Children {
		g.nodes(ch)
		g.exec(g.params.EdgeTmpl, edge{node{n, g.name(n)}, node{ch, g.name(ch)}})
	}
}

// ruleBox is a box listing the properties of a rule.
type ruleBox struct {
	Name       string
	Selector   string
	Properties []style.KeyValue
}

func (g *graph) styles(n *vdom.VNode) {
	var prev *ruleBox
	for _, class := range n.Classes() {
		for _, box := range g.rulesFor(class) {
			g.exec(g.params.RuleTmpl, box)
			if prev == nil {
				g.exec(g.params.RuleEdgeTmpl, []string{g.name(n), box.Name})
			} else {
				g.exec(g.params.RuleRuleTmpl, []string{prev.Name, box.Name})
			}
			prev = box
		}
	}
}

// rulesFor collects the rules whose selector refers to class.
func (g *graph) rulesFor(class string) []*ruleBox {
	var boxes []*ruleBox
	cssom.Walk(g.sheet, func(sel string, r cssom.Rule) {
		if !refersTo(sel, class) {
			return
		}
		g.rules++
		box := &ruleBox{Name: fmt.Sprintf("rule%05d", g.rules), Selector: sel}
		for _, key := range r.Properties() {
			box.Properties = append(box.Properties, style.KeyValue{Key: key, Value: r.Value(key)})
		}
		boxes = append(boxes, box)
	})
	return boxes
}

// refersTo is true if a selector contains the class selector for class,
// e.g. ".f1" is referred to by ".f1", ".f1::after" and "@media … .f1 p".
func refersTo(selector string, class string) bool {
	cls := "." + class
	for i := strings.Index(selector, cls); i >= 0; {
		end := i + len(cls)
		if end == len(selector) || !isNameChar(selector[end]) {
			return true
		}
		j := strings.Index(selector[end:], cls)
		if j < 0 {
			break
		}
		i = end + j
	}
	return false
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type edge struct {
	N1, N2 node
}

func shortText(n *vdom.VNode) string {
	s := "\"\\\""
	if r := []rune(n.Text); len(r) > 10 {
		s += string(r[:10]) + "...\\\"\""
	} else {
		s += n.Text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const vnodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const ruleTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ esc .Selector }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ esc .Value.String }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const vedgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const ruleEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`

const ruleRuleTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`
