package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/pwmeter/dom/style/registry"
	r "github.com/npillmayer/pwmeter/dom/style/responsive"
	"github.com/npillmayer/pwmeter/dom/vdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRefersTo(t *testing.T) {
	for _, c := range []struct {
		sel string
		ok  bool
	}{
		{".f1", true},
		{".f1::-webkit-meter-bar", true},
		{"@media screen and (min-width: 40em) .f1", true},
		{".f1 p", true},
		{".f12", false},
		{".f1-x", false},
		{".f12 .f1", true},
		{".a", false},
	} {
		if refersTo(c.sel, "f1") != c.ok {
			t.Errorf("expected refersTo(%q, f1) to be %v", c.sel, c.ok)
		}
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwmeter.style")
	defer teardown()
	//
	reg := registry.New()
	b := vdom.Builder{Styles: reg}
	tree := b.H("div", vdom.CSS(&r.Declaration{
		Props: r.Props{"fontSize": r.Tiered(r.Number(20), r.Number(30))},
		Nested: map[string]*r.Declaration{
			"&::-webkit-meter-bar": {Props: r.Props{"background": r.Str("#eee")}},
		},
	}), vdom.H("span", nil, vdom.Text("Strength: Weak")))
	var out strings.Builder
	if err := ToGraphViz(tree, &out, reg.StyleSheet()); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	t.Logf("dot =\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("expected a digraph")
	}
	if strings.Count(dot, "shape=\"Mrecord\"") != 3 {
		t.Errorf("expected 3 rule boxes, have %d", strings.Count(dot, "shape=\"Mrecord\""))
	}
	for _, s := range []string{
		`label="div"`, `label="span"`, "font-size:", "30px",
		"node00001 -> node00002", "node00002 -> node00003",
		"@media screen and (min-width: 40em)",
	} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected DOT output to contain %q", s)
		}
	}
}
