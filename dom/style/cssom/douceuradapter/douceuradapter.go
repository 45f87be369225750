/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/pwmeter/dom/style"
	"github.com/npillmayer/pwmeter/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
// If other is not a douceur stylesheet, its rules are parsed from its
// CSS text.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		var err error
		if othercss, err = Parse(other.String()); err != nil {
			return
		}
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Append appends a douceur rule to the stylesheet.
func (sheet *CSSStyles) Append(r *css.Rule) {
	sheet.css.Rules = append(sheet.css.Rules, r)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

// String returns the CSS text of the stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

func wrapRules(rules []*css.Rule) []cssom.Rule {
	wrapped := make([]cssom.Rule, len(rules))
	for i := range rules {
		wrapped[i] = Rule(*rules[i])
	}
	return wrapped
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule. For at-rules,
// the name of the rule is included, e.g. "@media screen".
func (r Rule) Selector() string {
	if r.Kind == css.AtRule {
		return strings.TrimSpace(r.Name + " " + r.Prelude)
	}
	if r.Prelude == "" {
		return strings.Join(r.Selectors, ", ")
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// IsAtRule returns true for at-rules like "@media".
func (r Rule) IsAtRule() bool {
	return r.Kind == css.AtRule
}

// Nested returns the rules embedded in an at-rule.
func (r Rule) Nested() []cssom.Rule {
	return wrapRules(r.Rules)
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				break
			}
			css = append(css, Wrap(c))
		}
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
