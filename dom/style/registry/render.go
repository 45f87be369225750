package registry

import (
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/pwmeter/dom/style"
	"github.com/npillmayer/pwmeter/dom/style/responsive"
)

// render creates the CSS rules for an expanded declaration, with
// selector standing in for "&". Style rules come first, in the order
// of their selectors, followed by at-rules.
func render(e *responsive.Expanded, selector string) []*css.Rule {
	var rules, atRules []*css.Rule
	if len(e.Props) > 0 {
		rules = append(rules, styleRule(selector, e.Props))
	}
	for _, key := range sortedSelectors(e.Nested) {
		sub := e.Nested[key]
		if sub == nil {
			continue
		}
		if isAtRule(key) {
			if at := atRule(key, render(sub, selector)); at != nil {
				atRules = append(atRules, at)
			}
			continue
		}
		rules = append(rules, render(sub, interpolate(key, selector))...)
	}
	return append(rules, atRules...)
}

func styleRule(selector string, props map[string]responsive.Scalar) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Prelude = selector
	r.Selectors = strings.Split(selector, ", ")
	for name, value := range props {
		decl := css.NewDeclaration()
		decl.Property = style.Hyphenate(name)
		decl.Value = value.Property(name).String()
		r.Declarations = append(r.Declarations, decl)
	}
	sort.Sort(css.DeclarationsByProperty(r.Declarations))
	return r
}

// atRule wraps rules into a conditional at-rule like
// "@media screen and (min-width: 40em)".
func atRule(key string, inner []*css.Rule) *css.Rule {
	if len(inner) == 0 {
		return nil
	}
	r := css.NewRule(css.AtRule)
	r.Name, r.Prelude = key, ""
	if i := strings.IndexAny(key, " \t"); i > 0 {
		r.Name, r.Prelude = key[:i], strings.TrimSpace(key[i:])
	}
	r.Rules = inner
	for _, sub := range inner {
		embed(sub, 1)
	}
	return r
}

func embed(r *css.Rule, level int) {
	r.EmbedLevel = level
	for _, sub := range r.Rules {
		embed(sub, level+1)
	}
}

func isAtRule(selector string) bool {
	return strings.HasPrefix(selector, "@")
}

// interpolate resolves a nested selector against its parent selector.
// "&" is replaced by the parent, selectors without "&" are descendants
// of the parent. Selector groups ("a, b") in either of them are resolved
// per member, combining every parent member with every nested member.
func interpolate(nested string, parent string) string {
	var parts []string
	for _, p := range strings.Split(parent, ",") {
		p = strings.TrimSpace(p)
		for _, n := range strings.Split(nested, ",") {
			n = strings.TrimSpace(n)
			if strings.Contains(n, "&") {
				parts = append(parts, strings.ReplaceAll(n, "&", p))
			} else {
				parts = append(parts, p+" "+n)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// sortedSelectors orders nested selectors for output. The media queries
// of the responsive tiers come first, in tier order, followed by all
// other selectors in lexical order. Explicit at-rules are thus written
// after the tiers and win the cascade over them.
func sortedSelectors(m map[string]*responsive.Expanded) []string {
	keys := make([]string, 0, len(m))
	tiers := map[string]bool{}
	for i := 1; i < responsive.MaxTiers; i++ {
		q := responsive.MediaQuery(i)
		tiers[q] = true
		if _, ok := m[q]; ok {
			keys = append(keys, q)
		}
	}
	rest := make([]string, 0, len(m))
	for k := range m {
		if !tiers[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
