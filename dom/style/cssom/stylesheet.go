package cssom

import "github.com/npillmayer/pwmeter/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple the generation of CSS rules from their concrete
// representation, we introduce an interface for CSS stylesheets.
// Clients will have to provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
	String() string         // CSS text of the stylesheet
}

// Rule is the type stylesheets consists of. A rule is either a style
// rule with a selector and declarations, or an at-rule (e.g., a media
// query) containing further rules.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	IsAtRule() bool              // is this an at-rule, e.g. "@media …"?
	Nested() []Rule              // rules contained in an at-rule
}

// Find returns the first rule of a stylesheet with the given selector,
// searching nested rules of at-rules as well. Nested rules are found with
// selector "<at-rule prelude> <rule selector>", e.g.
//
//    "@media screen and (min-width: 40em) .f1a2b3c4"
//
func Find(sheet StyleSheet, selector string) Rule {
	if sheet == nil {
		return nil
	}
	return findRule(sheet.Rules(), "", selector)
}

func findRule(rules []Rule, prefix string, selector string) Rule {
	for _, r := range rules {
		sel := r.Selector()
		if prefix != "" {
			sel = prefix + " " + sel
		}
		if r.IsAtRule() {
			if found := findRule(r.Nested(), sel, selector); found != nil {
				return found
			}
			continue
		}
		if sel == selector {
			tracer().Debugf("found rule for %q", selector)
			return r
		}
	}
	return nil
}

// Walk calls f for every style rule of a stylesheet, in document order.
// Rules nested in at-rules are reported with their full selector, as for
// Find.
func Walk(sheet StyleSheet, f func(selector string, r Rule)) {
	if sheet == nil {
		return
	}
	walkRules(sheet.Rules(), "", f)
}

func walkRules(rules []Rule, prefix string, f func(string, Rule)) {
	for _, r := range rules {
		sel := r.Selector()
		if prefix != "" {
			sel = prefix + " " + sel
		}
		if r.IsAtRule() {
			walkRules(r.Nested(), sel, f)
			continue
		}
		f(sel, r)
	}
}
