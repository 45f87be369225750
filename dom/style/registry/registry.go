package registry

import (
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/pwmeter/dom/style/cssom"
	"github.com/npillmayer/pwmeter/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/pwmeter/dom/style/responsive"
)

// Registry is a registry for generated CSS classes.
// It is safe for concurrent use. The zero value is not usable, use New.
type Registry struct {
	sync.Mutex
	sheet   *css.Stylesheet
	classes map[string]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		sheet:   css.NewStylesheet(),
		classes: make(map[string]struct{}),
	}
}

// Style registers the rules for a set of declarations and returns the
// class name selecting them. Declarations are merged from left to right,
// i.e., settings of later declarations win. Nil declarations are ignored.
// If no property is set at all, Style returns the empty string.
func (reg *Registry) Style(decls ...*responsive.Expanded) string {
	merged := responsive.NewExpanded()
	for _, d := range decls {
		if d != nil {
			mergeInto(merged, d)
		}
	}
	if merged.IsEmpty() {
		return ""
	}
	canonical := stylesheetText(render(merged, "&"))
	class := ClassName(canonical)
	reg.Lock()
	defer reg.Unlock()
	if _, ok := reg.classes[class]; ok {
		tracer().Debugf("re-using class %s", class)
		return class
	}
	rules := render(merged, "."+class)
	reg.sheet.Rules = append(reg.sheet.Rules, rules...)
	reg.classes[class] = struct{}{}
	tracer().P("class", class).Debugf("registered %d rules", len(rules))
	return class
}

// ClassName derives a class name from a canonical CSS text.
func ClassName(canonical string) string {
	h := fnv.New32a()
	h.Write([]byte(canonical))
	return "f" + strconv.FormatUint(uint64(h.Sum32()), 36)
}

// Has returns true if class has been registered.
func (reg *Registry) Has(class string) bool {
	reg.Lock()
	defer reg.Unlock()
	_, ok := reg.classes[class]
	return ok
}

// Len returns the number of registered classes.
func (reg *Registry) Len() int {
	reg.Lock()
	defer reg.Unlock()
	return len(reg.classes)
}

// CSS returns the text of all registered rules.
func (reg *Registry) CSS() string {
	reg.Lock()
	defer reg.Unlock()
	return reg.sheet.String()
}

// StyleSheet returns a snapshot of the registered rules.
func (reg *Registry) StyleSheet() cssom.StyleSheet {
	reg.Lock()
	defer reg.Unlock()
	snapshot := css.NewStylesheet()
	snapshot.Rules = append(snapshot.Rules, reg.sheet.Rules...)
	return douceuradapter.Wrap(snapshot)
}

// Reset clears the registry.
func (reg *Registry) Reset() {
	reg.Lock()
	defer reg.Unlock()
	reg.sheet = css.NewStylesheet()
	reg.classes = make(map[string]struct{})
}

func mergeInto(dst, src *responsive.Expanded) {
	for k, v := range src.Props {
		dst.Props[k] = v
	}
	for sel, sub := range src.Nested {
		if sub == nil {
			continue
		}
		b, ok := dst.Nested[sel]
		if !ok {
			b = responsive.NewExpanded()
			dst.Nested[sel] = b
		}
		mergeInto(b, sub)
	}
}

func stylesheetText(rules []*css.Rule) string {
	sheet := css.Stylesheet{Rules: rules}
	return sheet.String()
}
