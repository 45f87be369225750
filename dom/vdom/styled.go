package vdom

import (
	"strings"

	"github.com/npillmayer/pwmeter/dom/style/responsive"
)

// StyleRegistry registers expanded style declarations and returns a class
// name selecting them. Hashing and de-duplication of equivalent
// declarations are up to the registry. See package registry.
type StyleRegistry interface {
	Style(...*responsive.Expanded) string
}

// Props are the properties of an element created by a Builder.
// CSS holds style declarations for the element; nil entries are skipped.
type Props struct {
	Attrs Attrs
	CSS   []*responsive.Declaration
}

// CSS is a convenience function to create Props with style declarations
// and without attributes.
func CSS(decls ...*responsive.Declaration) Props {
	return Props{CSS: decls}
}

// Builder creates element nodes with styles attached.
type Builder struct {
	Styles StyleRegistry
}

// H creates an element node. If props carry style declarations, they are
// expanded and registered with the builder's style registry, and the
// resulting class name is appended to the class attribute. props.Attrs
// is not modified.
//
// Style declarations are expected to be well-formed literals; H panics
// on malformed values (see responsive.MustExpand).
func (b Builder) H(tag string, props Props, children ...*VNode) *VNode {
	if len(props.CSS) == 0 || b.Styles == nil {
		return H(tag, props.Attrs, children...)
	}
	styles := make([]*responsive.Expanded, 0, len(props.CSS))
	for _, d := range props.CSS {
		if d != nil {
			styles = append(styles, responsive.MustExpand(d))
		}
	}
	className := b.Styles.Style(styles...)
	attrs := make(Attrs, len(props.Attrs)+1)
	for k, v := range props.Attrs {
		attrs[k] = v
	}
	if class := joinClasses(props.Attrs["class"], className); class != "" {
		attrs["class"] = class
	}
	tracer().P("tag", tag).Debugf("styled with class %q", className)
	return H(tag, attrs, children...)
}

func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
