package vdom

import (
	"sort"
	"strconv"
	"strings"
)

// Attrs are the attributes of an element.
type Attrs map[string]string

// VNode is a node of a markup tree. Element nodes have a tag, text nodes
// have an empty tag and carry text.
type VNode struct {
	Tag      string
	Attrs    Attrs
	Children []*VNode
	Text     string
}

// H creates an element node. Nil children are dropped.
func H(tag string, attrs Attrs, children ...*VNode) *VNode {
	n := &VNode{Tag: tag, Attrs: attrs}
	for _, ch := range children {
		if ch != nil {
			n.Children = append(n.Children, ch)
		}
	}
	return n
}

// Text creates a text node.
func Text(s string) *VNode {
	return &VNode{Text: s}
}

// IsText is true for text nodes.
func (n *VNode) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of attribute key, or "" if it is not set.
func (n *VNode) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// Classes returns the class names of the class attribute.
func (n *VNode) Classes() []string {
	return strings.Fields(n.Attr("class"))
}

// SortedAttrKeys returns the attribute keys of n in lexical order.
func (n *VNode) SortedAttrKeys() []string {
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TextContent returns the text of n and all its descendants.
func (n *VNode) TextContent() string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, ch := range n.Children {
		b.WriteString(ch.TextContent())
	}
	return b.String()
}

// Walk calls f for n and its descendants, depth-first. If f returns false,
// the children of the node are skipped.
func (n *VNode) Walk(f func(*VNode) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, ch := range n.Children {
		ch.Walk(f)
	}
}

// Find returns the first element (depth-first) with the given tag, or nil.
func (n *VNode) Find(tag string) *VNode {
	var found *VNode
	n.Walk(func(v *VNode) bool {
		if found != nil {
			return false
		}
		if v.Tag == tag {
			found = v
			return false
		}
		return true
	})
	return found
}

func (n *VNode) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsText() {
		return "#text " + strconv.Quote(n.Text)
	}
	var b strings.Builder
	b.WriteString("<" + n.Tag)
	for _, k := range n.SortedAttrKeys() {
		b.WriteString(" " + k + "=" + strconv.Quote(n.Attrs[k]))
	}
	b.WriteString(">")
	return b.String()
}
