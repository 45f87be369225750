package vdom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts a markup tree into an HTML node tree. Attributes are
// ordered by key.
func (n *VNode) ToHTML() *html.Node {
	if n == nil {
		return nil
	}
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     n.HTMLAttrs(),
	}
	for _, ch := range n.Children {
		h.AppendChild(ch.ToHTML())
	}
	return h
}

// HTMLAttrs returns the attributes of n as HTML attributes, ordered by key.
func (n *VNode) HTMLAttrs() []html.Attribute {
	if len(n.Attrs) == 0 {
		return nil
	}
	attrs := make([]html.Attribute, 0, len(n.Attrs))
	for _, k := range n.SortedAttrKeys() {
		attrs = append(attrs, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	return attrs
}

// Render writes the HTML text of a markup tree to w.
func Render(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, n.ToHTML()); err != nil {
		return fmt.Errorf("cannot render <%s>: %w", n.Tag, err)
	}
	return nil
}
