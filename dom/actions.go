package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeIsText is a predicate to match text-nodes of a document.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeIsElement is a predicate to match element nodes with a given tag.
func NodeIsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// NodeIsInput is a predicate to match elements carrying a live value
// which users may change: <input>, <textarea> and <select>.
func NodeIsInput(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Input, atom.Textarea, atom.Select:
		return true
	}
	return false
}

// AttrValue returns the value of attribute key of n, or "" if n does not
// have it.
func AttrValue(n *html.Node, key string) string {
	v, _ := attr(n, key)
	return v
}

func attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// findElement returns the first element (depth-first) of h with atom a.
func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// isDescendant is true if n is anc or below anc.
func isDescendant(n, anc *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == anc {
			return true
		}
	}
	return false
}
