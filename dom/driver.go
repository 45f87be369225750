package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pwmeter/dom/vdom"
	"github.com/npillmayer/pwmeter/stream"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoMountPoint is returned if a page does not contain an element
// matching the mount selector.
var ErrNoMountPoint = errors.New("no mount point")

// ErrInvalidSelector is returned for malformed CSS selectors.
var ErrInvalidSelector = errors.New("invalid selector")

// ErrNoMatch is returned if no element of the mounted tree matches a
// selector.
var ErrNoMatch = errors.New("no matching element")

// StyleSource provides the CSS text for a document, usually a
// *registry.Registry.
type StyleSource interface {
	CSS() string
}

// styleMarker identifies the <style> element owned by a driver.
const styleMarker = "data-pwmeter"

// Driver drives a host document. It is safe for concurrent use, although
// patches are usually serialized by the stream feeding them.
type Driver struct {
	mx      sync.Mutex
	doc     *html.Node
	mount   *html.Node
	styles  StyleSource
	events  *stream.Subject[Event]
	patches int
}

// NewDriver parses an HTML page and locates the mount point within it.
func NewDriver(page string, mountSelector string) (*Driver, error) {
	sel, err := compile(mountSelector)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("cannot parse host page: %w", err)
	}
	mount := sel.MatchFirst(doc)
	if mount == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoMountPoint, mountSelector)
	}
	tracer().Infof("mounting at <%s> for %q", mount.Data, mountSelector)
	return &Driver{
		doc:    doc,
		mount:  mount,
		events: stream.NewSubject[Event](),
	}, nil
}

func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	return sel, nil
}

// SetStyles sets the style source for the document. Subsequent patches
// will update the document's <style> element from it.
func (d *Driver) SetStyles(s StyleSource) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.styles = s
}

// Patch updates the content of the mount point to reflect v. A nil v
// clears the mount point.
func (d *Driver) Patch(v *vdom.VNode) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.patches++
	tracer().P("patch", d.patches).Debugf("patching %v", v)
	var children []*vdom.VNode
	if v != nil {
		children = []*vdom.VNode{v}
	}
	patchChildren(d.mount, children)
	if d.styles != nil {
		d.syncStyles(d.styles.CSS())
	}
}

// Patches returns the number of patches applied so far.
func (d *Driver) Patches() int {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.patches
}

func patchChildren(parent *html.Node, children []*vdom.VNode) {
	cur := parent.FirstChild
	for _, v := range children {
		if cur == nil {
			parent.AppendChild(v.ToHTML())
			continue
		}
		next := cur.NextSibling
		if sameKind(cur, v) {
			patchNode(cur, v)
		} else {
			parent.InsertBefore(v.ToHTML(), cur)
			parent.RemoveChild(cur)
		}
		cur = next
	}
	for cur != nil {
		next := cur.NextSibling
		parent.RemoveChild(cur)
		cur = next
	}
}

func sameKind(n *html.Node, v *vdom.VNode) bool {
	if v.IsText() {
		return NodeIsText(n)
	}
	return NodeIsElement(n, v.Tag)
}

func patchNode(n *html.Node, v *vdom.VNode) {
	if v.IsText() {
		n.Data = v.Text
		return
	}
	live, hasLive := attr(n, "value")
	n.Attr = v.HTMLAttrs()
	if NodeIsInput(n) && hasLive {
		if _, controlled := v.Attrs["value"]; !controlled {
			setAttr(n, "value", live)
		}
	}
	patchChildren(n, v.Children)
}

func (d *Driver) syncStyles(text string) {
	head := findElement(atom.Head, d.doc)
	if head == nil {
		tracer().Errorf("host document has no <head>, cannot attach styles")
		return
	}
	var st *html.Node
	for ch := head.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style {
			if _, ok := attr(ch, styleMarker); ok {
				st = ch
				break
			}
		}
	}
	if st == nil {
		st = &html.Node{
			Type:     html.ElementNode,
			Data:     "style",
			DataAtom: atom.Style,
			Attr:     []html.Attribute{{Key: styleMarker}},
		}
		head.AppendChild(st)
	}
	if st.FirstChild != nil && st.FirstChild.Data == text {
		return
	}
	for st.FirstChild != nil {
		st.RemoveChild(st.FirstChild)
	}
	st.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Document returns the host document. Clients must not modify it while
// the driver is in use.
func (d *Driver) Document() *html.Node {
	return d.doc
}

// Mounted returns the element currently mounted, or nil.
func (d *Driver) Mounted() *html.Node {
	d.mx.Lock()
	defer d.mx.Unlock()
	for ch := d.mount.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

// Render writes the HTML text of the host document to w.
func (d *Driver) Render(w io.Writer) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	return html.Render(w, d.doc)
}

// HTML returns the HTML text of the host document.
func (d *Driver) HTML() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		tracer().Errorf("cannot render document: %v", err)
	}
	return b.String()
}

// Run calls main with the source of d and patches d with every markup
// tree main emits. It returns a function to stop patching.
func Run(main func(Source) stream.Stream[*vdom.VNode], d *Driver) (stop func()) {
	sink := main(d.Source())
	tracer().Infof("starting application")
	return sink.Subscribe(d.Patch)
}
