package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pwmeter/stream"
	"golang.org/x/net/html"
)

// Event is an event dispatched to an element of a document.
type Event struct {
	Type   string
	Target *html.Node
}

// TargetValue returns the live value of the event's target, or "" if
// there is no target or it does not have a value.
func (ev Event) TargetValue() string {
	return AttrValue(ev.Target, "value")
}

// Source is the source of events of a driver's mounted tree.
type Source struct {
	d *Driver
}

// Source returns the event source of d.
func (d *Driver) Source() Source {
	return Source{d: d}
}

// Selection is a part of a mounted tree, selected by a CSS selector.
type Selection struct {
	d   *Driver
	sel cascadia.Selector
	err error
}

// Select selects the elements matching a CSS selector. An element is
// selected if it is part of the mounted tree and it or one of its
// ancestors within the mounted tree matches. A malformed selector
// results in a selection without events, see Selection.Err.
func (src Source) Select(selector string) Selection {
	sel, err := compile(selector)
	if err != nil {
		tracer().Errorf("%v", err)
	}
	return Selection{d: src.d, sel: sel, err: err}
}

// Err returns the error of a malformed selector, or nil.
func (s Selection) Err() error {
	return s.err
}

// Events returns a stream of the events of type eventType dispatched to
// elements of the selection.
func (s Selection) Events(eventType string) stream.Stream[Event] {
	return stream.Filter[Event](s.d.events, func(ev Event) bool {
		return ev.Type == eventType && s.matches(ev.Target)
	})
}

func (s Selection) matches(target *html.Node) bool {
	if s.err != nil || target == nil {
		return false
	}
	for n := target; n != nil && n != s.d.mount; n = n.Parent {
		if n.Type == html.ElementNode && s.sel.Match(n) {
			return isDescendant(n, s.d.mount)
		}
	}
	return false
}

// Dispatch dispatches an event to listeners of the driver's source.
// It returns after all listeners have been called.
func (d *Driver) Dispatch(ev Event) {
	tracer().P("event", ev.Type).Debugf("dispatching to <%s>", targetName(ev.Target))
	d.events.Emit(ev)
}

// Input simulates a user typing into an element: it sets the live value
// of the first element of the mounted tree matching selector and
// dispatches an "input" event to it.
func (d *Driver) Input(selector string, value string) error {
	sel, err := compile(selector)
	if err != nil {
		return err
	}
	d.mx.Lock()
	var target *html.Node
	for ch := d.mount.FirstChild; ch != nil && target == nil; ch = ch.NextSibling {
		target = sel.MatchFirst(ch)
	}
	if target == nil {
		d.mx.Unlock()
		return fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}
	setAttr(target, "value", value)
	d.mx.Unlock()
	d.Dispatch(Event{Type: "input", Target: target})
	return nil
}

func targetName(n *html.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Data
}
