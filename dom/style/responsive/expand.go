package responsive

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Breakpoints are the minimum viewport widths of tiers 1 and 2.
var Breakpoints = [MaxTiers - 1]string{"40em", "52em"}

var mediaQueries = func() [MaxTiers - 1]string {
	var q [MaxTiers - 1]string
	for i, bp := range Breakpoints {
		q[i] = "@media screen and (min-width: " + bp + ")"
	}
	return q
}()

// MediaQuery returns the media query selector for a tier (1 or 2).
// For any other tier it returns the empty string.
//
//    MediaQuery(1) => "@media screen and (min-width: 40em)"
//    MediaQuery(2) => "@media screen and (min-width: 52em)"
//
func MediaQuery(tier int) string {
	if tier < 1 || tier >= MaxTiers {
		return ""
	}
	return mediaQueries[tier-1]
}

// Props maps style-object property names ("fontSize", "margin-top", …)
// to values.
type Props map[string]Value

// Declaration is a set of style properties, possibly tiered, together
// with nested declarations for sub-selectors like "&::-webkit-meter-bar"
// or "&:hover". Nil entries in Nested are ignored.
type Declaration struct {
	Props  Props
	Nested map[string]*Declaration
}

// Expanded is a declaration without tiered values: every property holds
// a single setting. Tier overrides live in Nested, keyed by the media
// query of their tier, next to the expanded explicit nested selectors.
type Expanded struct {
	Props  map[string]Scalar
	Nested map[string]*Expanded
}

// NewExpanded creates an empty expanded declaration.
func NewExpanded() *Expanded {
	return &Expanded{
		Props:  make(map[string]Scalar),
		Nested: make(map[string]*Expanded),
	}
}

// IsEmpty is true if neither e nor any of its nested blocks sets a property.
func (e *Expanded) IsEmpty() bool {
	if e == nil {
		return true
	}
	if len(e.Props) > 0 {
		return false
	}
	for _, sub := range e.Nested {
		if !sub.IsEmpty() {
			return false
		}
	}
	return true
}

func (e *Expanded) String() string {
	var b strings.Builder
	e.print(&b, 0)
	return b.String()
}

func (e *Expanded) print(b *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	b.WriteString("{\n")
	for _, k := range sortedKeys(e.Props) {
		fmt.Fprintf(b, "%s  %s: %s\n", pad, k, e.Props[k])
	}
	for _, k := range sortedKeys(e.Nested) {
		fmt.Fprintf(b, "%s  %q: ", pad, k)
		e.Nested[k].print(b, indent+1)
	}
	b.WriteString(pad + "}\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Errors ----------------------------------------------------------------

// ErrInvalidStyleValue is the error all malformed values wrap.
var ErrInvalidStyleValue = errors.New("invalid style value")

// InvalidStyleValueError reports a malformed property value, together
// with the chain of nested selectors leading to it.
type InvalidStyleValueError struct {
	Path     []string // nested selectors, outermost first
	Property string
	Reason   string
}

func (e *InvalidStyleValueError) Error() string {
	loc := e.Property
	if len(e.Path) > 0 {
		loc = strings.Join(e.Path, " > ") + " > " + loc
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidStyleValue, loc, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidStyleValue) hold.
func (e *InvalidStyleValueError) Unwrap() error {
	return ErrInvalidStyleValue
}

// --- Expansion -------------------------------------------------------------

// Expand resolves all tiered values of d. For a tiered value, the first
// setting becomes the property's value at top level; setting i (i ≥ 1) is
// put into the nested block for MediaQuery(i), which is created on first
// use and shared by all properties with an override for that tier.
// Explicit nested declarations are expanded recursively under their
// original selector.
//
// Expand does not modify d. A nil d expands to an empty declaration.
// Malformed values result in an error wrapping ErrInvalidStyleValue:
// tiered values with zero or more than MaxTiers settings, tiered values
// mixing text and numbers, zero Values and empty property names.
func Expand(d *Declaration) (*Expanded, error) {
	return expand(d, nil)
}

// MustExpand is like Expand but panics if d contains malformed values.
// It is intended for declarations written as literals.
func MustExpand(d *Declaration) *Expanded {
	e, err := Expand(d)
	if err != nil {
		panic(err)
	}
	return e
}

func expand(d *Declaration, path []string) (*Expanded, error) {
	next := NewExpanded()
	if d == nil {
		return next, nil
	}
	for key, value := range d.Props {
		if key == "" {
			return nil, invalid(path, key, "empty property name")
		}
		var s Scalar
		var tiers []Scalar
		switch m := value.Match(); m {
		case m.Plain(&s):
			next.Props[key] = s
		case m.Tiered(&tiers):
			if err := checkTiers(tiers); err != "" {
				return nil, invalid(path, key, err)
			}
			next.Props[key] = tiers[0]
			for i := 1; i < len(tiers); i++ {
				media := MediaQuery(i)
				bucket(next, media).Props[key] = tiers[i]
			}
		default:
			return nil, invalid(path, key, "no value")
		}
	}
	for selector, sub := range d.Nested {
		if sub == nil {
			continue
		}
		e, err := expand(sub, append(path[:len(path):len(path)], selector))
		if err != nil {
			return nil, err
		}
		merge(bucket(next, selector), e)
	}
	tracer().Debugf("expanded %d properties, %d nested blocks", len(next.Props), len(next.Nested))
	return next, nil
}

// bucket returns the nested block for selector, creating it if absent.
func bucket(e *Expanded, selector string) *Expanded {
	b, ok := e.Nested[selector]
	if !ok {
		b = NewExpanded()
		e.Nested[selector] = b
	}
	return b
}

// merge copies all settings of src into dst. Settings of src win.
func merge(dst, src *Expanded) {
	for k, v := range src.Props {
		dst.Props[k] = v
	}
	for sel, sub := range src.Nested {
		merge(bucket(dst, sel), sub)
	}
}

func checkTiers(tiers []Scalar) string {
	if len(tiers) == 0 {
		return "tiered value without settings"
	}
	if len(tiers) > MaxTiers {
		return fmt.Sprintf("%d settings for at most %d tiers", len(tiers), MaxTiers)
	}
	for _, s := range tiers[1:] {
		if s.IsNumber() != tiers[0].IsNumber() {
			return "tiered value mixes text and numbers"
		}
	}
	return ""
}

func invalid(path []string, key string, reason string) error {
	err := &InvalidStyleValueError{
		Path:     append([]string(nil), path...),
		Property: key,
		Reason:   reason,
	}
	tracer().Errorf("%v", err)
	return err
}
