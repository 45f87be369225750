package responsive

import (
	"strconv"
	"strings"

	"github.com/npillmayer/pwmeter/dom/style"
)

// Scalar is a single setting for a style property: either a text or a number.
type Scalar struct {
	text    string
	num     float64
	numeric bool
}

// Text creates a textual setting, e.g. Text("1px solid black").
func Text(s string) Scalar {
	return Scalar{text: s}
}

// Number creates a numeric setting, e.g. Number(20). Numbers will be
// converted to CSS lengths (pixels) or plain numbers, depending on the
// property they are set for.
func Number(n float64) Scalar {
	return Scalar{num: n, numeric: true}
}

// IsNumber is true for numeric settings.
func (s Scalar) IsNumber() bool {
	return s.numeric
}

// Number returns the numeric value of s and true, or 0 and false for text.
func (s Scalar) Number() (float64, bool) {
	return s.num, s.numeric
}

func (s Scalar) String() string {
	if s.numeric {
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	}
	return s.text
}

// Property converts s to a CSS property value for property name (either
// in style-object or in CSS form).
func (s Scalar) Property(name string) style.Property {
	if s.numeric {
		return style.FromNumber(style.Hyphenate(name), s.num)
	}
	return style.Property(s.text)
}

// MaxTiers is the maximum number of values for a tiered property.
const MaxTiers = 3

// Value is a style property value. It is a sum type:
//
//    type Value = Plain Scalar | Tiered [1…3]Scalar
//
// Clients inspect a value by matching:
//
//    var s responsive.Scalar
//    var tiers []responsive.Scalar
//    switch m := v.Match(); m {
//    case m.Plain(&s):
//        …
//    case m.Tiered(&tiers):
//        …
//    }
//
// The zero Value is neither plain nor tiered and is rejected by Expand.
type Value struct {
	tiers  []Scalar
	tiered bool
}

// Plain creates a value with a single setting.
func Plain(s Scalar) Value {
	return Value{tiers: []Scalar{s}}
}

// Tiered creates a value with a setting per viewport tier. base is used
// for narrow viewports, overrides[0] from 40em and overrides[1] from 52em
// on. More than two overrides make the value invalid.
func Tiered(base Scalar, overrides ...Scalar) Value {
	tiers := make([]Scalar, 0, 1+len(overrides))
	tiers = append(tiers, base)
	tiers = append(tiers, overrides...)
	return Value{tiers: tiers, tiered: true}
}

// Str is a shortcut for Plain(Text(s)).
func Str(s string) Value {
	return Plain(Text(s))
}

// Num is a shortcut for Plain(Number(n)).
func Num(n float64) Value {
	return Plain(Number(n))
}

// IsTiered is true for values created by Tiered.
func (v Value) IsTiered() bool {
	return v.tiered
}

func (v Value) String() string {
	if !v.tiered {
		if len(v.tiers) == 0 {
			return "<invalid>"
		}
		return v.tiers[0].String()
	}
	parts := make([]string, len(v.tiers))
	for i, s := range v.tiers {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// --- Matching --------------------------------------------------------------

// Match starts matching a value against its variants.
func (v Value) Match() Matcher {
	return &matcher{v: v}
}

// Matcher matches a value against one of its variants. The variant
// methods return the matcher itself if the value is of that variant,
// nil otherwise. Matchers are pointers, so they compare by identity
// within a switch statement.
type Matcher interface {
	Plain(*Scalar) Matcher
	Tiered(*[]Scalar) Matcher
}

type matcher struct {
	v Value
}

func (m *matcher) Plain(s *Scalar) Matcher {
	if !m.v.tiered && len(m.v.tiers) == 1 {
		if s != nil {
			*s = m.v.tiers[0]
		}
		return m
	}
	return nil
}

func (m *matcher) Tiered(tiers *[]Scalar) Matcher {
	if m.v.tiered {
		if tiers != nil {
			*tiers = append([]Scalar(nil), m.v.tiers...)
		}
		return m
	}
	return nil
}
