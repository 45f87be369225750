package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'pwmeter.style'
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- Property names ---------------------------------------------------

// Hyphenate converts a property name as used in style objects into
// its CSS form. Example:
//
//    Hyphenate("fontSize")         => "font-size"
//    Hyphenate("WebkitAppearance") => "-webkit-appearance"
//    Hyphenate("msFlex")           => "-ms-flex"
//
// Names already in CSS form are returned unchanged, as are custom
// properties ("--main-color").
func Hyphenate(name string) string {
	if strings.HasPrefix(name, "--") || strings.IndexFunc(name, isUpper) < 0 {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	if strings.HasPrefix(name, "ms") && len(name) > 2 && isUpper(rune(name[2])) {
		b.WriteByte('-')
	}
	for i, r := range name {
		if isUpper(r) {
			if i > 0 || !strings.HasPrefix(name, "ms") {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// unitless lists CSS properties which take plain numbers. Numeric values
// for every other property are lengths in pixels.
var unitless = map[string]bool{
	"animation-iteration-count": true,
	"box-flex":                  true,
	"box-flex-group":            true,
	"column-count":              true,
	"columns":                   true,
	"counter-increment":         true,
	"counter-reset":             true,
	"fill-opacity":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-positive":             true,
	"flex-shrink":               true,
	"flex-negative":             true,
	"font-weight":               true,
	"grid-area":                 true,
	"grid-column":               true,
	"grid-row":                  true,
	"line-clamp":                true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"stop-opacity":              true,
	"stroke-dashoffset":         true,
	"stroke-opacity":            true,
	"stroke-width":              true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
}

var vendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

// IsUnitless returns wether a (hyphenated) CSS property accepts plain
// numbers, i.e., numbers without a unit. Vendor prefixes are ignored.
func IsUnitless(key string) bool {
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(key, prefix) {
			key = key[len(prefix):]
			break
		}
	}
	return unitless[key]
}

// FromNumber creates a property value for a numeric setting of CSS
// property key. Lengths are given in pixels:
//
//    FromNumber("margin-left", 20) => "20px"
//    FromNumber("opacity", 0.5)    => "0.5"
//    FromNumber("margin-top", 0)   => "0"
//
func FromNumber(key string, n float64) Property {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if n == 0 || IsUnitless(key) {
		return Property(s)
	}
	return Property(s + "px")
}

// Declare creates a key-value pair in CSS form from a style object's
// property name and a textual value.
func Declare(name string, value string) KeyValue {
	key := Hyphenate(name)
	tracer().P("key", key).Debugf("declare %s = %q", name, value)
	return KeyValue{Key: key, Value: Property(value)}
}

// DeclareNumber creates a key-value pair in CSS form from a style object's
// property name and a numeric value. See FromNumber.
func DeclareNumber(name string, n float64) KeyValue {
	key := Hyphenate(name)
	return KeyValue{Key: key, Value: FromNumber(key, n)}
}
