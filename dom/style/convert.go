package style

import (
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// Color interprets a property as a CSS color value. Keywords without a
// color meaning ("default", "inherit", "initial", "none", …) and
// malformed values return nil.
func (p Property) Color() color.Color {
	if p.IsEmpty() || p.IsInherit() || p.IsInitial() || p == "default" {
		return nil
	}
	c, err := csscolorparser.Parse(string(p))
	if err != nil {
		tracer().Debugf("not a color: %q", p)
		return nil
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// IsTransparent is true for colors with an alpha channel of zero.
func IsTransparent(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// ColorString returns a hex string ("#rrggbb" or "#rrggbbaa") for a color.
// For nil it returns the X11/CSS color "powderblue".
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	cc := csscolorparser.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
	if a > 0 && a < 0xffff {
		// RGBA() is alpha-premultiplied
		cc.R = float64(r) / float64(a)
		cc.G = float64(g) / float64(a)
		cc.B = float64(b) / float64(a)
	}
	return cc.HexString()
}
