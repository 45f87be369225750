package meter

import (
	"strconv"

	r "github.com/npillmayer/pwmeter/dom/style/responsive"
	"github.com/npillmayer/pwmeter/dom/vdom"
)

var formStyle = &r.Declaration{
	Props: r.Props{
		"padding":    r.Str("20px"),
		"fontFamily": r.Str("monospace"),
		"fontSize":   r.Tiered(r.Number(20), r.Number(30), r.Number(40)),
		"color":      r.Tiered(r.Text("black"), r.Text("tomato")),
	},
}

var inputStyle = &r.Declaration{
	Props: r.Props{
		"marginLeft":   r.Num(20),
		"fontSize":     r.Str("inherit"),
		"fontFamily":   r.Str("inherit"),
		"border":       r.Str("1px solid rgba(0,0,0,0.6)"),
		"borderRadius": r.Num(2),
	},
}

var strengthStyle = &r.Declaration{
	Props: r.Props{"marginTop": r.Num(20)},
}

// meterStyle is the style of the meter bar, the optimum value being
// coloured for level.
func meterStyle(level int) *r.Declaration {
	return &r.Declaration{
		Props: r.Props{
			"marginTop": r.Num(20),
			"margin":    r.Str("0 auto 1em"),
			"width":     r.Str("100%"),
			"height":    r.Str("0.5em"),
		},
		Nested: map[string]*r.Declaration{
			"&::-webkit-meter-optimum-value": {
				Props: r.Props{"background": r.Str(Color(level))},
			},
			"&::-webkit-meter-bar": {
				Props: r.Props{
					"background":      r.Str("none"),
					"backgroundColor": r.Str("rgba(0, 0, 0, 0.1)"),
				},
			},
		},
	}
}

// View builds the markup tree for a password: a form with a password
// input and a strength meter.
func View(b vdom.Builder, password string) *vdom.VNode {
	level := Level(password)
	tracer().P("level", level).Debugf("rendering %s", Label(level))
	return b.H("form", vdom.CSS(formStyle),
		vdom.H("label", nil,
			vdom.H("span", nil, vdom.Text("Password")),
			b.H("input", vdom.Props{
				Attrs: vdom.Attrs{"type": "password"},
				CSS:   []*r.Declaration{inputStyle},
			}),
		),
		b.H("div", vdom.CSS(strengthStyle),
			vdom.H("span", nil, vdom.Text("Strength: "), vdom.Text(Label(level))),
			b.H("meter", vdom.Props{
				Attrs: vdom.Attrs{
					"value": strconv.Itoa(level),
					"max":   strconv.Itoa(MaxLevel),
				},
				CSS: []*r.Declaration{meterStyle(level)},
			}),
		),
	)
}
