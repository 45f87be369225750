package meter

import (
	"github.com/npillmayer/pwmeter/dom"
	"github.com/npillmayer/pwmeter/dom/vdom"
	"github.com/npillmayer/pwmeter/stream"
)

// Sources are the inputs of the application.
type Sources struct {
	DOM dom.Source
}

// Sinks are the outputs of the application.
type Sinks struct {
	DOM stream.Stream[*vdom.VNode]
}

// App is the password strength application. Styles receives the style
// declarations of every render.
type App struct {
	Styles vdom.StyleRegistry
}

// Main maps the input events of the password field to a stream of views.
// It emits the view for an empty password first.
func (app App) Main(sources Sources) Sinks {
	inputs := sources.DOM.Select("input").Events("input")
	passwords := stream.StartWith(stream.Map(inputs, dom.Event.TargetValue), "")
	b := vdom.Builder{Styles: app.Styles}
	return Sinks{
		DOM: stream.Map(passwords, func(password string) *vdom.VNode {
			return View(b, password)
		}),
	}
}

// Run runs the application on a DOM driver. If the application's style
// registry provides CSS text, the driver's document will carry it.
// Run returns a function to stop the application.
func (app App) Run(d *dom.Driver) (stop func()) {
	if css, ok := app.Styles.(dom.StyleSource); ok {
		d.SetStyles(css)
	}
	return dom.Run(func(src dom.Source) stream.Stream[*vdom.VNode] {
		return app.Main(Sources{DOM: src}).DOM
	}, d)
}
