/*
Package meter implements a password input with a strength meter.

Overview

The strength of a password is derived from its length only: every three
characters add one level. Levels 0 to 4 have distinct colours and labels,
all levels above 4 saturate at the colour of level 4 and the label
"Amazing 👏".

View builds the markup tree for a password, App wires it to a DOM
driver:

   reg := registry.New()
   d, _ := dom.NewDriver(page, "#app")
   stop := meter.App{Styles: reg}.Run(d)
   d.Input("input", "secret")   // re-renders the meter

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package meter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwmeter.meter'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.meter")
}
