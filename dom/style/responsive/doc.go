/*
Package responsive expands style declarations with per-breakpoint values.

Overview

A style declaration may give up to three values for a single property,
one for each viewport tier:

   tier 0:  viewport narrower than 40em (the default)
   tier 1:  viewport ≥ 40em
   tier 2:  viewport ≥ 52em

Instead of writing three conditional blocks by hand, authors write

   &responsive.Declaration{
       Props: responsive.Props{
           "fontSize": responsive.Tiered(responsive.Number(20), responsive.Number(30), responsive.Number(40)),
           "color":    responsive.Tiered(responsive.Text("black"), responsive.Text("tomato")),
       },
   }

and Expand fans every tiered value out into nested blocks keyed by the
media query of its tier. Overrides for the same tier are merged into
one block. Explicit nested selectors (pseudo-elements, states) are
expanded recursively and keep their selector key.

Breakpoints are fixed; see MediaQuery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package responsive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwmeter.style'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.style")
}
