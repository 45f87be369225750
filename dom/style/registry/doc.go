/*
Package registry turns style declarations into CSS class names.

Overview

A Registry collects the CSS rules for all declarations it has been asked
to style. For every distinct (expanded) declaration it generates a class
name, derived from a hash of the generated CSS, and the rules selecting
that class:

   reg := registry.New()
   cls := reg.Style(responsive.MustExpand(decl))
   // cls == "f1x2k9qz", reg.CSS() contains ".f1x2k9qz { … }"

Equivalent declarations result in the same class name and are registered
only once, so calling Style on every render pass is cheap.

Nested selectors of a declaration are interpolated with the class
selector: "&" stands for the class, selectors without "&" select
descendants. Media queries and other conditional at-rules wrap the
rules of the class.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwmeter.style'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.style")
}
