/*
Package dom drives an HTML document from a stream of markup trees.

Overview

A Driver holds a host document, parsed from an HTML page, and a mount
point within it, located by a CSS selector. Every markup tree handed to
Patch replaces the content of the mount point. Patching is positional:
an element with the same tag at the same position is kept and updated
in place, which preserves the live value of input elements between
renders. Everything else is replaced.

Events are simulated. Clients dispatch events for elements of the
document, usually with Driver.Input, and subscribe to them through the
driver's Source:

   d, err := dom.NewDriver(page, "#app")
   inputs := d.Source().Select("input").Events("input")
   values := stream.Map(inputs, dom.Event.TargetValue)

Run connects a main function, mapping the source to a stream of markup
trees, to a driver.

If a driver has a style source (see Driver.SetStyles), it keeps a
<style> element in the document's <head> in sync with the style
source's CSS on every patch.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwmeter.dom'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.dom")
}
