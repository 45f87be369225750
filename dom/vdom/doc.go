/*
Package vdom describes markup as plain trees of nodes.

Overview

A render pass produces a tree of VNodes: a tag, a set of attributes and
child nodes, or a piece of text. Trees are built with explicit builder
calls instead of a template language:

   form := vdom.H("form", nil,
       vdom.H("label", nil,
           vdom.H("span", nil, vdom.Text("Password")),
           vdom.H("input", vdom.Attrs{"type": "password"}),
       ),
   )

A Builder additionally attaches styles. Style declarations given in
Props.CSS are expanded, registered with a style registry, and the
resulting class name is added to the node's class attribute.

VNode trees are values without identity. They are converted to
golang.org/x/net/html nodes for mounting into a document (see package
dom) or rendered to HTML text directly.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwmeter.dom'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.dom")
}
