/*
Package stream implements ordered value streams.

Overview

A Stream delivers values to its listeners. Delivery is synchronous:
emitting a value calls every listener, in order of subscription, and
returns only after all listeners are done. Values emitted concurrently
are serialized, so every listener sees one value at a time and all
listeners see values in the same order.

Streams are derived from other streams by operators:

   input := stream.NewSubject[string]()
   lengths := stream.Map(input, func(s string) int { return len(s) })
   withStart := stream.StartWith(lengths, 0)
   cancel := withStart.Subscribe(func(n int) { fmt.Println(n) })   // prints 0
   input.Emit("abc")                                               // prints 3
   cancel()

Derived streams subscribe to their source lazily, on their first
subscription, and unsubscribe when the last listener cancels.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwmeter.stream'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.stream")
}
