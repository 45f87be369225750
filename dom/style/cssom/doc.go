/*
Package cssom provides an object model for generated CSS.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Styles of the password meter are generated from style declarations at
render time (see package registry). The generated rules are made
available through the interfaces StyleSheet and Rule, which de-couple
clients from the CSS library doing the actual work. A concrete
implementation may be found in sub-package douceuradapter.

Rules are either style rules,

   .f1a2b3c4::-webkit-meter-bar {
     background: none;
   }

or at-rules embedding style rules:

   @media screen and (min-width: 40em) {
     .f1a2b3c4 {
       font-size: 30px;
     }
   }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pwmeter.style'.
func tracer() tracing.Trace {
	return tracing.Select("pwmeter.style")
}
