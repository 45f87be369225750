/*
Command pwmeter renders a password input with a strength meter.

Usage:

   pwmeter render --password s3cret --out page.html
   pwmeter replay --password s3cret --tree
   pwmeter css
   pwmeter tui

See `pwmeter help` for all commands and flags.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
