/*
Command topdown is a small workbench for predictive parsing. It parses input
with one of the demo grammars, prints FIRST-sets, and offers an interactive
mode:

    topdown parse -g prefix - a + a a
    topdown parse -g parens --strict "( ( ) ) )"
    topdown first -g parens
    topdown repl  -g prefix

Configuration is read from a NestedText file for application tag "topdown" at
the usual configuration locations, if present. Command line flags override it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
