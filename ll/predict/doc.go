/*
Package predict implements a predictive, recursive-descent parser for grammars
of package ll.

The parser consults the FIRST-sets of a grammar analysis to decide, with one
terminal of lookahead, which production to expand for a non-terminal. The
first production in declaration order whose FIRST-set contains the lookahead
wins. If there is none, an epsilon alternative is taken, provided the lookahead
may start its body or follow it in the current context. There is no backtracking:
the first failure aborts the parse.

    g := demo.PrefixExpressions()           // S ➞ + S S | - S S | a
    parser, err := predict.New(g)
    tree, err := parser.Parse([]string{"-", "a", "+", "a", "a"})

The result is a flat sequence of nodes in preorder, linked to their parents
(see package ptree).

Failures are reported as values of type *ParseError, carrying the kind of the
failure, the non-terminal and production involved, and the input position.

Configuration

Parsers read their defaults from the global configuration:

    ll.require-full-input   bool   fail on input left over after the root is complete
    ll.max-depth            int    limit for the nesting of expansions (0 = none)

Options given to New or NewParser override the configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
