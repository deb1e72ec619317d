/*
Package ll implements prerequisites for predictive (top-down) parsing:
grammars and their static analysis.

Building a Grammar

Grammars consist of terminals, non-terminals, an ordered list of productions and
a root non-terminal. Clients either hand the parts to NewGrammar, or use a
grammar builder object. The empty string Epsilon is reserved: a production
with body [Epsilon] derives the empty string.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").T("+").N("S").N("S").End()  // S  ->  + S S
    b.LHS("S").T("-").N("S").N("S").End()  // S  ->  - S S
    b.LHS("S").T("a").End()                // S  ->  a
    g, err := b.Grammar()

This results in the following grammar:

   g.Dump()

   0: S ➞ + S S
   1: S ➞ - S S
   2: S ➞ a

The first non-terminal introduced with LHS is the root of the grammar.
Every production is identified by its serial number within the grammar and by its
position among the productions of its head (Production.Alt). Tables of this
package and of the parser packages are keyed by serial numbers, never by pointer
identity.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis computes the
FIRST-set of every production by fixed-point iteration, which terminates for
every grammar, left-recursive ones included.

    ga, err := ll.Analysis(g)
    for _, p := range g.Productions("S") {
        fmt.Printf("FIRST(%v) = %v\n", p, ga.First(p))
    }

    // Output:
    FIRST(S ➞ + S S) = [+]
    FIRST(S ➞ - S S) = [-]
    FIRST(S ➞ a) = [a]

The FIRST-set of a production is determined by the first symbol of its body. A
leading non-terminal contributes the FIRST-sets of all of its productions. A
FIRST-set may contain Epsilon, signalling that the production may start with an
empty derivation. Whether a non-terminal may derive the empty string as a whole
is answered by Nullable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
