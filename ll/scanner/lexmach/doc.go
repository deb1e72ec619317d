/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the predictive parsers of this module.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

An adapter is set up from the literals and keywords of a grammar, each with a
token ID. Patterns which do not stand for a single terminal, such as whitespace,
are added by an init function. Clients needing a different setup may wrap
lexmachine themselves; scanner.Tokenizer is all a parser needs.

	ids := map[string]int{"(": 10, ")": 11}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n)+`), lexmach.Skip)
	}
	LM, err := lexmach.NewLMAdapter(init, []string{"(", ")"}, nil, ids)

A scanner is instantiated for each concrete input sequence. As token names
usually coincide with the terminals of a grammar, the adapter offers a
TerminalNamer translating token IDs back to names:

	scan, err := LM.Scanner("( ( ) )")
	terminals, tokens, err := scanner.Terminals(scan, LM.Namer())

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}
