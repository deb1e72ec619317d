package scanner

import (
	"fmt"

	"github.com/npillmayer/topdown"
)

// TerminalNamer maps a token to the name of a grammar terminal. An empty name
// marks tokens without a terminal; they are reported as errors by Terminals.
type TerminalNamer func(topdown.Token) string

// ByLexeme names every token by its lexeme. It is the default namer, fitting
// grammars whose terminals are the literal input strings, such as "(" or "+".
func ByLexeme(tok topdown.Token) string {
	return tok.Lexeme()
}

// ByType names tokens by their category, using a table. Categories not in the table
// are named by their lexeme. For example,
//
//     ByType(map[topdown.TokType]string{scanner.Ident: "a"})
//
// lets every identifier stand for terminal "a".
func ByType(names map[topdown.TokType]string) TerminalNamer {
	return func(tok topdown.Token) string {
		if name, ok := names[tok.TokType()]; ok {
			return name
		}
		return tok.Lexeme()
	}
}

// Terminals drains a tokenizer, naming every token up to EOF. It returns the
// terminal names together with the tokens they have been derived from. If the
// tokenizer reports an error or a token remains unnamed, Terminals returns the
// first error encountered, together with the terminals collected so far.
// Terminals installs its own error handler on the tokenizer.
func Terminals(tokenizer Tokenizer, namer TerminalNamer) ([]string, []topdown.Token, error) {
	if namer == nil {
		namer = ByLexeme
	}
	var firstErr error
	tokenizer.SetErrorHandler(func(err error) {
		logError(err)
		if firstErr == nil {
			firstErr = err
		}
	})
	var names []string
	var tokens []topdown.Token
	for tok := tokenizer.NextToken(); tok.TokType() != topdown.TokType(EOF); tok = tokenizer.NextToken() {
		name := namer(tok)
		if name == "" {
			if firstErr == nil {
				firstErr = fmt.Errorf("no terminal for token %q at %v", tok.Lexeme(), tok.Span())
			}
			continue
		}
		tracer().Debugf("token %q at %v ➞ terminal %q", tok.Lexeme(), tok.Span(), name)
		names = append(names, name)
		tokens = append(tokens, tok)
	}
	return names, tokens, firstErr
}
