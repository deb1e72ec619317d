/*
Package scanner turns input text into terminals for the parsers of package
ll/predict.

A parser works on terminal names, while scanners produce tokens. A Tokenizer
yields tokens up to EOF, a TerminalNamer decides which terminal a token stands
for, and Terminals combines both into the input of a parse.

GoTokenizer splits text the way the Go language does, using 'text/scanner'. Sub-package
`lexmach` builds tokenizers from the terminals of a grammar with lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
)

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}

// Token categories of GoTokenizer, as defined by text/scanner. Other tokens,
// e.g. operators, have their character as category.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer delivers the tokens of an input, one per call of NextToken. After the
// last token it returns tokens of category EOF. Malformed input is reported to
// the error handler.
type Tokenizer interface {
	NextToken() topdown.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer tokenizes Go-like input. Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error        func(error)
	unifyStrings bool // raw strings and chars are reported as String
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a tokenizer for input. sourceID names the input in error
// messages. Comments are skipped unless option SkipComments(false) is given.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{Error: logError}
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler is part of interface Tokenizer. h == nil restores the default,
// which traces errors.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.Error = h
}

// NextToken is part of interface Tokenizer. Token spans are byte offsets into
// the input.
func (t *DefaultTokenizer) NextToken() topdown.Token {
	cat := t.Scan()
	if cat == scanner.EOF {
		tracer().Debugf("%s: end of input", t.Filename)
	} else if t.unifyStrings && (cat == scanner.RawString || cat == scanner.Char) {
		cat = scanner.String
	}
	return MakeDefaultToken(topdown.TokType(cat), t.TokenText(),
		topdown.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)})
}

// --- Tokens ----------------------------------------------------------------

// DefaultToken is the token type of the tokenizers of this package and of
// sub-package lexmach. It carries no value.
type DefaultToken struct {
	kind   topdown.TokType
	lexeme string
	span   topdown.Span
}

// MakeDefaultToken creates a token of category typ.
func MakeDefaultToken(typ topdown.TokType, lexeme string, span topdown.Span) DefaultToken {
	return DefaultToken{kind: typ, lexeme: lexeme, span: span}
}

// TokType is part of interface topdown.Token.
func (t DefaultToken) TokType() topdown.TokType { return t.kind }

// Lexeme is part of interface topdown.Token.
func (t DefaultToken) Lexeme() string { return t.lexeme }

// Value is part of interface topdown.Token. It is always nil.
func (t DefaultToken) Value() interface{} { return nil }

// Span is part of interface topdown.Token.
func (t DefaultToken) Span() topdown.Span { return t.span }

// --- Options ---------------------------------------------------------------

// Option configures a tokenizer created by GoTokenizer.
type Option func(t *DefaultTokenizer)

// SkipComments drops comments if b is true, otherwise comments are delivered as
// tokens of category Comment.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings lets raw strings and character literals be reported as String.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}
