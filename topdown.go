package topdown

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Applications define their own constants;
// the default tokenizer uses the values of text/scanner.
type TokType int

// Tokens represent input tokens, usually produced by a scanner. A parser of package
// ll/predict does not consume tokens directly, but rather terminal names derived
// from them (see scanner.TerminalNamer).
//
// An example would be a token for an identifier:
//
//    TokType = Ident       // category of this kind of tokens (application specific)
//    Lexeme  = "a"         // lexeme as it appeared in the input stream
//    Value   = nil         // optional, set by the scanner or a tree listener
//    Span    = 4…5         // occured at position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. For every node of a parse tree we track
// which input terminals it covers. A span denotes a start position and the
// position just behind the end; an empty derivation has From() == To().
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
