package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// LMAdapter holds a compiled lexmachine DFA together with the names of the
// token IDs it produces. Names usually are terminals of a grammar.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	names map[int]string // token ID ➞ terminal
}

// NewLMAdapter compiles a DFA. init may add arbitrary patterns first, e.g. for
// whitespace (see Skip) or identifiers (see Emit). Literals ('(', '+', …) are
// matched character by character, keywords ("if", "a", …) as written. tokenIds
// maps every literal and keyword, and possibly further token names, to its ID.
//
// NewLMAdapter fails if a literal or keyword has no ID or if the DFA does not
// compile.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int) (*LMAdapter, error) {
	//
	lm := &LMAdapter{
		Lexer: lexmachine.NewLexer(),
		names: make(map[int]string, len(tokenIds)),
	}
	for name, id := range tokenIds {
		lm.names[id] = name
	}
	if init != nil {
		init(lm.Lexer)
	}
	add := func(name string, pattern []byte) error {
		id, ok := tokenIds[name]
		if !ok {
			return fmt.Errorf("no token ID for %q", name)
		}
		lm.Lexer.Add(pattern, Emit(id))
		return nil
	}
	for _, lit := range literals {
		if err := add(lit, quoted(lit)); err != nil {
			return nil, err
		}
	}
	for _, kw := range keywords {
		if err := add(kw, []byte(kw)); err != nil {
			return nil, err
		}
	}
	if err := lm.Lexer.Compile(); err != nil {
		tracer().Errorf("compiling DFA: %v", err)
		return nil, err
	}
	return lm, nil
}

// quoted escapes every character of a literal for the lexmachine pattern syntax.
func quoted(lit string) []byte {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return []byte(b.String())
}

// Scanner creates a tokenizer for input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// Namer returns a TerminalNamer which names tokens by the name registered
// for their ID. Tokens with unregistered IDs are named by their lexeme.
func (lm *LMAdapter) Namer() scanner.TerminalNamer {
	return func(tok topdown.Token) string {
		if name, ok := lm.names[int(tok.TokType())]; ok {
			return name
		}
		return tok.Lexeme()
	}
}

// LMScanner reads tokens from a lexmachine scanner. It implements
// scanner.Tokenizer.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler is part of interface scanner.Tokenizer. h == nil restores
// the default, which traces errors.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.Error = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of interface scanner.Tokenizer. Input the DFA cannot match is
// reported to the error handler and skipped.
func (lms *LMScanner) NextToken() topdown.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", topdown.Span{})
	}
	for {
		tok, err, eof := lms.scanner.Next()
		switch {
		case err != nil:
			lms.Error(err)
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				lms.scanner.TC = ui.FailTC
			}
		case eof:
			at := uint64(lms.scanner.TC)
			return scanner.MakeDefaultToken(scanner.EOF, "", topdown.Span{at, at})
		default:
			t := tok.(*lexmachine.Token)
			tracer().Debugf("token %d = %q", t.Type, t.Lexeme)
			from := uint64(t.TC)
			return scanner.MakeDefaultToken(topdown.TokType(t.Type), string(t.Lexeme),
				topdown.Span{from, from + uint64(len(t.Lexeme))})
		}
	}
}

// Skip is an action which drops the match, e.g. for whitespace.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Emit is an action which turns a match into a token with ID id.
func Emit(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
