package predict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/topdown/ll"
)

// Kind classifies parse failures.
type Kind int

// Kinds of parse failures. LeftRecursion and DepthExceeded are raised for
// grammars the parser is unable to handle rather than for malformed input.
const (
	NoApplicableProduction Kind = iota + 1 // no production fits the lookahead
	TerminalMismatch                       // a terminal of the body did not match the lookahead
	TrailingInput                          // input left over (only with RequireFullInput)
	LeftRecursion                          // non-terminal re-entered without consuming input
	DepthExceeded                          // nesting of expansions exceeded MaxDepth
)

func (k Kind) String() string {
	switch k {
	case NoApplicableProduction:
		return "no applicable production"
	case TerminalMismatch:
		return "terminal mismatch"
	case TrailingInput:
		return "trailing input"
	case LeftRecursion:
		return "left recursion"
	case DepthExceeded:
		return "depth exceeded"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError is the failure value of Parse.
type ParseError struct {
	Kind        Kind
	NonTerminal string         // non-terminal being expanded
	Production  *ll.Production // production being matched, if already selected
	Position    int            // input position of the failure
	Lookahead   string         // terminal at Position, empty at end of input
	AtEnd       bool           // Position is past the end of input
	Expected    []string       // terminals acceptable at Position, if known
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.NonTerminal != "" {
		fmt.Fprintf(&b, " while expanding %s", e.NonTerminal)
	}
	if e.Production != nil {
		fmt.Fprintf(&b, " [%v]", e.Production)
	}
	if e.AtEnd {
		fmt.Fprintf(&b, " at end of input (position %d)", e.Position)
	} else {
		fmt.Fprintf(&b, " at position %d, lookahead %q", e.Position, e.Lookahead)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expected one of %v", e.Expected)
	}
	return b.String()
}

// IsKind checks if err is a *ParseError of kind k.
func IsKind(err error, k Kind) bool {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind == k
	}
	return false
}
