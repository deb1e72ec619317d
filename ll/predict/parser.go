package predict

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/ptree"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/sparse"
)

// Parser is a predictive parser for a grammar. After construction it holds
// read-only state only, so it may be shared between goroutines.
type Parser struct {
	ga               *ll.LLAnalysis
	g                *ll.Grammar
	ntIndex          map[string]int
	termIndex        map[string]int
	table            *sparse.IntMatrix // non-terminal × terminal ➞ production serial
	epsilonAlt       []int32           // per non-terminal: first production with ε ∈ FIRST, or -1
	requireFullInput bool
	maxDepth         int
}

// Option configures a parser.
type Option func(p *Parser)

// RequireFullInput lets parses fail with TrailingInput if input is left over
// after the root non-terminal has been completed. The default is to ignore
// trailing input, with one exception: if nothing has been consumed, an epsilon
// alternative is not taken for a lookahead that cannot follow it, and the parse
// fails with NoApplicableProduction. For S ➞ ( S ) | ε, input [ ( ) u ] is
// accepted while [ u ] is not.
func RequireFullInput(b bool) Option {
	return func(p *Parser) {
		p.requireFullInput = b
	}
}

// MaxDepth limits the nesting of non-terminal expansions. Parses going deeper
// fail with DepthExceeded. n = 0 means no limit.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.maxDepth = n
	}
}

// New analyses a grammar and creates a parser for it.
func New(g *ll.Grammar, opts ...Option) (*Parser, error) {
	ga, err := ll.Analysis(g)
	if err != nil {
		return nil, err
	}
	return NewParser(ga, opts...)
}

// NewParser creates a parser from a grammar analysis.
func NewParser(ga *ll.LLAnalysis, opts ...Option) (*Parser, error) {
	if ga == nil || ga.Grammar() == nil {
		return nil, ll.ErrNoRoot
	}
	p := &Parser{
		ga:               ga,
		g:                ga.Grammar(),
		requireFullInput: gconf.GetBool("ll.require-full-input"),
		maxDepth:         gconf.GetInt("ll.max-depth"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.buildTable()
	return p, nil
}

// Analysis returns the grammar analysis the parser uses.
func (p *Parser) Analysis() *ll.LLAnalysis {
	return p.ga
}

// buildTable derives the predict table from the FIRST-sets. Productions are visited
// in serial order, so the primary entry of every cell is the first production in
// declaration order. A secondary entry marks a choice the lookahead does not decide.
func (p *Parser) buildTable() {
	p.ntIndex = make(map[string]int)
	for _, A := range p.g.NonTerminals() {
		p.ntIndex[A] = len(p.ntIndex)
	}
	p.g.EachProduction(func(r *ll.Production) {
		if _, ok := p.ntIndex[r.Head]; !ok {
			p.ntIndex[r.Head] = len(p.ntIndex)
		}
	})
	p.termIndex = make(map[string]int)
	for _, t := range p.g.Terminals() {
		if t != ll.Epsilon {
			p.termIndex[t] = len(p.termIndex)
		}
	}
	p.table = sparse.NewIntMatrix(len(p.ntIndex), len(p.termIndex), sparse.DefaultNullValue)
	p.epsilonAlt = make([]int32, len(p.ntIndex))
	for i := range p.epsilonAlt {
		p.epsilonAlt[i] = -1
	}
	p.g.EachProduction(func(r *ll.Production) {
		row := p.ntIndex[r.Head]
		for _, t := range p.ga.First(r) {
			if t == ll.Epsilon {
				if p.epsilonAlt[row] < 0 {
					p.epsilonAlt[row] = int32(r.Serial)
				}
				continue
			}
			if col, ok := p.termIndex[t]; ok {
				p.table.Add(row, col, int32(r.Serial))
			}
		}
	})
	p.table.Each(func(i, j int, a, b int32) {
		if b != p.table.NullValue() {
			tracer().Debugf("lookahead does not decide between %v and %v", p.g.Rule(int(a)),
				p.g.Rule(int(b)))
		}
	})
	tracer().Debugf("predict table for %s: %v", p.g.Name, p.table)
}

// Parse parses a sequence of terminals, starting with the root non-terminal of the
// grammar. It returns the parse tree or a *ParseError. There is no partial result
// on failure.
func (p *Parser) Parse(input []string) (*ptree.Tree, error) {
	run := &parseRun{
		p:      p,
		input:  input,
		b:      ptree.NewBuilder(),
		active: make(map[activation]bool),
	}
	pos, err := run.matchNonTerminal(0, p.g.Root(), ptree.NoParent, nil, 0)
	if err != nil {
		tracer().Infof("parse failed: %v", err)
		return nil, err
	}
	if pos < len(input) {
		if p.requireFullInput {
			err := &ParseError{
				Kind:        TrailingInput,
				NonTerminal: p.g.Root(),
				Position:    pos,
				Lookahead:   input[pos],
			}
			tracer().Infof("parse failed: %v", err)
			return nil, err
		}
		tracer().Infof("ignoring %d trailing input terminal(s), starting with %q", len(input)-pos,
			input[pos])
	}
	return run.b.Tree(), nil
}

// ParseTokens reads tokens from a tokenizer up to EOF, names them with namer and
// parses the resulting terminals. If namer is nil, tokens are named by their lexeme.
func (p *Parser) ParseTokens(tokenizer scanner.Tokenizer, namer scanner.TerminalNamer) (*ptree.Tree, error) {
	input, _, err := scanner.Terminals(tokenizer, namer)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return p.Parse(input)
}

// --- Parse runs ------------------------------------------------------------

// parseRun holds the state of a single call to Parse.
type parseRun struct {
	p      *Parser
	input  []string
	b      *ptree.Builder
	active map[activation]bool // expansions in progress
}

// activation is an expansion of a non-terminal at an input position.
type activation struct {
	nonterm string
	pos     int
}

// followCtx is the chain of body remainders of the expansions in progress, from
// the innermost outwards. The end of the chain stands for the end of input.
type followCtx struct {
	rest []string
	up   *followCtx
}

func (run *parseRun) lookahead(pos int) (string, bool) {
	if pos < len(run.input) {
		return run.input[pos], true
	}
	return "", false
}

// matchNonTerminal expands non-terminal A at input position pos. It appends the
// nodes of the expansion to the tree under construction and returns the input
// position after the expansion.
func (run *parseRun) matchNonTerminal(pos int, A string, parent int, follow *followCtx,
	depth int) (int, error) {
	//
	if run.p.maxDepth > 0 && depth > run.p.maxDepth {
		return pos, run.failure(DepthExceeded, A, nil, pos, nil)
	}
	act := activation{nonterm: A, pos: pos}
	if run.active[act] {
		return pos, run.failure(LeftRecursion, A, nil, pos, nil)
	}
	run.active[act] = true
	defer delete(run.active, act)
	//
	node := run.b.Open(A, parent, -1, uint64(pos))
	prod, err := run.predict(A, pos, follow)
	if err != nil {
		return pos, err
	}
	run.b.SetRule(node, prod.Serial)
	tracer().Debugf("%3d: %s%v", pos, indent(depth), prod)
	if prod.IsEpsilon() {
		run.b.Epsilon(node, uint64(pos))
		run.b.Close(node, uint64(pos))
		return pos, nil
	}
	for i, sym := range prod.Body {
		if sym == ll.Epsilon {
			continue
		}
		if run.p.g.IsTerminal(sym) {
			if la, ok := run.lookahead(pos); !ok || la != sym {
				return pos, run.failure(TerminalMismatch, A, prod, pos, []string{sym})
			}
			run.b.Terminal(sym, node, uint64(pos))
			pos++
			continue
		}
		ctx := &followCtx{rest: prod.Body[i+1:], up: follow}
		if pos, err = run.matchNonTerminal(pos, sym, node, ctx, depth+1); err != nil {
			return pos, err
		}
	}
	run.b.Close(node, uint64(pos))
	return pos, nil
}

// predict selects the production to expand for A. The first production in
// declaration order with the lookahead in its FIRST-set wins. Otherwise the
// first production with epsilon in its FIRST-set is taken, if a derivation of its
// body or the expansions in progress may continue with the lookahead.
func (run *parseRun) predict(A string, pos int, follow *followCtx) (*ll.Production, error) {
	row, ok := run.p.ntIndex[A]
	if !ok {
		return nil, run.failure(NoApplicableProduction, A, nil, pos, nil)
	}
	la, hasLookahead := run.lookahead(pos)
	if hasLookahead {
		if col, ok := run.p.termIndex[la]; ok {
			if s := run.p.table.Value(row, col); s != run.p.table.NullValue() {
				return run.p.g.Rule(int(s)), nil
			}
		}
	}
	if e := run.p.epsilonAlt[row]; e >= 0 {
		prod := run.p.g.Rule(int(e))
		if !hasLookahead || run.mayFollow(la, pos, &followCtx{rest: prod.Body, up: follow}) {
			return prod, nil
		}
		tracer().Debugf("%3d: %q cannot follow %s, epsilon alternative rejected", pos, la, A)
	}
	expected, _ := run.p.ga.SequenceFirst([]string{A})
	return nil, run.failure(NoApplicableProduction, A, nil, pos, expected)
}

// mayFollow checks if terminal la may come next, given the chain of body
// remainders starting with the candidate production's body. If all of them may
// derive the empty string,
// la is trailing input. Trailing input is accepted here only if something has
// been consumed before; an input consisting of trailing input only is rejected.
func (run *parseRun) mayFollow(la string, pos int, follow *followCtx) bool {
	for f := follow; f != nil; f = f.up {
		starts, nullable := run.p.ga.SequenceStartsWith(f.rest, la)
		if starts {
			return true
		}
		if !nullable {
			return false
		}
	}
	return pos > 0
}

func (run *parseRun) failure(kind Kind, A string, prod *ll.Production, pos int,
	expected []string) *ParseError {
	//
	la, ok := run.lookahead(pos)
	return &ParseError{
		Kind:        kind,
		NonTerminal: A,
		Production:  prod,
		Position:    pos,
		Lookahead:   la,
		AtEnd:       !ok,
		Expected:    expected,
	}
}

func indent(depth int) string {
	const dots = ". . . . . . . . . . . . . . . . . . . . "
	if 2*depth > len(dots) {
		return dots
	}
	return dots[:2*depth]
}
