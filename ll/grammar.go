package ll

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
)

// Epsilon is the marker for an empty derivation. It is never a real input symbol.
const Epsilon = ""

// Errors for malformed grammars. Analysis and the grammar builder wrap these.
var (
	ErrNoRoot               = errors.New("grammar has no root non-terminal")
	ErrUndefinedNonTerminal = errors.New("non-terminal has no productions")
	ErrMalformedProduction  = errors.New("malformed production")
)

// --- Productions -----------------------------------------------------------

// Production is a rewrite rule Head ➞ Body. A body of [Epsilon] denotes an empty
// derivation. Serial and Alt are assigned by the grammar: Serial is the position
// within the grammar's productions, Alt the position within the productions
// for Head.
type Production struct {
	Head   string
	Body   []string
	Serial int
	Alt    int
}

// IsEpsilon is true for productions deriving the empty string directly.
func (p *Production) IsEpsilon() bool {
	return len(p.Body) == 0 || (len(p.Body) == 1 && p.Body[0] == Epsilon)
}

func (p *Production) String() string {
	var b bytes.Buffer
	b.WriteString(p.Head)
	b.WriteString(" ➞")
	if p.IsEpsilon() {
		b.WriteString(" ε")
		return b.String()
	}
	for _, sym := range p.Body {
		b.WriteString(" ")
		b.WriteString(sym)
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an immutable container for terminals, non-terminals, productions and
// the root symbol. It indexes productions by their head, preserving declaration
// order; parsers rely on this order for deterministic choices.
type Grammar struct {
	Name         string
	terminals    []string
	nonterminals []string
	termSet      map[string]struct{}
	rules        []*Production
	root         string
	byHead       map[string][]*Production
}

// NewGrammar creates a grammar. Productions are copied and numbered.
// No validation is performed: a non-terminal without productions will be
// reported by Analysis.
func NewGrammar(name string, terminals, nonterminals []string, productions []Production,
	root string) *Grammar {
	//
	g := &Grammar{
		Name:         name,
		terminals:    append([]string(nil), terminals...),
		nonterminals: append([]string(nil), nonterminals...),
		termSet:      make(map[string]struct{}, len(terminals)),
		rules:        make([]*Production, len(productions)),
		root:         root,
		byHead:       make(map[string][]*Production),
	}
	for _, t := range terminals {
		g.termSet[t] = struct{}{}
	}
	for i, p := range productions {
		r := &Production{
			Head:   p.Head,
			Body:   append([]string(nil), p.Body...),
			Serial: i,
			Alt:    len(g.byHead[p.Head]),
		}
		g.rules[i] = r
		g.byHead[p.Head] = append(g.byHead[p.Head], r)
	}
	tracer().Debugf("grammar %s has %d productions for %d non-terminals", name,
		len(g.rules), len(g.byHead))
	return g
}

// Root returns the root non-terminal.
func (g *Grammar) Root() string {
	return g.root
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the production with serial number n, or nil.
func (g *Grammar) Rule(n int) *Production {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Productions returns the productions for a non-terminal, in declaration order.
// Clients must not modify the returned slice.
func (g *Grammar) Productions(head string) []*Production {
	return g.byHead[head]
}

// Terminals returns a copy of the terminals of the grammar.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terminals...)
}

// NonTerminals returns a copy of the non-terminals of the grammar.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.nonterminals...)
}

// IsTerminal is true for declared terminals and for the epsilon marker.
func (g *Grammar) IsTerminal(sym string) bool {
	if sym == Epsilon {
		return true
	}
	_, ok := g.termSet[sym]
	return ok
}

// IsNonTerminal is true for every symbol which is not a terminal.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return !g.IsTerminal(sym)
}

// EachProduction calls f for every production, in declaration order.
func (g *Grammar) EachProduction(f func(p *Production)) {
	for _, p := range g.rules {
		f(p)
	}
}

// Dump is a debugging helper, tracing all productions.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, root = %s ---------------", g.Name, g.root)
	for _, p := range g.rules {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------")
}

// grammarSignature is the hashable projection of a grammar.
type grammarSignature struct {
	Name         string
	Root         string
	Terminals    []string
	NonTerminals []string
	Heads        []string
	Bodies       [][]string
}

// Hash returns a fingerprint of the grammar's structure. Grammars with identical
// symbols, productions (in identical order) and root have identical hashes.
func (g *Grammar) Hash() (string, error) {
	sig := grammarSignature{
		Name:         g.Name,
		Root:         g.root,
		Terminals:    g.terminals,
		NonTerminals: g.nonterminals,
		Heads:        make([]string, len(g.rules)),
		Bodies:       make([][]string, len(g.rules)),
	}
	for i, p := range g.rules {
		sig.Heads[i] = p.Head
		sig.Bodies[i] = p.Body
	}
	return structhash.Hash(sig, 1)
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a helper object to construct grammars rule by rule.
// The first non-terminal introduced with LHS becomes the root of the grammar.
//
//    b := NewGrammarBuilder("Parens")
//    b.LHS("S").T("(").N("S").T(")").End()
//    b.LHS("S").Epsilon()
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name         string
	rules        []*Production
	terminals    *arraylist.List
	nonterminals *arraylist.List
	err          error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:         gname,
		terminals:    arraylist.New(),
		nonterminals: arraylist.New(),
	}
}

// RuleBuilder collects the body of a production. It is returned by LHS.
type RuleBuilder struct {
	gb   *GrammarBuilder
	head string
	body []string
}

// LHS starts a new production for non-terminal head.
func (gb *GrammarBuilder) LHS(head string) *RuleBuilder {
	gb.nonterminal(head)
	return &RuleBuilder{gb: gb, head: head}
}

// N appends a non-terminal to the body.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	if name == Epsilon {
		rb.gb.fail(fmt.Errorf("%w: epsilon used as non-terminal in body of %s", ErrMalformedProduction,
			rb.head))
		return rb
	}
	rb.gb.nonterminal(name)
	rb.body = append(rb.body, name)
	return rb
}

// T appends a terminal to the body.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	if name == Epsilon {
		rb.gb.fail(fmt.Errorf("%w: epsilon used as terminal in body of %s", ErrMalformedProduction,
			rb.head))
		return rb
	}
	rb.gb.terminal(name)
	rb.body = append(rb.body, name)
	return rb
}

// End completes the production. The returned production is the builder's record;
// its serial number is the one it will have in the grammar.
func (rb *RuleBuilder) End() *Production {
	if len(rb.body) == 0 {
		rb.gb.fail(fmt.Errorf("%w: %s has an empty body, use Epsilon()", ErrMalformedProduction,
			rb.head))
	}
	return rb.gb.add(rb.head, rb.body)
}

// Epsilon completes an epsilon-production head ➞ ε. Symbols collected before
// are an error.
func (rb *RuleBuilder) Epsilon() *Production {
	if len(rb.body) > 0 {
		rb.gb.fail(fmt.Errorf("%w: epsilon after symbols in body of %s", ErrMalformedProduction,
			rb.head))
	}
	return rb.gb.add(rb.head, []string{Epsilon})
}

func (gb *GrammarBuilder) add(head string, body []string) *Production {
	p := &Production{Head: head, Body: body, Serial: len(gb.rules)}
	for _, r := range gb.rules {
		if r.Head == head {
			p.Alt++
		}
	}
	gb.rules = append(gb.rules, p)
	tracer().Debugf("builder %s: %3d: %s", gb.name, p.Serial, p)
	return p
}

func (gb *GrammarBuilder) terminal(name string) {
	if gb.nonterminals.Contains(name) {
		gb.fail(fmt.Errorf("%w: symbol %q used as terminal and as non-terminal",
			ErrMalformedProduction, name))
		return
	}
	if !gb.terminals.Contains(name) {
		gb.terminals.Add(name)
	}
}

func (gb *GrammarBuilder) nonterminal(name string) {
	if gb.terminals.Contains(name) {
		gb.fail(fmt.Errorf("%w: symbol %q used as terminal and as non-terminal",
			ErrMalformedProduction, name))
		return
	}
	if !gb.nonterminals.Contains(name) {
		gb.nonterminals.Add(name)
	}
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf("%s", err.Error())
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far, or the first error encountered while
// building it.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("%w: grammar %s has no productions", ErrNoRoot, gb.name)
	}
	prods := make([]Production, len(gb.rules))
	for i, r := range gb.rules {
		prods[i] = *r
	}
	return NewGrammar(gb.name, stringsOf(gb.terminals.Values()), stringsOf(gb.nonterminals.Values()),
		prods, gb.rules[0].Head), nil
}

func stringsOf(values []interface{}) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.(string)
	}
	return s
}
