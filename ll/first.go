package ll

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// LLAnalysis holds the results of the static analysis of a grammar: the FIRST-set
// of every production and of every non-terminal. It is created once by Analysis
// and is read-only afterwards.
//
// The FIRST-set of a production looks at the first symbol of its body only. If
// that is a non-terminal X, the production inherits the FIRST-sets of all of X's
// productions, Epsilon included. Epsilon in FIRST(p) therefore means that p may
// start with an empty derivation. Independent of that, the analysis tracks which
// terminals a derivation of a non-terminal may actually start with and whether it
// may derive the empty string (see Nullable and SequenceFirst).
type LLAnalysis struct {
	g       *Grammar
	first   []*treeset.Set          // FIRST per production, indexed by serial number
	ntFirst map[string]*treeset.Set // FIRST per non-terminal
	lead    map[string]*treeset.Set // leading terminals per non-terminal, Epsilon if nullable
}

// Analysis analyses a grammar. It checks that every non-terminal reachable from
// the root has productions, then computes FIRST-sets by fixed-point iteration:
// all sets start empty and every production is re-evaluated until no set changes.
// As sets only grow and are bounded by the terminals, this terminates for
// every grammar, including (mutually) left-recursive ones.
func Analysis(g *Grammar) (*LLAnalysis, error) {
	if g == nil || g.root == "" {
		return nil, ErrNoRoot
	}
	if err := checkDerivable(g); err != nil {
		tracer().Errorf("%s", err.Error())
		return nil, err
	}
	ga := &LLAnalysis{
		g:       g,
		first:   make([]*treeset.Set, len(g.rules)),
		ntFirst: make(map[string]*treeset.Set, len(g.byHead)),
		lead:    make(map[string]*treeset.Set, len(g.byHead)),
	}
	ga.computeFirstSets()
	return ga, nil
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// checkDerivable walks all non-terminals reachable from the root and
// reports the first one without productions.
func checkDerivable(g *Grammar) error {
	if len(g.byHead[g.root]) == 0 {
		return fmt.Errorf("%w: root %q", ErrUndefinedNonTerminal, g.root)
	}
	seen := map[string]bool{g.root: true}
	queue := []string{g.root}
	for len(queue) > 0 {
		A := queue[0]
		queue = queue[1:]
		for _, p := range g.byHead[A] {
			for _, sym := range p.Body {
				if g.IsTerminal(sym) || seen[sym] {
					continue
				}
				if len(g.byHead[sym]) == 0 {
					return fmt.Errorf("%w: %q, referenced by %v", ErrUndefinedNonTerminal, sym, p)
				}
				seen[sym] = true
				queue = append(queue, sym)
			}
		}
	}
	return nil
}

func (ga *LLAnalysis) computeFirstSets() {
	for _, p := range ga.g.rules {
		ga.first[p.Serial] = treeset.NewWithStringComparator()
		if _, ok := ga.ntFirst[p.Head]; !ok {
			ga.ntFirst[p.Head] = treeset.NewWithStringComparator()
			ga.lead[p.Head] = treeset.NewWithStringComparator()
		}
	}
	iterations := 0
	for {
		more := false
		for _, p := range ga.g.rules {
			more = grows(ga.first[p.Serial], func(F *treeset.Set) { ga.bodyFirst(p.Body, F) }) || more
			F := ga.first[p.Serial]
			more = grows(ga.ntFirst[p.Head], func(N *treeset.Set) { N.Add(F.Values()...) }) || more
			more = grows(ga.lead[p.Head], func(L *treeset.Set) { ga.sequenceFirst(p.Body, L) }) || more
		}
		iterations++
		if !more {
			break
		}
	}
	tracer().Debugf("FIRST sets of %s stable after %d iterations", ga.g.Name, iterations)
	for _, p := range ga.g.rules {
		tracer().Debugf("FIRST(%v) = %v", p, ga.First(p))
	}
}

// grows applies add to set and reports whether the set got larger.
func grows(set *treeset.Set, add func(*treeset.Set)) bool {
	size := set.Size()
	add(set)
	return set.Size() != size
}

// bodyFirst adds the FIRST-set of a production body to set. A terminal or Epsilon
// in first position stands for itself, a non-terminal contributes the FIRST-sets of
// all its productions.
func (ga *LLAnalysis) bodyFirst(body []string, set *treeset.Set) {
	switch {
	case len(body) == 0:
		set.Add(Epsilon)
	case body[0] == Epsilon || ga.g.IsTerminal(body[0]):
		set.Add(body[0])
	default:
		if F, ok := ga.ntFirst[body[0]]; ok { // unreachable and undefined: derives nothing
			set.Add(F.Values()...)
		}
	}
}

// sequenceFirst adds the terminals a derivation of symbols may start with to set.
// A terminal contributes itself and ends the sequence; a non-terminal contributes
// its leading terminals and ends the sequence unless it is nullable. If the whole
// sequence is nullable, Epsilon is added.
func (ga *LLAnalysis) sequenceFirst(symbols []string, set *treeset.Set) {
	for _, sym := range symbols {
		if sym == Epsilon {
			continue
		}
		if ga.g.IsTerminal(sym) {
			set.Add(sym)
			return
		}
		L, ok := ga.lead[sym]
		if !ok {
			return
		}
		nullable := false
		for _, t := range L.Values() {
			if t == Epsilon {
				nullable = true
				continue
			}
			set.Add(t)
		}
		if !nullable {
			return
		}
	}
	set.Add(Epsilon)
}

// First returns the FIRST-set of a production, in sorted order. Epsilon, if
// present, is the first element.
func (ga *LLAnalysis) First(p *Production) []string {
	if p == nil || p.Serial < 0 || p.Serial >= len(ga.first) {
		return nil
	}
	return stringsOf(ga.first[p.Serial].Values())
}

// FirstContains is a predicate: is terminal t (or Epsilon) in FIRST(p)?
func (ga *LLAnalysis) FirstContains(p *Production, t string) bool {
	if p == nil || p.Serial < 0 || p.Serial >= len(ga.first) {
		return false
	}
	return ga.first[p.Serial].Contains(t)
}

// FirstOf returns the FIRST-set of a non-terminal, i.e. the union of the
// FIRST-sets of its productions.
func (ga *LLAnalysis) FirstOf(A string) []string {
	if F, ok := ga.ntFirst[A]; ok {
		return stringsOf(F.Values())
	}
	return nil
}

// Nullable is true if non-terminal A may derive the empty string.
func (ga *LLAnalysis) Nullable(A string) bool {
	if F, ok := ga.lead[A]; ok {
		return F.Contains(Epsilon)
	}
	return false
}

// SequenceFirst returns the terminals a derivation of symbols may start with and a
// flag telling whether the whole sequence may derive the empty string.
func (ga *LLAnalysis) SequenceFirst(symbols []string) ([]string, bool) {
	set := treeset.NewWithStringComparator()
	ga.sequenceFirst(symbols, set)
	nullable := set.Contains(Epsilon)
	set.Remove(Epsilon)
	return stringsOf(set.Values()), nullable
}

// SequenceStartsWith checks if a derivation of symbols may start with terminal t.
// If it may not, nullable tells whether the whole sequence may derive the empty
// string, i.e. whether t might come from whatever follows the sequence.
func (ga *LLAnalysis) SequenceStartsWith(symbols []string, t string) (starts bool, nullable bool) {
	for _, sym := range symbols {
		if sym == Epsilon {
			continue
		}
		if ga.g.IsTerminal(sym) {
			return sym == t, false
		}
		F, ok := ga.lead[sym]
		if !ok {
			return false, false
		}
		if t != Epsilon && F.Contains(t) {
			return true, false
		}
		if !F.Contains(Epsilon) {
			return false, false
		}
	}
	return false, true
}
