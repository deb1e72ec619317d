package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderNumbersProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Prefix")
	b.LHS("S").T("+").N("S").N("S").End()
	b.LHS("S").T("-").N("S").N("S").End()
	r := b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Root() != "S" {
		t.Errorf("expected root S, is %q", g.Root())
	}
	if g.Size() != 3 || r.Serial != 2 || r.Alt != 2 {
		t.Errorf("expected 3 productions, last one #2/alt 2, have %d, #%d/alt %d", g.Size(),
			r.Serial, r.Alt)
	}
	if len(g.Productions("S")) != 3 || g.Productions("S")[1].Body[0] != "-" {
		t.Errorf("expected productions for S in declaration order, are %v", g.Productions("S"))
	}
	if !g.IsTerminal("a") || !g.IsNonTerminal("S") || !g.IsTerminal(Epsilon) {
		t.Errorf("symbol classification broken")
	}
	if len(g.Terminals()) != 3 || len(g.NonTerminals()) != 1 {
		t.Errorf("expected 3 terminals and 1 non-terminal, have %v and %v", g.Terminals(),
			g.NonTerminals())
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("empty")
	if _, err := b.Grammar(); !errors.Is(err, ErrNoRoot) {
		t.Errorf("expected empty grammar to have no root, err = %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedProduction) {
		t.Errorf("expected production without symbols to be rejected, err = %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("x").Epsilon()
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedProduction) {
		t.Errorf("expected epsilon after symbols to be rejected, err = %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a").N(Epsilon).End()
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedProduction) {
		t.Errorf("expected epsilon inside a longer body to be rejected, err = %v", err)
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("S").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedProduction) {
		t.Errorf("expected S as terminal and non-terminal to be rejected, err = %v", err)
	}
}

func TestNewGrammarKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	prods := []Production{
		{Head: "S", Body: []string{"(", "S", ")"}},
		{Head: "S", Body: []string{Epsilon}},
	}
	g := NewGrammar("Parens", []string{"(", ")"}, []string{"S"}, prods, "S")
	prods[0].Body[0] = "["
	if g.Rule(0).Body[0] != "(" {
		t.Errorf("expected grammar to copy production bodies")
	}
	if !g.Rule(1).IsEpsilon() || g.Rule(1).Alt != 1 {
		t.Errorf("expected rule #1 to be epsilon alternative 1, is %v", g.Rule(1))
	}
	if g.Rule(1).String() != "S ➞ ε" {
		t.Errorf("unexpected string for epsilon production: %q", g.Rule(1).String())
	}
	if g.Rule(2) != nil || g.Rule(-1) != nil {
		t.Errorf("expected out of range rules to be nil")
	}
	cnt := 0
	g.EachProduction(func(p *Production) { cnt++ })
	if cnt != 2 {
		t.Errorf("expected to visit 2 productions, visited %d", cnt)
	}
}

func TestGrammarHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	build := func(last string) *Grammar {
		b := NewGrammarBuilder("G")
		b.LHS("S").T("(").N("S").T(last).End()
		b.LHS("S").Epsilon()
		g, err := b.Grammar()
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	h1, err1 := build(")").Hash()
	h2, err2 := build(")").Hash()
	h3, err3 := build("]").Hash()
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("hashing failed: %v, %v, %v", err1, err2, err3)
	}
	if h1 != h2 {
		t.Errorf("expected identical grammars to have identical hashes")
	}
	if h1 == h3 {
		t.Errorf("expected different grammars to have different hashes")
	}
}
