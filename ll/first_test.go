package ll

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func prefixGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Prefix")
	b.LHS("S").T("+").N("S").N("S").End()
	b.LHS("S").T("-").N("S").N("S").End()
	b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func parensGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Parens")
	b.LHS("S").T("(").N("S").T(")").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFirstPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	ga, err := Analysis(prefixGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	for i, expected := range []string{"+", "-", "a"} {
		F := ga.First(ga.Grammar().Rule(i))
		if !reflect.DeepEqual(F, []string{expected}) {
			t.Errorf("expected FIRST(#%d) = {%s}, is %v", i, expected, F)
		}
	}
	if !reflect.DeepEqual(ga.FirstOf("S"), []string{"+", "-", "a"}) {
		t.Errorf("expected FIRST(S) = {+,-,a}, is %v", ga.FirstOf("S"))
	}
	if ga.Nullable("S") {
		t.Errorf("expected S not to be nullable")
	}
}

func TestFirstParens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	ga, err := Analysis(parensGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	g := ga.Grammar()
	if !ga.FirstContains(g.Rule(0), "(") || ga.FirstContains(g.Rule(0), Epsilon) {
		t.Errorf("expected FIRST(#0) = {(}, is %v", ga.First(g.Rule(0)))
	}
	if !reflect.DeepEqual(ga.First(g.Rule(1)), []string{Epsilon}) {
		t.Errorf("expected FIRST(#1) = {ε}, is %v", ga.First(g.Rule(1)))
	}
	if !ga.Nullable("S") {
		t.Errorf("expected S to be nullable")
	}
	if ga.First(nil) != nil || ga.FirstContains(nil, "(") {
		t.Errorf("expected no FIRST set for nil production")
	}
}

// E ➞ E + T | T
// T ➞ id
func TestFirstLeftRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("LeftRec")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("id").End()
	g, _ := b.Grammar()
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Size(); i++ {
		if !reflect.DeepEqual(ga.First(g.Rule(i)), []string{"id"}) {
			t.Errorf("expected FIRST(%v) = {id}, is %v", g.Rule(i), ga.First(g.Rule(i)))
		}
	}
}

// A ➞ B x
// B ➞ A y | z
func TestFirstMutualRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Mutual")
	b.LHS("A").N("B").T("x").End()
	b.LHS("B").N("A").T("y").End()
	b.LHS("B").T("z").End()
	g, _ := b.Grammar()
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ga.FirstOf("A"), []string{"z"}) {
		t.Errorf("expected FIRST(A) = {z}, is %v", ga.FirstOf("A"))
	}
	if !reflect.DeepEqual(ga.First(g.Rule(1)), []string{"z"}) {
		t.Errorf("expected FIRST(B ➞ A y) = {z}, is %v", ga.First(g.Rule(1)))
	}
}

// S ➞ A B c
// A ➞ a | ε
// B ➞ b | ε
func TestFirstNullableSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Nullable")
	b.LHS("S").N("A").N("B").T("c").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	g, _ := b.Grammar()
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ga.FirstOf("S"), []string{Epsilon, "a"}) {
		t.Errorf("expected FIRST(S) = {ε,a}, is %v", ga.FirstOf("S"))
	}
	if ga.Nullable("S") || !ga.Nullable("A") {
		t.Errorf("expected A to be nullable, S not")
	}
	F, nullable := ga.SequenceFirst([]string{"A", "B"})
	if !reflect.DeepEqual(F, []string{"a", "b"}) || !nullable {
		t.Errorf("expected FIRST(A B) = {a,b} and nullable, is %v / %v", F, nullable)
	}
	if starts, _ := ga.SequenceStartsWith([]string{"A", "B", "c"}, "c"); !starts {
		t.Errorf("expected A B c to possibly start with c")
	}
	starts, nullable := ga.SequenceStartsWith([]string{"A", "B"}, "c")
	if starts || !nullable {
		t.Errorf("expected A B not to start with c, but to be nullable")
	}
}

// S ➞ A x | x y
// A ➞ ε
func TestFirstLeadingNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Leading")
	b.LHS("S").N("A").T("x").End()
	b.LHS("S").T("x").T("y").End()
	b.LHS("A").Epsilon()
	g, _ := b.Grammar()
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ga.First(g.Rule(0)), []string{Epsilon}) {
		t.Errorf("expected FIRST(S ➞ A x) = {ε}, is %v", ga.First(g.Rule(0)))
	}
	if !reflect.DeepEqual(ga.First(g.Rule(1)), []string{"x"}) {
		t.Errorf("expected FIRST(S ➞ x y) = {x}, is %v", ga.First(g.Rule(1)))
	}
	F, nullable := ga.SequenceFirst([]string{"S"})
	if !reflect.DeepEqual(F, []string{"x"}) || nullable {
		t.Errorf("expected S to start with x and not to be nullable, is %v / %v", F, nullable)
	}
}

func TestUndefinedNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	prods := []Production{
		{Head: "S", Body: []string{"a", "X"}},
		{Head: "U", Body: []string{"Y"}},
	}
	g := NewGrammar("G", []string{"a"}, []string{"S", "X", "U", "Y"}, prods, "S")
	if _, err := Analysis(g); !errors.Is(err, ErrUndefinedNonTerminal) {
		t.Errorf("expected X to be reported as undefined, err = %v", err)
	}
	prods[0].Body = []string{"a"}
	g = NewGrammar("G", []string{"a"}, []string{"S", "U", "Y"}, prods, "S")
	ga, err := Analysis(g)
	if err != nil {
		t.Fatalf("expected unreachable Y to be tolerated, err = %v", err)
	}
	if len(ga.First(g.Rule(1))) != 0 {
		t.Errorf("expected FIRST(U ➞ Y) to be empty, is %v", ga.First(g.Rule(1)))
	}
	if _, err := Analysis(nil); !errors.Is(err, ErrNoRoot) {
		t.Errorf("expected nil grammar to be rejected")
	}
}
