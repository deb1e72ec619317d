package ptree

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildPrefix builds a tree for a prefix expression over S ➞ + S S | - S S | a,
// the way a predictive parser would.
func buildPrefix(b *Builder, input []string, pos int, parent int) int {
	sym := input[pos]
	rule := map[string]int{"+": 0, "-": 1, "a": 2}[sym]
	n := b.Open("S", parent, rule, uint64(pos))
	b.Terminal(sym, n, uint64(pos))
	pos++
	if sym != "a" {
		pos = buildPrefix(b, input, pos, n)
		pos = buildPrefix(b, input, pos, n)
	}
	b.Close(n, uint64(pos))
	return pos
}

func prefixTree(input ...string) *Tree {
	b := NewBuilder()
	buildPrefix(b, input, 0, NoParent)
	return b.Tree()
}

func TestTreeStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	tree := prefixTree("-", "a", "a")
	t.Logf("\n%s", tree)
	if tree.Len() != 6 || tree.Root() != 0 {
		t.Fatalf("expected 6 nodes with root #0, have %d", tree.Len())
	}
	root := tree.Node(0)
	if root.Symbol != "S" || root.Parent != NoParent || root.Rule != 1 {
		t.Errorf("unexpected root node %v", root)
	}
	if !reflect.DeepEqual(root.Matched, []string{"-", "a", "a"}) {
		t.Errorf("expected root to match - a a, matches %v", root.Matched)
	}
	if !reflect.DeepEqual(tree.Children(0), []int{1, 2, 4}) {
		t.Errorf("expected children of root to be [1 2 4], are %v", tree.Children(0))
	}
	if tree.Depth(5) != 2 || tree.Parent(5) != 4 {
		t.Errorf("expected node #5 at depth 2 below #4, is at %d below #%d", tree.Depth(5),
			tree.Parent(5))
	}
	if tree.Node(4).Span.From() != 2 || tree.Node(4).Span.To() != 3 {
		t.Errorf("expected node #4 to span (2…3), spans %v", tree.Node(4).Span)
	}
	if root.Span.From() != 0 || root.Span.To() != 3 {
		t.Errorf("expected root to span (0…3), spans %v", root.Span)
	}
	if !reflect.DeepEqual(tree.Terminals(), []string{"-", "a", "a"}) {
		t.Errorf("expected terminals - a a, have %v", tree.Terminals())
	}
}

func TestTreeEpsilonLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewBuilder()
	r := b.Open("S", NoParent, 0, 0)
	b.Terminal("(", r, 0)
	inner := b.Open("S", r, 1, 1)
	e := b.Epsilon(inner, 1)
	b.Close(inner, 1)
	b.Terminal(")", r, 1)
	b.Close(r, 2)
	tree := b.Tree()
	if !tree.Node(e).IsEpsilon() || !reflect.DeepEqual(tree.Node(e).Matched, []string{""}) {
		t.Errorf("expected node #%d to be an epsilon leaf, is %v", e, tree.Node(e))
	}
	if len(tree.Node(inner).Matched) != 0 {
		t.Errorf("expected epsilon expansion to match nothing, matches %v", tree.Node(inner).Matched)
	}
	if !reflect.DeepEqual(tree.Terminals(), []string{"(", ")"}) {
		t.Errorf("expected epsilon to be excluded from terminals, have %v", tree.Terminals())
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	f1, err1 := prefixTree("+", "a", "a").Fingerprint()
	f2, err2 := prefixTree("+", "a", "a").Fingerprint()
	f3, err3 := prefixTree("-", "a", "a").Fingerprint()
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("fingerprinting failed: %v %v %v", err1, err2, err3)
	}
	if f1 != f2 {
		t.Errorf("expected identical trees to have identical fingerprints")
	}
	if f1 == f3 {
		t.Errorf("expected different trees to have different fingerprints")
	}
}

func TestCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	tree := prefixTree("-", "a", "+", "a", "a")
	c := tree.SetCursor(-1)
	if c.Node() != 0 {
		t.Fatalf("expected cursor at root, is at #%d", c.Node())
	}
	if _, ok := c.Up(); ok {
		t.Errorf("expected root to have no parent")
	}
	c.Down()
	c.Sibling()
	n, ok := c.Sibling()
	if !ok || !reflect.DeepEqual(tree.Node(n).Matched, []string{"+", "a", "a"}) {
		t.Errorf("expected third child of root to match + a a, is %v", tree.Node(n))
	}
	if _, ok := c.Sibling(); ok {
		t.Errorf("expected root to have 3 children only")
	}
	if n, _ = c.Up(); n != 0 {
		t.Errorf("expected to be back at root, am at #%d", n)
	}
	if (&Tree{}).SetCursor(0) != nil {
		t.Errorf("expected no cursor for empty tree")
	}
}

// evaluator computes the value of a prefix expression, with a = 1.
type evaluator struct {
	trace []string
}

func (ev *evaluator) EnterRule(sym string, ctxt RuleCtxt) bool {
	ev.trace = append(ev.trace, strings.Repeat(">", ctxt.Level+1)+sym)
	return true
}

func (ev *evaluator) ExitRule(sym string, children []interface{}, ctxt RuleCtxt) interface{} {
	if len(children) == 1 {
		return children[0]
	}
	l, r := children[1].(int), children[2].(int)
	if children[0].(string) == "+" {
		return l + r
	}
	return l - r
}

func (ev *evaluator) Terminal(sym string, ctxt RuleCtxt) interface{} {
	if sym == "a" {
		return 1
	}
	return sym
}

func TestTopDownEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	tree := prefixTree("-", "a", "+", "a", "a")
	ev := &evaluator{}
	v := tree.SetCursor(0).TopDown(ev)
	if v != -1 {
		t.Errorf("expected - a + a a to evaluate to -1, is %v", v)
	}
	if len(ev.trace) != 5 || ev.trace[2] != ">>S" || ev.trace[4] != ">>>S" {
		t.Errorf("unexpected enter sequence %v", ev.trace)
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	ll := prefixTree("+", "a", "a").LeveledList()
	if len(ll) != 6 {
		t.Fatalf("expected 6 list items, have %d", len(ll))
	}
	if ll[0].Level != 0 || ll[3].Level != 2 {
		t.Errorf("expected levels to equal node depths, have %v", ll)
	}
	if !strings.HasPrefix(ll[0].Text, "S(0…3)") {
		t.Errorf("expected root item to be S(0…3), is %q", ll[0].Text)
	}
}
