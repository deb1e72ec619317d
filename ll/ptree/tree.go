package ptree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/topdown"
)

// NoParent is the parent index of a tree's root node.
const NoParent = -1

// Node is a node of a parse tree. Non-terminal nodes carry the serial number of the
// production which has been expanded for them, leaves carry Rule = -1.
//
// Matched holds the terminals a node derived, in input order. For a terminal leaf
// this is the terminal itself, for an epsilon leaf it is [""]. Epsilon markers
// never show up in the Matched terminals of non-terminal nodes.
type Node struct {
	Symbol   string
	Terminal bool
	Matched  []string
	Parent   int
	Rule     int
	Span     topdown.Span // input positions covered by this node
}

// IsEpsilon is true for leaves standing for an empty derivation.
func (n Node) IsEpsilon() bool {
	return n.Terminal && n.Symbol == ""
}

func (n Node) String() string {
	if n.IsEpsilon() {
		return "ε"
	}
	if n.Terminal {
		return fmt.Sprintf("%q", n.Symbol)
	}
	return fmt.Sprintf("%s%v", n.Symbol, n.Span)
}

// Tree is an arena of nodes, addressed by index.
type Tree struct {
	nodes []Node
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Node returns node #i. Clients must not modify the returned node's Matched
// terminals.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Nodes returns a copy of the node sequence, in preorder.
func (t *Tree) Nodes() []Node {
	return append([]Node(nil), t.nodes...)
}

// Root returns the index of the root node, which is 0 for non-empty trees and
// NoParent otherwise.
func (t *Tree) Root() int {
	if t.Len() == 0 {
		return NoParent
	}
	return 0
}

// Parent returns the index of the parent of node #i, or NoParent for the root.
func (t *Tree) Parent(i int) int {
	return t.nodes[i].Parent
}

// Children returns the indices of all nodes with parent i, in order.
func (t *Tree) Children(i int) []int {
	var ch []int
	// children of i have been appended after i
	for j := i + 1; j < len(t.nodes); j++ {
		if t.nodes[j].Parent == i {
			ch = append(ch, j)
		}
	}
	return ch
}

// Depth returns the length of the parent chain of node #i. The root has depth 0.
func (t *Tree) Depth(i int) int {
	d := 0
	for p := t.nodes[i].Parent; p != NoParent; p = t.nodes[p].Parent {
		d++
	}
	return d
}

// Terminals returns the symbols of the terminal leaves, in order. Epsilon
// leaves are skipped. For a tree from a successful parse, this reproduces
// the terminals consumed from the input.
func (t *Tree) Terminals() []string {
	var terms []string
	for _, n := range t.nodes {
		if n.Terminal && !n.IsEpsilon() {
			terms = append(terms, n.Symbol)
		}
	}
	return terms
}

// Fingerprint returns a hash over the structure of the tree: symbols, matched
// terminals and parent links. Trees from identical grammars and inputs have
// identical fingerprints.
func (t *Tree) Fingerprint() (string, error) {
	if t == nil {
		return structhash.Hash([]Node{}, 1)
	}
	return structhash.Hash(t.nodes, 1)
}

func (t *Tree) String() string {
	var b bytes.Buffer
	for i, n := range t.nodes {
		b.WriteString(strings.Repeat("  ", t.Depth(i)))
		b.WriteString(n.String())
		if !n.Terminal && len(n.Matched) > 0 {
			b.WriteString(" = ")
			b.WriteString(strings.Join(n.Matched, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Builder ---------------------------------------------------------------

// Builder assembles a tree node by node. Non-terminal nodes are opened before
// their children are added and closed afterwards, which keeps the node sequence
// in preorder.
type Builder struct {
	nodes []Node
}

// NewBuilder creates a builder for a tree.
func NewBuilder() *Builder {
	return &Builder{nodes: make([]Node, 0, 64)}
}

// Open appends a node for non-terminal sym, expanded by production rule, starting
// at input position pos. It returns the node's index.
func (b *Builder) Open(sym string, parent int, rule int, pos uint64) int {
	b.nodes = append(b.nodes, Node{
		Symbol:  sym,
		Matched: []string{},
		Parent:  parent,
		Rule:    rule,
		Span:    topdown.Span{pos, pos},
	})
	return len(b.nodes) - 1
}

// SetRule records the production expanded for node #i.
func (b *Builder) SetRule(i int, rule int) {
	b.nodes[i].Rule = rule
}

// Terminal appends a leaf for terminal sym at input position pos and adds it to the
// matched terminals of the parent.
func (b *Builder) Terminal(sym string, parent int, pos uint64) int {
	b.nodes = append(b.nodes, Node{
		Symbol:   sym,
		Terminal: true,
		Matched:  []string{sym},
		Parent:   parent,
		Rule:     -1,
		Span:     topdown.Span{pos, pos + 1},
	})
	if parent != NoParent {
		b.nodes[parent].Matched = append(b.nodes[parent].Matched, sym)
	}
	return len(b.nodes) - 1
}

// Epsilon appends an epsilon leaf at input position pos. The parent's matched
// terminals are not changed.
func (b *Builder) Epsilon(parent int, pos uint64) int {
	b.nodes = append(b.nodes, Node{
		Symbol:   "",
		Terminal: true,
		Matched:  []string{""},
		Parent:   parent,
		Rule:     -1,
		Span:     topdown.Span{pos, pos},
	})
	return len(b.nodes) - 1
}

// Close completes non-terminal node #i, which ends before input position pos, and
// hands its matched terminals up to its parent.
func (b *Builder) Close(i int, pos uint64) {
	n := &b.nodes[i]
	n.Span = n.Span.Extend(topdown.Span{pos, pos})
	if n.Parent != NoParent {
		p := &b.nodes[n.Parent]
		p.Matched = append(p.Matched, n.Matched...)
	}
}

// Node returns node #i as built so far.
func (b *Builder) Node(i int) Node {
	return b.nodes[i]
}

// Tree returns the tree built. The builder must not be used afterwards.
func (b *Builder) Tree() *Tree {
	t := &Tree{nodes: b.nodes}
	b.nodes = nil
	tracer().Debugf("tree with %d nodes built", len(t.nodes))
	return t
}
