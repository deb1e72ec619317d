package ptree

import "github.com/npillmayer/topdown"

// A Cursor is a movable mark within a tree, intended for navigating over nodes.
type Cursor struct {
	tree    *Tree
	current int
	stack   [][]int // siblings of the nodes on the path from the start node
	pos     []int   // index of the current node within its siblings, per level
}

// SetCursor sets up a cursor at node #i. If i is out of range, the cursor will be
// set up at the root node. For an empty tree SetCursor returns nil.
func (t *Tree) SetCursor(i int) *Cursor {
	if t.Len() == 0 {
		return nil
	}
	if i < 0 || i >= t.Len() {
		i = t.Root()
	}
	return &Cursor{tree: t, current: i}
}

// Node returns the index of the node the cursor is located at.
func (c *Cursor) Node() int {
	return c.current
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (int, bool) {
	p := c.tree.nodes[c.current].Parent
	if p == NoParent {
		return c.current, false
	}
	c.current = p
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
		c.pos = c.pos[:len(c.pos)-1]
	}
	tracer().Debugf("UP Cursor @ %v", c.tree.nodes[c.current])
	return c.current, true
}

// Down moves the cursor down to the first child of the current node, if any.
func (c *Cursor) Down() (int, bool) {
	ch := c.tree.Children(c.current)
	if len(ch) == 0 {
		return c.current, false
	}
	c.stack = append(c.stack, ch)
	c.pos = append(c.pos, 0)
	c.current = ch[0]
	tracer().Debugf("DOWN Cursor @ %v", c.tree.nodes[c.current])
	return c.current, true
}

// Sibling moves the cursor to the next sibling of the current node, if any.
// Siblings are only known for nodes the cursor has reached by moving down.
func (c *Cursor) Sibling() (int, bool) {
	if len(c.stack) == 0 {
		return c.current, false
	}
	top := len(c.stack) - 1
	if c.pos[top]+1 >= len(c.stack[top]) {
		return c.current, false
	}
	c.pos[top]++
	c.current = c.stack[top][c.pos[top]]
	tracer().Debugf("SIBLING Cursor @ %v", c.tree.nodes[c.current])
	return c.current, true
}

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterRule is called for a non-terminal node before its children are visited and
// returns a boolean value indicating if the traversal should continue to the
// children of this node. ExitRule is called after the children have been visited,
// receiving the values the children produced. ExitRule and Terminal return
// user-defined values to be propagated upwards of the tree.
// Epsilon leaves are reported as terminals with an empty symbol.
type Listener interface {
	EnterRule(sym string, ctxt RuleCtxt) bool
	ExitRule(sym string, children []interface{}, ctxt RuleCtxt) interface{}
	Terminal(sym string, ctxt RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Node      int          // index of the node
	Span      topdown.Span // span of input positions covered by the node
	Level     int          // nesting level, relative to the start of the traversal
	RuleIndex int          // -1 for terminals
}

// TopDown traverses the sub-tree at the cursor's position top-down, applying
// Listener-methods for all nodes encountered. It returns the value calculated by
// the listener for the start node.
func (c *Cursor) TopDown(listener Listener) interface{} {
	tracer().Debugf("TopDown starting at node %v", c.tree.nodes[c.current])
	return c.traverseTopDown(listener, 0)
}

func (c *Cursor) traverseTopDown(listener Listener, level int) interface{} {
	n := c.tree.nodes[c.current]
	ctxt := RuleCtxt{Node: c.current, Span: n.Span, Level: level, RuleIndex: n.Rule}
	if n.Terminal {
		return listener.Terminal(n.Symbol, ctxt)
	}
	var values []interface{}
	if listener.EnterRule(n.Symbol, ctxt) {
		if _, ok := c.Down(); ok {
			for ; ok; _, ok = c.Sibling() {
				values = append(values, c.traverseTopDown(listener, level+1))
			}
			c.Up()
		}
	}
	return listener.ExitRule(n.Symbol, values, ctxt)
}
