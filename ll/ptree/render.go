package ptree

import (
	"fmt"

	"github.com/pterm/pterm"
)

// LeveledList converts a tree to a leveled list, suitable for pterm tree
// rendering. Levels are node depths.
func (t *Tree) LeveledList() pterm.LeveledList {
	ll := pterm.LeveledList{}
	for i, n := range t.nodes {
		text := n.String()
		if !n.Terminal && n.Rule >= 0 {
			text = fmt.Sprintf("%s  [#%d]", text, n.Rule)
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: t.Depth(i),
			Text:  text,
		})
	}
	return ll
}

// Render prints a tree to the terminal, using pterm.
func (t *Tree) Render() {
	if t.Len() == 0 {
		return
	}
	root := pterm.NewTreeFromLeveledList(t.LeveledList())
	pterm.DefaultTree.WithRoot(root).Render()
}
