/*
Package demo provides small grammars for demonstration and testing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package demo

import (
	"fmt"
	"sort"

	"github.com/npillmayer/topdown/ll"
)

// PrefixExpressions returns a grammar for expressions in prefix notation:
//
//    S ➞ + S S
//    S ➞ - S S
//    S ➞ a
//
func PrefixExpressions() *ll.Grammar {
	return ll.NewGrammar("PrefixExpressions",
		[]string{"+", "-", "a"},
		[]string{"S"},
		[]ll.Production{
			{Head: "S", Body: []string{"+", "S", "S"}},
			{Head: "S", Body: []string{"-", "S", "S"}},
			{Head: "S", Body: []string{"a"}},
		},
		"S")
}

// BalancedParens returns a grammar for nested pairs of parentheses:
//
//    S ➞ ( S )
//    S ➞ ε
//
func BalancedParens() *ll.Grammar {
	return ll.NewGrammar("BalancedParens",
		[]string{"(", ")"},
		[]string{"S"},
		[]ll.Production{
			{Head: "S", Body: []string{"(", "S", ")"}},
			{Head: "S", Body: []string{ll.Epsilon}},
		},
		"S")
}

var grammars = map[string]func() *ll.Grammar{
	"prefix": PrefixExpressions,
	"parens": BalancedParens,
}

// ByName returns a demo grammar by its short name, "prefix" or "parens".
func ByName(name string) (*ll.Grammar, error) {
	if create, ok := grammars[name]; ok {
		return create(), nil
	}
	return nil, fmt.Errorf("no demo grammar named %q, known are %v", name, Names())
}

// Names returns the short names of the demo grammars, sorted.
func Names() []string {
	names := make([]string, 0, len(grammars))
	for n := range grammars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
