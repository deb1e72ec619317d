/*
Package ptree holds the result of a predictive parse: a flat sequence of nodes
in preorder, where every node links to its parent by index.

The root node comes first, followed by the nodes of every body element of the
root's production, depth-first and in body order. There is no separate children
container; children are reconstructed by scanning for parent links. Nodes are
created by the parser and are never modified once the tree is handed out.

Clients walk a tree either by index,

    for i := 0; i < tree.Len(); i++ {
        n := tree.Node(i)
        ...
    }

or with a Cursor and a Listener, which gets called on entering and leaving
non-terminal nodes and on terminal leaves. This lends itself to attribute
evaluation during a top-down walk.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
