/*
Package topdown is a toolbox for predictive (top-down) parsing.

It strives to be a small and approachable tool for experimenting with
context-free grammars: build a grammar, let it be analysed, and parse
sequences of terminals into parse trees, without any code generation step.
Package structure is as follows:

■ ll: Package ll holds grammars, a grammar builder and the FIRST-set analysis.

■ ll/predict: Package predict implements a recursive-descent parser which selects
productions by a single terminal of lookahead.

■ ll/ptree: Package ptree holds parse trees as flat arenas of nodes with
parent links.

■ ll/scanner: Package scanner defines a tokenizer interface and default tokenizers
to turn text into terminal sequences.

■ ll/demo: Package demo holds small grammars for demonstration and tests.

Command topdown (in cmd/topdown) is a command line workbench on top of these
packages.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package topdown
