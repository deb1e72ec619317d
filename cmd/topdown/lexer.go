package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/timtadh/lexmachine"

	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/scanner/lexmach"
)

// tokenize splits input into terminals of grammar g, using the tokenizer selected
// by flag --lexer.
func tokenize(g *ll.Grammar, input string) ([]string, error) {
	switch *rootFlags.lexer {
	case "go":
		sc := scanner.GoTokenizer(g.Name, strings.NewReader(input), scanner.SkipComments(true))
		terms, _, err := scanner.Terminals(sc, scanner.ByLexeme)
		return terms, err
	case "lexmachine", "lm":
		lm, err := lexmachineFor(g)
		if err != nil {
			return nil, err
		}
		sc, err := lm.Scanner(input)
		if err != nil {
			return nil, err
		}
		terms, _, err := scanner.Terminals(sc, lm.Namer())
		return terms, err
	}
	return nil, fmt.Errorf("unknown lexer %q", *rootFlags.lexer)
}

// lexmachineFor creates a lexmachine DFA recognizing the terminals of g.
// Terminals made of letters and digits are keywords, all others are literals.
func lexmachineFor(g *ll.Grammar) (*lexmach.LMAdapter, error) {
	var literals, keywords []string
	ids := make(map[string]int)
	for i, t := range g.Terminals() {
		ids[t] = i + 10
		if isWord(t) {
			keywords = append(keywords, t)
		} else {
			literals = append(literals, t)
		}
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	return lexmach.NewLMAdapter(init, literals, keywords, ids)
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
