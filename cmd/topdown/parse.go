package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/topdown/ll/predict"
	"github.com/npillmayer/topdown/ll/ptree"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <input…>",
		Short:   "Parse input and print the parse tree",
		Example: `  topdown parse -g prefix - a + a a`,
		Args:    cobra.ArbitraryArgs,
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	parser, err := makeParser()
	if err != nil {
		return err
	}
	tree, err := parseLine(parser, strings.Join(args, " "))
	if err != nil {
		return err
	}
	tree.Render()
	return nil
}

// parseLine tokenizes and parses a line of input. Parse failures are printed
// in detail.
func parseLine(parser *predict.Parser, line string) (*ptree.Tree, error) {
	input, err := tokenize(parser.Analysis().Grammar(), line)
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize input: %w", err)
	}
	tracer().Infof("input terminals are %v", input)
	tree, err := parser.Parse(input)
	if err != nil {
		var perr *predict.ParseError
		if errors.As(err, &perr) {
			pterm.Error.Println(perr.Kind.String())
			pterm.Printf("  non-terminal : %s\n", perr.NonTerminal)
			if perr.Production != nil {
				pterm.Printf("  production   : %v\n", perr.Production)
			}
			pterm.Printf("  position     : %d\n", perr.Position)
			if !perr.AtEnd {
				pterm.Printf("  lookahead    : %q\n", perr.Lookahead)
			}
			if len(perr.Expected) > 0 {
				pterm.Printf("  expected     : %v\n", perr.Expected)
			}
		}
		return nil, err
	}
	pterm.Info.Printf("matched %v\n", tree.Node(0).Matched)
	return tree, nil
}
