package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "first",
		Short:   "Print the FIRST-sets of a grammar's productions",
		Example: `  topdown first -g parens`,
		Args:    cobra.NoArgs,
		RunE:    runFirst,
	}
	rootCmd.AddCommand(cmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	parser, err := makeParser()
	if err != nil {
		return err
	}
	printFirstSets(parser.Analysis())
	return nil
}
