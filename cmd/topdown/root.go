package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/demo"
	"github.com/npillmayer/topdown/ll/predict"
)

// tracer traces with key 'topdown.cli'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.cli")
}

var rootFlags = struct {
	trace    *string
	grammar  *string
	strict   *bool
	maxDepth *int
	lexer    *string
}{}

var rootCmd = &cobra.Command{
	Use:   "topdown",
	Short: "Parse input with a predictive top-down parser",
	Long: `topdown parses terminal sequences with a predictive (LL) parser,
using one of the built-in demo grammars:
  prefix   S ➞ + S S | - S S | a
  parens   S ➞ ( S ) | ε`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.grammar = rootCmd.PersistentFlags().StringP("grammar", "g", "prefix", "demo grammar to use")
	rootFlags.strict = rootCmd.PersistentFlags().Bool("strict", false, "fail on trailing input")
	rootFlags.maxDepth = rootCmd.PersistentFlags().Int("max-depth", 0, "limit nesting of expansions (0 = no limit)")
	rootFlags.lexer = rootCmd.PersistentFlags().String("lexer", "go", "tokenizer to use [go|lexmachine]")
}

// Execute runs the command tree.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// setup initializes configuration, tracing and display. Flags given on the
// command line override configuration values.
func setup(cmd *cobra.Command, args []string) error {
	conf := koanfadapter.New(koanf.New("."), "topdown", []string{"nt"})
	gconf.Initialize(conf)
	if cmd.Flags().Changed("strict") {
		conf.Set("ll.require-full-input", *rootFlags.strict)
	}
	if cmd.Flags().Changed("max-depth") {
		conf.Set("ll.max-depth", *rootFlags.maxDepth)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := *rootFlags.trace
	if !cmd.Flags().Changed("trace") && gconf.IsSet("trace") {
		level = gconf.GetString("trace")
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	initDisplay()
	tracer().Infof("trace level is %s", level)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// makeParser creates a parser for the demo grammar selected by flag.
func makeParser() (*predict.Parser, error) {
	g, err := demo.ByName(*rootFlags.grammar)
	if err != nil {
		return nil, err
	}
	g.Dump()
	return predict.New(g)
}

// printFirstSets prints the productions of a grammar together with their FIRST-sets.
func printFirstSets(ga *ll.LLAnalysis) {
	g := ga.Grammar()
	pterm.Info.Printf("grammar %s, root %s\n", g.Name, g.Root())
	g.EachProduction(func(p *ll.Production) {
		first := ga.First(p)
		for i, t := range first {
			if t == ll.Epsilon {
				first[i] = "ε"
			}
		}
		pterm.Printf("%3d: %-16s FIRST = %v\n", p.Serial, p.String(), first)
	})
}
