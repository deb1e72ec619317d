package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/topdown/ll/predict"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines of input interactively",
		Long: `repl reads lines of input, parses each of them and prints the parse tree.
Lines starting with ':' are commands:
  :first     print FIRST-sets
  :grammar   print the grammar
  :quit      leave (as does <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object.
type Intp struct {
	parser *predict.Parser
	repl   *readline.Instance
}

func runREPL(cmd *cobra.Command, args []string) error {
	parser, err := makeParser()
	if err != nil {
		return err
	}
	repl, err := readline.New("topdown> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{parser: parser, repl: repl}
	pterm.Info.Printf("Welcome to topdown, grammar is %s\n", parser.Analysis().Grammar().Name)
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if intp.Eval(line) {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval executes a command or parses a line of input. It returns true if the
// user wants to quit.
func (intp *Intp) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":first":
		printFirstSets(intp.parser.Analysis())
		return false
	case ":grammar":
		g := intp.parser.Analysis().Grammar()
		for i := 0; i < g.Size(); i++ {
			pterm.Printf("%3d: %v\n", i, g.Rule(i))
		}
		return false
	}
	if strings.HasPrefix(line, ":") {
		pterm.Error.Printf("unknown command %s\n", line)
		return false
	}
	tree, err := parseLine(intp.parser, line)
	if err != nil {
		tracer().Debugf("%v", err)
		return false
	}
	tree.Render()
	return false
}
