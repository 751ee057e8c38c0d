package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubicks/lci/ast"
	"github.com/rubicks/lci/lexer"
	lcilog "github.com/rubicks/lci/log"
	"github.com/rubicks/lci/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		printError("reading source file", err)
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	level := lcilog.LevelError
	if verbose {
		level = lcilog.LevelDebug
	}
	logger := lcilog.NewWithConfig(lcilog.Config{Level: level, Name: "lci"}).WithField("file", path)

	l, err := lexer.NewWithLimit(path, string(src), cfg.MaxInputSize)
	if err != nil {
		printError("lexing source file", err)
		return err
	}
	p := parser.New(l, parser.Options{Config: cfg, Logger: logger})

	prog, err := p.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	ast.NewPrinter(os.Stdout).Print(prog)
	return nil
}
