package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubicks/lci/lexer"
	"github.com/rubicks/lci/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a source file and report pass/fail plus diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	l, err := lexer.NewWithLimit(path, string(src), cfg.MaxInputSize)
	if err != nil {
		printError("lexing source file", err)
		return err
	}
	sink := &parser.CollectingSink{}
	p := parser.New(l, parser.Options{Config: cfg, Sink: sink})

	_, parseErr := p.Parse()
	if parseErr == nil {
		fmt.Printf("%s: OK\n", path)
		return nil
	}

	for _, d := range sink.Diagnostics {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	fmt.Printf("%s: FAIL\n", path)
	return parseErr
}
