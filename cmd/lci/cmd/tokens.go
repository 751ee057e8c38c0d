package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubicks/lci/lexer"
	"github.com/rubicks/lci/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream a source file lexes to",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
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
	for {
		tok := l.NextToken()
		fmt.Printf("%s:%d:%d\t%s\n", tok.File, tok.Line, tok.Column, tok.String())
		if tok.Kind == token.EOF {
			return nil
		}
	}
}
