package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubicks/lci/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lci",
	Short: "A LOLCODE parser front end",
	Long: `lci drives the LOLCODE recursive-descent parser over a source file
and reports on the result.

Subcommands:
  tokens  - print the token stream a source file lexes to
  parse   - parse a source file and print its AST
  check   - parse a source file and report only pass/fail plus diagnostics`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "parser config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}

func loadConfig() (config.Options, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile, config.FormatAuto)
}
