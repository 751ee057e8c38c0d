package main

import (
	"os"

	"github.com/rubicks/lci/cmd/lci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
