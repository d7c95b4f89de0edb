// Package main provides the tabula CLI.
package main

import (
	"os"

	"github.com/tabula-cli/tabula/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
