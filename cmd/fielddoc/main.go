// Package main provides the CLI for the fielddoc tools.
package main

import (
	"os"

	"github.com/example/fielddoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
