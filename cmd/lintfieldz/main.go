// Package main provides a standalone runner for the fieldz tag linter.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/example/fielddoc/internal/lintfieldz"
)

func main() {
	singlechecker.Main(lintfieldz.Analyzer)
}
