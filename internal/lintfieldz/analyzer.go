// Package lintfieldz provides a fieldz tag linter for fielddoc projects.
package lintfieldz

import (
	"fmt"
	"go/ast"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer is the fieldz tag linter.
var Analyzer = &analysis.Analyzer{
	Name: "lintfieldz",
	Doc:  "checks struct fieldz tags for correct format",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		inspectStructFields(file, pass)
	}
	return nil, nil
}

func inspectStructFields(file *ast.File, pass *analysis.Pass) {
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return true
		}
		validateStructFields(st, pass)
		return false
	})
}

func validateStructFields(st *ast.StructType, pass *analysis.Pass) {
	seen := map[string]bool{}
	for _, fld := range st.Fields.List {
		if fld.Tag == nil {
			continue
		}
		tagVal, err := strconv.Unquote(fld.Tag.Value)
		if err != nil {
			continue
		}
		fieldzTag, ok := reflect.StructTag(tagVal).Lookup("fieldz")
		if !ok {
			continue
		}
		if len(fld.Names) == 0 {
			pass.Reportf(fld.Tag.Pos(), "fieldz tag on embedded field is ignored")
			continue
		}
		for _, problem := range validateFieldzTag(fieldzTag) {
			pass.Reportf(fld.Tag.Pos(), "invalid fieldz tag %q: %s", fieldzTag, problem)
		}
		checkDuplicateNames(fieldzTag, fld, seen, pass)
	}
}

// validateFieldzTag returns the problems with a fieldz tag value. The tag is
// comma-separated; an optional leading bare item renames the field and the
// recognised pairs are default=, factory= and init=.
func validateFieldzTag(tag string) []string {
	var problems []string
	counts := map[string]int{}
	hasDefault, hasFactory := false, false

	for idx, p := range strings.Split(tag, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			if idx != 0 {
				problems = append(problems, fmt.Sprintf("bare item %q is only valid as a leading name override", p))
			}
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		counts[key]++
		switch key {
		case "default":
			hasDefault = true
		case "factory":
			hasFactory = true
			if val == "" {
				problems = append(problems, "factory requires a method name")
			}
		case "init":
			if val != "true" && val != "false" {
				problems = append(problems, fmt.Sprintf("init must be true or false, not %q", val))
			}
		}
	}

	if hasDefault && hasFactory {
		problems = append(problems, "default and factory are mutually exclusive")
	}
	for key, n := range counts {
		if n > 1 {
			problems = append(problems, fmt.Sprintf("duplicate key %q", key))
		}
	}
	return problems
}

// checkDuplicateNames reports two fields of one struct resolving to the same
// documented name, which would make the later one unreachable in a merge.
func checkDuplicateNames(tag string, fld *ast.Field, seen map[string]bool, pass *analysis.Pass) {
	for _, ident := range fld.Names {
		name := ident.Name
		if override := tagNameOverride(tag); override != "" {
			name = override
		}
		if seen[name] {
			pass.Reportf(fld.Tag.Pos(), "duplicate documented field name %q", name)
		}
		seen[name] = true
	}
}

func tagNameOverride(tag string) string {
	first := strings.TrimSpace(strings.Split(tag, ",")[0])
	if first == "" || strings.Contains(first, "=") {
		return ""
	}
	return first
}
