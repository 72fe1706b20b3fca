package lintfieldz

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, Analyzer, "a")
}

func TestValidateFieldzTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		problems int
	}{
		{"empty tag", "", 0},
		{"default only", "default=30", 0},
		{"factory only", "factory=DefaultBackoff", 0},
		{"init false", "init=false", 0},
		{"name override", "port,default=8080", 0},
		{"default and factory", "default=1,factory=F", 1},
		{"bad init", "init=yes", 1},
		{"empty factory", "factory=", 1},
		{"duplicate key", "default=1,default=2", 1},
		{"trailing bare item", "default=1,stray", 1},
		{"extra metadata", "default=1,owner=infra", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(validateFieldzTag(tt.tag)); got != tt.problems {
				t.Errorf("validateFieldzTag(%q) = %d problems %v, want %d",
					tt.tag, got, validateFieldzTag(tt.tag), tt.problems)
			}
		})
	}
}

func TestTagNameOverride(t *testing.T) {
	if got := tagNameOverride("port,default=8080"); got != "port" {
		t.Errorf("got %q, want %q", got, "port")
	}
	if got := tagNameOverride("default=8080"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
