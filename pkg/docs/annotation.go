package docs

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Annotation is the host's representation of a type annotation attached to a
// docstring entry or class member.
type Annotation struct {
	Source string
}

func (a *Annotation) String() string {
	if a == nil {
		return ""
	}
	return a.Source
}

// MarshalYAML renders the annotation as its source text.
func (a *Annotation) MarshalYAML() (interface{}, error) {
	return a.Source, nil
}

// UnmarshalYAML restores an annotation from its source text.
func (a *Annotation) UnmarshalYAML(value *yaml.Node) error {
	return value.Decode(&a.Source)
}

// MarshalJSON renders the annotation as its source text.
func (a *Annotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Source)
}

// UnmarshalJSON restores an annotation from its source text.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.Source)
}

// ParseAnnotation converts a rendered type string into the host's annotation
// representation. The docstring provides the class context for resolving
// shorthand names; a bare name inside a class body refers to that class's
// scope. Empty input yields nil.
func ParseAnnotation(typeStr string, ds *Docstring) *Annotation {
	typeStr = strings.TrimSpace(typeStr)
	if typeStr == "" {
		return nil
	}
	// Resolve a self-reference shorthand against the owning class.
	if ds != nil && ds.parent != nil && typeStr == "Self" {
		typeStr = ds.parent.Name
	}
	return &Annotation{Source: typeStr}
}
