// Package fieldz enumerates the fields of record-like types: structs that
// opt into field introspection via `fieldz` struct tags, or any type that
// describes its own fields by implementing Fielder.
package fieldz

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotAdaptable is returned by GetAdapter when a value's type has no known
// field-introspection strategy. Most types are not record-like, so callers
// are expected to treat this error as an ordinary negative answer.
var ErrNotAdaptable = errors.New("type is not record-like")

// Missing is the sentinel for an absent default value. A Field with no
// literal default carries Missing (or nil) in its Default slot.
var Missing any = missing{}

type missing struct{}

func (missing) String() string { return "MISSING" }

// Field describes a single field of a record-like type.
type Field struct {
	// Name is the field's name, unique within its type.
	Name string

	// Type is the field's declared type. Nil when unknown.
	Type reflect.Type

	// Description is free-text documentation for the field.
	Description string

	// Default is the field's literal default value, or Missing when the
	// field has none. A field never carries both a literal default and a
	// default factory.
	Default any

	// DefaultFactory produces the field's default value on demand. Nil when
	// the field has no factory.
	DefaultFactory func() any

	// Metadata holds additional key/value pairs attached to the field.
	Metadata map[string]string

	// Init reports whether the field participates in construction.
	Init bool
}

// NewField returns a Field with the conventional zero state: no default,
// constructor participation enabled.
func NewField(name string, typ reflect.Type) Field {
	return Field{Name: name, Type: typ, Default: Missing, Init: true}
}

// HasDefault reports whether the field carries a literal default value.
func (f Field) HasDefault() bool {
	return f.Default != nil && f.Default != Missing
}

// Fielder is implemented by types that describe their own fields. It takes
// precedence over tag-based struct introspection.
type Fielder interface {
	Fields() []Field
}

// Adapter enumerates the fields of a value in declaration order.
type Adapter interface {
	Fields(obj any) ([]Field, error)
}

// GetAdapter returns a field-introspection adapter for obj, or an error
// wrapping ErrNotAdaptable when obj's type is not record-like.
func GetAdapter(obj any) (Adapter, error) {
	if _, ok := obj.(Fielder); ok {
		return fielderAdapter{}, nil
	}

	t := reflect.TypeOf(obj)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("fieldz: %v: %w", t, ErrNotAdaptable)
	}
	if !hasFieldzTag(t) {
		return nil, fmt.Errorf("fieldz: %s has no fieldz tags: %w", t, ErrNotAdaptable)
	}
	return structAdapter{}, nil
}

// Fields enumerates obj's fields using the adapter GetAdapter selects.
func Fields(obj any) ([]Field, error) {
	adapter, err := GetAdapter(obj)
	if err != nil {
		return nil, err
	}
	return adapter.Fields(obj)
}

// fielderAdapter serves types that implement Fielder.
type fielderAdapter struct{}

func (fielderAdapter) Fields(obj any) ([]Field, error) {
	f, ok := obj.(Fielder)
	if !ok {
		return nil, fmt.Errorf("fieldz: %T does not implement Fielder", obj)
	}
	return f.Fields(), nil
}

// hasFieldzTag reports whether any exported field of t, including fields
// promoted from embedded structs, carries a fieldz tag.
func hasFieldzTag(t reflect.Type) bool {
	for _, f := range reflect.VisibleFields(t) {
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		if _, ok := f.Tag.Lookup("fieldz"); ok {
			return true
		}
	}
	return false
}
