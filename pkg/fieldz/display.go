package fieldz

import (
	"fmt"
	"reflect"
	"strconv"
)

// DisplayAsType renders a type for human-readable documentation. Named types
// render by bare name without their package qualifier. In modern-union mode,
// pointer types render as `T | nil` instead of `*T`.
func DisplayAsType(t reflect.Type, modernUnion bool) string {
	if t == nil {
		return "any"
	}
	switch t.Kind() {
	case reflect.Pointer:
		inner := DisplayAsType(t.Elem(), modernUnion)
		if modernUnion {
			return inner + " | nil"
		}
		return "*" + inner
	case reflect.Slice:
		return "[]" + DisplayAsType(t.Elem(), modernUnion)
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + DisplayAsType(t.Elem(), modernUnion)
	case reflect.Map:
		return "map[" + DisplayAsType(t.Key(), modernUnion) + "]" + DisplayAsType(t.Elem(), modernUnion)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any"
		}
		return t.Name()
	default:
		if name := t.Name(); name != "" {
			return name
		}
		return t.String()
	}
}

// DefaultRepr returns the documentation text for a field's default value:
// the repr of its literal default, or of the result of invoking its default
// factory with no arguments. The second return is false when the field has
// neither.
func DefaultRepr(f Field) (string, bool) {
	if f.HasDefault() {
		return reprValue(f.Default), true
	}
	if f.DefaultFactory != nil {
		return reprValue(f.DefaultFactory()), true
	}
	return "", false
}

func reprValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v", v)
	}
}
