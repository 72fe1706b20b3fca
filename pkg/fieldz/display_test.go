package fieldz

import (
	"reflect"
	"testing"
	"time"
)

func TestDisplayAsType(t *testing.T) {
	cases := []struct {
		name   string
		typ    reflect.Type
		modern bool
		want   string
	}{
		{"int", reflect.TypeOf(0), false, "int"},
		{"string slice", reflect.TypeOf([]string{}), false, "[]string"},
		{"map", reflect.TypeOf(map[string]int{}), false, "map[string]int"},
		{"pointer classic", reflect.TypeOf((*int)(nil)), false, "*int"},
		{"pointer modern", reflect.TypeOf((*int)(nil)), true, "int | nil"},
		{"nested pointer modern", reflect.TypeOf([]*string{}), true, "[]string | nil"},
		{"named type", reflect.TypeOf(time.Second), false, "Duration"},
		{"empty interface", reflect.TypeOf((*any)(nil)).Elem(), false, "any"},
		{"array", reflect.TypeOf([4]byte{}), false, "[4]uint8"},
		{"nil type", nil, false, "any"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DisplayAsType(c.typ, c.modern); got != c.want {
				t.Errorf("DisplayAsType = %q, want %q", got, c.want)
			}
		})
	}
}

func TestDefaultRepr(t *testing.T) {
	literal := NewField("n", reflect.TypeOf(0))
	literal.Default = 30
	if got, ok := DefaultRepr(literal); !ok || got != "30" {
		t.Errorf("literal: got %q, %v", got, ok)
	}

	str := NewField("s", reflect.TypeOf(""))
	str.Default = "x"
	if got, ok := DefaultRepr(str); !ok || got != `"x"` {
		t.Errorf("string: got %q, %v", got, ok)
	}

	factory := NewField("f", reflect.TypeOf(0))
	factory.DefaultFactory = func() any { return []int{1, 2} }
	if got, ok := DefaultRepr(factory); !ok || got != "[1 2]" {
		t.Errorf("factory: got %q, %v", got, ok)
	}

	none := NewField("none", reflect.TypeOf(0))
	if got, ok := DefaultRepr(none); ok || got != "" {
		t.Errorf("absent: got %q, %v", got, ok)
	}
}
