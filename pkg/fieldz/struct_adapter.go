package fieldz

import (
	"fmt"
	"reflect"
	"strconv"
)

// structAdapter introspects struct types through their `fieldz` and `doc`
// struct tags. Unexported and embedded fields are skipped; fields promoted
// from embedded structs are enumerated after the type's own.
type structAdapter struct{}

func (structAdapter) Fields(obj any) ([]Field, error) {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("fieldz: cannot enumerate fields of %s", t.Kind())
	}

	var fields []Field
	for _, sf := range reflect.VisibleFields(t) {
		if sf.PkgPath != "" || sf.Anonymous {
			continue
		}
		f, err := structField(t, sf)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// DeclaredName returns the documented name of a struct field: the fieldz
// tag's name override when present, the Go field name otherwise.
func DeclaredName(sf reflect.StructField) string {
	if info := parseFieldzTag(sf.Tag.Get("fieldz")); info.Name != "" {
		return info.Name
	}
	return sf.Name
}

func structField(owner reflect.Type, sf reflect.StructField) (Field, error) {
	info := parseFieldzTag(sf.Tag.Get("fieldz"))
	if info.HasDef && info.Factory != "" {
		return Field{}, fmt.Errorf("fieldz: %s.%s declares both default and factory", owner, sf.Name)
	}

	f := NewField(DeclaredName(sf), sf.Type)
	f.Description = sf.Tag.Get("doc")
	f.Metadata = info.Metadata
	f.Init = info.Init

	if info.HasDef {
		def, err := convertDefault(info.Default, sf.Type)
		if err != nil {
			return Field{}, fmt.Errorf("fieldz: %s.%s: %w", owner, sf.Name, err)
		}
		f.Default = def
	}
	if info.Factory != "" {
		factory, err := lookupFactory(owner, info.Factory)
		if err != nil {
			return Field{}, fmt.Errorf("fieldz: %s.%s: %w", owner, sf.Name, err)
		}
		f.DefaultFactory = factory
	}
	return f, nil
}

// convertDefault turns the tag's literal text into a value of the field's
// type. Only scalar kinds are supported; anything richer belongs in a
// factory method or a Fielder implementation.
func convertDefault(literal string, t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.String:
		return literal, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, fmt.Errorf("invalid bool default %q", literal)
		}
		return v, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(literal, 10, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid integer default %q", literal)
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(literal, 10, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned default %q", literal)
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(literal, t.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid float default %q", literal)
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	default:
		return nil, fmt.Errorf("default literals are not supported for %s fields", t.Kind())
	}
}

// lookupFactory resolves factory=Name to a niladic single-result method on
// the owning struct type or its pointer type.
func lookupFactory(owner reflect.Type, name string) (func() any, error) {
	m, ok := owner.MethodByName(name)
	if !ok {
		m, ok = reflect.PointerTo(owner).MethodByName(name)
	}
	if !ok {
		return nil, fmt.Errorf("factory method %q not found", name)
	}
	// Receiver plus no arguments, exactly one result.
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return nil, fmt.Errorf("factory method %q must take no arguments and return one value", name)
	}
	recv := reflect.New(owner)
	if m.Type.In(0).Kind() != reflect.Pointer {
		recv = recv.Elem()
	}
	return func() any {
		return m.Func.Call([]reflect.Value{recv})[0].Interface()
	}, nil
}
