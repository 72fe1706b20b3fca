// Package extension implements the field-metadata injector: a documentation
// host hook that enriches record-like classes with the fields their runtime
// counterpart reports, merged into the class docstring's parameters and
// attributes sections without disturbing hand-written entries.
package extension

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/example/fielddoc/pkg/docs"
	"github.com/example/fielddoc/pkg/fieldz"
)

// Options configures an Extension.
type Options struct {
	// ObjectPaths restricts processing to the listed fully-qualified class
	// paths. Empty means every class is eligible.
	ObjectPaths []string

	// IncludePrivate emits attribute entries for private-by-name fields.
	IncludePrivate bool

	// IncludeInherited keeps fields promoted from embedded types; otherwise
	// only the class's own declared fields are documented.
	IncludeInherited bool

	// Logger receives debug notes for skipped classes. Defaults to a no-op
	// logger.
	Logger zerolog.Logger
}

// Extension injects field metadata into class docstrings. It implements
// docs.Hook.
type Extension struct {
	opts Options
}

// New returns an extension with the given options.
func New(opts Options) *Extension {
	return &Extension{opts: opts}
}

// OnClassInstance is invoked by the host once per class. Classes that are
// not syntax-backed, not selected, not resolvable at runtime or not
// record-like are skipped without side effects.
func (e *Extension) OnClassInstance(node *docs.ClassNode, cls *docs.Class, agent *docs.Agent) error {
	syntax, ok := node.Syntax()
	if !ok {
		return nil // runtime-only nodes are not supported
	}

	if len(e.opts.ObjectPaths) > 0 && !slices.Contains(e.opts.ObjectPaths, cls.Path) {
		return nil // class was not selected
	}

	// Resolve the live object to introspect its fields and docstring.
	runtimeObj, err := docs.Import(cls.Path)
	if err != nil {
		e.opts.Logger.Debug().Str("class", cls.Path).Err(err).
			Msg("could not resolve runtime object")
		return nil
	}

	adapter, err := fieldz.GetAdapter(runtimeObj)
	if err != nil {
		if errors.Is(err, fieldz.ErrNotAdaptable) {
			return nil
		}
		return err
	}
	return e.injectFields(syntax, cls, runtimeObj, adapter, agent)
}

func (e *Extension) injectFields(syntax *docs.SyntaxClass, cls *docs.Class, runtimeObj any, adapter fieldz.Adapter, agent *docs.Agent) error {
	// Fall back to the runtime object's docstring when the class has none.
	if cls.Docstring == nil {
		cls.Docstring = docs.NewDocstring(docs.Cleandoc(runtimeDoc(runtimeObj)), cls)
	}

	fields, err := adapter.Fields(runtimeObj)
	if err != nil {
		return err
	}
	if !e.opts.IncludeInherited {
		fields = ownFields(fields, runtimeObj)
	}

	params, attrs := e.collectEntries(syntax, cls.Docstring, fields, agent)

	// Merge field info into the docstring, never touching existing entries.
	if len(params) > 0 {
		if sec := cls.Docstring.FindSection(docs.SectionParameters); sec != nil {
			mergeEntries(sec, params)
		} else {
			cls.Docstring.InsertSection(1, docs.NewParametersSection(params))
		}
	}
	if len(attrs) > 0 {
		if sec := cls.Docstring.FindSection(docs.SectionAttributes); sec != nil {
			mergeEntries(sec, attrs)
		} else {
			cls.Docstring.AppendSection(docs.NewAttributesSection(attrs))
		}
	}
	return nil
}

// collectEntries re-visits the class body under a fresh member mapping, so
// each field name resolves to exactly its own annotation and doc comment,
// then builds the parameter and attribute entries for the given fields. The
// agent's previous member mapping is restored on the way out.
func (e *Extension) collectEntries(syntax *docs.SyntaxClass, ds *docs.Docstring, fields []fieldz.Field, agent *docs.Agent) (params, attrs []*docs.FieldEntry) {
	prev := agent.SwapMembers(map[string]*docs.Member{})
	defer agent.SwapMembers(prev)

	for _, d := range syntax.Body {
		if fd, ok := d.(*docs.FieldDecl); ok {
			agent.Visit(fd)
		}
	}

	for _, f := range fields {
		agentDoc, agentAnn := agentMember(agent, f.Name)

		// The agent's readings come from hand-written source and win over
		// whatever the adapter reports.
		description := agentDoc
		if description == "" {
			description = f.Description
		}
		if description == "" {
			description = f.Metadata["description"]
		}

		annotation := agentAnn
		if annotation == nil && f.Type != nil {
			annotation = docs.ParseAnnotation(fieldz.DisplayAsType(f.Type, true), ds)
		}

		value, _ := fieldz.DefaultRepr(f)

		entry := &docs.FieldEntry{
			Name:        f.Name,
			Annotation:  annotation,
			Description: strings.TrimSpace(docs.Cleandoc(description)),
			Value:       value,
		}
		switch {
		case f.Init:
			params = append(params, entry)
		case e.opts.IncludePrivate || !isPrivateName(f.Name):
			attrs = append(attrs, entry)
		}
	}
	return params, attrs
}

// agentMember returns the docstring and annotation the agent discovered for
// a same-named class-body declaration, if any.
func agentMember(agent *docs.Agent, name string) (string, *docs.Annotation) {
	m := agent.Current.Members[name]
	if m == nil {
		return "", nil
	}
	doc := ""
	if m.Docstring != nil {
		doc = m.Docstring.Value
	}
	return doc, m.Annotation
}

// ownFields drops fields that the runtime object does not declare itself,
// i.e. fields promoted from embedded types. Types that describe their own
// fields are taken at their word.
func ownFields(fields []fieldz.Field, runtimeObj any) []fieldz.Field {
	if _, ok := runtimeObj.(fieldz.Fielder); ok {
		return fields
	}
	t := reflect.TypeOf(runtimeObj)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fields // no embedding outside struct types
	}
	own := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			// The adapter reports tag name overrides, so the own set
			// must use the same names.
			own[fieldz.DeclaredName(f)] = true
		}
	}
	kept := fields[:0]
	for _, f := range fields {
		if own[f.Name] {
			kept = append(kept, f)
		}
	}
	return kept
}

// mergeEntries appends the entries whose names are not already present in
// the section. Existing entries are never modified or reordered, and the
// section stays duplicate-free even when entries repeat a name.
func mergeEntries(sec *docs.Section, entries []*docs.FieldEntry) {
	existing := map[string]bool{}
	for _, e := range sec.Fields {
		existing[e.Name] = true
	}
	for _, e := range entries {
		if !existing[e.Name] {
			sec.Fields = append(sec.Fields, e)
			existing[e.Name] = true
		}
	}
}

// isPrivateName reports whether a field name is private by convention:
// underscore-prefixed or unexported-style lowercase.
func isPrivateName(name string) bool {
	if strings.HasPrefix(name, "_") {
		return true
	}
	r := []rune(name)
	return len(r) > 0 && unicode.IsLower(r[0])
}

func runtimeDoc(obj any) string {
	if d, ok := obj.(docs.Documented); ok {
		return d.Doc()
	}
	return ""
}
