// Package docs holds the documentation host's object model: classes, their
// docstrings parsed into typed sections, the traversal agent that accumulates
// per-scope member information, and the runtime object registry extensions
// resolve classes against.
package docs

// SectionKind discriminates the typed blocks of a parsed docstring.
type SectionKind string

// Known section kinds, in the order the parser recognises their headers.
const (
	SectionText       SectionKind = "text"
	SectionParameters SectionKind = "parameters"
	SectionAttributes SectionKind = "attributes"
	SectionReturns    SectionKind = "returns"
	SectionExamples   SectionKind = "examples"
)

// FieldEntry is one named entry of a parameters or attributes section.
type FieldEntry struct {
	Name        string      `json:"name" yaml:"name"`
	Annotation  *Annotation `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
}

// Section is one typed block of a parsed docstring. Text-bearing kinds use
// Text; parameters and attributes sections use the ordered Fields list.
type Section struct {
	Kind   SectionKind   `json:"kind" yaml:"kind"`
	Text   string        `json:"text,omitempty" yaml:"text,omitempty"`
	Fields []*FieldEntry `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// NewParametersSection returns a parameters section holding entries.
func NewParametersSection(entries []*FieldEntry) *Section {
	return &Section{Kind: SectionParameters, Fields: entries}
}

// NewAttributesSection returns an attributes section holding entries.
func NewAttributesSection(entries []*FieldEntry) *Section {
	return &Section{Kind: SectionAttributes, Fields: entries}
}

// Docstring is a class or member docstring together with its parsed section
// list. Sections is mutable and order-preserving; extensions append to it.
type Docstring struct {
	Value    string     `json:"value" yaml:"value"`
	Sections []*Section `json:"sections,omitempty" yaml:"sections,omitempty"`

	parent *Class
}

// NewDocstring parses value into sections and attaches the result to parent.
// Parent may be nil for member docstrings.
func NewDocstring(value string, parent *Class) *Docstring {
	return &Docstring{Value: value, Sections: ParseSections(value), parent: parent}
}

// Parent returns the class the docstring is attached to, if any.
func (d *Docstring) Parent() *Class { return d.parent }

// FindSection returns the first section of the given kind, or nil.
func (d *Docstring) FindSection(kind SectionKind) *Section {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

// InsertSection places s at index i, clamped to the section list bounds.
func (d *Docstring) InsertSection(i int, s *Section) {
	if i > len(d.Sections) {
		i = len(d.Sections)
	}
	d.Sections = append(d.Sections, nil)
	copy(d.Sections[i+1:], d.Sections[i:])
	d.Sections[i] = s
}

// AppendSection places s at the end of the section list.
func (d *Docstring) AppendSection(s *Section) {
	d.Sections = append(d.Sections, s)
}

// Class is the host's representation of one documented class.
type Class struct {
	// Path is the class's fully-qualified path, e.g. "examples.Server".
	Path string `json:"path" yaml:"path"`

	// Name is the class's bare name.
	Name string `json:"name" yaml:"name"`

	// Docstring is nil when the class carries no documentation yet.
	Docstring *Docstring `json:"docstring,omitempty" yaml:"docstring,omitempty"`
}

// Documented is implemented by runtime objects that carry a docstring,
// the runtime counterpart of a source-level doc comment.
type Documented interface {
	Doc() string
}
