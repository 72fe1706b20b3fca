package docs

// Member is one entry of a scope's member mapping: a name together with the
// docstring and type annotation, if any, the agent discovered for it.
type Member struct {
	Name       string
	Docstring  *Docstring
	Annotation *Annotation
}

// Scope is the agent's view of the currently-visited class body.
type Scope struct {
	Members map[string]*Member
}

// Agent is the host's traversal agent. It accumulates member information for
// the scope it is currently visiting; extensions may swap the member mapping
// out temporarily to take isolated readings.
type Agent struct {
	Current *Scope
}

// NewAgent returns an agent with an empty current scope.
func NewAgent() *Agent {
	return &Agent{Current: &Scope{Members: map[string]*Member{}}}
}

// Visit records the given declaration in the current scope. Field
// declarations contribute their annotation and doc comment; other
// declarations contribute name only.
func (a *Agent) Visit(d Decl) {
	m := &Member{Name: d.DeclName()}
	switch d := d.(type) {
	case *FieldDecl:
		m.Annotation = ParseAnnotation(d.Type, nil)
		if doc := Cleandoc(d.Doc); doc != "" {
			m.Docstring = NewDocstring(doc, nil)
		}
	case *MethodDecl:
		if doc := Cleandoc(d.Doc); doc != "" {
			m.Docstring = NewDocstring(doc, nil)
		}
	}
	a.Current.Members[m.Name] = m
}

// VisitClass records every declaration of a class body.
func (a *Agent) VisitClass(c *SyntaxClass) {
	for _, d := range c.Body {
		a.Visit(d)
	}
}

// SwapMembers installs the given member mapping on the current scope and
// returns the previous one, so callers can restore it when done.
func (a *Agent) SwapMembers(members map[string]*Member) map[string]*Member {
	prev := a.Current.Members
	a.Current.Members = members
	return prev
}
