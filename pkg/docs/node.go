package docs

import "reflect"

// NodeKind discriminates the two representations of a class the host can
// hand to an extension.
type NodeKind int

const (
	// KindSyntax marks a class backed by parsed source that can be
	// re-visited declaration by declaration.
	KindSyntax NodeKind = iota

	// KindRuntime marks a class known only through runtime reflection.
	KindRuntime
)

// ClassNode is the tagged variant the host passes to extension hooks.
type ClassNode struct {
	Kind NodeKind

	syntax  *SyntaxClass
	runtime reflect.Type
}

// NewSyntaxNode wraps a parsed class body.
func NewSyntaxNode(s *SyntaxClass) *ClassNode {
	return &ClassNode{Kind: KindSyntax, syntax: s}
}

// NewRuntimeNode wraps a reflected type.
func NewRuntimeNode(t reflect.Type) *ClassNode {
	return &ClassNode{Kind: KindRuntime, runtime: t}
}

// Syntax returns the parsed class body when the node is syntax-backed.
func (n *ClassNode) Syntax() (*SyntaxClass, bool) {
	if n.Kind != KindSyntax {
		return nil, false
	}
	return n.syntax, true
}

// Runtime returns the reflected type when the node is runtime-backed.
func (n *ClassNode) Runtime() (reflect.Type, bool) {
	if n.Kind != KindRuntime {
		return nil, false
	}
	return n.runtime, true
}

// SyntaxClass is the parsed body of one class declaration, in source order.
type SyntaxClass struct {
	Name string
	Body []Decl
}

// Decl is one declaration inside a class body.
type Decl interface {
	DeclName() string
}

// FieldDecl is a field declaration: a name, its rendered type annotation and
// any doc comment attached to it in source.
type FieldDecl struct {
	Name string
	Type string
	Doc  string
}

// DeclName returns the declared field name.
func (d *FieldDecl) DeclName() string { return d.Name }

// MethodDecl is a method declaration inside a class body.
type MethodDecl struct {
	Name string
	Doc  string
}

// DeclName returns the declared method name.
func (d *MethodDecl) DeclName() string { return d.Name }
