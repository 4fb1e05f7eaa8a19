package ast

import (
	"volt/internal/source"
)

// ArrayPattern: nil elements are elisions, как и в ArrayLit.
type ArrayPattern struct {
	Loc   source.Span
	Elems []Pattern
}

// PropertyPattern is one `key: target` (or shorthand) of an object
// pattern.
type PropertyPattern struct {
	Loc       source.Span
	Key       Expr
	Value     Pattern
	Computed  bool
	Shorthand bool
}

func (p *PropertyPattern) Span() source.Span { return p.Loc }

// ObjectPattern: Props mixes *PropertyPattern and *RestElement.
type ObjectPattern struct {
	Loc   source.Span
	Props []Node
}

// AssignPattern is `target = default`.
type AssignPattern struct {
	Loc     source.Span
	Target  Pattern
	Default Expr
}

// RestElement is `...target` in patterns and parameter lists.
type RestElement struct {
	Loc source.Span
	Arg Pattern
}

// MemberPattern wraps a member expression used as an assignment target
// in destructuring ([a.b] = x). Not a binding.
type MemberPattern struct {
	Loc source.Span
	X   *MemberExpr
}

func (p *ArrayPattern) Span() source.Span  { return p.Loc }
func (p *ObjectPattern) Span() source.Span { return p.Loc }
func (p *AssignPattern) Span() source.Span { return p.Loc }
func (p *RestElement) Span() source.Span   { return p.Loc }
func (p *MemberPattern) Span() source.Span { return p.Loc }

func (*Ident) patternNode()         {}
func (*ArrayPattern) patternNode()  {}
func (*ObjectPattern) patternNode() {}
func (*AssignPattern) patternNode() {}
func (*RestElement) patternNode()   {}
func (*MemberPattern) patternNode() {}
