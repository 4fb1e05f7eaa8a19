package ast

import (
	"volt/internal/source"
)

// JSXName is an element name: ident, member chain, or namespaced.
type JSXName interface {
	Node
	jsxName()
}

type JSXIdent struct {
	Loc  source.Span
	Name string
}

type JSXMember struct {
	Loc  source.Span
	Obj  JSXName
	Prop *JSXIdent
}

// JSXNamespacedName: ns:name.
type JSXNamespacedName struct {
	Loc  source.Span
	NS   *JSXIdent
	Name *JSXIdent
}

// JSXAttr: Value is nil (bare attr), *StringLit, *JSXExprContainer or a
// nested *JSXElement.
type JSXAttr struct {
	Loc   source.Span
	Name  JSXName
	Value Node
}

func (a *JSXAttr) Span() source.Span { return a.Loc }

type JSXSpreadAttr struct {
	Loc source.Span
	Arg Expr
}

func (a *JSXSpreadAttr) Span() source.Span { return a.Loc }

type JSXOpening struct {
	Loc         source.Span
	Name        JSXName
	Attrs       []Node // *JSXAttr и *JSXSpreadAttr
	SelfClosing bool
}

func (o *JSXOpening) Span() source.Span { return o.Loc }

type JSXClosing struct {
	Loc  source.Span
	Name JSXName
}

func (c *JSXClosing) Span() source.Span { return c.Loc }

// JSXElement: Closing is nil for self-closing elements.
type JSXElement struct {
	Loc      source.Span
	Opening  *JSXOpening
	Children []Node // *JSXText, *JSXExprContainer, *JSXElement, *JSXFragment
	Closing  *JSXClosing
}

// JSXFragment is <>...</>.
type JSXFragment struct {
	Loc      source.Span
	Children []Node
}

// JSXText keeps the raw run between tags, whitespace included.
type JSXText struct {
	Loc source.Span
	Raw string
}

// JSXExprContainer: X is nil for the empty expression {}.
type JSXExprContainer struct {
	Loc source.Span
	X   Expr
}

func (n *JSXIdent) Span() source.Span          { return n.Loc }
func (n *JSXMember) Span() source.Span         { return n.Loc }
func (n *JSXNamespacedName) Span() source.Span { return n.Loc }
func (n *JSXElement) Span() source.Span        { return n.Loc }
func (n *JSXFragment) Span() source.Span       { return n.Loc }
func (n *JSXText) Span() source.Span           { return n.Loc }
func (n *JSXExprContainer) Span() source.Span  { return n.Loc }

func (*JSXIdent) jsxName()          {}
func (*JSXMember) jsxName()         {}
func (*JSXNamespacedName) jsxName() {}

func (*JSXElement) exprNode()  {}
func (*JSXFragment) exprNode() {}
