package ast

import (
	"volt/internal/source"
)

// VarKind distinguishes var, let and const declarations.
type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

// VarDeclarator is one `pattern = init` inside a declaration list.
type VarDeclarator struct {
	Loc  source.Span
	ID   Pattern
	Ann  *TypeAnn
	Init Expr
}

func (d *VarDeclarator) Span() source.Span { return d.Loc }

type VarDecl struct {
	Loc   source.Span
	Kind  VarKind
	Decls []*VarDeclarator
}

// Function собирает общие поля function-подобных узлов.
type Function struct {
	Params    []*Param
	ReturnAnn *TypeAnn
	Body      *BlockStmt
	Async     bool
	Generator bool
}

// Param is a formal parameter with an optional annotation. Pat already
// carries defaults (AssignPattern) and rest (RestElement).
type Param struct {
	Loc source.Span
	Pat Pattern
	Ann *TypeAnn
}

func (p *Param) Span() source.Span { return p.Loc }

type FuncDecl struct {
	Loc  source.Span
	Name *Ident
	Fn   Function
}

// MemberKind classifies class methods.
type MemberKind uint8

const (
	MemberMethod MemberKind = iota
	MemberGet
	MemberSet
	MemberCtor
)

// MethodDef: Key is *Ident, *PrivateName, *StringLit, *NumberLit or a
// computed Expr.
type MethodDef struct {
	Loc        source.Span
	Key        Expr
	Kind       MemberKind
	Fn         Function
	Computed   bool
	Static     bool
	Decorators []*Decorator
}

func (m *MethodDef) Span() source.Span { return m.Loc }

// PropertyDef is a class field; Value may be nil.
type PropertyDef struct {
	Loc        source.Span
	Key        Expr
	Ann        *TypeAnn
	Value      Expr
	Computed   bool
	Static     bool
	Decorators []*Decorator
}

func (p *PropertyDef) Span() source.Span { return p.Loc }

// StaticBlock is `static { ... }`.
type StaticBlock struct {
	Loc  source.Span
	Body *BlockStmt
}

func (b *StaticBlock) Span() source.Span { return b.Loc }

// Class: Members mixes *MethodDef, *PropertyDef and *StaticBlock.
type Class struct {
	SuperClass Expr
	Members    []Node
	Decorators []*Decorator
}

type ClassDecl struct {
	Loc  source.Span
	Name *Ident
	Cls  Class
}

// ImportSpecKind: default import, namespace import, или именованный.
type ImportSpecKind uint8

const (
	ImportDefault ImportSpecKind = iota
	ImportNamespace
	ImportNamed
)

// ImportSpec: Imported is nil except for named imports, where it may be
// a string literal name (`import { "a b" as x }`).
type ImportSpec struct {
	Loc      source.Span
	Kind     ImportSpecKind
	Imported Expr // *Ident или *StringLit
	Local    *Ident
}

func (s *ImportSpec) Span() source.Span { return s.Loc }

type ImportDecl struct {
	Loc    source.Span
	Specs  []*ImportSpec
	Source *StringLit
}

// ExportSpec: `x as y`; Exported may be a *StringLit.
type ExportSpec struct {
	Loc      source.Span
	Local    *Ident
	Exported Expr // nil когда без as
}

func (s *ExportSpec) Span() source.Span { return s.Loc }

// ExportNamedDecl: either Decl (export const x = 1) or Specs with an
// optional re-export Source.
type ExportNamedDecl struct {
	Loc    source.Span
	Decl   Stmt
	Specs  []*ExportSpec
	Source *StringLit
}

// ExportDefaultDecl: Decl is Expr, *FuncDecl or *ClassDecl.
type ExportDefaultDecl struct {
	Loc  source.Span
	Decl Node
}

// ExportAllDecl: `export * from "m"` or `export * as ns from "m"`.
type ExportAllDecl struct {
	Loc    source.Span
	Name   *Ident
	Source *StringLit
}

func (d *VarDecl) Span() source.Span           { return d.Loc }
func (d *FuncDecl) Span() source.Span          { return d.Loc }
func (d *ClassDecl) Span() source.Span         { return d.Loc }
func (d *ImportDecl) Span() source.Span        { return d.Loc }
func (d *ExportNamedDecl) Span() source.Span   { return d.Loc }
func (d *ExportDefaultDecl) Span() source.Span { return d.Loc }
func (d *ExportAllDecl) Span() source.Span     { return d.Loc }

func (*VarDecl) stmtNode()           {}
func (*FuncDecl) stmtNode()          {}
func (*ClassDecl) stmtNode()         {}
func (*ImportDecl) stmtNode()        {}
func (*ExportNamedDecl) stmtNode()   {}
func (*ExportDefaultDecl) stmtNode() {}
func (*ExportAllDecl) stmtNode()     {}
