package ast

import (
	"volt/internal/source"
)

// Node is the common interface of every syntax tree node.
type Node interface {
	Span() source.Span
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes (declarations included:
// in JS a declaration can appear anywhere a statement can).
type Stmt interface {
	Node
	stmtNode()
}

// Pattern is implemented by binding targets: identifiers, array and
// object destructuring, defaults and rest elements.
type Pattern interface {
	Node
	patternNode()
}

// SourceType различает script и module: от него зависят strict mode по
// умолчанию и допустимость import/export на верхнем уровне.
type SourceType uint8

const (
	Script SourceType = iota
	Module
)

func (st SourceType) String() string {
	if st == Module {
		return "module"
	}
	return "script"
}

// TypeAnn is an opaque type annotation. The parser consumes annotation
// syntax when the corresponding dialect is active but does not build a
// type tree; the raw text is recoverable from the span.
type TypeAnn struct {
	Loc source.Span
}

func (t *TypeAnn) Span() source.Span { return t.Loc }

// Decorator is an `@expr` attached to a class or a class member.
type Decorator struct {
	Loc  source.Span
	Expr Expr
}

func (d *Decorator) Span() source.Span { return d.Loc }
