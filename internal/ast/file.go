package ast

import (
	"volt/internal/dialect"
	"volt/internal/source"
)

// File is the root node of a parsed source file.
type File struct {
	Loc        source.Span
	SourceType SourceType
	Dialects   dialect.Set
	Stmts      []Stmt
	// Hashbang covers a leading #! line if present.
	Hashbang *source.Span
}

func (f *File) Span() source.Span { return f.Loc }
