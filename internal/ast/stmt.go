package ast

import (
	"volt/internal/source"
)

type BlockStmt struct {
	Loc   source.Span
	Stmts []Stmt
}

type ExprStmt struct {
	Loc source.Span
	X   Expr
}

type EmptyStmt struct {
	Loc source.Span
}

type DebuggerStmt struct {
	Loc source.Span
}

type IfStmt struct {
	Loc  source.Span
	Test Expr
	Cons Stmt
	Alt  Stmt // nil когда нет else
}

// ForStmt: Init is nil, *VarDecl or Expr.
type ForStmt struct {
	Loc    source.Span
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

// ForInStmt: Left is *VarDecl or Pattern.
type ForInStmt struct {
	Loc   source.Span
	Left  Node
	Right Expr
	Body  Stmt
}

type ForOfStmt struct {
	Loc   source.Span
	Left  Node
	Right Expr
	Body  Stmt
	Await bool // for await (... of ...)
}

type WhileStmt struct {
	Loc  source.Span
	Test Expr
	Body Stmt
}

type DoWhileStmt struct {
	Loc  source.Span
	Body Stmt
	Test Expr
}

// SwitchCase: Test == nil обозначает default.
type SwitchCase struct {
	Loc  source.Span
	Test Expr
	Body []Stmt
}

func (c *SwitchCase) Span() source.Span { return c.Loc }

type SwitchStmt struct {
	Loc   source.Span
	Disc  Expr
	Cases []*SwitchCase
}

type BreakStmt struct {
	Loc   source.Span
	Label *Ident
}

type ContinueStmt struct {
	Loc   source.Span
	Label *Ident
}

type ReturnStmt struct {
	Loc source.Span
	Arg Expr
}

type ThrowStmt struct {
	Loc source.Span
	Arg Expr
}

// CatchClause: Param is nil for the optional-binding form `catch {}`.
type CatchClause struct {
	Loc   source.Span
	Param Pattern
	Body  *BlockStmt
}

func (c *CatchClause) Span() source.Span { return c.Loc }

type TryStmt struct {
	Loc     source.Span
	Block   *BlockStmt
	Handler *CatchClause
	Finally *BlockStmt
}

type LabeledStmt struct {
	Loc   source.Span
	Label *Ident
	Body  Stmt
}

type WithStmt struct {
	Loc  source.Span
	Obj  Expr
	Body Stmt
}

// BadStmt marks a region skipped during error recovery.
type BadStmt struct {
	Loc source.Span
}

func (s *BlockStmt) Span() source.Span    { return s.Loc }
func (s *ExprStmt) Span() source.Span     { return s.Loc }
func (s *EmptyStmt) Span() source.Span    { return s.Loc }
func (s *DebuggerStmt) Span() source.Span { return s.Loc }
func (s *IfStmt) Span() source.Span       { return s.Loc }
func (s *ForStmt) Span() source.Span      { return s.Loc }
func (s *ForInStmt) Span() source.Span    { return s.Loc }
func (s *ForOfStmt) Span() source.Span    { return s.Loc }
func (s *WhileStmt) Span() source.Span    { return s.Loc }
func (s *DoWhileStmt) Span() source.Span  { return s.Loc }
func (s *SwitchStmt) Span() source.Span   { return s.Loc }
func (s *BreakStmt) Span() source.Span    { return s.Loc }
func (s *ContinueStmt) Span() source.Span { return s.Loc }
func (s *ReturnStmt) Span() source.Span   { return s.Loc }
func (s *ThrowStmt) Span() source.Span    { return s.Loc }
func (s *TryStmt) Span() source.Span      { return s.Loc }
func (s *LabeledStmt) Span() source.Span  { return s.Loc }
func (s *WithStmt) Span() source.Span     { return s.Loc }
func (s *BadStmt) Span() source.Span      { return s.Loc }

func (*BlockStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()    {}
func (*DebuggerStmt) stmtNode() {}
func (*IfStmt) stmtNode()       {}
func (*ForStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()    {}
func (*ForOfStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*SwitchStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*ThrowStmt) stmtNode()    {}
func (*TryStmt) stmtNode()      {}
func (*LabeledStmt) stmtNode()  {}
func (*WithStmt) stmtNode()     {}
func (*BadStmt) stmtNode()      {}
