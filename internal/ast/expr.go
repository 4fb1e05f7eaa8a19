package ast

import (
	"volt/internal/source"
	"volt/internal/token"
)

// Ident is a (possibly contextual-keyword) identifier. It doubles as a
// binding pattern.
type Ident struct {
	Loc  source.Span
	Name string
}

// PrivateName is `#name`, valid only as a class member key or the left
// operand of `#name in obj`.
type PrivateName struct {
	Loc  source.Span
	Name string // без решётки
}

type ThisExpr struct {
	Loc source.Span
}

// SuperExpr appears only as the callee of super(...) or the object of
// super.x; the parser enforces the context.
type SuperExpr struct {
	Loc source.Span
}

type NullLit struct {
	Loc source.Span
}

type BoolLit struct {
	Loc   source.Span
	Value bool
}

// NumberLit keeps the raw text: strict-mode legacy octal checks and
// exact reproduction both need it.
type NumberLit struct {
	Loc source.Span
	Raw string
}

type BigIntLit struct {
	Loc source.Span
	Raw string // включая суффикс n
}

type StringLit struct {
	Loc source.Span
	Raw string // including quotes
}

type RegExpLit struct {
	Loc     source.Span
	Pattern string
	Flags   string
}

// TemplateElement is one quasi of a template literal.
type TemplateElement struct {
	Loc  source.Span
	Raw  string
	Tail bool
}

func (e *TemplateElement) Span() source.Span { return e.Loc }

// TemplateLit: len(Quasis) == len(Exprs)+1.
type TemplateLit struct {
	Loc    source.Span
	Quasis []*TemplateElement
	Exprs  []Expr
}

type TaggedTemplate struct {
	Loc   source.Span
	Tag   Expr
	Quasi *TemplateLit
}

// ArrayLit: nil elements are elisions (holes).
type ArrayLit struct {
	Loc   source.Span
	Elems []Expr
}

type PropKind uint8

const (
	PropInit PropKind = iota
	PropGet
	PropSet
)

// ObjectProp is a key:value property, a shorthand, or a method.
type ObjectProp struct {
	Loc       source.Span
	Key       Expr
	Value     Expr
	Kind      PropKind
	Computed  bool
	Shorthand bool
	Method    bool
}

func (p *ObjectProp) Span() source.Span { return p.Loc }

// ObjectLit: Props mixes *ObjectProp and *SpreadElement.
type ObjectLit struct {
	Loc   source.Span
	Props []Node
}

// SpreadElement is `...expr` in calls, arrays and object literals.
type SpreadElement struct {
	Loc source.Span
	Arg Expr
}

// FuncExpr covers function expressions; Name is nil when anonymous.
type FuncExpr struct {
	Loc  source.Span
	Name *Ident
	Fn   Function
}

// ArrowFunc: Body is either Expr or *BlockStmt.
type ArrowFunc struct {
	Loc       source.Span
	Params    []*Param
	ReturnAnn *TypeAnn
	Body      Node
	Async     bool
}

type ClassExpr struct {
	Loc  source.Span
	Name *Ident
	Cls  Class
}

// UnaryExpr: delete, void, typeof, +, -, ~, !.
type UnaryExpr struct {
	Loc source.Span
	Op  token.Kind
	Arg Expr
}

// UpdateExpr: ++ and -- in either position.
type UpdateExpr struct {
	Loc    source.Span
	Op     token.Kind
	Prefix bool
	Arg    Expr
}

// BinaryExpr covers arithmetic, comparison, bitwise, logical (&&, ||,
// ??), `in`, `instanceof` and the pipeline operator.
type BinaryExpr struct {
	Loc   source.Span
	Op    token.Kind
	Left  Expr
	Right Expr
}

// AssignExpr: Target is a Pattern for destructuring `=`, otherwise an
// Expr reference.
type AssignExpr struct {
	Loc    source.Span
	Op     token.Kind
	Target Node
	Value  Expr
}

type CondExpr struct {
	Loc  source.Span
	Test Expr
	Cons Expr
	Alt  Expr
}

type CallExpr struct {
	Loc      source.Span
	Callee   Expr
	Args     []Expr
	Optional bool // ?.()
}

type NewExpr struct {
	Loc    source.Span
	Callee Expr
	Args   []Expr // nil когда скобки опущены: new Foo
}

type MemberExpr struct {
	Loc      source.Span
	Obj      Expr
	Prop     Expr // *Ident, *PrivateName или произвольный Expr при Computed
	Computed bool
	Optional bool // ?.
}

// SeqExpr is the comma operator.
type SeqExpr struct {
	Loc   source.Span
	Exprs []Expr
}

type YieldExpr struct {
	Loc      source.Span
	Arg      Expr // может быть nil
	Delegate bool // yield*
}

type AwaitExpr struct {
	Loc source.Span
	Arg Expr
}

type ParenExpr struct {
	Loc source.Span
	X   Expr
}

// MetaProp is new.target or import.meta.
type MetaProp struct {
	Loc  source.Span
	Meta string
	Prop string
}

// ImportCall is dynamic import(expr).
type ImportCall struct {
	Loc source.Span
	Arg Expr
}

// BadExpr is a placeholder emitted during error recovery so that the
// partial tree stays well formed.
type BadExpr struct {
	Loc source.Span
}

func (e *Ident) Span() source.Span          { return e.Loc }
func (e *PrivateName) Span() source.Span    { return e.Loc }
func (e *ThisExpr) Span() source.Span       { return e.Loc }
func (e *SuperExpr) Span() source.Span      { return e.Loc }
func (e *NullLit) Span() source.Span        { return e.Loc }
func (e *BoolLit) Span() source.Span        { return e.Loc }
func (e *NumberLit) Span() source.Span      { return e.Loc }
func (e *BigIntLit) Span() source.Span      { return e.Loc }
func (e *StringLit) Span() source.Span      { return e.Loc }
func (e *RegExpLit) Span() source.Span      { return e.Loc }
func (e *TemplateLit) Span() source.Span    { return e.Loc }
func (e *TaggedTemplate) Span() source.Span { return e.Loc }
func (e *ArrayLit) Span() source.Span       { return e.Loc }
func (e *ObjectLit) Span() source.Span      { return e.Loc }
func (e *SpreadElement) Span() source.Span  { return e.Loc }
func (e *FuncExpr) Span() source.Span       { return e.Loc }
func (e *ArrowFunc) Span() source.Span      { return e.Loc }
func (e *ClassExpr) Span() source.Span      { return e.Loc }
func (e *UnaryExpr) Span() source.Span      { return e.Loc }
func (e *UpdateExpr) Span() source.Span     { return e.Loc }
func (e *BinaryExpr) Span() source.Span     { return e.Loc }
func (e *AssignExpr) Span() source.Span     { return e.Loc }
func (e *CondExpr) Span() source.Span       { return e.Loc }
func (e *CallExpr) Span() source.Span       { return e.Loc }
func (e *NewExpr) Span() source.Span        { return e.Loc }
func (e *MemberExpr) Span() source.Span     { return e.Loc }
func (e *SeqExpr) Span() source.Span        { return e.Loc }
func (e *YieldExpr) Span() source.Span      { return e.Loc }
func (e *AwaitExpr) Span() source.Span      { return e.Loc }
func (e *ParenExpr) Span() source.Span      { return e.Loc }
func (e *MetaProp) Span() source.Span       { return e.Loc }
func (e *ImportCall) Span() source.Span     { return e.Loc }
func (e *BadExpr) Span() source.Span        { return e.Loc }

func (*Ident) exprNode()          {}
func (*PrivateName) exprNode()    {}
func (*ThisExpr) exprNode()       {}
func (*SuperExpr) exprNode()      {}
func (*NullLit) exprNode()        {}
func (*BoolLit) exprNode()        {}
func (*NumberLit) exprNode()      {}
func (*BigIntLit) exprNode()      {}
func (*StringLit) exprNode()      {}
func (*RegExpLit) exprNode()      {}
func (*TemplateLit) exprNode()    {}
func (*TaggedTemplate) exprNode() {}
func (*ArrayLit) exprNode()       {}
func (*ObjectLit) exprNode()      {}
func (*SpreadElement) exprNode()  {}
func (*FuncExpr) exprNode()       {}
func (*ArrowFunc) exprNode()      {}
func (*ClassExpr) exprNode()      {}
func (*UnaryExpr) exprNode()      {}
func (*UpdateExpr) exprNode()     {}
func (*BinaryExpr) exprNode()     {}
func (*AssignExpr) exprNode()     {}
func (*CondExpr) exprNode()       {}
func (*CallExpr) exprNode()       {}
func (*NewExpr) exprNode()        {}
func (*MemberExpr) exprNode()     {}
func (*SeqExpr) exprNode()        {}
func (*YieldExpr) exprNode()      {}
func (*AwaitExpr) exprNode()      {}
func (*ParenExpr) exprNode()      {}
func (*MetaProp) exprNode()       {}
func (*ImportCall) exprNode()     {}
func (*BadExpr) exprNode()        {}
