package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"volt/internal/ast"
	"volt/internal/source"
)

// DumpAST печатает дерево файла с отступами, типами узлов и span'ами.
// Формат строки: <Type> [start..end] <детали>.
func DumpAST(w io.Writer, f *ast.File, fs *source.FileSet) {
	d := astDumper{w: w, fs: fs}
	fmt.Fprintf(w, "File [%d..%d] %s dialects=%s\n",
		f.Loc.Start, f.Loc.End, f.SourceType, f.Dialects)
	if f.Hashbang != nil {
		fmt.Fprintf(w, "  Hashbang [%d..%d]\n", f.Hashbang.Start, f.Hashbang.End)
	}
	for _, st := range f.Stmts {
		d.node(st, 1)
	}
}

type astDumper struct {
	w  io.Writer
	fs *source.FileSet
}

func (d *astDumper) line(depth int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *astDumper) head(depth int, name string, sp source.Span, extra string) {
	if extra != "" {
		d.line(depth, "%s [%d..%d] %s", name, sp.Start, sp.End, extra)
		return
	}
	d.line(depth, "%s [%d..%d]", name, sp.Start, sp.End)
}

func (d *astDumper) node(n ast.Node, depth int) {
	switch x := n.(type) {
	case nil:
		d.line(depth, "<nil>")

	// выражения
	case *ast.Ident:
		d.head(depth, "Ident", x.Loc, x.Name)
	case *ast.PrivateName:
		d.head(depth, "PrivateName", x.Loc, "#"+x.Name)
	case *ast.ThisExpr:
		d.head(depth, "This", x.Loc, "")
	case *ast.SuperExpr:
		d.head(depth, "Super", x.Loc, "")
	case *ast.NullLit:
		d.head(depth, "Null", x.Loc, "")
	case *ast.BoolLit:
		d.head(depth, "Bool", x.Loc, fmt.Sprint(x.Value))
	case *ast.NumberLit:
		d.head(depth, "Number", x.Loc, x.Raw)
	case *ast.BigIntLit:
		d.head(depth, "BigInt", x.Loc, x.Raw)
	case *ast.StringLit:
		d.head(depth, "String", x.Loc, x.Raw)
	case *ast.RegExpLit:
		d.head(depth, "RegExp", x.Loc, "/"+x.Pattern+"/"+x.Flags)
	case *ast.TemplateLit:
		d.head(depth, "Template", x.Loc, "")
		for i, q := range x.Quasis {
			d.head(depth+1, "Quasi", q.Loc, fmt.Sprintf("%q", q.Raw))
			if i < len(x.Exprs) {
				d.node(x.Exprs[i], depth+1)
			}
		}
	case *ast.TaggedTemplate:
		d.head(depth, "TaggedTemplate", x.Loc, "")
		d.node(x.Tag, depth+1)
		d.node(x.Quasi, depth+1)
	case *ast.ArrayLit:
		d.head(depth, "Array", x.Loc, "")
		for _, el := range x.Elems {
			if el == nil {
				d.line(depth+1, "<hole>")
				continue
			}
			d.node(el, depth+1)
		}
	case *ast.ObjectLit:
		d.head(depth, "Object", x.Loc, "")
		for _, p := range x.Props {
			d.node(p, depth+1)
		}
	case *ast.ObjectProp:
		d.head(depth, "Prop", x.Loc, propExtra(x))
		d.node(x.Key, depth+1)
		if x.Value != nil {
			d.node(x.Value, depth+1)
		}
	case *ast.SpreadElement:
		d.head(depth, "Spread", x.Loc, "")
		d.node(x.Arg, depth+1)
	case *ast.FuncExpr:
		d.head(depth, "FuncExpr", x.Loc, funcExtra(x.Fn))
		if x.Name != nil {
			d.node(x.Name, depth+1)
		}
		d.function(x.Fn, depth+1)
	case *ast.ArrowFunc:
		extra := ""
		if x.Async {
			extra = "async"
		}
		d.head(depth, "Arrow", x.Loc, extra)
		for _, p := range x.Params {
			d.param(p, depth+1)
		}
		d.node(x.Body, depth+1)
	case *ast.ClassExpr:
		d.head(depth, "ClassExpr", x.Loc, "")
		if x.Name != nil {
			d.node(x.Name, depth+1)
		}
		d.class(x.Cls, depth+1)
	case *ast.UnaryExpr:
		d.head(depth, "Unary", x.Loc, x.Op.String())
		d.node(x.Arg, depth+1)
	case *ast.UpdateExpr:
		pos := "postfix"
		if x.Prefix {
			pos = "prefix"
		}
		d.head(depth, "Update", x.Loc, x.Op.String()+" "+pos)
		d.node(x.Arg, depth+1)
	case *ast.BinaryExpr:
		d.head(depth, "Binary", x.Loc, x.Op.String())
		d.node(x.Left, depth+1)
		d.node(x.Right, depth+1)
	case *ast.AssignExpr:
		d.head(depth, "Assign", x.Loc, x.Op.String())
		d.node(x.Target, depth+1)
		d.node(x.Value, depth+1)
	case *ast.CondExpr:
		d.head(depth, "Cond", x.Loc, "")
		d.node(x.Test, depth+1)
		d.node(x.Cons, depth+1)
		d.node(x.Alt, depth+1)
	case *ast.CallExpr:
		extra := ""
		if x.Optional {
			extra = "optional"
		}
		d.head(depth, "Call", x.Loc, extra)
		d.node(x.Callee, depth+1)
		for _, a := range x.Args {
			d.node(a, depth+1)
		}
	case *ast.NewExpr:
		d.head(depth, "New", x.Loc, "")
		d.node(x.Callee, depth+1)
		for _, a := range x.Args {
			d.node(a, depth+1)
		}
	case *ast.MemberExpr:
		extra := ""
		if x.Computed {
			extra = "computed"
		}
		if x.Optional {
			extra = strings.TrimSpace(extra + " optional")
		}
		d.head(depth, "Member", x.Loc, extra)
		d.node(x.Obj, depth+1)
		d.node(x.Prop, depth+1)
	case *ast.SeqExpr:
		d.head(depth, "Seq", x.Loc, "")
		for _, e := range x.Exprs {
			d.node(e, depth+1)
		}
	case *ast.YieldExpr:
		extra := ""
		if x.Delegate {
			extra = "delegate"
		}
		d.head(depth, "Yield", x.Loc, extra)
		if x.Arg != nil {
			d.node(x.Arg, depth+1)
		}
	case *ast.AwaitExpr:
		d.head(depth, "Await", x.Loc, "")
		d.node(x.Arg, depth+1)
	case *ast.ParenExpr:
		d.head(depth, "Paren", x.Loc, "")
		d.node(x.X, depth+1)
	case *ast.MetaProp:
		d.head(depth, "MetaProp", x.Loc, x.Meta+"."+x.Prop)
	case *ast.ImportCall:
		d.head(depth, "ImportCall", x.Loc, "")
		d.node(x.Arg, depth+1)
	case *ast.BadExpr:
		d.head(depth, "BadExpr", x.Loc, "")

	// JSX
	case *ast.JSXElement:
		d.head(depth, "JSXElement", x.Loc, jsxName(x.Opening.Name))
		for _, a := range x.Opening.Attrs {
			d.node(a, depth+1)
		}
		for _, c := range x.Children {
			d.node(c, depth+1)
		}
	case *ast.JSXFragment:
		d.head(depth, "JSXFragment", x.Loc, "")
		for _, c := range x.Children {
			d.node(c, depth+1)
		}
	case *ast.JSXAttr:
		d.head(depth, "JSXAttr", x.Loc, jsxName(x.Name))
		if x.Value != nil {
			d.node(x.Value, depth+1)
		}
	case *ast.JSXSpreadAttr:
		d.head(depth, "JSXSpreadAttr", x.Loc, "")
		d.node(x.Arg, depth+1)
	case *ast.JSXText:
		d.head(depth, "JSXText", x.Loc, fmt.Sprintf("%q", x.Raw))
	case *ast.JSXExprContainer:
		d.head(depth, "JSXExpr", x.Loc, "")
		if x.X != nil {
			d.node(x.X, depth+1)
		}

	// операторы
	case *ast.BlockStmt:
		d.head(depth, "Block", x.Loc, "")
		for _, st := range x.Stmts {
			d.node(st, depth+1)
		}
	case *ast.ExprStmt:
		d.head(depth, "ExprStmt", x.Loc, "")
		d.node(x.X, depth+1)
	case *ast.EmptyStmt:
		d.head(depth, "Empty", x.Loc, "")
	case *ast.DebuggerStmt:
		d.head(depth, "Debugger", x.Loc, "")
	case *ast.IfStmt:
		d.head(depth, "If", x.Loc, "")
		d.node(x.Test, depth+1)
		d.node(x.Cons, depth+1)
		if x.Alt != nil {
			d.node(x.Alt, depth+1)
		}
	case *ast.ForStmt:
		d.head(depth, "For", x.Loc, "")
		if x.Init != nil {
			d.node(x.Init, depth+1)
		}
		if x.Test != nil {
			d.node(x.Test, depth+1)
		}
		if x.Update != nil {
			d.node(x.Update, depth+1)
		}
		d.node(x.Body, depth+1)
	case *ast.ForInStmt:
		d.head(depth, "ForIn", x.Loc, "")
		d.node(x.Left, depth+1)
		d.node(x.Right, depth+1)
		d.node(x.Body, depth+1)
	case *ast.ForOfStmt:
		extra := ""
		if x.Await {
			extra = "await"
		}
		d.head(depth, "ForOf", x.Loc, extra)
		d.node(x.Left, depth+1)
		d.node(x.Right, depth+1)
		d.node(x.Body, depth+1)
	case *ast.WhileStmt:
		d.head(depth, "While", x.Loc, "")
		d.node(x.Test, depth+1)
		d.node(x.Body, depth+1)
	case *ast.DoWhileStmt:
		d.head(depth, "DoWhile", x.Loc, "")
		d.node(x.Body, depth+1)
		d.node(x.Test, depth+1)
	case *ast.SwitchStmt:
		d.head(depth, "Switch", x.Loc, "")
		d.node(x.Disc, depth+1)
		for _, c := range x.Cases {
			name := "Case"
			if c.Test == nil {
				name = "Default"
			}
			d.head(depth+1, name, c.Loc, "")
			if c.Test != nil {
				d.node(c.Test, depth+2)
			}
			for _, st := range c.Body {
				d.node(st, depth+2)
			}
		}
	case *ast.BreakStmt:
		d.head(depth, "Break", x.Loc, labelName(x.Label))
	case *ast.ContinueStmt:
		d.head(depth, "Continue", x.Loc, labelName(x.Label))
	case *ast.ReturnStmt:
		d.head(depth, "Return", x.Loc, "")
		if x.Arg != nil {
			d.node(x.Arg, depth+1)
		}
	case *ast.ThrowStmt:
		d.head(depth, "Throw", x.Loc, "")
		d.node(x.Arg, depth+1)
	case *ast.TryStmt:
		d.head(depth, "Try", x.Loc, "")
		d.node(x.Block, depth+1)
		if x.Handler != nil {
			d.head(depth+1, "Catch", x.Handler.Loc, "")
			if x.Handler.Param != nil {
				d.node(x.Handler.Param, depth+2)
			}
			d.node(x.Handler.Body, depth+2)
		}
		if x.Finally != nil {
			d.node(x.Finally, depth+1)
		}
	case *ast.LabeledStmt:
		d.head(depth, "Labeled", x.Loc, x.Label.Name)
		d.node(x.Body, depth+1)
	case *ast.WithStmt:
		d.head(depth, "With", x.Loc, "")
		d.node(x.Obj, depth+1)
		d.node(x.Body, depth+1)
	case *ast.BadStmt:
		d.head(depth, "BadStmt", x.Loc, "")

	// декларации
	case *ast.VarDecl:
		d.head(depth, "VarDecl", x.Loc, x.Kind.String())
		for _, dec := range x.Decls {
			d.head(depth+1, "Declarator", dec.Loc, "")
			d.node(dec.ID, depth+2)
			if dec.Init != nil {
				d.node(dec.Init, depth+2)
			}
		}
	case *ast.FuncDecl:
		d.head(depth, "FuncDecl", x.Loc, funcExtra(x.Fn))
		if x.Name != nil {
			d.node(x.Name, depth+1)
		}
		d.function(x.Fn, depth+1)
	case *ast.ClassDecl:
		d.head(depth, "ClassDecl", x.Loc, "")
		if x.Name != nil {
			d.node(x.Name, depth+1)
		}
		d.class(x.Cls, depth+1)
	case *ast.MethodDef:
		d.head(depth, "Method", x.Loc, methodExtra(x))
		d.node(x.Key, depth+1)
		d.function(x.Fn, depth+1)
	case *ast.PropertyDef:
		extra := ""
		if x.Static {
			extra = "static"
		}
		d.head(depth, "Property", x.Loc, extra)
		d.node(x.Key, depth+1)
		if x.Value != nil {
			d.node(x.Value, depth+1)
		}
	case *ast.StaticBlock:
		d.head(depth, "StaticBlock", x.Loc, "")
		d.node(x.Body, depth+1)
	case *ast.ImportDecl:
		d.head(depth, "Import", x.Loc, sourceExtra(x.Source))
		for _, s := range x.Specs {
			d.head(depth+1, "ImportSpec", s.Loc, importKind(s.Kind))
			if s.Imported != nil {
				d.node(s.Imported, depth+2)
			}
			d.node(s.Local, depth+2)
		}
	case *ast.ExportNamedDecl:
		d.head(depth, "ExportNamed", x.Loc, sourceExtra(x.Source))
		if x.Decl != nil {
			d.node(x.Decl, depth+1)
		}
		for _, s := range x.Specs {
			d.head(depth+1, "ExportSpec", s.Loc, "")
			d.node(s.Local, depth+2)
			if s.Exported != nil {
				d.node(s.Exported, depth+2)
			}
		}
	case *ast.ExportDefaultDecl:
		d.head(depth, "ExportDefault", x.Loc, "")
		d.node(x.Decl, depth+1)
	case *ast.ExportAllDecl:
		d.head(depth, "ExportAll", x.Loc, sourceExtra(x.Source))
		if x.Name != nil {
			d.node(x.Name, depth+1)
		}

	// паттерны
	case *ast.ArrayPattern:
		d.head(depth, "ArrayPattern", x.Loc, "")
		for _, el := range x.Elems {
			if el == nil {
				d.line(depth+1, "<hole>")
				continue
			}
			d.node(el, depth+1)
		}
	case *ast.ObjectPattern:
		d.head(depth, "ObjectPattern", x.Loc, "")
		for _, p := range x.Props {
			d.node(p, depth+1)
		}
	case *ast.PropertyPattern:
		d.head(depth, "PropertyPattern", x.Loc, "")
		d.node(x.Key, depth+1)
		d.node(x.Value, depth+1)
	case *ast.AssignPattern:
		d.head(depth, "AssignPattern", x.Loc, "")
		d.node(x.Target, depth+1)
		d.node(x.Default, depth+1)
	case *ast.RestElement:
		d.head(depth, "Rest", x.Loc, "")
		d.node(x.Arg, depth+1)
	case *ast.MemberPattern:
		d.head(depth, "MemberPattern", x.Loc, "")
		d.node(x.X, depth+1)

	default:
		d.head(depth, fmt.Sprintf("%T", n), n.Span(), "")
	}
}

func (d *astDumper) function(fn ast.Function, depth int) {
	for _, p := range fn.Params {
		d.param(p, depth)
	}
	if fn.Body != nil {
		d.node(fn.Body, depth)
	}
}

func (d *astDumper) param(p *ast.Param, depth int) {
	extra := ""
	if p.Ann != nil {
		extra = "annotated"
	}
	d.head(depth, "Param", p.Loc, extra)
	d.node(p.Pat, depth+1)
}

func (d *astDumper) class(c ast.Class, depth int) {
	if c.SuperClass != nil {
		d.head(depth, "Extends", c.SuperClass.Span(), "")
		d.node(c.SuperClass, depth+1)
	}
	for _, m := range c.Members {
		d.node(m, depth)
	}
}

func propExtra(p *ast.ObjectProp) string {
	parts := make([]string, 0, 3)
	switch p.Kind {
	case ast.PropGet:
		parts = append(parts, "get")
	case ast.PropSet:
		parts = append(parts, "set")
	}
	if p.Computed {
		parts = append(parts, "computed")
	}
	if p.Shorthand {
		parts = append(parts, "shorthand")
	}
	if p.Method {
		parts = append(parts, "method")
	}
	return strings.Join(parts, " ")
}

func funcExtra(fn ast.Function) string {
	parts := make([]string, 0, 2)
	if fn.Async {
		parts = append(parts, "async")
	}
	if fn.Generator {
		parts = append(parts, "generator")
	}
	return strings.Join(parts, " ")
}

func methodExtra(m *ast.MethodDef) string {
	parts := make([]string, 0, 3)
	if m.Static {
		parts = append(parts, "static")
	}
	switch m.Kind {
	case ast.MemberGet:
		parts = append(parts, "get")
	case ast.MemberSet:
		parts = append(parts, "set")
	case ast.MemberCtor:
		parts = append(parts, "constructor")
	}
	return strings.Join(parts, " ")
}

func importKind(k ast.ImportSpecKind) string {
	switch k {
	case ast.ImportDefault:
		return "default"
	case ast.ImportNamespace:
		return "namespace"
	default:
		return "named"
	}
}

func sourceExtra(s *ast.StringLit) string {
	if s == nil {
		return ""
	}
	return s.Raw
}

func labelName(id *ast.Ident) string {
	if id == nil {
		return ""
	}
	return id.Name
}

func jsxName(n ast.JSXName) string {
	switch x := n.(type) {
	case *ast.JSXIdent:
		return x.Name
	case *ast.JSXMember:
		return jsxName(x.Obj) + "." + x.Prop.Name
	case *ast.JSXNamespacedName:
		return x.NS.Name + ":" + x.Name.Name
	default:
		return ""
	}
}
