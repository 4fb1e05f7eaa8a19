package parser_test

import (
	"testing"

	"volt/internal/ast"
	"volt/internal/dialect"
	"volt/internal/diag"
	"volt/internal/parser"
)

func parseWith(t *testing.T, src string, dialects ...dialect.Kind) parser.Result {
	t.Helper()
	return parseSource(t, src, parser.Options{
		SourceType: ast.Module,
		Dialects:   dialect.NewSet(dialects...),
	})
}

func TestJSXWithoutDialectSingleDiagnostic(t *testing.T) {
	res := parseWith(t, "const el = <div className=\"x\"/>;")

	errs := 0
	for _, d := range res.Bag.Items() {
		if d.Severity == diag.SevError {
			errs++
		}
	}
	if errs != 1 {
		t.Fatalf("want exactly 1 error, got %d", errs)
	}
	d, ok := findKind(res, diag.ErrJSXNotEnabled)
	if !ok {
		t.Fatal("want JSXNotEnabled")
	}
	if len(d.MissingDialect) != 1 || d.MissingDialect[0] != "jsx" {
		t.Fatalf("MissingDialect = %v", d.MissingDialect)
	}
	// диагностика указывает на '<'
	if d.Primary.Start != 11 {
		t.Fatalf("diagnostic at %d, want 11", d.Primary.Start)
	}
}

func TestJSXElement(t *testing.T) {
	src := `const el = <a.b ns:attr data-id={x} spread {...rest}><span/>text {y}</a.b>;`
	res := parseWith(t, src, dialect.JSX)
	expectClean(t, res)

	decl := res.File.Stmts[0].(*ast.VarDecl)
	el := decl.Decls[0].Init.(*ast.JSXElement)
	if _, ok := el.Opening.Name.(*ast.JSXMember); !ok {
		t.Fatalf("want member name a.b, got %T", el.Opening.Name)
	}
	if len(el.Opening.Attrs) != 4 {
		t.Fatalf("want 4 attrs, got %d", len(el.Opening.Attrs))
	}
	attr := el.Opening.Attrs[1].(*ast.JSXAttr)
	if id, ok := attr.Name.(*ast.JSXIdent); !ok || id.Name != "data-id" {
		t.Fatalf("dashed attr name = %#v", attr.Name)
	}
	if _, ok := el.Opening.Attrs[3].(*ast.JSXSpreadAttr); !ok {
		t.Fatalf("want spread attr, got %T", el.Opening.Attrs[3])
	}
}

func TestJSXTree(t *testing.T) {
	res := parseWith(t, `const el = <div a="1" b={2}>hello <b>{x}</b></div>;`, dialect.JSX)
	expectClean(t, res)

	decl := res.File.Stmts[0].(*ast.VarDecl)
	el := decl.Decls[0].Init.(*ast.JSXElement)
	if got := jsxOpenName(t, el); got != "div" {
		t.Fatalf("element name = %q", got)
	}
	if len(el.Opening.Attrs) != 2 {
		t.Fatalf("want 2 attrs, got %d", len(el.Opening.Attrs))
	}
	// children: "hello ", <b>...</b>
	if len(el.Children) != 2 {
		t.Fatalf("want 2 children, got %d", len(el.Children))
	}
	txt := el.Children[0].(*ast.JSXText)
	if txt.Raw != "hello " {
		t.Fatalf("text child = %q", txt.Raw)
	}
	inner := el.Children[1].(*ast.JSXElement)
	if len(inner.Children) != 1 {
		t.Fatalf("inner children = %d", len(inner.Children))
	}
	if _, ok := inner.Children[0].(*ast.JSXExprContainer); !ok {
		t.Fatalf("want expr container, got %T", inner.Children[0])
	}
	if el.Closing == nil {
		t.Fatal("closing tag missing")
	}
}

func TestJSXFragment(t *testing.T) {
	res := parseWith(t, "const f = <>{a}{b}</>;", dialect.JSX)
	expectClean(t, res)
	decl := res.File.Stmts[0].(*ast.VarDecl)
	frag := decl.Decls[0].Init.(*ast.JSXFragment)
	if len(frag.Children) != 2 {
		t.Fatalf("fragment children = %d", len(frag.Children))
	}
}

func TestJSXMismatchedClosing(t *testing.T) {
	res := parseWith(t, "const el = <div></span>;", dialect.JSX)
	d, ok := findKind(res, diag.ErrJSXMismatchedClosing)
	if !ok {
		t.Fatal("want JSXMismatchedClosing")
	}
	if d.Details["open"] != "div" || d.Details["close"] != "span" {
		t.Fatalf("details = %v", d.Details)
	}
}

func TestJSXUnclosed(t *testing.T) {
	res := parseWith(t, "const el = <div>abc", dialect.JSX)
	if _, ok := findKind(res, diag.ErrJSXUnclosedElement); !ok {
		t.Fatal("want JSXUnclosedElement")
	}
}

func TestTypeAnnoDialect(t *testing.T) {
	src := "function f(x: number, y: Array<string> = []): void {} const z: {a: b} = o;"
	res := parseWith(t, src, dialect.TypeAnno)
	expectClean(t, res)

	fd := res.File.Stmts[0].(*ast.FuncDecl)
	if fd.Fn.Params[0].Ann == nil {
		t.Fatal("parameter annotation not captured")
	}
	if fd.Fn.ReturnAnn == nil {
		t.Fatal("return annotation not captured")
	}
	decl := res.File.Stmts[1].(*ast.VarDecl)
	if decl.Decls[0].Ann == nil {
		t.Fatal("declarator annotation not captured")
	}
}

func TestTypeAnnoWithoutDialect(t *testing.T) {
	res := parseWith(t, "function f(x: number) {}")
	d, ok := findKind(res, diag.ErrTypeAnnoNotEnabled)
	if !ok {
		t.Fatal("want TypeAnnoNotEnabled")
	}
	if len(d.MissingDialect) != 1 || d.MissingDialect[0] != "typeanno" {
		t.Fatalf("MissingDialect = %v", d.MissingDialect)
	}
}

func TestDecoratorsDialect(t *testing.T) {
	src := `
@sealed
@log("cls")
class C {
	@readonly x = 1;
	@bound m() {}
}
`
	res := parseWith(t, src, dialect.Decorators)
	expectClean(t, res)

	cd := res.File.Stmts[0].(*ast.ClassDecl)
	if len(cd.Cls.Decorators) != 2 {
		t.Fatalf("class decorators = %d", len(cd.Cls.Decorators))
	}
}

func TestDecoratorsWithoutDialect(t *testing.T) {
	res := parseWith(t, "@sealed class C {}")
	d, ok := findKind(res, diag.ErrDecoratorsNotEnabled)
	if !ok {
		t.Fatal("want DecoratorsNotEnabled")
	}
	if len(d.MissingDialect) != 1 || d.MissingDialect[0] != "decorators" {
		t.Fatalf("MissingDialect = %v", d.MissingDialect)
	}
	// класс всё равно разобран
	if _, ok := res.File.Stmts[0].(*ast.ClassDecl); !ok {
		t.Fatalf("want ClassDecl after gated decorator, got %T", res.File.Stmts[0])
	}
}

func TestPipelineDialect(t *testing.T) {
	res := parseWith(t, "const r = x |> f |> g;", dialect.Pipeline)
	expectClean(t, res)

	decl := res.File.Stmts[0].(*ast.VarDecl)
	// левая ассоциативность: (x |> f) |> g
	outer := decl.Decls[0].Init.(*ast.BinaryExpr)
	if _, ok := outer.Left.(*ast.BinaryExpr); !ok {
		t.Fatal("|> must be left-associative")
	}
}

func TestPipelineWithoutDialect(t *testing.T) {
	res := parseWith(t, "const r = x |> f;")
	d, ok := findKind(res, diag.ErrPipelineNotEnabled)
	if !ok {
		t.Fatal("want PipelineNotEnabled")
	}
	if len(d.MissingDialect) != 1 || d.MissingDialect[0] != "pipeline" {
		t.Fatalf("MissingDialect = %v", d.MissingDialect)
	}
	// выражение разобрано, как если бы диалект был включён
	decl := res.File.Stmts[0].(*ast.VarDecl)
	if _, ok := decl.Decls[0].Init.(*ast.BinaryExpr); !ok {
		t.Fatalf("want BinaryExpr fallback parse, got %T", decl.Decls[0].Init)
	}
}

func TestDialectsRecordedOnFile(t *testing.T) {
	res := parseWith(t, "1;", dialect.JSX, dialect.Pipeline)
	if !res.File.Dialects.Has(dialect.JSX) || !res.File.Dialects.Has(dialect.Pipeline) {
		t.Fatal("file must record active dialects")
	}
}

func jsxOpenName(t *testing.T, el *ast.JSXElement) string {
	t.Helper()
	id, ok := el.Opening.Name.(*ast.JSXIdent)
	if !ok {
		t.Fatalf("opening name is %T", el.Opening.Name)
	}
	return id.Name
}

func TestTypeAnnoNestedGenerics(t *testing.T) {
	// '>>' лексится жадно; каждый '>' обязан закрыть свой уровень
	src := "let x: Map<string, Array<number>> = 1;\nlet y = 2;"
	res := parseWith(t, src, dialect.TypeAnno)
	expectClean(t, res)

	if len(res.File.Stmts) != 2 {
		t.Fatalf("statements = %d, want 2", len(res.File.Stmts))
	}
	decl := res.File.Stmts[0].(*ast.VarDecl)
	if decl.Decls[0].Ann == nil {
		t.Fatal("declarator annotation not captured")
	}
	if decl.Decls[0].Init == nil {
		t.Fatal("initializer swallowed by annotation")
	}
	if _, ok := decl.Decls[0].Init.(*ast.NumberLit); !ok {
		t.Fatalf("init = %T, want NumberLit", decl.Decls[0].Init)
	}
}

func TestTypeAnnoTripleGreater(t *testing.T) {
	src := "let x: A<B<C<number>>> = 0;"
	res := parseWith(t, src, dialect.TypeAnno)
	expectClean(t, res)

	decl := res.File.Stmts[0].(*ast.VarDecl)
	if decl.Decls[0].Init == nil {
		t.Fatal("initializer swallowed by annotation")
	}
}

func TestDecoratorsGatedOncePerList(t *testing.T) {
	res := parseWith(t, "@sealed @log class C {}")
	count := 0
	for _, d := range res.Bag.Items() {
		if d.Kind == diag.ErrDecoratorsNotEnabled {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("DecoratorsNotEnabled reported %d times, want 1", count)
	}
}
