package parser_test

import (
	"testing"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

// parseSource прогоняет строку через лексер и парсер с общим bag.
func parseSource(t *testing.T, src string, opts parser.Options) parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return parser.ParseFile(fs, lx, bag, opts)
}

func parseModule(t *testing.T, src string) parser.Result {
	t.Helper()
	return parseSource(t, src, parser.Options{SourceType: ast.Module})
}

func parseScript(t *testing.T, src string) parser.Result {
	t.Helper()
	return parseSource(t, src, parser.Options{SourceType: ast.Script})
}

func findKind(res parser.Result, k *diag.Kind) (diag.Diagnostic, bool) {
	for _, d := range res.Bag.Items() {
		if d.Kind == k {
			return d, true
		}
	}
	return diag.Diagnostic{}, false
}

func expectClean(t *testing.T, res parser.Result) {
	t.Helper()
	if res.Bag.Len() != 0 {
		for _, d := range res.Bag.Items() {
			t.Errorf("unexpected diagnostic: %s", d.Message())
		}
		t.FailNow()
	}
}

func TestCleanParseEmptyBagAndRootSpan(t *testing.T) {
	src := "const x = 1 + 2;\nconsole.log(x);"
	res := parseScript(t, src)
	expectClean(t, res)

	f := res.File
	if len(f.Stmts) != 2 {
		t.Fatalf("want 2 statements, got %d", len(f.Stmts))
	}
	if f.Loc.Start != 0 || f.Loc.End != uint32(len(src)) {
		t.Fatalf("root span %d..%d does not cover input of %d bytes",
			f.Loc.Start, f.Loc.End, len(src))
	}
}

func TestEmptyInput(t *testing.T) {
	res := parseScript(t, "")
	expectClean(t, res)
	if len(res.File.Stmts) != 0 {
		t.Fatalf("want no statements, got %d", len(res.File.Stmts))
	}
	if !res.File.Loc.Empty() {
		t.Fatalf("want collapsed root span, got %d..%d", res.File.Loc.Start, res.File.Loc.End)
	}
}

func TestHashbang(t *testing.T) {
	res := parseScript(t, "#!/usr/bin/env node\nlet a = 1;")
	expectClean(t, res)
	if res.File.Hashbang == nil {
		t.Fatal("hashbang not recorded")
	}
	if res.File.Hashbang.Start != 0 || res.File.Hashbang.End != 19 {
		t.Fatalf("hashbang span %d..%d", res.File.Hashbang.Start, res.File.Hashbang.End)
	}
	if len(res.File.Stmts) != 1 {
		t.Fatalf("want 1 statement after hashbang, got %d", len(res.File.Stmts))
	}
}

// Неожиданный EOF после бинарного оператора: фатальная диагностика «за
// плюсом» и частичное дерево.
func TestIncompleteBinaryExprFatalPastOperator(t *testing.T) {
	src := "1 + "
	res := parseScript(t, src)

	d, ok := findKind(res, diag.ErrUnexpectedEOF)
	if !ok {
		t.Fatal("want UnexpectedEOF")
	}
	if !d.Fatal() {
		t.Fatal("UnexpectedEOF must be fatal")
	}
	if d.Primary.Start != 3 {
		t.Fatalf("diagnostic at offset %d, want 3 (just past '+')", d.Primary.Start)
	}
	if len(res.File.Stmts) == 0 {
		t.Fatal("want partial AST")
	}
	es, ok := res.File.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("want ExprStmt, got %T", res.File.Stmts[0])
	}
	bin, ok := es.X.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want BinaryExpr, got %T", es.X)
	}
	if _, ok := bin.Right.(*ast.BadExpr); !ok {
		t.Fatalf("want BadExpr right operand, got %T", bin.Right)
	}
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	res := parseScript(t, "a + b * c ** d ** e;")
	expectClean(t, res)

	// a + (b * (c ** (d ** e)))
	outer := res.File.Stmts[0].(*ast.ExprStmt).X.(*ast.BinaryExpr)
	mul := outer.Right.(*ast.BinaryExpr)
	pow := mul.Right.(*ast.BinaryExpr)
	if _, ok := pow.Right.(*ast.BinaryExpr); !ok {
		t.Fatal("** must be right-associative")
	}
}

func TestASI(t *testing.T) {
	res := parseScript(t, "let a = 1\nlet b = 2\na + b")
	expectClean(t, res)
	if len(res.File.Stmts) != 3 {
		t.Fatalf("want 3 statements via ASI, got %d", len(res.File.Stmts))
	}
}

func TestASIRestrictedReturn(t *testing.T) {
	res := parseScript(t, "function f() { return\n1; }")
	expectClean(t, res)
	fd := res.File.Stmts[0].(*ast.FuncDecl)
	ret := fd.Fn.Body.Stmts[0].(*ast.ReturnStmt)
	if ret.Arg != nil {
		t.Fatal("newline after return must cut the argument")
	}
}

func TestStrictDuplicateParamAtLaterOccurrence(t *testing.T) {
	src := "function f(a, a) { 'use strict'; }"
	res := parseScript(t, src)

	d, ok := findKind(res, diag.ErrStrictDuplicateParam)
	if !ok {
		t.Fatal("want StrictDuplicateParam")
	}
	// вторая `a` на смещении 14
	if d.Primary.Start != 14 {
		t.Fatalf("diagnostic at offset %d, want 14 (second parameter)", d.Primary.Start)
	}
}

func TestConstWithoutInitializer(t *testing.T) {
	res := parseScript(t, "const x;")
	d, ok := findKind(res, diag.ErrMissingInitializer)
	if !ok {
		t.Fatal("want MissingInitializer")
	}
	if d.Details["decl"] != "const" {
		t.Fatalf("detail decl = %v", d.Details["decl"])
	}
}

func TestDestructuringNeedsInitializer(t *testing.T) {
	res := parseScript(t, "let {a, b};")
	if _, ok := findKind(res, diag.ErrMissingInitializer); !ok {
		t.Fatal("want MissingInitializer for destructuring without init")
	}
}

func TestLetAsIdentifier(t *testing.T) {
	res := parseScript(t, "let = 5; let + 1;")
	expectClean(t, res)
}

func TestForVariants(t *testing.T) {
	res := parseScript(t, `
for (let i = 0; i < 3; i++) {}
for (const k in obj) {}
for (const v of list) {}
for (;;) break;
`)
	expectClean(t, res)
	if len(res.File.Stmts) != 4 {
		t.Fatalf("want 4 loops, got %d", len(res.File.Stmts))
	}
	if _, ok := res.File.Stmts[1].(*ast.ForInStmt); !ok {
		t.Fatalf("want ForInStmt, got %T", res.File.Stmts[1])
	}
	if _, ok := res.File.Stmts[2].(*ast.ForOfStmt); !ok {
		t.Fatalf("want ForOfStmt, got %T", res.File.Stmts[2])
	}
}

func TestForAwait(t *testing.T) {
	res := parseScript(t, "async function f(xs) { for await (const x of xs) {} }")
	expectClean(t, res)
}

func TestNoInRestrictionInForInit(t *testing.T) {
	// `in` не парсится как оператор в init-части, поэтому заголовок с
	// инициализатором уходит в ветку for-in и репортится как кривой
	res := parseScript(t, "for (var x = 1 in obj) {}")
	if _, ok := findKind(res, diag.ErrBadForHeader); !ok {
		t.Fatal("want BadForHeader for initialized for-in binder")
	}

	// в обычном выражении `in` работает
	res = parseScript(t, "if ('a' in obj) {}")
	expectClean(t, res)
}

func TestLabels(t *testing.T) {
	res := parseScript(t, "outer: for (;;) { inner: for (;;) { continue outer; break inner; } }")
	expectClean(t, res)
}

func TestUnknownLabel(t *testing.T) {
	res := parseScript(t, "for (;;) { break missing; }")
	d, ok := findKind(res, diag.ErrUnknownLabel)
	if !ok {
		t.Fatal("want UnknownLabel")
	}
	if d.Details["label"] != "missing" {
		t.Fatalf("detail label = %v", d.Details["label"])
	}
}

func TestDuplicateLabel(t *testing.T) {
	res := parseScript(t, "x: { x: {} }")
	if _, ok := findKind(res, diag.ErrDuplicateLabel); !ok {
		t.Fatal("want DuplicateLabel")
	}
}

func TestBreakContinueOutside(t *testing.T) {
	res := parseScript(t, "break;")
	if _, ok := findKind(res, diag.ErrBreakOutsideLoop); !ok {
		t.Fatal("want BreakOutsideLoop")
	}
	res = parseScript(t, "switch (x) { case 1: continue; }")
	if _, ok := findKind(res, diag.ErrContinueOutsideLoop); !ok {
		t.Fatal("want ContinueOutsideLoop: switch does not host continue")
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	res := parseScript(t, "return 1;")
	if _, ok := findKind(res, diag.ErrReturnOutsideFunction); !ok {
		t.Fatal("want ReturnOutsideFunction")
	}

	res = parseSource(t, "return 1;", parser.Options{
		SourceType:                 ast.Script,
		AllowReturnOutsideFunction: true,
	})
	expectClean(t, res)
}

func TestSwitchMultipleDefaults(t *testing.T) {
	res := parseScript(t, "switch (x) { default: break; default: break; }")
	if _, ok := findKind(res, diag.ErrMultipleDefaults); !ok {
		t.Fatal("want MultipleDefaults")
	}
}

func TestTryForms(t *testing.T) {
	res := parseScript(t, `
try { f(); } catch (e) { g(e); }
try { f(); } catch { g(); }
try { f(); } finally { h(); }
`)
	expectClean(t, res)
	second := res.File.Stmts[1].(*ast.TryStmt)
	if second.Handler.Param != nil {
		t.Fatal("optional catch binding must leave Param nil")
	}
}

func TestArrowFunctions(t *testing.T) {
	res := parseScript(t, `
const a = x => x + 1;
const b = (x, y) => ({x, y});
const c = async (x) => await x;
const d = () => {};
const e = (x = 1, ...rest) => rest;
`)
	expectClean(t, res)
}

func TestParenizedSequenceIsNotArrow(t *testing.T) {
	res := parseScript(t, "(a, b);")
	expectClean(t, res)
	pe := res.File.Stmts[0].(*ast.ExprStmt).X.(*ast.ParenExpr)
	if _, ok := pe.X.(*ast.SeqExpr); !ok {
		t.Fatalf("want SeqExpr inside parens, got %T", pe.X)
	}
}

func TestAsyncIsPlainIdentWithoutFunction(t *testing.T) {
	res := parseScript(t, "async + 1;")
	expectClean(t, res)
}

func TestGeneratorsAndYield(t *testing.T) {
	res := parseScript(t, "function* g() { yield 1; yield* inner(); yield; }")
	expectClean(t, res)
}

func TestAwaitTopLevelModule(t *testing.T) {
	res := parseModule(t, "await fetch(url);")
	expectClean(t, res)
	es := res.File.Stmts[0].(*ast.ExprStmt)
	if _, ok := es.X.(*ast.AwaitExpr); !ok {
		t.Fatalf("want AwaitExpr at module top level, got %T", es.X)
	}
}

func TestAwaitIsIdentInScript(t *testing.T) {
	res := parseScript(t, "var await = 1; await + 2;")
	expectClean(t, res)
}

func TestOptionalChainingAndCalls(t *testing.T) {
	res := parseScript(t, "a?.b?.[c]?.(d); new Foo(1, ...xs); tag`tpl ${x}`;")
	expectClean(t, res)
}

func TestClassFeatures(t *testing.T) {
	res := parseScript(t, `
class Point extends Base {
	#x = 0;
	static count = 0;
	static { init(); }
	constructor(x) { super(); this.#x = x; }
	get x() { return this.#x; }
	set x(v) { this.#x = v; }
	static async *stream() { yield 1; }
}
`)
	expectClean(t, res)
}

func TestDuplicateConstructor(t *testing.T) {
	res := parseScript(t, "class C { constructor() {} constructor() {} }")
	if _, ok := findKind(res, diag.ErrDuplicateConstructor); !ok {
		t.Fatal("want DuplicateConstructor")
	}
}

func TestStrictModeChecks(t *testing.T) {
	res := parseScript(t, "'use strict'; with (o) {}")
	if _, ok := findKind(res, diag.ErrStrictWith); !ok {
		t.Fatal("want StrictWith")
	}

	res = parseScript(t, "'use strict'; delete x;")
	if _, ok := findKind(res, diag.ErrStrictDelete); !ok {
		t.Fatal("want StrictDelete")
	}

	res = parseScript(t, "'use strict'; var n = 0755;")
	if _, ok := findKind(res, diag.ErrStrictOctalLiteral); !ok {
		t.Fatal("want StrictOctalLiteral")
	}

	// в обычном режиме всё это законно
	res = parseScript(t, "with (o) {} delete x; var n = 0755;")
	expectClean(t, res)
}

func TestDestructuringAssignment(t *testing.T) {
	res := parseScript(t, "[a, ...rest] = xs; ({x, y: {z} = {}} = o);")
	expectClean(t, res)
}

func TestBadAssignTarget(t *testing.T) {
	res := parseScript(t, "a + 1 = 2;")
	if _, ok := findKind(res, diag.ErrBadAssignTarget); !ok {
		t.Fatal("want BadAssignTarget")
	}
}

func TestRestMustBeLast(t *testing.T) {
	res := parseScript(t, "[...a, b] = xs;")
	if _, ok := findKind(res, diag.ErrRestMustBeLast); !ok {
		t.Fatal("want RestMustBeLast")
	}
}

func TestImportForms(t *testing.T) {
	res := parseModule(t, `
import "polyfill";
import def from "a";
import * as ns from "b";
import { x, y as z, "odd name" as w } from "c";
import def2, { k } from "d";
`)
	expectClean(t, res)
	if len(res.File.Stmts) != 5 {
		t.Fatalf("want 5 imports, got %d", len(res.File.Stmts))
	}
	named := res.File.Stmts[3].(*ast.ImportDecl)
	if len(named.Specs) != 3 {
		t.Fatalf("want 3 named specs, got %d", len(named.Specs))
	}
	if named.Specs[2].Local.Name != "w" {
		t.Fatalf("string import local = %q", named.Specs[2].Local.Name)
	}
}

func TestExportForms(t *testing.T) {
	res := parseModule(t, `
export const a = 1;
export function f() {}
export default class {}
export { a as b, f };
export * from "m";
export * as ns from "n";
`)
	expectClean(t, res)
	if len(res.File.Stmts) != 6 {
		t.Fatalf("want 6 exports, got %d", len(res.File.Stmts))
	}
}

func TestImportExportOutsideModule(t *testing.T) {
	res := parseScript(t, `import x from "a";`)
	if _, ok := findKind(res, diag.ErrImportOutsideModule); !ok {
		t.Fatal("want ImportOutsideModule")
	}
	res = parseScript(t, "export const x = 1;")
	if _, ok := findKind(res, diag.ErrExportOutsideModule); !ok {
		t.Fatal("want ExportOutsideModule")
	}
}

func TestDynamicImportIsExpression(t *testing.T) {
	res := parseScript(t, `import("./mod").then(run); import.meta;`)
	expectClean(t, res)
}

func TestRegExpLiteral(t *testing.T) {
	res := parseScript(t, "const re = /ab[/]c/gi; x / y;")
	expectClean(t, res)
	decl := res.File.Stmts[0].(*ast.VarDecl)
	re := decl.Decls[0].Init.(*ast.RegExpLit)
	if re.Pattern != "ab[/]c" || re.Flags != "gi" {
		t.Fatalf("regex = /%s/%s", re.Pattern, re.Flags)
	}
}

func TestNewTarget(t *testing.T) {
	res := parseScript(t, "function f() { return new.target; }")
	expectClean(t, res)

	res = parseScript(t, "new.target;")
	if _, ok := findKind(res, diag.ErrNewTargetOutside); !ok {
		t.Fatal("want NewTargetOutside")
	}
}

func TestSuperOutsideClass(t *testing.T) {
	res := parseScript(t, "super.x;")
	if _, ok := findKind(res, diag.ErrSuperOutsideClass); !ok {
		t.Fatal("want SuperOutsideClass")
	}
}

func TestLabelInvisibleAcrossFunctionBoundary(t *testing.T) {
	// метки не видны из вложенной функции
	res := parseScript(t, "outer: for (;;) { function f() { break outer; } }")
	if _, ok := findKind(res, diag.ErrUnknownLabel); !ok {
		t.Fatal("want UnknownLabel for break across function boundary")
	}

	// но в пределах одной функции видны сквозь вложенные циклы
	res = parseScript(t, "function g() { a: for (;;) { b: for (;;) { continue a; } } }")
	expectClean(t, res)
}
