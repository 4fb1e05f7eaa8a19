package lexer_test

import (
	"testing"

	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %v\nDiags: %v",
			len(expected), len(tokens), input, tokens, bag.Items())
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Fatalf("token %d: expected %v, got %v (input %q)", i, want, tokens[i].Kind, input)
		}
	}
}

func TestBasicTokens(t *testing.T) {
	expectTokens(t, "let x = 42;", []token.Kind{
		token.KwLet, token.Ident, token.Assign, token.NumberLit, token.Semicolon,
	})
	expectTokens(t, "const f = (a, b) => a + b;", []token.Kind{
		token.KwConst, token.Ident, token.Assign, token.LParen, token.Ident,
		token.Comma, token.Ident, token.RParen, token.Arrow, token.Ident,
		token.Plus, token.Ident, token.Semicolon,
	})
}

func TestOperatorGreediness(t *testing.T) {
	expectTokens(t, "a >>>= b", []token.Kind{token.Ident, token.UShrAssign, token.Ident})
	expectTokens(t, "a === b !== c", []token.Kind{
		token.Ident, token.EqEqEq, token.Ident, token.BangEqEq, token.Ident,
	})
	expectTokens(t, "a ?? b ??= c", []token.Kind{
		token.Ident, token.Coalesce, token.Ident, token.CoalesceAssign, token.Ident,
	})
	expectTokens(t, "a?.b", []token.Kind{token.Ident, token.QuestionDot, token.Ident})
	// '?.' перед цифрой — это тернарник
	expectTokens(t, "a?.5:0", []token.Kind{
		token.Ident, token.Question, token.NumberLit, token.Colon, token.NumberLit,
	})
	expectTokens(t, "x ** y **= z", []token.Kind{
		token.Ident, token.StarStar, token.Ident, token.StarStarAssign, token.Ident,
	})
	expectTokens(t, "a |> b", []token.Kind{token.Ident, token.PipeGt, token.Ident})
}

func TestKeywordsAndIdents(t *testing.T) {
	expectTokens(t, "async function* gen() { yield await x; }", []token.Kind{
		token.Ident, token.KwFunction, token.Star, token.Ident,
		token.LParen, token.RParen, token.LBrace,
		token.KwYield, token.KwAwait, token.Ident, token.Semicolon,
		token.RBrace,
	})
	expectTokens(t, "$dollar _under у-nicode", []token.Kind{
		token.Ident, token.Ident, token.Ident, token.Minus, token.Ident,
	})
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "0 1_000 0xFF 0b1010 0o755 1.5e-3 .5 10n", []token.Kind{
		token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit,
		token.NumberLit, token.NumberLit, token.NumberLit, token.BigIntLit,
	})

	lx, bag := makeTestLexer("0x;")
	collectAllTokens(lx)
	if bag.Len() == 0 {
		t.Fatal("expected a diagnostic for '0x' without digits")
	}
	if bag.Items()[0].Kind != diag.ErrBadNumber {
		t.Fatalf("expected BadNumber, got %v", bag.Items()[0].Kind.Reason)
	}
}

func TestStrings(t *testing.T) {
	expectTokens(t, `'single' "double" "esc\nA\u{1F600}"`, []token.Kind{
		token.StringLit, token.StringLit, token.StringLit,
	})

	lx, bag := makeTestLexer("\"unterminated")
	toks := collectAllTokens(lx)
	if toks[0].Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %v", toks[0].Kind)
	}
	if !bag.HasFatal() {
		t.Fatal("unterminated string must be fatal")
	}
	// после фатальной ошибки — только EOF
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatal("lexer must settle on EOF after fatal error")
	}
}

func TestTemplates(t *testing.T) {
	expectTokens(t, "`plain`", []token.Kind{token.NoSubTemplate})

	lx, _ := makeTestLexer("`a${x}b`")
	if tok := lx.Next(); tok.Kind != token.TemplateHead {
		t.Fatalf("expected TemplateHead, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	// парсер на '}' просит продолжение шаблона
	tok := lx.ReScanTemplateContinue()
	if tok.Kind != token.TemplateTail {
		t.Fatalf("expected TemplateTail, got %v", tok.Kind)
	}
	if tok = lx.Next(); tok.Kind != token.TemplateTail {
		t.Fatalf("Next after re-scan must return the re-scanned token, got %v", tok.Kind)
	}
}

func TestReScanRegExp(t *testing.T) {
	lx, bag := makeTestLexer("/ab[/]c/gi")
	if tok := lx.Peek(); tok.Kind != token.Slash {
		t.Fatalf("default scan must give Slash, got %v", tok.Kind)
	}
	tok := lx.ReScanRegExp()
	if tok.Kind != token.RegExpLit {
		t.Fatalf("expected RegExpLit, got %v", tok.Kind)
	}
	if tok.Text != "/ab[/]c/gi" {
		t.Fatalf("regexp text = %q", tok.Text)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestNewlineBefore(t *testing.T) {
	lx, _ := makeTestLexer("a\nb /*\n*/ c d")
	toks := collectAllTokens(lx)
	// a b c d EOF
	if toks[0].NewlineBefore {
		t.Fatal("first token has no preceding newline")
	}
	if !toks[1].NewlineBefore {
		t.Fatal("b must have NewlineBefore")
	}
	if !toks[2].NewlineBefore {
		t.Fatal("newline inside block comment counts")
	}
	if toks[3].NewlineBefore {
		t.Fatal("d has no preceding newline")
	}
}

func TestCheckpointRestoreIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("let a = `x${1}` / 2;")
	lx.Next() // let

	cp := lx.Checkpoint()
	want := lx.Peek()

	// уходим вперёд и откатываемся
	for i := 0; i < 5; i++ {
		lx.Next()
	}
	lx.Restore(cp)

	got := lx.Peek()
	if got != want {
		t.Fatalf("after restore: got %+v, want %+v", got, want)
	}

	// restore сразу после checkpoint — состояние не меняется
	cp2 := lx.Checkpoint()
	lx.Restore(cp2)
	if got2 := lx.Peek(); got2 != want {
		t.Fatalf("immediate restore changed state: %+v", got2)
	}
}

func TestPrivateName(t *testing.T) {
	expectTokens(t, "this.#secret", []token.Kind{token.KwThis, token.Dot, token.PrivateName})

	_, bag := func() (*lexer.Lexer, *diag.Bag) {
		lx, bag := makeTestLexer("#1")
		collectAllTokens(lx)
		return lx, bag
	}()
	if bag.Len() == 0 || bag.Items()[0].Kind != diag.ErrInvalidPrivateName {
		t.Fatal("expected InvalidPrivateName diagnostic")
	}
}

func TestUnterminatedBlockCommentFatal(t *testing.T) {
	lx, bag := makeTestLexer("a /* no end")
	toks := collectAllTokens(lx)
	if !bag.HasFatal() {
		t.Fatal("unterminated block comment must be fatal")
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatal("expected EOF after fatal")
	}
}

func TestJSXTextReScan(t *testing.T) {
	lx, _ := makeTestLexer("hello {x}</div>")
	tok := lx.ReScanJSXText()
	if tok.Kind != token.JSXText {
		t.Fatalf("expected JSXText, got %v", tok.Kind)
	}
	if tok.Text != "hello " {
		t.Fatalf("JSXText = %q", tok.Text)
	}
	if next := lx.Next(); next.Kind != token.JSXText {
		t.Fatalf("buffered re-scan lost: %v", next.Kind)
	}
	if next := lx.Next(); next.Kind != token.LBrace {
		t.Fatalf("expected LBrace after text, got %v", next.Kind)
	}
}

func TestTokenSpansAreIncreasing(t *testing.T) {
	lx, _ := makeTestLexer("let x = a.b?.(1, 'two') + `t${y}z`;")
	var prevEnd uint32
	for _, tok := range collectAllTokens(lx) {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Span.Start < prevEnd {
			t.Fatalf("token spans must be increasing: %v at %v", tok.Kind, tok.Span)
		}
		prevEnd = tok.Span.End
	}
}

func TestReScanGreater(t *testing.T) {
	// 'A>>B' лексится жадно, re-scan отделяет одиночный '>'
	lx, bag := makeTestLexer("A>>B")
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("want Ident, got %v", tok.Kind)
	}
	if tok := lx.Peek(); tok.Kind != token.Shr {
		t.Fatalf("default scan must give Shr, got %v", tok.Kind)
	}
	gt := lx.ReScanGreater()
	if gt.Kind != token.Gt || gt.Span.Start != 1 || gt.Span.End != 2 {
		t.Fatalf("split token = %v [%d..%d]", gt.Kind, gt.Span.Start, gt.Span.End)
	}
	if tok := lx.Next(); tok.Kind != token.Gt {
		t.Fatalf("consume after re-scan: want Gt, got %v", tok.Kind)
	}
	// остаток дотокенизируется как обычно
	if tok := lx.Next(); tok.Kind != token.Gt || tok.Span.Start != 2 {
		t.Fatalf("rest: want second Gt at 2, got %v at %d", tok.Kind, tok.Span.Start)
	}
	if tok := lx.Next(); tok.Kind != token.Ident || tok.Text != "B" {
		t.Fatalf("rest: want Ident B, got %v %q", tok.Kind, tok.Text)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestReScanGreaterOnGtEq(t *testing.T) {
	lx, _ := makeTestLexer(">=1")
	if tok := lx.Peek(); tok.Kind != token.GtEq {
		t.Fatalf("default scan must give GtEq, got %v", tok.Kind)
	}
	if gt := lx.ReScanGreater(); gt.Kind != token.Gt {
		t.Fatalf("want Gt, got %v", gt.Kind)
	}
	lx.Next()
	if tok := lx.Next(); tok.Kind != token.Assign {
		t.Fatalf("want Assign after split, got %v", tok.Kind)
	}
}
