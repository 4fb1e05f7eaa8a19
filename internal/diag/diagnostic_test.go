package diag

import (
	"strings"
	"testing"

	"volt/internal/source"
)

func TestMessageFormat(t *testing.T) {
	d := ErrUnknownChar.New(
		source.Span{Start: 5, End: 6},
		source.Position{Line: 2, Col: 4, Offset: 5},
		Details{"char": "#"},
	)
	want := `unexpected character "#" (2:4)`
	if got := d.Message(); got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
}

func TestNewMissingRequiredDetailPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on missing required detail")
		}
	}()
	ErrUnknownChar.New(source.Span{}, source.Position{}, Details{})
}

func TestClonePreservesEverythingButOverrides(t *testing.T) {
	orig := ErrUnexpectedToken.New(
		source.Span{Start: 10, End: 12},
		source.Position{Line: 3, Col: 1, Offset: 10},
		Details{"found": "}"},
	)

	newPos := source.Position{Line: 7, Col: 0, Offset: 40}
	clone := orig.Clone(WithPos(newPos))

	if clone.Pos != newPos {
		t.Fatalf("clone.Pos = %v, want %v", clone.Pos, newPos)
	}
	if clone.Kind != orig.Kind {
		t.Fatal("Clone must preserve Kind")
	}
	if clone.Primary != orig.Primary {
		t.Fatal("Clone without WithSpan must preserve Primary")
	}
	if clone.Details["found"] != "}" {
		t.Fatal("Clone must carry details over")
	}
	// оригинал не тронут
	if orig.Pos.Line != 3 {
		t.Fatal("original mutated by Clone")
	}
}

func TestCloneDetailMerge(t *testing.T) {
	orig := ErrUnexpectedToken.New(source.Span{}, source.Position{}, Details{"found": "+"})
	clone := orig.Clone(WithDetail("expected", ")"), WithDetail("found", "*"))

	if clone.Details["found"] != "*" || clone.Details["expected"] != ")" {
		t.Fatalf("detail merge failed: %v", clone.Details)
	}
	if orig.Details["found"] != "+" {
		t.Fatal("original details mutated")
	}
	if _, ok := orig.Details["expected"]; ok {
		t.Fatal("original details gained a key")
	}
}

func TestMissingDialectPresence(t *testing.T) {
	d := ErrJSXNotEnabled.New(source.Span{}, source.Position{}, nil)
	if len(d.MissingDialect) != 1 || d.MissingDialect[0] != "jsx" {
		t.Fatalf("MissingDialect = %v, want [jsx]", d.MissingDialect)
	}

	// jsx-синтаксический кинд возникает при активном диалекте —
	// MissingDialect быть не должно.
	d = ErrJSXExpectAttrValue.New(source.Span{}, source.Position{}, nil)
	if len(d.MissingDialect) != 0 {
		t.Fatalf("syntax kind must not set MissingDialect, got %v", d.MissingDialect)
	}

	d = ErrUnexpectedToken.New(source.Span{}, source.Position{}, Details{"found": "x"})
	if len(d.MissingDialect) != 0 {
		t.Fatalf("plain kind must not set MissingDialect, got %v", d.MissingDialect)
	}
}

func TestFatalIsKindProperty(t *testing.T) {
	fatal := ErrUnterminatedString.New(source.Span{}, source.Position{}, nil)
	if !fatal.Fatal() {
		t.Fatal("unterminated string must be fatal")
	}
	recoverable := ErrExpectSemicolon.New(source.Span{}, source.Position{}, nil)
	if recoverable.Fatal() {
		t.Fatal("missing semicolon must be recoverable")
	}
}

func TestCatalogLookup(t *testing.T) {
	k, ok := Lookup(SynUnexpectedToken)
	if !ok || k != ErrUnexpectedToken {
		t.Fatal("Lookup by code failed")
	}
	k, ok = ByReason("UnexpectedToken")
	if !ok || k != ErrUnexpectedToken {
		t.Fatal("Lookup by reason failed")
	}
}

func TestForDialectGrouping(t *testing.T) {
	kinds := ForDialect("jsx")
	if len(kinds) < 5 {
		t.Fatalf("expected jsx group to include syntax and gate kinds, got %d", len(kinds))
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1].Code >= kinds[i].Code {
			t.Fatal("ForDialect must sort by code")
		}
	}
	for _, k := range kinds {
		if k.Dialect != "jsx" {
			t.Fatalf("kind %q leaked into jsx group", k.Reason)
		}
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("let x = ;\n"))

	pos := fs.PositionFor(id, 8)
	d := ErrExpectExpression.New(source.Span{File: id, Start: 8, End: 9}, pos, nil)

	out := FormatShortDiagnostics([]Diagnostic{d}, fs, false)
	if !strings.Contains(out, "a.js:1:8: ERROR SYN2003") {
		t.Fatalf("unexpected format: %q", out)
	}
}
