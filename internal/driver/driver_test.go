package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"volt/internal/dialect"
	"volt/internal/driver"
	"volt/internal/token"
)

func TestParseSource(t *testing.T) {
	res, err := driver.ParseSource("main.js", []byte("const x = 1;"), driver.Config{MaxDiagnostics: 50})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", res.Bag.Len())
	}
	if len(res.AST.Stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(res.AST.Stmts))
	}
}

func TestSourceTypeFromExtension(t *testing.T) {
	res, err := driver.ParseSource("mod.mjs", []byte("export const x = 1;"), driver.Config{MaxDiagnostics: 50})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatal(".mjs must parse as module")
	}

	res, err = driver.ParseSource("plain.js", []byte("export const x = 1;"), driver.Config{MaxDiagnostics: 50})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() == 0 {
		t.Fatal("export in a script must be diagnosed")
	}
}

func TestAutoJSX(t *testing.T) {
	cfg := driver.Config{MaxDiagnostics: 50, AutoJSX: true}
	res, err := driver.ParseSource("app.jsx", []byte("const el = <div/>;"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatal(".jsx must activate the jsx dialect")
	}
	if !res.AST.Dialects.Has(dialect.JSX) {
		t.Fatal("jsx dialect not recorded on file")
	}
}

func TestTokenizeSource(t *testing.T) {
	res := driver.TokenizeSource("t.js", []byte("let x = 42;"), 10)
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", res.Bag.Len())
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Fatal("token stream must end with EOF")
	}
	// let x = 42 ; EOF
	if len(res.Tokens) != 6 {
		t.Fatalf("want 6 tokens, got %d", len(res.Tokens))
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParseDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.js":            "const a = 1;",
		"b.js":            "const b = ;",
		"sub/c.mjs":       "export const c = 3;",
		"node_modules/skip.js": "garbage ###",
	})

	_, results, err := driver.ParseDir(context.Background(), dir,
		driver.Config{MaxDiagnostics: 50}, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 parsed files (node_modules skipped), got %d", len(results))
	}
	// результаты отсортированы по пути
	if filepath.Base(results[0].Path) != "a.js" {
		t.Fatalf("results not ordered: %s first", results[0].Path)
	}
	if results[0].Bag.Len() != 0 {
		t.Fatal("a.js must be clean")
	}
	if results[1].Bag.Len() == 0 {
		t.Fatal("b.js must carry a diagnostic")
	}
	if results[2].Bag.Len() != 0 {
		t.Fatal("sub/c.mjs must parse as module")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.js": "const x = ;"})
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := driver.Config{MaxDiagnostics: 50}

	_, first, err := driver.ParseDir(context.Background(), dir, cfg, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].AST == nil {
		t.Fatal("first pass must parse for real")
	}
	wantDiags := first[0].Bag.Len()
	if wantDiags == 0 {
		t.Fatal("expected diagnostics for bad.js")
	}

	_, second, err := driver.ParseDir(context.Background(), dir, cfg, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	// попадание в кеш: диагностики восстановлены, AST не строился
	if second[0].AST != nil {
		t.Fatal("second pass must come from cache")
	}
	if second[0].Bag.Len() != wantDiags {
		t.Fatalf("cached diagnostics = %d, want %d", second[0].Bag.Len(), wantDiags)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	_, third, err := driver.ParseDir(context.Background(), dir, cfg, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].AST == nil {
		t.Fatal("after DropAll the file must be reparsed")
	}
}

func TestZeroConfigStillCollectsDiagnostics(t *testing.T) {
	// нулевой Config не должен молча терять диагностику
	res, err := driver.ParseSource("a.js", []byte("1 + "), driver.Config{})
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("want a syntax diagnostic with the zero config")
	}

	tok := driver.TokenizeSource("b.js", []byte("\"unterminated"), 0)
	if !tok.Bag.HasErrors() {
		t.Fatal("want a lexical diagnostic with zero max")
	}
}
