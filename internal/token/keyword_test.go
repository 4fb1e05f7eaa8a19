package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"function":   KwFunction,
		"let":        KwLet,
		"const":      KwConst,
		"return":     KwReturn,
		"await":      KwAwait,
		"yield":      KwYield,
		"instanceof": KwInstanceof,
		"typeof":     KwTypeof,
		"class":      KwClass,
		"null":       NullLit,
		"true":       TrueLit,
		"false":      FalseLit,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Function", "LET", "Await", // регистр важен
		"async", "of", "get", "set", "static", "from", "as", // контекстные — Ident
		"undefined", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestIsStrictReserved(t *testing.T) {
	for _, s := range []string{"implements", "interface", "package", "private", "protected", "public", "static"} {
		if !IsStrictReserved(s) {
			t.Fatalf("IsStrictReserved(%q) = false", s)
		}
	}
	if IsStrictReserved("await") {
		t.Fatal("await is not a strict-only reserved word")
	}
}
