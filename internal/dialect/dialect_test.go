package dialect

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, k := range All() {
		got, ok := Parse(k.String())
		if !ok || got != k {
			t.Fatalf("Parse(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := Parse("flow"); ok {
		t.Fatal("unknown dialect must not parse")
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet(JSX, Pipeline)
	if !s.Has(JSX) || !s.Has(Pipeline) {
		t.Fatal("expected jsx and pipeline active")
	}
	if s.Has(TypeAnno) || s.Has(Decorators) {
		t.Fatal("inactive dialects reported active")
	}
	if s.Has(Unknown) {
		t.Fatal("Unknown is never a member")
	}
}

func TestParseSet(t *testing.T) {
	s, err := ParseSet([]string{"jsx", "decorators"})
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "jsx,decorators" {
		t.Fatalf("String() = %q", s.String())
	}

	if _, err := ParseSet([]string{"jsx", "nope"}); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}
