package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 10}
	b := Span{File: 0, Start: 2, End: 6}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Fatalf("Cover: expected 2-10, got %d-%d", got.Start, got.End)
	}

	// разные файлы — не трогаем
	c := Span{File: 1, Start: 0, End: 100}
	got = a.Cover(c)
	if got != a {
		t.Fatalf("Cover across files must be a no-op, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 20}
	inner := Span{File: 0, Start: 5, End: 10}

	if !outer.Contains(inner) {
		t.Fatal("outer must contain inner")
	}
	if inner.Contains(outer) {
		t.Fatal("inner must not contain outer")
	}
}

func TestSpanCollapse(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	c := s.Collapse()
	if !c.Empty() || c.Start != 7 {
		t.Fatalf("Collapse: expected empty span at 7, got %v", c)
	}
}
