package diag

import (
	"testing"

	"volt/internal/source"
)

func mkDiag(k *Kind, start, end uint32) Diagnostic {
	var details Details
	if len(k.Required) > 0 {
		details = Details{}
		for _, key := range k.Required {
			details[key] = "x"
		}
	}
	return k.New(source.Span{Start: start, End: end}, source.Position{Line: 1, Col: start, Offset: start}, details)
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(mkDiag(ErrExpectSemicolon, 0, 1)) {
		t.Fatal("first Add must succeed")
	}
	if !b.Add(mkDiag(ErrExpectSemicolon, 2, 3)) {
		t.Fatal("second Add must succeed")
	}
	if b.Add(mkDiag(ErrExpectSemicolon, 4, 5)) {
		t.Fatal("Add past cap must fail")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagSortStableByPosition(t *testing.T) {
	b := NewBag(10)
	b.Add(mkDiag(ErrExpectSemicolon, 20, 21))
	b.Add(mkDiag(ErrExpectExpression, 5, 6))
	b.Add(mkDiag(ErrUnexpectedToken, 5, 6))

	b.Sort()
	items := b.Items()
	if items[0].Primary.Start != 5 || items[2].Primary.Start != 20 {
		t.Fatal("Sort must order by start offset")
	}
	// на одинаковой позиции — по коду
	if items[0].Kind.Code > items[1].Kind.Code {
		t.Fatal("ties must be broken by code")
	}
}

func TestBagTruncate(t *testing.T) {
	b := NewBag(10)
	b.Add(mkDiag(ErrExpectSemicolon, 0, 1))
	mark := b.Len()
	b.Add(mkDiag(ErrExpectExpression, 2, 3))
	b.Add(mkDiag(ErrExpectExpression, 4, 5))

	b.Truncate(mark)
	if b.Len() != 1 {
		t.Fatalf("Truncate: Len = %d, want 1", b.Len())
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(mkDiag(ErrExpectSemicolon, 0, 1))
	b.Add(mkDiag(ErrExpectSemicolon, 0, 1))
	b.Add(mkDiag(ErrExpectSemicolon, 2, 3))

	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("Dedup: Len = %d, want 2", b.Len())
	}
}

func TestBagHasFatal(t *testing.T) {
	b := NewBag(10)
	b.Add(mkDiag(ErrExpectSemicolon, 0, 1))
	if b.HasFatal() {
		t.Fatal("no fatal yet")
	}
	b.Add(mkDiag(ErrUnterminatedString, 2, 3))
	if !b.HasFatal() {
		t.Fatal("fatal expected")
	}
}
