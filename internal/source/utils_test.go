package source

import "testing"

func TestToPosition(t *testing.T) {
	content := []byte("let a = 1;\nlet b = 2;\n")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 0},   // 'l'
		{4, 1, 4},   // 'a'
		{10, 1, 10}, // сам \n принадлежит первой строке
		{11, 2, 0},  // 'l' второй строки
		{15, 2, 4},  // 'b'
		{22, 3, 0},  // EOF после завершающего \n
	}

	for _, c := range cases {
		pos := toPosition(idx, c.off)
		if pos.Line != c.line || pos.Col != c.col {
			t.Errorf("off %d: expected %d:%d, got %d:%d", c.off, c.line, c.col, pos.Line, pos.Col)
		}
		if pos.Offset != c.off {
			t.Errorf("off %d: Offset mismatch: %d", c.off, pos.Offset)
		}
	}
}

func TestToPositionSingleLine(t *testing.T) {
	idx := buildLineIndex([]byte("abc"))
	pos := toPosition(idx, 2)
	if pos.Line != 1 || pos.Col != 2 {
		t.Fatalf("expected 1:2, got %d:%d", pos.Line, pos.Col)
	}
}

// Дописанный в конец файла \n сдвигает последующие строки ровно на единицу,
// колонки внутри строк не меняются.
func TestTrailingNewlineShiftsLines(t *testing.T) {
	base := []byte("a;\nb;")
	shifted := []byte("\na;\nb;")

	baseIdx := buildLineIndex(base)
	shiftedIdx := buildLineIndex(shifted)

	for off := uint32(0); off < uint32(len(base)); off++ {
		p0 := toPosition(baseIdx, off)
		p1 := toPosition(shiftedIdx, off+1)
		if p1.Line != p0.Line+1 {
			t.Errorf("off %d: expected line %d, got %d", off, p0.Line+1, p1.Line)
		}
		if p1.Col != p0.Col {
			t.Errorf("off %d: expected col %d, got %d", off, p0.Col, p1.Col)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatal("expected changes")
	}
	if string(out) != "a\nb\rc" {
		t.Fatalf("unexpected result: %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("no-op expected, got %q (%v)", out, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Fatalf("BOM not stripped: %q", out)
	}
}
