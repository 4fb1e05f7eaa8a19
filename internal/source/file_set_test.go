package source

import "testing"

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.js", []byte("let x = 1;\n"))

	f := fs.Get(id)
	if f.Path != "test.js" {
		t.Fatalf("unexpected path: %q", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatal("expected FileVirtual flag")
	}
	if len(f.LineIdx) != 1 {
		t.Fatalf("expected one newline in index, got %d", len(f.LineIdx))
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.js", []byte("a;\nbb;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 0 {
		t.Fatalf("start: expected 2:0, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 2 {
		t.Fatalf("end: expected 2:2, got %d:%d", end.Line, end.Col)
	}
}

func TestFileSetGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/a.js", []byte("1"))

	if _, ok := fs.GetByPath("dir/a.js"); !ok {
		t.Fatal("expected to find dir/a.js")
	}
	if _, ok := fs.GetByPath("missing.js"); ok {
		t.Fatal("did not expect missing.js")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.js", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Fatalf("line 2: %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3: %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("line 4 should be empty, got %q", got)
	}
}
