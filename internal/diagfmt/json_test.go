package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"volt/internal/diag"
	"volt/internal/diagfmt"
	"volt/internal/source"
)

func TestJSONOutput(t *testing.T) {
	bag, fs := makeBag(t, "x |> f", 2, 4, diag.ErrPipelineNotEnabled, nil)

	var sb strings.Builder
	err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, items = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "DIA4004" {
		t.Fatalf("code = %q", d.Code)
	}
	if d.Reason != "PipelineNotEnabled" {
		t.Fatalf("reason = %q", d.Reason)
	}
	if len(d.MissingDialect) != 1 || d.MissingDialect[0] != "pipeline" {
		t.Fatalf("missing_dialect = %v", d.MissingDialect)
	}
	if d.Location.StartByte != 2 || d.Location.EndByte != 4 {
		t.Fatalf("span = %d..%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 2 {
		t.Fatalf("pos = %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONKeepsColumnZero(t *testing.T) {
	// диагностика в начале строки: колонка 0 обязана попасть в вывод
	bag, fs := makeBag(t, "bad\n", 0, 3, diag.ErrExpectExpression, nil)

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"start_col": 0`) {
		t.Fatalf("start_col missing from output:\n%s", sb.String())
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 1 || loc.StartCol != 0 || loc.EndCol != 3 {
		t.Fatalf("pos = %d:%d..%d", loc.StartLine, loc.StartCol, loc.EndCol)
	}
}

func TestJSONMaxTruncation(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.js", []byte("abc"))
	f := fs.Get(id)

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.ErrExpectExpression.New(
			source.Span{File: id, Start: i, End: i + 1}, f.Position(i), nil))
	}

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 {
		t.Fatalf("want 2 diagnostics after truncation, got %d", len(out.Diagnostics))
	}
	if out.Count != 3 {
		t.Fatalf("Count must report the full bag size, got %d", out.Count)
	}
}

func TestJSONNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.js", []byte("let a"))
	f := fs.Get(id)

	bag := diag.NewBag(10)
	d := diag.ErrExpectExpression.New(
		source.Span{File: id, Start: 0, End: 1}, f.Position(0), nil)
	d = d.WithNote(source.Span{File: id, Start: 4, End: 5}, "see here")
	bag.Add(d)

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{IncludeNotes: true})
	if len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("want 1 note, got %d", len(out.Diagnostics[0].Notes))
	}
	if out.Diagnostics[0].Notes[0].Message != "see here" {
		t.Fatalf("note = %q", out.Diagnostics[0].Notes[0].Message)
	}
}
