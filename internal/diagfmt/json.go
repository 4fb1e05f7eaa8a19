package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"

	"volt/internal/diag"
	"volt/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	// Колонки нульориентированы, omitempty на них потерял бы
	// легитимную колонку 0; строки начинаются с 1, для них omitempty
	// означает «позиции не запрашивали».
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity       string       `json:"severity"`
	Code           string       `json:"code"`
	Reason         string       `json:"reason"`
	Message        string       `json:"message"`
	Fatal          bool         `json:"fatal,omitempty"`
	MissingDialect []string     `json:"missing_dialect,omitempty"`
	Location       LocationJSON `json:"location"`
	Notes          []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	path := "<unknown>"
	if f := fs.Get(span.File); f != nil {
		path = f.Path
		if pathMode == PathModeBasename {
			path = filepath.Base(path)
		}
	}

	loc := LocationJSON{
		File:      path,
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		dj := DiagnosticJSON{
			Severity:       d.Severity.String(),
			Code:           d.Kind.Code.ID(),
			Reason:         d.Kind.Reason,
			Message:        d.Text(),
			Fatal:          d.Fatal(),
			MissingDialect: d.MissingDialect,
			Location:       makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{
					Message:  n.Msg,
					Location: makeLocation(n.Span, fs, opts.PathMode, opts.IncludePositions),
				})
			}
		}
		diagnostics = append(diagnostics, dj)
	}
	return DiagnosticsOutput{Diagnostics: diagnostics, Count: bag.Len()}
}

// JSON сериализует диагностики в машиночитаемый вид.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := BuildDiagnosticsOutput(bag, fs, opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
