package diag

import (
	"fmt"
	"sort"
	"strings"

	"volt/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics into a stable,
// single-line-per-entry representation suitable for golden tests and CLI
// short output.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		f := fs.Get(d.Primary.File)
		rendered = append(rendered, goldenDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Kind.Code.ID(),
			Path:     f.Path,
			Line:     d.Pos.Line,
			Column:   d.Pos.Col,
			Message:  d.Message(),
		})
		if includeNotes {
			for _, n := range d.Notes {
				pos, _ := fs.Resolve(n.Span)
				rendered = append(rendered, goldenDiagnostic{
					Severity: "NOTE",
					Code:     d.Kind.Code.ID(),
					Path:     f.Path,
					Line:     pos.Line,
					Column:   pos.Col,
					Message:  n.Msg,
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return di.Code < dj.Code
	})

	var sb strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n", r.Path, r.Line, r.Column, r.Severity, r.Code, r.Message)
	}
	return sb.String()
}
