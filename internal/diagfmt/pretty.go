package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"volt/internal/diag"
	"volt/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	codeColor = color.New(color.Bold)
	gutterCol = color.New(color.FgBlue)
	caretCol  = color.New(color.FgRed, color.Bold)
	hintColor = color.New(color.FgGreen)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	color.NoColor = !opts.Color
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Pos, d.Severity, d.Kind.Code, d.Text(), opts)
		writeSourceWindow(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				pos := fs.PositionFor(n.Span.File, n.Span.Start)
				writeHeading(w, fs, n.Span, pos, diag.SevInfo, diag.UnknownCode, n.Msg, opts)
				writeSourceWindow(w, fs, n.Span, opts)
			}
		}
		if opts.ShowHints && len(d.MissingDialect) > 0 {
			fmt.Fprintf(w, "  %s %s\n",
				hintColor.Sprint("hint:"),
				"enable dialect "+strings.Join(d.MissingDialect, ", "))
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sp source.Span, pos source.Position,
	sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	path := "<unknown>"
	if f := fs.Get(sp.File); f != nil {
		path = f.Path
		if opts.PathMode == PathModeBasename {
			path = filepath.Base(path)
		}
	}
	label := sevColor(sev).Sprint(sev.String())
	if code != diag.UnknownCode {
		label += " " + codeColor.Sprint(code.ID())
	}
	// Position.Col нульориентирована, людям показываем с единицы.
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, pos.Line, pos.Col+1, label, msg)
}

// writeSourceWindow печатает строку со span'ом плюс Context строк вокруг
// и каретку под самим span'ом.
func writeSourceWindow(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)

	first := start.Line
	if ctx := uint32(opts.Context); first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + uint32(opts.Context)

	for line := first; line <= last; line++ {
		text := f.GetLine(line)
		if text == "" && line > start.Line {
			break
		}
		fmt.Fprintf(w, "%s %s\n", gutterCol.Sprintf("%5d |", line), text)
		if line != start.Line {
			continue
		}

		// каретка: ширина префикса и подчёркивания в экранных колонках
		col := int(start.Col)
		if col > len(text) {
			col = len(text)
		}
		pad := runewidth.StringWidth(text[:col])

		width := 1
		if end.Line == start.Line && int(end.Col) <= len(text) && end.Col > start.Col {
			width = runewidth.StringWidth(text[col:end.Col])
		}
		if width < 1 {
			width = 1
		}
		marker := "^"
		if width > 1 {
			marker += strings.Repeat("~", width-1)
		}
		fmt.Fprintf(w, "%s %s%s\n",
			gutterCol.Sprint("      |"),
			strings.Repeat(" ", pad),
			caretCol.Sprint(marker))
	}
}

func sevColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
