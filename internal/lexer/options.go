package lexer

import (
	"volt/internal/diag"
	"volt/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

// errLex reports a lexical diagnostic. A fatal kind puts the lexer into its
// terminal state: every following Next returns EOF.
func (lx *Lexer) errLex(k *diag.Kind, sp source.Span, details diag.Details) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(k.New(sp, lx.file.Position(sp.Start), details))
	}
	if k.Fatal {
		lx.fatal = true
	}
}
