package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanTemplate сканирует часть шаблонного литерала.
// fromBacktick=true — начинаем с открывающего `;
// fromBacktick=false — продолжаем с '}' после подстановки (re-scan).
// Kind выбирается по способу входа и выхода:
//
//	`  ... `   → NoSubTemplate
//	`  ... ${  → TemplateHead
//	}  ... ${  → TemplateMiddle
//	}  ... `   → TemplateTail
func (lx *Lexer) scanTemplate(fromBacktick bool) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ` или }

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '`' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateTail
			if fromBacktick {
				kind = token.NoSubTemplate
			}
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '$' && lx.cursor.PeekAt(1) == '{' {
			lx.cursor.Off += 2
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateMiddle
			if fromBacktick {
				kind = token.TemplateHead
			}
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.scanEscape(true)
			continue
		}
		// переводы строк внутри шаблона легальны
		if lx.isLineTerminatorAt(lx.cursor.Off) {
			lx.sawNewline = true
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.ErrUnterminatedTemplate, sp, nil)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// ReScanTemplateContinue переинтерпретирует текущий '}' как начало
// TemplateMiddle/TemplateTail. Вызывается парсером после разбора
// подстановки ${...}.
func (lx *Lexer) ReScanTemplateContinue() token.Token {
	t := lx.Peek()
	if t.Kind != token.RBrace {
		return t
	}
	lx.look = nil
	lx.cursor.Reset(Mark(t.Span.Start))
	tok := lx.scanTemplate(false)
	tok.NewlineBefore = t.NewlineBefore
	lx.look = &tok
	return tok
}
