package lexer

import (
	"volt/internal/token"
)

// ReScanJSXText переинтерпретирует всё от начала текущего токена до
// ближайшего '<', '{' или EOF как сырой JSX-текст. Вызывается парсером
// только между JSX-тегами при активном диалекте jsx.
// Если текст пуст (сразу '<' или '{'), возвращается обычный токен.
func (lx *Lexer) ReScanJSXText() token.Token {
	t := lx.Peek()
	if t.Kind == token.EOF {
		return t
	}

	lx.look = nil
	lx.cursor.Reset(Mark(t.Span.Start))

	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '<' || b == '{' {
			break
		}
		if lx.isLineTerminatorAt(lx.cursor.Off) {
			lx.sawNewline = true
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		// сразу тег или подстановка — перечитываем обычным путём
		return lx.Peek()
	}

	tok := token.Token{
		Kind:          token.JSXText,
		Span:          sp,
		Text:          string(lx.file.Content[sp.Start:sp.End]),
		NewlineBefore: t.NewlineBefore,
	}
	lx.look = &tok
	return tok
}
