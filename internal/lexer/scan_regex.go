package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// ReScanRegExp переинтерпретирует текущий '/' (или '/=') как начало
// регулярного выражения. Лексить '/' контекстно-независимо нельзя —
// парсер вызывает re-scan, когда '/' стоит в позиции начала выражения.
func (lx *Lexer) ReScanRegExp() token.Token {
	t := lx.Peek()
	if t.Kind != token.Slash && t.Kind != token.SlashAssign {
		return t
	}
	lx.look = nil
	lx.cursor.Reset(Mark(t.Span.Start))
	tok := lx.scanRegExp()
	tok.NewlineBefore = t.NewlineBefore
	lx.look = &tok
	return tok
}

func (lx *Lexer) scanRegExp() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	for {
		if lx.cursor.EOF() || lx.isLineTerminatorAt(lx.cursor.Off) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.ErrUnterminatedRegExp, sp, nil)
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() && !lx.isLineTerminatorAt(lx.cursor.Off) {
				lx.bumpRune()
			}
			continue
		}
		if b == '[' {
			inClass = true
		} else if b == ']' {
			inClass = false
		} else if b == '/' && !inClass {
			lx.cursor.Bump()
			break
		}
		lx.bumpRune()
	}

	// флаги: любые продолжения идентификатора (валидность набора
	// флагов — забота семантики регулярок, не лексера)
	lx.scanIdentContinue()

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.RegExpLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
