package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			// fallback на оператор
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
	}

	lx.scanIdentContinue()

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Проверка на ключевое слово (регистрозависимо)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanIdentContinue съедает хвост идентификатора (ASCII fast-path).
func (lx *Lexer) scanIdentContinue() {
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// scanPrivateName сканирует '#name' (ссылки на приватные члены класса).
func (lx *Lexer) scanPrivateName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	r, sz := lx.peekRune()
	ok := sz > 0 && ((r < utf8RuneSelf && isIdentStartByte(byte(r))) || (r >= utf8RuneSelf && isIdentStartRune(r)))
	if !ok {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.ErrInvalidPrivateName, sp, nil)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	lx.bumpRune()
	lx.scanIdentContinue()

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.PrivateName, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
