package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., легаси-восьмеричные 0123,
// 1.0, 1e-3, .5, разделители '_', суффикс 'n' для BigInt.
// Легаси-восьмеричная форма остаётся NumberLit — запрет в strict mode
// проверяет парсер по тексту токена.
// Неверные формы — репорт в Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumberLit
	isInt := true

	if lx.cursor.Peek() == '.' {
		// формат ".digits"
		lx.cursor.Bump()
		isInt = false
		lx.eatDigits(isDec)
		lx.maybeExponent(start)
		return lx.finishNumber(start, kind, isInt)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				lx.badNumber(start, "expected binary digits after '0b'")
			}
			return lx.finishNumber(start, kind, isInt)
		case 'o', 'O':
			lx.cursor.Bump()
			if !lx.eatDigits(isOctal) {
				lx.badNumber(start, "expected octal digits after '0o'")
			}
			return lx.finishNumber(start, kind, isInt)
		case 'x', 'X':
			lx.cursor.Bump()
			if !lx.eatDigits(isHex) {
				lx.badNumber(start, "expected hex digits after '0x'")
			}
			return lx.finishNumber(start, kind, isInt)
		}
		// "0" с цифрами дальше — легаси-восьмеричная форма (или 08/09).
		// Съедаем как десятичные: текст сохранит ведущий ноль.
		lx.eatDigits(isDec)
	} else {
		lx.eatDigits(isDec)
	}

	// дробная часть
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		isInt = false
		lx.eatDigits(isDec)
	}

	lx.maybeExponent(start)
	if hasExp(lx.file.Content[uint32(start):lx.cursor.Off]) {
		isInt = false
	}

	return lx.finishNumber(start, kind, isInt)
}

// eatDigits съедает цифры данного класса вперемешку с '_'.
// Возвращает false, если не съедено ни одной цифры.
func (lx *Lexer) eatDigits(valid func(byte) bool) bool {
	any := false
	for {
		b := lx.cursor.Peek()
		if valid(b) {
			any = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		return any
	}
}

func (lx *Lexer) maybeExponent(start Mark) {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	next := lx.cursor.PeekAt(1)
	if next == '+' || next == '-' {
		if !isDec(lx.cursor.PeekAt(2)) {
			return
		}
		lx.cursor.Bump() // e
		lx.cursor.Bump() // sign
	} else if isDec(next) {
		lx.cursor.Bump() // e
	} else {
		return
	}
	lx.eatDigits(isDec)
}

func hasExp(text []byte) bool {
	for _, b := range text {
		if b == 'e' || b == 'E' {
			return true
		}
	}
	return false
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind, isInt bool) token.Token {
	// BigInt суффикс — только для целых форм
	if lx.cursor.Peek() == 'n' {
		if isInt {
			lx.cursor.Bump()
			kind = token.BigIntLit
		} else {
			lx.cursor.Bump()
			lx.badNumber(start, "BigInt suffix on non-integer literal")
		}
	}

	// Идентификаторный символ вплотную за числом — ошибка, но токен отдаём.
	b := lx.cursor.Peek()
	if isIdentContinueByte(b) || b >= utf8RuneSelf {
		r, sz := lx.peekRune()
		if sz > 0 && isIdentContinueRune(r) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.ErrIdentAfterNumber, sp.Collapse(), nil)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) badNumber(start Mark, why string) {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.ErrBadNumber, sp, diag.Details{"why": why})
}
