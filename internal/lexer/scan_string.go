package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanString сканирует '...' и "..." c поддержкой escape-последовательностей
// (\n \t \xNN \uXXXX \u{...}, продолжение строки через \<newline>).
// Перевод строки или EOF до закрывающей кавычки — фатальная ошибка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.scanEscape(false)
			continue
		}
		if lx.isLineTerminatorAt(lx.cursor.Off) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.ErrUnterminatedString, sp, nil)
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.bumpRune()
	}

	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.ErrUnterminatedString, sp, nil)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscape валидирует одну escape-последовательность после '\'.
// inTemplate смягчает правила (в шаблонах \<newline> всегда допустим).
func (lx *Lexer) scanEscape(inTemplate bool) {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return
	}

	// продолжение строки: \ перед переводом строки
	if lx.isLineTerminatorAt(lx.cursor.Off) {
		lx.bumpRune()
		return
	}

	b := lx.cursor.Bump()
	switch b {
	case 'x':
		// ровно две hex-цифры
		if !isHex(lx.cursor.Peek()) || !isHex(lx.cursor.PeekAt(1)) {
			lx.badEscape(escStart)
			return
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
	case 'u':
		if lx.cursor.Eat('{') {
			// \u{XXXXXX}, до 0x10FFFF
			digits := 0
			var v uint32
			for isHex(lx.cursor.Peek()) {
				v = v*16 + hexVal(lx.cursor.Bump())
				digits++
			}
			if digits == 0 || !lx.cursor.Eat('}') {
				lx.badEscape(escStart)
				return
			}
			if v > 0x10FFFF {
				lx.errLex(diag.ErrBadCodePoint, lx.cursor.SpanFrom(escStart), nil)
			}
			return
		}
		// \uXXXX — ровно четыре hex-цифры
		for i := 0; i < 4; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.badEscape(escStart)
				return
			}
			lx.cursor.Bump()
		}
	default:
		_ = inTemplate
		// одиночные \n \t \' \" \\ \0 и любые прочие символы допустимы;
		// легаси-восьмеричные escape проверяет парсер в strict-контексте
	}
}

func (lx *Lexer) badEscape(escStart Mark) {
	sp := lx.cursor.SpanFrom(escStart)
	lx.errLex(diag.ErrInvalidEscape, sp, diag.Details{"escape": string(lx.file.Content[sp.Start:sp.End])})
}

func hexVal(b byte) uint32 {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0')
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10
	default:
		return uint32(b-'A') + 10
	}
}
