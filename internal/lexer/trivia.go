package lexer

import (
	"volt/internal/diag"
)

// skipTrivia пропускает пробелы и комментарии перед значимым токеном.
// Пересечение перевода строки (включая перевод строки внутри блочного
// комментария) фиксируется в lx.sawNewline — это нужно парсеру для ASI и
// restricted productions.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		switch b {
		case ' ', '\t', '\v', '\f':
			lx.cursor.Bump()
			continue
		case '\n', '\r':
			lx.sawNewline = true
			lx.cursor.Bump()
			continue
		}

		// U+2028/U+2029 тоже line terminators
		if lx.isLineTerminatorAt(lx.cursor.Off) {
			lx.sawNewline = true
			lx.cursor.Off += 3
			continue
		}

		// NBSP и прочие юникодные пробелы
		if b >= utf8RuneSelf {
			r, sz := lx.peekRune()
			if sz > 0 && isUnicodeSpace(r) {
				lx.bumpRune()
				continue
			}
			return
		}

		if b == '/' {
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.skipLineComment()
				continue
			case '*':
				lx.skipBlockComment()
				continue
			}
			return
		}

		return
	}
}

func (lx *Lexer) skipLineComment() {
	lx.cursor.Off += 2 // '//'
	for !lx.cursor.EOF() && !lx.isLineTerminatorAt(lx.cursor.Off) {
		lx.bumpRune()
	}
	// сам перевод строки оставляем skipTrivia
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Off += 2 // '/*'
	for !lx.cursor.EOF() {
		if lx.isLineTerminatorAt(lx.cursor.Off) {
			lx.sawNewline = true
		}
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Off += 2
			return
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.ErrUnterminatedBlockComment, sp, nil)
}

func isUnicodeSpace(r rune) bool {
	switch {
	case r == 0x00A0 || r == 0xFEFF:
		return true
	case r >= 0x2000 && r <= 0x200A:
		return true
	case r == 0x202F || r == 0x205F || r == 0x3000 || r == 0x1680:
		return true
	}
	return false
}
