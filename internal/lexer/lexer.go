package lexer

import (
	"volt/internal/source"
	"volt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	// sawNewline накапливает «пересекли перевод строки» между значимыми
	// токенами; сбрасывается при эмиссии токена.
	sawNewline bool
	// fatal становится true после фатальной лексической ошибки;
	// дальше выдаём только EOF.
	fatal bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the source file the lexer reads from.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next возвращает следующий значимый токен с уже вычисленным NewlineBefore.
// После EOF (или фатальной ошибки) всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) Пропустить пробелы и комментарии, запомнив переводы строк
	lx.skipTrivia()

	if lx.fatal || lx.cursor.EOF() {
		return token.Token{
			Kind:          token.EOF,
			Span:          lx.EmptySpan(),
			NewlineBefore: lx.sawNewline,
		}
	}

	// 3) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '`':
		tok = lx.scanTemplate(true)

	case ch == '#':
		tok = lx.scanPrivateName()

	default:
		// операторы, скобки, запятые и т.д.
		tok = lx.scanOperatorOrPunct()
	}

	tok.NewlineBefore = lx.sawNewline
	lx.sawNewline = false
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// SkipTo jumps the scan position forward to the given offset, dropping the
// lookahead buffer. Used for the leading hashbang line.
func (lx *Lexer) SkipTo(off uint32) {
	lx.look = nil
	if off > lx.cursor.Off {
		lx.cursor.Off = off
	}
}

// EmptySpan returns a zero-length span at the current scan position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Checkpoint is an O(1) snapshot of the full lexer state.
type Checkpoint struct {
	off        uint32
	look       *token.Token
	sawNewline bool
	fatal      bool
}

// Checkpoint snapshots the scan position and the lookahead buffer.
func (lx *Lexer) Checkpoint() Checkpoint {
	cp := Checkpoint{
		off:        lx.cursor.Off,
		sawNewline: lx.sawNewline,
		fatal:      lx.fatal,
	}
	if lx.look != nil {
		t := *lx.look
		cp.look = &t
	}
	return cp
}

// Restore rolls the lexer back to the checkpoint in O(1).
func (lx *Lexer) Restore(cp Checkpoint) {
	lx.cursor.Off = cp.off
	lx.sawNewline = cp.sawNewline
	lx.fatal = cp.fatal
	if cp.look != nil {
		t := *cp.look
		lx.look = &t
	} else {
		lx.look = nil
	}
}
