package lexer

import (
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// Жадность: сначала 4-символьные, затем 3-, 2-, 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try4('>', '>', '>', '='):
		return emit(token.UShrAssign)

	case lx.try3('=', '=', '='):
		return emit(token.EqEqEq)
	case lx.try3('!', '=', '='):
		return emit(token.BangEqEq)
	case lx.try3('*', '*', '='):
		return emit(token.StarStarAssign)
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try3('>', '>', '>'):
		return emit(token.UShr)
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try3('&', '&', '='):
		return emit(token.AndAndAssign)
	case lx.try3('|', '|', '='):
		return emit(token.OrOrAssign)
	case lx.try3('?', '?', '='):
		return emit(token.CoalesceAssign)

	case lx.try2('=', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('?', '?'):
		return emit(token.Coalesce)
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('-', '-'):
		return emit(token.MinusMinus)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2('|', '='):
		return emit(token.PipeAssign)
	case lx.try2('^', '='):
		return emit(token.CaretAssign)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('|', '>'):
		return emit(token.PipeGt)
	}

	// '?.' за которым цифра — это '?' и '.5' (тернарник с дробью)
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '.' && !isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.Off += 2
		return emit(token.QuestionDot)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '~':
		return emit(token.Tilde)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '@':
		return emit(token.At)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.ErrUnknownChar, sp, diag.Details{"char": string(lx.file.Content[sp.Start:sp.End])})
	return emit(token.Invalid)
}

// ReScanGreater разбивает жадно слексенный '>>', '>>>', '>=' и т.п. на
// одиночный '>' плюс остаток. Парсер вызывает его там, где каждый '>'
// закрывает свой уровень вложенности (вложенные генерики в аннотациях).
func (lx *Lexer) ReScanGreater() token.Token {
	t := lx.Peek()
	switch t.Kind {
	case token.Shr, token.UShr, token.GtEq, token.ShrAssign, token.UShrAssign:
	default:
		return t
	}
	lx.look = nil
	lx.cursor.Reset(Mark(t.Span.Start + 1))
	gt := token.Token{
		Kind:          token.Gt,
		Span:          source.Span{File: lx.file.ID, Start: t.Span.Start, End: t.Span.Start + 1},
		Text:          ">",
		NewlineBefore: t.NewlineBefore,
	}
	lx.look = &gt
	return gt
}
