package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	p.checkFatalFromBag()
	return tok
}

// eat съедает токен, если он нужного вида.
func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// На EOF (или Invalid нулевой длины) сдвигаемся в позицию сразу после
// последнего съеденного токена: «ошибка за плюсом», а не в нуле.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		}
	}
	return peek.Span
}

// report строит диагностику из каталожного kind и кладёт её в bag.
// Возвращает false, когда достигнут лимит ошибок либо уже была фатальная.
func (p *Parser) report(k *diag.Kind, sp source.Span, details diag.Details) bool {
	if p.fatal {
		return false
	}
	if k.Severity == diag.SevError {
		p.errCount++
	}
	if p.opts.enough(p.errCount) {
		return false
	}
	d := k.New(sp, p.file.Position(sp.Start), details)
	p.bag.Add(d)
	if k.Fatal {
		p.fatal = true
	}
	return true
}

// err репортует kind в текущей позиции.
func (p *Parser) err(k *diag.Kind, details diag.Details) bool {
	return p.report(k, p.getDiagnosticSpan(), details)
}

// unexpected репортует либо UnexpectedEOF (фатально), либо UnexpectedToken.
func (p *Parser) unexpected() {
	if p.at(token.EOF) {
		p.err(diag.ErrUnexpectedEOF, nil)
		return
	}
	t := p.lx.Peek()
	p.report(diag.ErrUnexpectedToken, t.Span, diag.Details{"found": t.Kind.String()})
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, dk *diag.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	if p.at(token.EOF) {
		p.report(diag.ErrUnexpectedEOF, sp, nil)
	} else {
		p.report(dk, sp, nil)
	}
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// checkFatalFromBag подхватывает фатальные диагностики лексера:
// после них лексер выдаёт только EOF, и продолжать разбор бессмысленно.
func (p *Parser) checkFatalFromBag() {
	if !p.fatal && p.bag.HasFatal() {
		p.fatal = true
	}
}

// spanFrom строит span узла от стартового до конца последнего съеденного.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// consumeSemicolon реализует ASI: явная ';' съедается; перед '}'/EOF либо
// после перевода строки точка с запятой вставляется виртуально.
func (p *Parser) consumeSemicolon() {
	if p.at(token.Semicolon) {
		p.advance()
		return
	}
	if p.at(token.RBrace) || p.at(token.EOF) || p.lx.Peek().NewlineBefore {
		return
	}
	p.err(diag.ErrExpectSemicolon, nil)
}

// resyncStmt пропускает токены до границы следующего statement:
// ';' (съедается), '}' или ключевое слово, открывающее statement.
func (p *Parser) resyncStmt() {
	depth := 0
	for !p.done() {
		switch p.lx.Peek().Kind {
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		case token.LBrace, token.LParen, token.LBracket:
			depth++
		case token.RBrace, token.RParen, token.RBracket:
			if depth == 0 {
				return
			}
			depth--
		case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
			token.KwClass, token.KwIf, token.KwFor, token.KwWhile,
			token.KwReturn, token.KwThrow, token.KwTry, token.KwSwitch,
			token.KwImport, token.KwExport:
			if depth == 0 && p.lx.Peek().NewlineBefore {
				return
			}
		}
		p.advance()
	}
}

// atIdentLike: идентификатор либо контекстное ключевое слово, которое в
// данном контексте может быть именем.
func (p *Parser) atIdentLike() bool {
	switch p.lx.Peek().Kind {
	case token.Ident, token.KwLet:
		return true
	case token.KwAwait:
		return !p.awaitIsKeyword()
	case token.KwYield:
		return !p.yieldIsKeyword()
	default:
		return false
	}
}

// parseIdent разбирает идентификатор (или контекстное слово-имя) и
// проверяет strict-резервы.
func (p *Parser) parseIdent() *ast.Ident {
	t := p.lx.Peek()
	if !p.atIdentLike() {
		p.err(diag.ErrExpectIdentifier, nil)
		return &ast.Ident{Loc: p.getDiagnosticSpan()}
	}
	p.advance()
	if p.cur().strict && tokenIsStrictReserved(t) {
		p.report(diag.ErrStrictReservedWord, t.Span, diag.Details{"word": t.Text})
	}
	return &ast.Ident{Loc: t.Span, Name: t.Text}
}

func tokenIsStrictReserved(t token.Token) bool {
	switch t.Kind {
	case token.KwLet, token.KwYield:
		return true
	case token.Ident:
		return token.IsStrictReserved(t.Text)
	default:
		return false
	}
}
