package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// gateJSX — шлагбаум точки PrimaryExpr: '<' в позиции выражения ни во
// что, кроме JSX, развернуться не может. Диалект выключен — одна
// диагностика с MissingDialect, JSX-подобный хвост пропускается.
func gateJSX(p *Parser) (ast.Node, bool) {
	if !p.at(token.Lt) {
		return nil, false
	}
	ltTok := p.lx.Peek()
	p.report(diag.ErrJSXNotEnabled, ltTok.Span, nil)

	// пропускаем до закрывающего '>' текущего тега, чтобы не сыпать
	// каскад вторичных ошибок
	p.advance()
	for !p.done() {
		t := p.lx.Peek()
		if t.Kind == token.Gt {
			p.advance()
			break
		}
		if t.NewlineBefore {
			break
		}
		p.advance()
	}
	return &ast.BadExpr{Loc: p.spanFrom(ltTok.Span)}, true
}

// gateDecorators — шлагбаум точки StatementLead для '@'. Декораторы
// разбираются и выбрасываются, диагностику ставит parseDecoratorList.
func gateDecorators(p *Parser) (ast.Node, bool) {
	if !p.at(token.At) {
		return nil, false
	}
	return parseDecoratedStatement(p)
}

// parseDecoratedStatement: '@expr'* class-declaration.
func parseDecoratedStatement(p *Parser) (ast.Node, bool) {
	if !p.at(token.At) {
		return nil, false
	}
	start := p.lx.Peek().Span
	decorators := p.parseDecoratorList()

	if p.at(token.KwClass) {
		return p.parseClassDecl(start, decorators), true
	}
	if t := p.lx.Peek(); t.Kind == token.KwExport {
		// export @dec class — нестандартный порядок, но декораторы перед
		// export у нас не переставляются: репортим как unexpected
		p.report(diag.ErrUnexpectedToken, t.Span, diag.Details{"found": t.Kind.String()})
	} else {
		p.err(diag.ErrUnexpectedToken, diag.Details{"found": p.lx.Peek().Kind.String()})
	}
	p.resyncStmt()
	return &ast.BadStmt{Loc: p.spanFrom(start)}, true
}

// gateTypeAnno — шлагбаум точки ParamAnnotation: ':' после биндинга
// опознаётся как аннотация, диалект выключен — диагностика, текст
// аннотации всё равно съедается, чтобы разбор продолжился чисто.
func gateTypeAnno(p *Parser) (ast.Node, bool) {
	if !p.at(token.Colon) {
		return nil, false
	}
	colTok := p.lx.Peek()
	p.report(diag.ErrTypeAnnoNotEnabled, colTok.Span, nil)
	ann := p.consumeTypeAnnotation()
	return ann, true
}

// parseTypeAnnotation — активный обработчик диалекта typeanno.
func parseTypeAnnotation(p *Parser) (ast.Node, bool) {
	if !p.at(token.Colon) {
		return nil, false
	}
	return p.consumeTypeAnnotation(), true
}

// consumeTypeAnnotation съедает ':' и толерантно сканирует текст
// аннотации: тип не строится, узел хранит только span. Остановка — на
// токене, завершающем позицию аннотации на нулевой глубине скобок.
func (p *Parser) consumeTypeAnnotation() *ast.TypeAnn {
	start := p.advance().Span // ':'
	depth := 0
	consumed := 0

	for !p.done() {
		t := p.lx.Peek()
		switch t.Kind {
		case token.LParen, token.LBracket, token.Lt:
			depth++
		case token.LBrace:
			// '{' в начале аннотации — объектный тип; после уже
			// прочитанного типа — начало тела функции
			if depth == 0 && consumed > 0 {
				return &ast.TypeAnn{Loc: p.spanFrom(start)}
			}
			depth++
		case token.RParen, token.RBracket, token.RBrace, token.Gt:
			if depth == 0 {
				return &ast.TypeAnn{Loc: p.spanFrom(start)}
			}
			depth--
		case token.Shr, token.UShr, token.GtEq, token.ShrAssign, token.UShrAssign:
			// лексер жадно склеил '>>' и родню; внутри генерика каждый
			// '>' закрывает свой уровень, отделяем по одному
			if depth == 0 {
				return &ast.TypeAnn{Loc: p.spanFrom(start)}
			}
			p.lx.ReScanGreater()
			depth--
		case token.Comma, token.Assign, token.Semicolon, token.Arrow:
			if depth == 0 {
				return &ast.TypeAnn{Loc: p.spanFrom(start)}
			}
		}
		p.advance()
		consumed++
	}
	return &ast.TypeAnn{Loc: p.spanFrom(start)}
}
