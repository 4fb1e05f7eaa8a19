package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// tryParseArrow спекулятивно пробует стрелочную функцию. Возвращает
// (nil, false) без побочных эффектов, если это не стрелка: checkpoint
// откатывает и токены, и диагностики.
func (p *Parser) tryParseArrow() (ast.Expr, bool) {
	t := p.lx.Peek()

	switch {
	case t.Kind == token.Ident && t.Text == "async":
		// async x => ..., async (x) => ..., но не вызов async(...)
		cp := p.mark()
		p.advance()
		next := p.lx.Peek()
		if next.NewlineBefore {
			p.restore(cp)
			return nil, false
		}
		if next.Kind == token.Ident || next.Kind == token.LParen {
			if e, ok := p.tryArrowTail(t.Span, true); ok {
				return e, true
			}
		}
		p.restore(cp)
		return nil, false

	case p.atIdentLike():
		// одиночный параметр: x => body
		cp := p.mark()
		p.advance()
		if p.at(token.Arrow) && !p.lx.Peek().NewlineBefore {
			param := &ast.Param{Loc: t.Span, Pat: &ast.Ident{Loc: t.Span, Name: t.Text}}
			return p.parseArrowBody(t.Span, []*ast.Param{param}, nil, false), true
		}
		p.restore(cp)
		return nil, false

	case t.Kind == token.LParen:
		cp := p.mark()
		if e, ok := p.tryArrowTail(t.Span, false); ok {
			return e, true
		}
		p.restore(cp)
		return nil, false
	}
	return nil, false
}

// tryArrowTail стоит на '(' (или на идентификаторе после async) и
// пробует дочитать список параметров и '=>'.
func (p *Parser) tryArrowTail(start source.Span, async bool) (ast.Expr, bool) {
	if p.atIdentLike() {
		t := p.advance()
		if !p.at(token.Arrow) || p.lx.Peek().NewlineBefore {
			return nil, false
		}
		param := &ast.Param{Loc: t.Span, Pat: &ast.Ident{Loc: t.Span, Name: t.Text}}
		return p.parseArrowBody(start, []*ast.Param{param}, nil, async), true
	}

	if !p.at(token.LParen) {
		return nil, false
	}

	params, retAnn, ok := p.tryParseArrowParams()
	if !ok {
		return nil, false
	}
	if !p.at(token.Arrow) || p.lx.Peek().NewlineBefore {
		return nil, false
	}
	return p.parseArrowBody(start, params, retAnn, async), true
}

// tryParseArrowParams читает '(' params ')' (+ аннотацию результата)
// в спекулятивном режиме: любой конфликт — false без диагностик,
// решение принимает откатившийся вызывающий.
func (p *Parser) tryParseArrowParams() ([]*ast.Param, *ast.TypeAnn, bool) {
	cp := p.mark()
	p.advance() // '('

	params := make([]*ast.Param, 0, 4)
	for !p.done() && !p.at(token.RParen) {
		param, ok := p.parseParam(true)
		if !ok {
			p.restore(cp)
			return nil, nil, false
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if _, isRest := param.Pat.(*ast.RestElement); isRest {
			// запятая после rest недопустима; в спекуляции просто отказ
			p.restore(cp)
			return nil, nil, false
		}
	}
	if !p.at(token.RParen) {
		p.restore(cp)
		return nil, nil, false
	}
	p.advance()

	var retAnn *ast.TypeAnn
	if p.at(token.Colon) {
		n, ok := p.dispatch(PointParamAnnotation)
		if ok {
			if ann, isAnn := n.(*ast.TypeAnn); isAnn {
				retAnn = ann
			}
		}
	}
	return params, retAnn, true
}

// parseArrowBody стоит на '=>'.
func (p *Parser) parseArrowBody(start source.Span, params []*ast.Param, retAnn *ast.TypeAnn, async bool) ast.Expr {
	p.advance() // '=>'

	p.pushArrow(async)
	defer p.pop()

	var body ast.Node
	if p.at(token.LBrace) {
		names := paramNames(params)
		body = p.parseFunctionBody(names)
	} else if p.startsExpression() {
		body = p.parseAssign(false)
	} else {
		p.err(diag.ErrExpectArrowBody, nil)
		body = &ast.BadExpr{Loc: p.getDiagnosticSpan()}
	}

	return &ast.ArrowFunc{
		Loc:       p.spanFrom(start),
		Params:    params,
		ReturnAnn: retAnn,
		Body:      body,
		Async:     async,
	}
}
