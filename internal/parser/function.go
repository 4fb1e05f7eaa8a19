package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// tryParseAsyncFunction: ident "async" прямо перед 'function' на той же
// строке — асинхронная функция-выражение.
func (p *Parser) tryParseAsyncFunction() (ast.Expr, bool) {
	cp := p.mark()
	start := p.advance().Span // async
	if p.at(token.KwFunction) && !p.lx.Peek().NewlineBefore {
		return p.parseFunctionExpr(true, start), true
	}
	p.restore(cp)
	return nil, false
}

// parseFunctionExpr стоит на 'function'.
func (p *Parser) parseFunctionExpr(async bool, start source.Span) ast.Expr {
	p.advance() // function
	name, fn := p.parseFunctionRest(async)
	return &ast.FuncExpr{Loc: p.spanFrom(start), Name: name, Fn: fn}
}

// parseFunctionDecl стоит на 'function'; имя обязательно.
func (p *Parser) parseFunctionDecl(async bool, start source.Span) ast.Stmt {
	p.advance() // function
	name, fn := p.parseFunctionRest(async)
	if name == nil {
		p.err(diag.ErrExpectIdentifier, nil)
		name = &ast.Ident{Loc: p.getDiagnosticSpan()}
	}
	return &ast.FuncDecl{Loc: p.spanFrom(start), Name: name, Fn: fn}
}

// parseFunctionRest: [*] [name] (params) [:ret] body
func (p *Parser) parseFunctionRest(async bool) (*ast.Ident, ast.Function) {
	generator := false
	if p.at(token.Star) {
		p.advance()
		generator = true
	}

	var name *ast.Ident
	if p.atIdentLike() {
		name = p.parseIdent()
	}

	p.pushFunction(async, generator)
	defer p.pop()

	fn := ast.Function{Async: async, Generator: generator}
	fn.Params = p.parseParamList()
	fn.ReturnAnn = p.parseReturnAnnotation()
	fn.Body = p.parseFunctionBody(paramNames(fn.Params))
	return name, fn
}

// parseMethodTail стоит на '(' (ключ уже съеден).
func (p *Parser) parseMethodTail(async, generator bool) ast.Function {
	p.pushMethod(async, generator)
	defer p.pop()

	fn := ast.Function{Async: async, Generator: generator}
	fn.Params = p.parseParamList()
	fn.ReturnAnn = p.parseReturnAnnotation()
	fn.Body = p.parseFunctionBody(paramNames(fn.Params))
	return fn
}

// parseParamList: '(' param (',' param)* ')', rest — последний.
func (p *Parser) parseParamList() []*ast.Param {
	p.cur().inParams = true
	defer func() { p.cur().inParams = false }()

	p.expect(token.LParen, diag.ErrExpectParen)
	params := make([]*ast.Param, 0, 4)

	for !p.done() && !p.at(token.RParen) {
		param, ok := p.parseParam(false)
		if !ok {
			p.resyncStmt()
			break
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if _, isRest := param.Pat.(*ast.RestElement); isRest {
			p.err(diag.ErrTrailingCommaAfterRest, nil)
		}
	}
	p.expect(token.RParen, diag.ErrUnclosedParen)
	return params
}

// parseReturnAnnotation опрашивает точку ParamAnnotation на ':' перед
// телом функции.
func (p *Parser) parseReturnAnnotation() *ast.TypeAnn {
	if !p.at(token.Colon) {
		return nil
	}
	n, ok := p.dispatch(PointParamAnnotation)
	if !ok {
		return nil
	}
	ann, isAnn := n.(*ast.TypeAnn)
	if !isAnn {
		return nil
	}
	return ann
}

// parseFunctionBody разбирает '{' stmts '}' с обработкой пролога
// директив: "use strict" ретроактивно включает строгость для уже
// разобранных параметров (проверка дубликатов — в этот момент).
func (p *Parser) parseFunctionBody(params []boundName) *ast.BlockStmt {
	start := p.lx.Peek().Span
	if _, ok := p.eat(token.LBrace); !ok {
		p.err(diag.ErrUnclosedBrace, nil)
		return &ast.BlockStmt{Loc: p.getDiagnosticSpan()}
	}

	if p.cur().strict {
		p.checkDuplicateParams(params)
	}

	stmts := make([]ast.Stmt, 0, 8)
	inPrologue := true
	for !p.done() && !p.at(token.RBrace) {
		before := p.lx.Peek().Span
		st := p.parseStatement()
		if st != nil {
			stmts = append(stmts, st)
		}

		if inPrologue {
			if dir, ok := directiveOf(st); ok {
				if dir == "use strict" && !p.cur().strict {
					p.cur().strict = true
					p.checkDuplicateParams(params)
				}
			} else {
				inPrologue = false
			}
		}

		if p.lx.Peek().Span == before && !p.done() && !p.at(token.RBrace) {
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return &ast.BlockStmt{Loc: p.spanFrom(start), Stmts: stmts}
}

// directiveOf возвращает текст директивы, если statement — строковый
// ExpressionStatement (без скобок и конкатенаций).
func directiveOf(st ast.Stmt) (string, bool) {
	es, ok := st.(*ast.ExprStmt)
	if !ok {
		return "", false
	}
	lit, ok := es.X.(*ast.StringLit)
	if !ok || len(lit.Raw) < 2 {
		return "", false
	}
	return lit.Raw[1 : len(lit.Raw)-1], true
}

// checkDuplicateParams: в strict mode повторное имя параметра — ошибка;
// позиция диагностики — позднее вхождение.
func (p *Parser) checkDuplicateParams(params []boundName) {
	seen := make(map[string]bool, len(params))
	for _, n := range params {
		if n.name == "" {
			continue
		}
		if seen[n.name] {
			p.report(diag.ErrStrictDuplicateParam, n.span, diag.Details{"name": n.name})
			continue
		}
		seen[n.name] = true
	}
}
