package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	if n, ok := p.dispatch(PointStatementLead); ok {
		if st, isStmt := n.(ast.Stmt); isStmt {
			return st
		}
	}

	t := p.lx.Peek()
	switch t.Kind {
	case token.LBrace:
		return p.parseBlock()

	case token.Semicolon:
		p.advance()
		return &ast.EmptyStmt{Loc: t.Span}

	case token.KwDebugger:
		p.advance()
		p.consumeSemicolon()
		return &ast.DebuggerStmt{Loc: p.spanFrom(t.Span)}

	case token.KwVar, token.KwConst:
		return p.parseVarDecl(false, true)

	case token.KwLet:
		if p.letStartsDeclaration() {
			return p.parseVarDecl(false, true)
		}

	case token.KwFunction:
		return p.parseFunctionDecl(false, t.Span)

	case token.KwClass:
		return p.parseClassDecl(t.Span, nil)

	case token.KwIf:
		return p.parseIf()

	case token.KwWhile:
		return p.parseWhile()

	case token.KwDo:
		return p.parseDoWhile()

	case token.KwFor:
		return p.parseFor()

	case token.KwSwitch:
		return p.parseSwitch()

	case token.KwTry:
		return p.parseTry()

	case token.KwReturn:
		return p.parseReturn()

	case token.KwThrow:
		return p.parseThrow()

	case token.KwBreak, token.KwContinue:
		return p.parseBreakContinue()

	case token.KwWith:
		return p.parseWith()

	case token.KwImport:
		if st, ok := p.tryParseImportDecl(); ok {
			return st
		}

	case token.KwExport:
		return p.parseExportDecl()

	case token.Ident:
		if t.Text == "async" {
			cp := p.mark()
			p.advance()
			if p.at(token.KwFunction) && !p.lx.Peek().NewlineBefore {
				return p.parseFunctionDecl(true, t.Span)
			}
			p.restore(cp)
		}
	}

	// метка: identlike ':'
	if p.atIdentLike() {
		cp := p.mark()
		label := p.advance()
		if p.at(token.Colon) {
			p.advance()
			return p.parseLabeled(label)
		}
		p.restore(cp)
	}

	return p.parseExprStatement()
}

func (p *Parser) parseExprStatement() ast.Stmt {
	start := p.lx.Peek().Span
	if !p.startsExpression() {
		p.unexpected()
		p.resyncStmt()
		return &ast.BadStmt{Loc: p.spanFrom(start)}
	}
	x := p.parseExpression(false)
	p.consumeSemicolon()
	return &ast.ExprStmt{Loc: p.spanFrom(start), X: x}
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.advance().Span // '{'
	stmts := p.parseStmtList(token.RBrace)
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return &ast.BlockStmt{Loc: p.spanFrom(start), Stmts: stmts}
}

// letStartsDeclaration: `let` открывает объявление, только если дальше
// следует биндинг; иначе это идентификатор-выражение.
func (p *Parser) letStartsDeclaration() bool {
	cp := p.mark()
	p.advance() // let
	next := p.lx.Peek()
	ok := next.IsIdentLike() || next.Kind == token.LBracket || next.Kind == token.LBrace
	p.restore(cp)
	return ok
}

// parseVarDecl: var/let/const декларация. noIn — режим заголовка for,
// consumeSemi — завершать ли точкой с запятой (ASI).
func (p *Parser) parseVarDecl(noIn, consumeSemi bool) *ast.VarDecl {
	kw := p.advance()
	kind := ast.VarVar
	switch kw.Kind {
	case token.KwLet:
		kind = ast.VarLet
	case token.KwConst:
		kind = ast.VarConst
	}

	decl := &ast.VarDecl{Kind: kind}
	for !p.done() {
		dStart := p.lx.Peek().Span

		if t := p.lx.Peek(); t.Kind == token.KwLet && kind != ast.VarVar {
			p.report(diag.ErrLetAsBindingName, t.Span, nil)
		}
		pat, ok := p.parseBindingPattern(false)
		if !ok {
			p.resyncStmt()
			break
		}

		var ann *ast.TypeAnn
		if p.at(token.Colon) {
			if n, handled := p.dispatch(PointParamAnnotation); handled {
				if a, isAnn := n.(*ast.TypeAnn); isAnn {
					ann = a
				}
			}
		}

		var init ast.Expr
		if p.at(token.Assign) {
			p.advance()
			init = p.parseAssign(noIn)
		}

		_, isIdentPat := pat.(*ast.Ident)
		atForBinder := noIn && (p.at(token.KwIn) || p.atContextualOf())
		if init == nil && !atForBinder {
			if kind == ast.VarConst {
				p.report(diag.ErrMissingInitializer, p.spanFrom(dStart), diag.Details{"decl": "const"})
			} else if !isIdentPat {
				p.report(diag.ErrMissingInitializer, p.spanFrom(dStart), diag.Details{"decl": "destructuring"})
			}
		}

		decl.Decls = append(decl.Decls, &ast.VarDeclarator{
			Loc: p.spanFrom(dStart), ID: pat, Ann: ann, Init: init,
		})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if consumeSemi {
		p.consumeSemicolon()
	}
	decl.Loc = p.spanFrom(kw.Span)
	return decl
}

func (p *Parser) atContextualOf() bool {
	t := p.lx.Peek()
	return t.Kind == token.Ident && t.Text == "of"
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.advance().Span // if
	p.expect(token.LParen, diag.ErrExpectParen)
	test := p.parseExpression(false)
	p.expect(token.RParen, diag.ErrUnclosedParen)
	cons := p.parseStatement()
	var alt ast.Stmt
	if p.at(token.KwElse) {
		p.advance()
		alt = p.parseStatement()
	}
	return &ast.IfStmt{Loc: p.spanFrom(start), Test: test, Cons: cons, Alt: alt}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.advance().Span // while
	p.expect(token.LParen, diag.ErrExpectParen)
	test := p.parseExpression(false)
	p.expect(token.RParen, diag.ErrUnclosedParen)

	p.pushLoop()
	body := p.parseStatement()
	p.pop()
	return &ast.WhileStmt{Loc: p.spanFrom(start), Test: test, Body: body}
}

func (p *Parser) parseDoWhile() ast.Stmt {
	start := p.advance().Span // do
	p.pushLoop()
	body := p.parseStatement()
	p.pop()

	if _, ok := p.eat(token.KwWhile); !ok {
		p.unexpected()
		return &ast.DoWhileStmt{Loc: p.spanFrom(start), Body: body, Test: &ast.BadExpr{Loc: p.getDiagnosticSpan()}}
	}
	p.expect(token.LParen, diag.ErrExpectParen)
	test := p.parseExpression(false)
	p.expect(token.RParen, diag.ErrUnclosedParen)
	// после do-while точка с запятой опциональна исторически
	p.eat(token.Semicolon)
	return &ast.DoWhileStmt{Loc: p.spanFrom(start), Body: body, Test: test}
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.advance().Span // for

	isAwait := false
	if p.at(token.KwAwait) && p.awaitIsKeyword() {
		p.advance()
		isAwait = true
	}
	p.expect(token.LParen, diag.ErrExpectParen)

	// init
	var init ast.Node
	switch {
	case p.at(token.Semicolon):
		// пусто
	case p.at(token.KwVar), p.at(token.KwConst):
		init = p.parseVarDecl(true, false)
	case p.at(token.KwLet) && p.letStartsDeclaration():
		init = p.parseVarDecl(true, false)
	default:
		init = p.parseExpression(true)
	}

	// for-in / for-of
	if p.at(token.KwIn) || p.atContextualOf() {
		ofForm := p.atContextualOf()
		p.advance()

		left := p.forBinderFrom(init)
		var right ast.Expr
		if ofForm {
			right = p.parseAssign(false)
		} else {
			right = p.parseExpression(false)
		}
		p.expect(token.RParen, diag.ErrUnclosedParen)

		p.pushLoop()
		body := p.parseStatement()
		p.pop()

		if ofForm {
			return &ast.ForOfStmt{Loc: p.spanFrom(start), Left: left, Right: right, Body: body, Await: isAwait}
		}
		if isAwait {
			p.report(diag.ErrBadForHeader, start, nil)
		}
		return &ast.ForInStmt{Loc: p.spanFrom(start), Left: left, Right: right, Body: body}
	}

	if isAwait {
		p.err(diag.ErrBadForHeader, nil)
	}

	// классический for
	p.expect(token.Semicolon, diag.ErrExpectSemicolon)
	var test ast.Expr
	if !p.at(token.Semicolon) {
		test = p.parseExpression(false)
	}
	p.expect(token.Semicolon, diag.ErrExpectSemicolon)
	var update ast.Expr
	if !p.at(token.RParen) {
		update = p.parseExpression(false)
	}
	p.expect(token.RParen, diag.ErrUnclosedParen)

	p.pushLoop()
	body := p.parseStatement()
	p.pop()
	return &ast.ForStmt{Loc: p.spanFrom(start), Init: init, Test: test, Update: update, Body: body}
}

// forBinderFrom нормализует init заголовка for-in/of: декларация с одним
// декларатором без инициализатора либо паттерн из выражения.
func (p *Parser) forBinderFrom(init ast.Node) ast.Node {
	switch x := init.(type) {
	case nil:
		p.err(diag.ErrBadForHeader, nil)
		return &ast.BadExpr{Loc: p.getDiagnosticSpan()}
	case *ast.VarDecl:
		if len(x.Decls) != 1 || x.Decls[0].Init != nil {
			p.report(diag.ErrBadForHeader, x.Loc, nil)
		}
		return x
	default:
		e, isExpr := x.(ast.Expr)
		if !isExpr {
			p.report(diag.ErrBadForHeader, x.Span(), nil)
			return x
		}
		pat, ok := p.exprToPattern(e)
		if !ok {
			p.report(diag.ErrBadAssignTarget, e.Span(), nil)
			return e
		}
		return pat
	}
}

func (p *Parser) parseSwitch() ast.Stmt {
	start := p.advance().Span // switch
	p.expect(token.LParen, diag.ErrExpectParen)
	disc := p.parseExpression(false)
	p.expect(token.RParen, diag.ErrUnclosedParen)
	p.expect(token.LBrace, diag.ErrUnclosedBrace)

	p.pushSwitch()
	defer p.pop()

	cases := make([]*ast.SwitchCase, 0, 4)
	sawDefault := false
	for !p.done() && !p.at(token.RBrace) {
		cStart := p.lx.Peek().Span
		var test ast.Expr
		switch {
		case p.at(token.KwCase):
			p.advance()
			test = p.parseExpression(false)
		case p.at(token.KwDefault):
			d := p.advance()
			if sawDefault {
				p.report(diag.ErrMultipleDefaults, d.Span, nil)
			}
			sawDefault = true
		default:
			p.unexpected()
			p.resyncStmt()
			continue
		}
		p.expect(token.Colon, diag.ErrExpectColon)

		body := make([]ast.Stmt, 0, 4)
		for !p.done() && !p.atOr(token.KwCase, token.KwDefault, token.RBrace) {
			before := p.lx.Peek().Span
			st := p.parseStatement()
			if st != nil {
				body = append(body, st)
			}
			if p.lx.Peek().Span == before && !p.done() && !p.atOr(token.KwCase, token.KwDefault, token.RBrace) {
				p.advance()
			}
		}
		cases = append(cases, &ast.SwitchCase{Loc: p.spanFrom(cStart), Test: test, Body: body})
	}
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return &ast.SwitchStmt{Loc: p.spanFrom(start), Disc: disc, Cases: cases}
}

func (p *Parser) parseTry() ast.Stmt {
	start := p.advance().Span // try
	if !p.at(token.LBrace) {
		p.err(diag.ErrUnclosedBrace, nil)
		return &ast.BadStmt{Loc: p.spanFrom(start)}
	}
	block := p.parseBlock()

	st := &ast.TryStmt{Block: block}
	if p.at(token.KwCatch) {
		cStart := p.advance().Span
		var param ast.Pattern
		if p.at(token.LParen) {
			p.advance()
			param, _ = p.parseBindingPattern(false)
			p.expect(token.RParen, diag.ErrUnclosedParen)
		}
		var body *ast.BlockStmt
		if p.at(token.LBrace) {
			body = p.parseBlock()
		} else {
			p.err(diag.ErrUnclosedBrace, nil)
			body = &ast.BlockStmt{Loc: p.getDiagnosticSpan()}
		}
		st.Handler = &ast.CatchClause{Loc: cStart.Cover(body.Loc), Param: param, Body: body}
	}
	if p.at(token.KwFinally) {
		p.advance()
		if p.at(token.LBrace) {
			st.Finally = p.parseBlock()
		} else {
			p.err(diag.ErrUnclosedBrace, nil)
		}
	}
	if st.Handler == nil && st.Finally == nil {
		p.err(diag.ErrUnexpectedToken, diag.Details{"found": p.lx.Peek().Kind.String()})
	}
	st.Loc = p.spanFrom(start)
	return st
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.advance().Span // return
	if !p.cur().inFunction && !p.opts.AllowReturnOutsideFunction {
		p.report(diag.ErrReturnOutsideFunction, start, nil)
	}
	var arg ast.Expr
	// ограниченная продукция: перевод строки после return отрезает аргумент
	if !p.atOr(token.Semicolon, token.RBrace, token.EOF) && !p.lx.Peek().NewlineBefore {
		arg = p.parseExpression(false)
	}
	p.consumeSemicolon()
	return &ast.ReturnStmt{Loc: p.spanFrom(start), Arg: arg}
}

func (p *Parser) parseThrow() ast.Stmt {
	start := p.advance().Span // throw
	var arg ast.Expr
	if p.lx.Peek().NewlineBefore || p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		p.err(diag.ErrExpectExpression, nil)
		arg = &ast.BadExpr{Loc: p.getDiagnosticSpan()}
	} else {
		arg = p.parseExpression(false)
	}
	p.consumeSemicolon()
	return &ast.ThrowStmt{Loc: p.spanFrom(start), Arg: arg}
}

func (p *Parser) parseBreakContinue() ast.Stmt {
	kw := p.advance()
	isBreak := kw.Kind == token.KwBreak

	var label *ast.Ident
	if p.atIdentLike() && !p.lx.Peek().NewlineBefore {
		t := p.advance()
		label = &ast.Ident{Loc: t.Span, Name: t.Text}
		l, found := p.lookupLabel(t.Text)
		if !found {
			p.report(diag.ErrUnknownLabel, t.Span, diag.Details{"label": t.Text})
		} else if !isBreak && !l.loop {
			p.report(diag.ErrContinueOutsideLoop, t.Span, nil)
		}
	} else {
		c := p.cur()
		if isBreak && !c.inLoop && !c.inSwitch {
			p.report(diag.ErrBreakOutsideLoop, kw.Span, nil)
		}
		if !isBreak && !c.inLoop {
			p.report(diag.ErrContinueOutsideLoop, kw.Span, nil)
		}
	}
	p.consumeSemicolon()

	if isBreak {
		return &ast.BreakStmt{Loc: p.spanFrom(kw.Span), Label: label}
	}
	return &ast.ContinueStmt{Loc: p.spanFrom(kw.Span), Label: label}
}

func (p *Parser) parseWith() ast.Stmt {
	start := p.advance().Span // with
	if p.cur().strict {
		p.report(diag.ErrStrictWith, start, nil)
	}
	p.expect(token.LParen, diag.ErrExpectParen)
	obj := p.parseExpression(false)
	p.expect(token.RParen, diag.ErrUnclosedParen)
	body := p.parseStatement()
	return &ast.WithStmt{Loc: p.spanFrom(start), Obj: obj, Body: body}
}

// parseLabeled: метка уже съедена вместе с ':'.
func (p *Parser) parseLabeled(label token.Token) ast.Stmt {
	loop := p.atOr(token.KwFor, token.KwWhile, token.KwDo)
	p.declareLabel(label.Text, label.Span, loop)
	body := p.parseStatement()
	p.dropLabel(label.Text)
	return &ast.LabeledStmt{
		Loc:   p.spanFrom(label.Span),
		Label: &ast.Ident{Loc: label.Span, Name: label.Text},
		Body:  body,
	}
}
