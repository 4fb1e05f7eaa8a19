package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseExpression разбирает полное выражение, включая оператор запятая.
func (p *Parser) parseExpression(noIn bool) ast.Expr {
	start := p.lx.Peek().Span
	first := p.parseAssign(noIn)
	if !p.at(token.Comma) {
		return first
	}
	exprs := []ast.Expr{first}
	for p.at(token.Comma) && !p.fatal {
		p.advance()
		exprs = append(exprs, p.parseAssign(noIn))
	}
	return &ast.SeqExpr{Loc: p.spanFrom(start), Exprs: exprs}
}

// parseAssign — AssignmentExpression: yield, стрелки, тернарник,
// операторы присваивания (правоассоциативные).
func (p *Parser) parseAssign(noIn bool) ast.Expr {
	if p.at(token.KwYield) && p.yieldIsKeyword() {
		return p.parseYield(noIn)
	}

	if expr, ok := p.tryParseArrow(); ok {
		return expr
	}

	start := p.lx.Peek().Span
	left := p.parseConditional(noIn)

	op := p.lx.Peek().Kind
	if !op.IsAssignOp() {
		return left
	}
	p.advance()

	var target ast.Node
	if op == token.Assign {
		// простое `=` допускает деструктуризацию
		if pat, ok := p.exprToPattern(left); ok {
			target = pat
		} else {
			p.report(diag.ErrBadAssignTarget, left.Span(), nil)
			target = left
		}
	} else {
		if !isSimpleAssignTarget(left) {
			p.report(diag.ErrBadAssignTarget, left.Span(), nil)
		}
		target = left
	}

	value := p.parseAssign(noIn)
	return &ast.AssignExpr{Loc: p.spanFrom(start), Op: op, Target: target, Value: value}
}

// isSimpleAssignTarget: для составных присваиваний цель должна быть
// ссылкой (идентификатор или member-выражение).
func isSimpleAssignTarget(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Ident, *ast.MemberExpr:
		return true
	case *ast.ParenExpr:
		return isSimpleAssignTarget(x.X)
	default:
		return false
	}
}

func (p *Parser) parseYield(noIn bool) ast.Expr {
	start := p.advance().Span // yield
	delegate := false
	if p.at(token.Star) && !p.lx.Peek().NewlineBefore {
		p.advance()
		delegate = true
	}
	var arg ast.Expr
	if p.startsExpression() && !p.lx.Peek().NewlineBefore {
		arg = p.parseAssign(noIn)
	} else if delegate {
		p.err(diag.ErrExpectExpression, nil)
	}
	return &ast.YieldExpr{Loc: p.spanFrom(start), Arg: arg, Delegate: delegate}
}

// startsExpression — может ли текущий токен начинать выражение.
func (p *Parser) startsExpression() bool {
	t := p.lx.Peek()
	if t.IsLiteral() || t.IsIdentLike() {
		return true
	}
	switch t.Kind {
	case token.LParen, token.LBracket, token.LBrace,
		token.Plus, token.Minus, token.Bang, token.Tilde,
		token.PlusPlus, token.MinusMinus,
		token.Slash, token.SlashAssign, // начало регулярки
		token.KwFunction, token.KwClass, token.KwNew, token.KwThis,
		token.KwSuper, token.KwTypeof, token.KwVoid, token.KwDelete,
		token.KwImport, token.PrivateName, token.Lt:
		return true
	default:
		return false
	}
}

func (p *Parser) parseConditional(noIn bool) ast.Expr {
	start := p.lx.Peek().Span
	test := p.parseBinary(precPipeline, noIn)
	if !p.at(token.Question) {
		return test
	}
	p.advance()
	cons := p.parseAssign(false)
	p.expect(token.Colon, diag.ErrExpectColon)
	alt := p.parseAssign(noIn)
	return &ast.CondExpr{Loc: p.spanFrom(start), Test: test, Cons: cons, Alt: alt}
}

// parseBinary — precedence climbing по таблице из op_table.go.
func (p *Parser) parseBinary(minPrec int, noIn bool) ast.Expr {
	start := p.lx.Peek().Span
	left := p.parseUnary()

	for !p.fatal {
		opTok := p.lx.Peek()
		prec, rightAssoc := p.binaryPrec(opTok.Kind, noIn)
		if prec < minPrec {
			break
		}
		if opTok.Kind == token.PipeGt && !p.pipelineEnabled() {
			// синтаксис опознан, диалект выключен: одна диагностика,
			// дальше разбираем как если бы оператор был доступен
			p.report(diag.ErrPipelineNotEnabled, opTok.Span, nil)
		}
		p.advance()

		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right := p.parseBinary(next, noIn)
		left = &ast.BinaryExpr{Loc: p.spanFrom(start), Op: opTok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	t := p.lx.Peek()
	switch t.Kind {
	case token.KwDelete, token.KwVoid, token.KwTypeof,
		token.Plus, token.Minus, token.Tilde, token.Bang:
		p.advance()
		arg := p.parseUnary()
		if t.Kind == token.KwDelete && p.cur().strict {
			if _, plain := unwrapParens(arg).(*ast.Ident); plain {
				p.report(diag.ErrStrictDelete, t.Span.Cover(arg.Span()), nil)
			}
		}
		return &ast.UnaryExpr{Loc: p.spanFrom(t.Span), Op: t.Kind, Arg: arg}

	case token.PlusPlus, token.MinusMinus:
		p.advance()
		arg := p.parseUnary()
		if !isSimpleAssignTarget(arg) {
			p.report(diag.ErrBadAssignTarget, arg.Span(), nil)
		}
		return &ast.UpdateExpr{Loc: p.spanFrom(t.Span), Op: t.Kind, Prefix: true, Arg: arg}

	case token.KwAwait:
		if p.awaitIsKeyword() {
			p.advance()
			arg := p.parseUnary()
			return &ast.AwaitExpr{Loc: p.spanFrom(t.Span), Arg: arg}
		}
		// иначе await — обычный идентификатор, уйдёт в parsePrimary
	}
	return p.parsePostfix()
}

func unwrapParens(e ast.Expr) ast.Expr {
	for {
		pe, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = pe.X
	}
}

// parsePostfix: цепочка вызовов/членов, затем постфиксные ++/-- с учётом
// ограничения «на той же строке», затем точка расширения.
func (p *Parser) parsePostfix() ast.Expr {
	start := p.lx.Peek().Span
	expr := p.parseCallMember(true)

	if p.atOr(token.PlusPlus, token.MinusMinus) && !p.lx.Peek().NewlineBefore {
		op := p.advance()
		if !isSimpleAssignTarget(expr) {
			p.report(diag.ErrBadAssignTarget, expr.Span(), nil)
		}
		expr = &ast.UpdateExpr{Loc: p.spanFrom(start), Op: op.Kind, Prefix: false, Arg: expr}
	}

	for {
		p.pendingPostfix = expr
		n, ok := p.dispatch(PointPostfixSuffix)
		p.pendingPostfix = nil
		if !ok {
			break
		}
		expr = n.(ast.Expr)
	}
	return expr
}

// parseCallMember разбирает цепочку member/call/optional/tagged-template.
func (p *Parser) parseCallMember(allowCall bool) ast.Expr {
	if p.at(token.KwNew) {
		return p.parseNewExpr()
	}

	start := p.lx.Peek().Span
	expr := p.parsePrimary()

	for !p.fatal {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			prop := p.parseMemberName()
			expr = &ast.MemberExpr{Loc: p.spanFrom(start), Obj: expr, Prop: prop}

		case token.QuestionDot:
			p.advance()
			switch p.lx.Peek().Kind {
			case token.LParen:
				if !allowCall {
					p.unexpected()
					return expr
				}
				args := p.parseArguments()
				expr = &ast.CallExpr{Loc: p.spanFrom(start), Callee: expr, Args: args, Optional: true}
			case token.LBracket:
				p.advance()
				idx := p.parseExpression(false)
				p.expect(token.RBracket, diag.ErrUnclosedBracket)
				expr = &ast.MemberExpr{Loc: p.spanFrom(start), Obj: expr, Prop: idx, Computed: true, Optional: true}
			default:
				prop := p.parseMemberName()
				expr = &ast.MemberExpr{Loc: p.spanFrom(start), Obj: expr, Prop: prop, Optional: true}
			}

		case token.LBracket:
			p.advance()
			idx := p.parseExpression(false)
			p.expect(token.RBracket, diag.ErrUnclosedBracket)
			expr = &ast.MemberExpr{Loc: p.spanFrom(start), Obj: expr, Prop: idx, Computed: true}

		case token.LParen:
			if !allowCall {
				return expr
			}
			args := p.parseArguments()
			expr = &ast.CallExpr{Loc: p.spanFrom(start), Callee: expr, Args: args}

		case token.NoSubTemplate, token.TemplateHead:
			quasi := p.parseTemplate()
			expr = &ast.TaggedTemplate{Loc: p.spanFrom(start), Tag: expr, Quasi: quasi}

		default:
			return expr
		}
	}
	return expr
}

// parseMemberName: имя после '.' или '?.'; любое ключевое слово годится.
func (p *Parser) parseMemberName() ast.Expr {
	t := p.lx.Peek()
	if t.Kind == token.PrivateName {
		p.advance()
		return &ast.PrivateName{Loc: t.Span, Name: t.Text[1:]}
	}
	if t.Kind == token.Ident || t.IsKeyword() || p.atOr(token.NullLit, token.TrueLit, token.FalseLit) {
		p.advance()
		return &ast.Ident{Loc: t.Span, Name: t.Text}
	}
	p.err(diag.ErrExpectIdentifier, nil)
	return &ast.BadExpr{Loc: p.getDiagnosticSpan()}
}

func (p *Parser) parseArguments() []ast.Expr {
	p.expect(token.LParen, diag.ErrExpectParen)
	args := make([]ast.Expr, 0, 4)
	for !p.done() && !p.at(token.RParen) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			arg := p.parseAssign(false)
			args = append(args, &ast.SpreadElement{Loc: p.spanFrom(sp), Arg: arg})
		} else {
			args = append(args, p.parseAssign(false))
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RParen, diag.ErrUnclosedParen)
	return args
}

func (p *Parser) parseNewExpr() ast.Expr {
	start := p.advance().Span // new

	// new.target
	if p.at(token.Dot) {
		p.advance()
		t := p.lx.Peek()
		if t.Kind == token.Ident && t.Text == "target" {
			p.advance()
			if !p.cur().inFunction {
				p.report(diag.ErrNewTargetOutside, start.Cover(t.Span), nil)
			}
			return &ast.MetaProp{Loc: p.spanFrom(start), Meta: "new", Prop: "target"}
		}
		p.err(diag.ErrUnexpectedToken, diag.Details{"found": t.Kind.String()})
		return &ast.BadExpr{Loc: p.spanFrom(start)}
	}

	callee := p.parseCallMember(false)
	var args []ast.Expr
	if p.at(token.LParen) {
		args = p.parseArguments()
	}
	return &ast.NewExpr{Loc: p.spanFrom(start), Callee: callee, Args: args}
}
