package parser

import (
	"strings"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

func (p *Parser) parsePrimary() ast.Expr {
	if n, ok := p.dispatch(PointPrimaryExpr); ok {
		return n.(ast.Expr)
	}

	t := p.lx.Peek()
	switch t.Kind {
	case token.Ident:
		if t.Text == "async" {
			if e, ok := p.tryParseAsyncFunction(); ok {
				return e
			}
		}
		p.advance()
		if p.cur().strict && token.IsStrictReserved(t.Text) {
			p.report(diag.ErrStrictReservedWord, t.Span, diag.Details{"word": t.Text})
		}
		return &ast.Ident{Loc: t.Span, Name: t.Text}

	case token.KwLet, token.KwAwait, token.KwYield:
		if p.atIdentLike() {
			p.advance()
			if p.cur().strict && tokenIsStrictReserved(t) {
				p.report(diag.ErrStrictReservedWord, t.Span, diag.Details{"word": t.Text})
			}
			return &ast.Ident{Loc: t.Span, Name: t.Text}
		}

	case token.NumberLit:
		p.advance()
		p.checkLegacyOctal(t)
		return &ast.NumberLit{Loc: t.Span, Raw: t.Text}

	case token.BigIntLit:
		p.advance()
		return &ast.BigIntLit{Loc: t.Span, Raw: t.Text}

	case token.StringLit:
		p.advance()
		return &ast.StringLit{Loc: t.Span, Raw: t.Text}

	case token.NullLit:
		p.advance()
		return &ast.NullLit{Loc: t.Span}

	case token.TrueLit, token.FalseLit:
		p.advance()
		return &ast.BoolLit{Loc: t.Span, Value: t.Kind == token.TrueLit}

	case token.Slash, token.SlashAssign:
		// '/' в позиции выражения — это регулярка: просим лексер перечитать
		rt := p.lx.ReScanRegExp()
		if rt.Kind != token.RegExpLit {
			p.checkFatalFromBag()
			return &ast.BadExpr{Loc: rt.Span}
		}
		p.advance()
		pattern, flags := splitRegExp(rt.Text)
		return &ast.RegExpLit{Loc: rt.Span, Pattern: pattern, Flags: flags}

	case token.KwThis:
		p.advance()
		return &ast.ThisExpr{Loc: t.Span}

	case token.KwSuper:
		p.advance()
		if !p.cur().inClass {
			p.report(diag.ErrSuperOutsideClass, t.Span, nil)
		}
		return &ast.SuperExpr{Loc: t.Span}

	case token.KwFunction:
		return p.parseFunctionExpr(false, t.Span)

	case token.KwClass:
		return p.parseClassExpr()

	case token.KwImport:
		return p.parseImportExpr()

	case token.LParen:
		p.advance()
		inner := p.parseExpression(false)
		p.expect(token.RParen, diag.ErrUnclosedParen)
		return &ast.ParenExpr{Loc: p.spanFrom(t.Span), X: inner}

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	case token.NoSubTemplate, token.TemplateHead:
		return p.parseTemplate()

	case token.PrivateName:
		// валидно только как `#x in obj`; бинарный `in` подхватит выше
		p.advance()
		return &ast.PrivateName{Loc: t.Span, Name: t.Text[1:]}
	}

	if p.at(token.EOF) {
		p.err(diag.ErrUnexpectedEOF, nil)
	} else {
		p.err(diag.ErrExpectExpression, nil)
	}
	return &ast.BadExpr{Loc: p.getDiagnosticSpan()}
}

// checkLegacyOctal: литерал с ведущим нулём (08 не в счёт — это decimal
// с предупреждением о legacy, 09 тоже) запрещён в strict mode.
func (p *Parser) checkLegacyOctal(t token.Token) {
	if !p.cur().strict {
		return
	}
	raw := t.Text
	if len(raw) < 2 || raw[0] != '0' {
		return
	}
	switch raw[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B', '.', 'e', 'E', 'n':
		return
	}
	p.report(diag.ErrStrictOctalLiteral, t.Span, nil)
}

// splitRegExp делит текст /pattern/flags по последнему слэшу.
func splitRegExp(text string) (pattern, flags string) {
	i := strings.LastIndexByte(text, '/')
	if i <= 0 {
		return text, ""
	}
	return text[1:i], text[i+1:]
}

// parseTemplate разбирает шаблонный литерал начиная с текущего токена
// (NoSubTemplate или TemplateHead).
func (p *Parser) parseTemplate() *ast.TemplateLit {
	t := p.advance()
	lit := &ast.TemplateLit{Loc: t.Span}

	if t.Kind == token.NoSubTemplate {
		lit.Quasis = []*ast.TemplateElement{{Loc: t.Span, Raw: t.Text, Tail: true}}
		return lit
	}

	lit.Quasis = append(lit.Quasis, &ast.TemplateElement{Loc: t.Span, Raw: t.Text})
	for !p.fatal {
		lit.Exprs = append(lit.Exprs, p.parseExpression(false))

		// парсер стоит на '}', просим лексер перечитать его как
		// продолжение шаблона
		cont := p.lx.ReScanTemplateContinue()
		switch cont.Kind {
		case token.TemplateMiddle:
			p.advance()
			lit.Quasis = append(lit.Quasis, &ast.TemplateElement{Loc: cont.Span, Raw: cont.Text})
		case token.TemplateTail:
			p.advance()
			lit.Quasis = append(lit.Quasis, &ast.TemplateElement{Loc: cont.Span, Raw: cont.Text, Tail: true})
			lit.Loc = p.spanFrom(t.Span)
			return lit
		default:
			// не '}' — подстановка не закрыта
			p.err(diag.ErrExpectTemplateTail, nil)
			lit.Loc = p.spanFrom(t.Span)
			return lit
		}
	}
	lit.Loc = p.spanFrom(t.Span)
	return lit
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.advance().Span // '['
	elems := make([]ast.Expr, 0, 4)

	for !p.done() && !p.at(token.RBracket) {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, nil) // дырка
			continue
		}
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			arg := p.parseAssign(false)
			elems = append(elems, &ast.SpreadElement{Loc: p.spanFrom(sp), Arg: arg})
		} else {
			elems = append(elems, p.parseAssign(false))
		}
		if !p.at(token.RBracket) {
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
		}
	}
	p.expect(token.RBracket, diag.ErrUnclosedBracket)
	return &ast.ArrayLit{Loc: p.spanFrom(start), Elems: elems}
}

func (p *Parser) parseObjectLit() ast.Expr {
	start := p.advance().Span // '{'
	props := make([]ast.Node, 0, 4)

	for !p.done() && !p.at(token.RBrace) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			arg := p.parseAssign(false)
			props = append(props, &ast.SpreadElement{Loc: p.spanFrom(sp), Arg: arg})
		} else {
			props = append(props, p.parseObjectProp())
		}
		if !p.at(token.RBrace) {
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
		}
	}
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return &ast.ObjectLit{Loc: p.spanFrom(start), Props: props}
}

// parseObjectProp — одно свойство: key:value, shorthand, метод,
// get/set, генератор, async-метод.
func (p *Parser) parseObjectProp() *ast.ObjectProp {
	start := p.lx.Peek().Span

	async := false
	generator := false
	kind := ast.PropInit

	// префиксы: async, get, set, '*' — каждый отменяется, если дальше
	// сразу ':'/'('/','/'}' (значит это было имя свойства)
	if t := p.lx.Peek(); t.Kind == token.Ident && (t.Text == "get" || t.Text == "set" || t.Text == "async") {
		cp := p.mark()
		p.advance()
		if p.atPropertyKey() || p.at(token.Star) {
			switch t.Text {
			case "get":
				kind = ast.PropGet
			case "set":
				kind = ast.PropSet
			default:
				async = true
			}
		} else {
			p.restore(cp)
		}
	}
	if p.at(token.Star) {
		p.advance()
		generator = true
	}

	key, computed := p.parsePropertyKey()

	switch {
	case p.at(token.LParen) || kind != ast.PropInit || generator:
		// метод (в т.ч. get/set)
		fn := p.parseMethodTail(async, generator)
		return &ast.ObjectProp{
			Loc: p.spanFrom(start), Key: key, Kind: kind, Computed: computed,
			Method: kind == ast.PropInit,
			Value:  &ast.FuncExpr{Loc: p.spanFrom(start), Fn: fn},
		}

	case p.at(token.Colon):
		p.advance()
		val := p.parseAssign(false)
		return &ast.ObjectProp{Loc: p.spanFrom(start), Key: key, Value: val, Computed: computed}

	case p.at(token.Assign):
		// shorthand с дефолтом — легален только внутри деструктуризации,
		// exprToPattern придаст ему смысл
		id, ok := key.(*ast.Ident)
		if !ok {
			p.err(diag.ErrBadPropertyName, nil)
			id = &ast.Ident{Loc: key.Span()}
		}
		p.advance()
		def := p.parseAssign(false)
		return &ast.ObjectProp{
			Loc: p.spanFrom(start), Key: key, Shorthand: true,
			Value: &ast.AssignExpr{Loc: p.spanFrom(start), Op: token.Assign, Target: id, Value: def},
		}

	default:
		// shorthand
		id, ok := key.(*ast.Ident)
		if !ok || computed {
			p.err(diag.ErrBadPropertyName, nil)
			return &ast.ObjectProp{Loc: p.spanFrom(start), Key: key, Value: &ast.BadExpr{Loc: key.Span()}}
		}
		return &ast.ObjectProp{Loc: p.spanFrom(start), Key: key, Value: id, Shorthand: true}
	}
}

// atPropertyKey — может ли текущий токен быть именем свойства.
func (p *Parser) atPropertyKey() bool {
	t := p.lx.Peek()
	return t.Kind == token.Ident || t.IsKeyword() ||
		p.atOr(token.StringLit, token.NumberLit, token.BigIntLit,
			token.NullLit, token.TrueLit, token.FalseLit, token.LBracket)
}

// parsePropertyKey: ident/keyword/строка/число/вычисляемый ключ.
func (p *Parser) parsePropertyKey() (ast.Expr, bool) {
	t := p.lx.Peek()
	switch {
	case t.Kind == token.LBracket:
		p.advance()
		key := p.parseAssign(false)
		p.expect(token.RBracket, diag.ErrUnclosedBracket)
		return key, true
	case t.Kind == token.StringLit:
		p.advance()
		return &ast.StringLit{Loc: t.Span, Raw: t.Text}, false
	case t.Kind == token.NumberLit:
		p.advance()
		return &ast.NumberLit{Loc: t.Span, Raw: t.Text}, false
	case t.Kind == token.BigIntLit:
		p.advance()
		return &ast.BigIntLit{Loc: t.Span, Raw: t.Text}, false
	case t.Kind == token.Ident || t.IsKeyword() ||
		t.Kind == token.NullLit || t.Kind == token.TrueLit || t.Kind == token.FalseLit:
		p.advance()
		return &ast.Ident{Loc: t.Span, Name: t.Text}, false
	default:
		p.err(diag.ErrBadPropertyName, nil)
		return &ast.BadExpr{Loc: p.getDiagnosticSpan()}, false
	}
}

// parseImportExpr: динамический import(expr) либо import.meta.
func (p *Parser) parseImportExpr() ast.Expr {
	start := p.advance().Span // import

	if p.at(token.Dot) {
		p.advance()
		t := p.lx.Peek()
		if t.Kind == token.Ident && t.Text == "meta" {
			p.advance()
			return &ast.MetaProp{Loc: p.spanFrom(start), Meta: "import", Prop: "meta"}
		}
		p.err(diag.ErrUnexpectedToken, diag.Details{"found": t.Kind.String()})
		return &ast.BadExpr{Loc: p.spanFrom(start)}
	}

	p.expect(token.LParen, diag.ErrExpectParen)
	arg := p.parseAssign(false)
	p.expect(token.RParen, diag.ErrUnclosedParen)
	return &ast.ImportCall{Loc: p.spanFrom(start), Arg: arg}
}
