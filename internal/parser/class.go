package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

func (p *Parser) parseClassExpr() ast.Expr {
	start := p.lx.Peek().Span
	name, cls := p.parseClassRest(nil)
	return &ast.ClassExpr{Loc: p.spanFrom(start), Name: name, Cls: cls}
}

func (p *Parser) parseClassDecl(start source.Span, decorators []*ast.Decorator) ast.Stmt {
	name, cls := p.parseClassRest(decorators)
	if name == nil {
		p.err(diag.ErrExpectIdentifier, nil)
		name = &ast.Ident{Loc: p.getDiagnosticSpan()}
	}
	return &ast.ClassDecl{Loc: p.spanFrom(start), Name: name, Cls: cls}
}

// parseClassRest стоит на 'class'.
func (p *Parser) parseClassRest(decorators []*ast.Decorator) (*ast.Ident, ast.Class) {
	p.advance() // class

	cls := ast.Class{Decorators: decorators}

	var name *ast.Ident
	if p.atIdentLike() && !p.at(token.KwExtends) {
		name = p.parseIdent()
	}

	if p.at(token.KwExtends) {
		p.advance()
		cls.SuperClass = p.parseCallMember(true)
	}

	if _, ok := p.eat(token.LBrace); !ok {
		p.err(diag.ErrUnclosedBrace, nil)
		return name, cls
	}

	sawCtor := false
	for !p.done() && !p.at(token.RBrace) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		before := p.lx.Peek().Span
		m := p.parseClassMember(&sawCtor)
		if m != nil {
			cls.Members = append(cls.Members, m)
		}
		if p.lx.Peek().Span == before && !p.done() && !p.at(token.RBrace) {
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return name, cls
}

func (p *Parser) parseClassMember(sawCtor *bool) ast.Node {
	start := p.lx.Peek().Span

	var decorators []*ast.Decorator
	if p.at(token.At) {
		decorators = p.parseDecoratorList()
	}

	static := false
	if t := p.lx.Peek(); t.Kind == token.Ident && t.Text == "static" {
		cp := p.mark()
		p.advance()
		// static сам по себе может быть именем поля/метода
		if p.at(token.LParen) || p.at(token.Assign) || p.at(token.Semicolon) || p.at(token.RBrace) {
			p.restore(cp)
		} else {
			static = true
		}
	}

	// static { ... }
	if static && p.at(token.LBrace) {
		p.pushMethod(false, false)
		body := p.parseFunctionBody(nil)
		p.pop()
		return &ast.StaticBlock{Loc: p.spanFrom(start), Body: body}
	}

	async := false
	generator := false
	kind := ast.MemberMethod

	if t := p.lx.Peek(); t.Kind == token.Ident && (t.Text == "get" || t.Text == "set" || t.Text == "async") {
		cp := p.mark()
		p.advance()
		if p.atClassMemberKey() || p.at(token.Star) {
			switch t.Text {
			case "get":
				kind = ast.MemberGet
			case "set":
				kind = ast.MemberSet
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

	key, computed := p.parseClassMemberKey()

	if p.at(token.LParen) {
		if !static && !computed && kind == ast.MemberMethod && isConstructorKey(key) {
			kind = ast.MemberCtor
			if *sawCtor {
				p.report(diag.ErrDuplicateConstructor, key.Span(), nil)
			}
			*sawCtor = true
		}
		fn := p.parseMethodTail(async, generator)
		return &ast.MethodDef{
			Loc: p.spanFrom(start), Key: key, Kind: kind, Fn: fn,
			Computed: computed, Static: static, Decorators: decorators,
		}
	}

	// поле класса
	var ann *ast.TypeAnn
	if p.at(token.Colon) {
		if n, ok := p.dispatch(PointParamAnnotation); ok {
			if a, isAnn := n.(*ast.TypeAnn); isAnn {
				ann = a
			}
		}
	}
	var value ast.Expr
	if p.at(token.Assign) {
		p.advance()
		p.pushMethod(false, false)
		value = p.parseAssign(false)
		p.pop()
	}
	p.consumeSemicolon()
	return &ast.PropertyDef{
		Loc: p.spanFrom(start), Key: key, Ann: ann, Value: value,
		Computed: computed, Static: static, Decorators: decorators,
	}
}

// atClassMemberKey: любой токен, пригодный как имя члена класса.
func (p *Parser) atClassMemberKey() bool {
	return p.atPropertyKey() || p.at(token.PrivateName)
}

func (p *Parser) parseClassMemberKey() (ast.Expr, bool) {
	if t := p.lx.Peek(); t.Kind == token.PrivateName {
		p.advance()
		return &ast.PrivateName{Loc: t.Span, Name: t.Text[1:]}, false
	}
	return p.parsePropertyKey()
}

func isConstructorKey(key ast.Expr) bool {
	switch k := key.(type) {
	case *ast.Ident:
		return k.Name == "constructor"
	case *ast.StringLit:
		return k.Raw == `"constructor"` || k.Raw == "'constructor'"
	default:
		return false
	}
}

// parseDecoratorList читает последовательность '@expr'. Сам '@' без
// активного диалекта гейтится здесь же: одна диагностика на весь
// список, выражения разбираются и выбрасываются.
func (p *Parser) parseDecoratorList() []*ast.Decorator {
	decorators := make([]*ast.Decorator, 0, 2)
	reported := false
	for p.at(token.At) && !p.fatal {
		atTok := p.advance()
		if !p.decoratorsEnabled() && !reported {
			p.report(diag.ErrDecoratorsNotEnabled, atTok.Span, nil)
			reported = true
		}
		expr := p.parseCallMember(true)
		decorators = append(decorators, &ast.Decorator{
			Loc:  atTok.Span.Cover(expr.Span()),
			Expr: expr,
		})
	}
	if !p.decoratorsEnabled() {
		return nil
	}
	return decorators
}
