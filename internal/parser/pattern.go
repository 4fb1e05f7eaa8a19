package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// parseParam — формальный параметр: биндинг, опциональная аннотация
// типа (точка расширения), опциональный дефолт. speculative=true
// переводит в режим без диагностик (для стрелочной дизамбигуации).
func (p *Parser) parseParam(speculative bool) (*ast.Param, bool) {
	start := p.lx.Peek().Span

	if p.at(token.DotDotDot) {
		p.advance()
		pat, ok := p.parseBindingPattern(speculative)
		if !ok {
			return nil, false
		}
		rest := &ast.RestElement{Loc: p.spanFrom(start), Arg: pat}
		return &ast.Param{Loc: p.spanFrom(start), Pat: rest}, true
	}

	pat, ok := p.parseBindingPattern(speculative)
	if !ok {
		return nil, false
	}

	var ann *ast.TypeAnn
	if p.at(token.Colon) {
		n, handled := p.dispatch(PointParamAnnotation)
		if handled {
			if a, isAnn := n.(*ast.TypeAnn); isAnn {
				ann = a
			}
		} else if speculative {
			// двоеточие без аннотационного обработчика: это не параметр
			return nil, false
		}
	}

	if p.at(token.Assign) {
		p.advance()
		def := p.parseAssign(false)
		pat = &ast.AssignPattern{Loc: p.spanFrom(start), Target: pat, Default: def}
	}
	return &ast.Param{Loc: p.spanFrom(start), Pat: pat, Ann: ann}, true
}

// parseBindingPattern: идентификатор, массивный или объектный паттерн.
func (p *Parser) parseBindingPattern(speculative bool) (ast.Pattern, bool) {
	switch {
	case p.atIdentLike():
		t := p.advance()
		if t.Kind == token.KwLet && p.cur().strict {
			p.report(diag.ErrLetAsBindingName, t.Span, nil)
		}
		if p.cur().strict && tokenIsStrictReserved(t) && !speculative {
			p.report(diag.ErrStrictReservedWord, t.Span, diag.Details{"word": t.Text})
		}
		return &ast.Ident{Loc: t.Span, Name: t.Text}, true

	case p.at(token.LBracket):
		return p.parseArrayPattern(speculative)

	case p.at(token.LBrace):
		return p.parseObjectPattern(speculative)
	}

	if !speculative {
		p.err(diag.ErrExpectIdentifier, nil)
	}
	return nil, false
}

func (p *Parser) parseArrayPattern(speculative bool) (ast.Pattern, bool) {
	start := p.advance().Span // '['
	elems := make([]ast.Pattern, 0, 4)

	for !p.done() && !p.at(token.RBracket) {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, nil)
			continue
		}
		var elem ast.Pattern
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			inner, ok := p.parseBindingPattern(speculative)
			if !ok {
				return nil, false
			}
			elem = &ast.RestElement{Loc: p.spanFrom(sp), Arg: inner}
		} else {
			inner, ok := p.parseBindingPattern(speculative)
			if !ok {
				return nil, false
			}
			if p.at(token.Assign) {
				p.advance()
				def := p.parseAssign(false)
				inner = &ast.AssignPattern{Loc: inner.Span().Cover(def.Span()), Target: inner, Default: def}
			}
			elem = inner
		}
		elems = append(elems, elem)

		if p.at(token.Comma) {
			if _, isRest := elem.(*ast.RestElement); isRest && !speculative {
				p.err(diag.ErrTrailingCommaAfterRest, nil)
			}
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.eat(token.RBracket); !ok {
		if speculative {
			return nil, false
		}
		p.err(diag.ErrUnclosedBracket, nil)
	}
	return &ast.ArrayPattern{Loc: p.spanFrom(start), Elems: elems}, true
}

func (p *Parser) parseObjectPattern(speculative bool) (ast.Pattern, bool) {
	start := p.advance().Span // '{'
	props := make([]ast.Node, 0, 4)

	for !p.done() && !p.at(token.RBrace) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			inner, ok := p.parseBindingPattern(speculative)
			if !ok {
				return nil, false
			}
			props = append(props, &ast.RestElement{Loc: p.spanFrom(sp), Arg: inner})
		} else {
			prop, ok := p.parsePatternProp(speculative)
			if !ok {
				return nil, false
			}
			props = append(props, prop)
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if _, ok := p.eat(token.RBrace); !ok {
		if speculative {
			return nil, false
		}
		p.err(diag.ErrUnclosedBrace, nil)
	}
	return &ast.ObjectPattern{Loc: p.spanFrom(start), Props: props}, true
}

func (p *Parser) parsePatternProp(speculative bool) (*ast.PropertyPattern, bool) {
	start := p.lx.Peek().Span
	key, computed := p.parsePropertyKey()

	var value ast.Pattern
	shorthand := false
	if p.at(token.Colon) {
		p.advance()
		v, ok := p.parseBindingPattern(speculative)
		if !ok {
			return nil, false
		}
		value = v
	} else {
		id, ok := key.(*ast.Ident)
		if !ok || computed {
			if speculative {
				return nil, false
			}
			p.err(diag.ErrBadPropertyName, nil)
			id = &ast.Ident{Loc: key.Span()}
		}
		value = id
		shorthand = true
	}

	if p.at(token.Assign) {
		p.advance()
		def := p.parseAssign(false)
		value = &ast.AssignPattern{Loc: value.Span().Cover(def.Span()), Target: value, Default: def}
	}
	return &ast.PropertyPattern{
		Loc: p.spanFrom(start), Key: key, Value: value,
		Computed: computed, Shorthand: shorthand,
	}, true
}

// exprToPattern переинтерпретирует выражение как цель деструктуризации:
// `[a, b] = x` разбирается как массив-литерал и конвертируется здесь.
func (p *Parser) exprToPattern(e ast.Expr) (ast.Pattern, bool) {
	switch x := e.(type) {
	case *ast.Ident:
		return x, true

	case *ast.ParenExpr:
		return p.exprToPattern(x.X)

	case *ast.MemberExpr:
		return &ast.MemberPattern{Loc: x.Loc, X: x}, true

	case *ast.AssignExpr:
		if x.Op != token.Assign {
			return nil, false
		}
		target, ok := x.Target.(ast.Pattern)
		if !ok {
			te, isExpr := x.Target.(ast.Expr)
			if !isExpr {
				return nil, false
			}
			target, ok = p.exprToPattern(te)
			if !ok {
				return nil, false
			}
		}
		return &ast.AssignPattern{Loc: x.Loc, Target: target, Default: x.Value}, true

	case *ast.ArrayLit:
		elems := make([]ast.Pattern, len(x.Elems))
		for i, el := range x.Elems {
			if el == nil {
				continue
			}
			if sp, isSpread := el.(*ast.SpreadElement); isSpread {
				if i != len(x.Elems)-1 {
					p.report(diag.ErrRestMustBeLast, sp.Loc, nil)
					return nil, false
				}
				inner, ok := p.exprToPattern(sp.Arg)
				if !ok {
					return nil, false
				}
				elems[i] = &ast.RestElement{Loc: sp.Loc, Arg: inner}
				continue
			}
			pat, ok := p.exprToPattern(el)
			if !ok {
				return nil, false
			}
			elems[i] = pat
		}
		return &ast.ArrayPattern{Loc: x.Loc, Elems: elems}, true

	case *ast.ObjectLit:
		props := make([]ast.Node, 0, len(x.Props))
		for i, pr := range x.Props {
			switch prop := pr.(type) {
			case *ast.SpreadElement:
				if i != len(x.Props)-1 {
					p.report(diag.ErrRestMustBeLast, prop.Loc, nil)
					return nil, false
				}
				inner, ok := p.exprToPattern(prop.Arg)
				if !ok {
					return nil, false
				}
				props = append(props, &ast.RestElement{Loc: prop.Loc, Arg: inner})
			case *ast.ObjectProp:
				if prop.Kind != ast.PropInit || prop.Method {
					return nil, false
				}
				val, ok := p.exprToPattern(prop.Value)
				if !ok {
					return nil, false
				}
				props = append(props, &ast.PropertyPattern{
					Loc: prop.Loc, Key: prop.Key, Value: val,
					Computed: prop.Computed, Shorthand: prop.Shorthand,
				})
			default:
				return nil, false
			}
		}
		return &ast.ObjectPattern{Loc: x.Loc, Props: props}, true
	}
	return nil, false
}

// paramNames собирает имена биндингов параметров (для strict-проверки
// дубликатов).
func paramNames(params []*ast.Param) []boundName {
	names := make([]boundName, 0, len(params))
	for _, prm := range params {
		collectBoundNames(prm.Pat, &names)
	}
	return names
}

type boundName struct {
	name string
	span source.Span
}

func collectBoundNames(pat ast.Pattern, out *[]boundName) {
	switch x := pat.(type) {
	case nil:
	case *ast.Ident:
		*out = append(*out, boundName{name: x.Name, span: x.Loc})
	case *ast.ArrayPattern:
		for _, el := range x.Elems {
			collectBoundNames(el, out)
		}
	case *ast.ObjectPattern:
		for _, pr := range x.Props {
			switch prop := pr.(type) {
			case *ast.PropertyPattern:
				collectBoundNames(prop.Value, out)
			case *ast.RestElement:
				collectBoundNames(prop.Arg, out)
			}
		}
	case *ast.AssignPattern:
		collectBoundNames(x.Target, out)
	case *ast.RestElement:
		collectBoundNames(x.Arg, out)
	}
}
