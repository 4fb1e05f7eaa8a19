package parser

import (
	"strings"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/token"
)

// parseJSXPrimary — обработчик точки primary-expr для активного
// диалекта jsx. Срабатывает на '<'.
func parseJSXPrimary(p *Parser) (ast.Node, bool) {
	if !p.at(token.Lt) {
		return nil, false
	}
	return p.parseJSXElementOrFragment(), true
}

// parseJSXElementOrFragment: '<' уже под курсором.
func (p *Parser) parseJSXElementOrFragment() ast.Expr {
	start := p.advance().Span // '<'
	if p.at(token.Gt) {
		return p.parseJSXFragmentRest(start)
	}
	return p.parseJSXElementRest(start)
}

func (p *Parser) parseJSXElementRest(start source.Span) ast.Expr {
	name := p.parseJSXName()
	opening := &ast.JSXOpening{Name: name}

	// атрибуты
	for !p.done() && !p.atOr(token.Gt, token.Slash) {
		aStart := p.lx.Peek().Span
		if p.at(token.LBrace) {
			// {...spread}
			p.advance()
			p.expect(token.DotDotDot, diag.ErrJSXExpectAttrValue)
			arg := p.parseAssign(false)
			p.expect(token.RBrace, diag.ErrUnclosedBrace)
			opening.Attrs = append(opening.Attrs, &ast.JSXSpreadAttr{
				Loc: p.spanFrom(aStart), Arg: arg,
			})
			continue
		}
		if !p.atJSXNameStart() {
			p.unexpected()
			break
		}
		attr := &ast.JSXAttr{Name: p.parseJSXName()}
		if p.at(token.Assign) {
			p.advance()
			attr.Value = p.parseJSXAttrValue()
		}
		attr.Loc = p.spanFrom(aStart)
		opening.Attrs = append(opening.Attrs, attr)
	}

	if p.at(token.Slash) {
		p.advance()
		p.expectJSXGt()
		opening.SelfClosing = true
		opening.Loc = p.spanFrom(start)
		return &ast.JSXElement{Loc: opening.Loc, Opening: opening}
	}
	p.expectJSXGt()
	opening.Loc = p.spanFrom(start)

	children, closing := p.parseJSXChildren(jsxNameString(name))
	if closing == nil {
		p.report(diag.ErrJSXUnclosedElement, opening.Loc,
			diag.Details{"name": jsxNameString(name)})
	}
	return &ast.JSXElement{
		Loc:      p.spanFrom(start),
		Opening:  opening,
		Children: children,
		Closing:  closing,
	}
}

func (p *Parser) parseJSXFragmentRest(start source.Span) ast.Expr {
	p.advance() // '>'
	children, closing := p.parseJSXChildren("")
	if closing == nil {
		p.report(diag.ErrJSXUnclosedElement, p.spanFrom(start),
			diag.Details{"name": ""})
	}
	return &ast.JSXFragment{Loc: p.spanFrom(start), Children: children}
}

// parseJSXChildren читает детей до закрывающего тега с именем openName
// (пустая строка — фрагмент). Возвращает nil closing при EOF.
func (p *Parser) parseJSXChildren(openName string) ([]ast.Node, *ast.JSXClosing) {
	var children []ast.Node
	for {
		t := p.lx.ReScanJSXText()
		switch t.Kind {
		case token.EOF:
			return children, nil

		case token.JSXText:
			p.advance()
			children = append(children, &ast.JSXText{Loc: t.Span, Raw: t.Text})

		case token.LBrace:
			cStart := p.advance().Span
			var x ast.Expr
			if !p.at(token.RBrace) {
				x = p.parseAssign(false)
			}
			p.expect(token.RBrace, diag.ErrUnclosedBrace)
			children = append(children, &ast.JSXExprContainer{Loc: p.spanFrom(cStart), X: x})

		case token.Lt:
			cp := p.mark()
			ltStart := p.advance().Span
			if p.at(token.Slash) {
				p.advance()
				closing := p.parseJSXClosingRest(ltStart, openName)
				return children, closing
			}
			p.restore(cp)
			child := p.parseJSXElementOrFragment()
			children = append(children, child)

		default:
			// лексер после фатальной ошибки или что-то совсем чужое
			return children, nil
		}
		if p.fatal {
			return children, nil
		}
	}
}

// parseJSXClosingRest: '</' уже съеден.
func (p *Parser) parseJSXClosingRest(start source.Span, openName string) *ast.JSXClosing {
	closing := &ast.JSXClosing{}
	if p.at(token.Gt) {
		// '</>' — закрытие фрагмента
		p.advance()
		closing.Loc = p.spanFrom(start)
		if openName != "" {
			p.report(diag.ErrJSXMismatchedClosing, closing.Loc,
				diag.Details{"open": openName, "close": ""})
		}
		return closing
	}
	closing.Name = p.parseJSXName()
	p.expectJSXGt()
	closing.Loc = p.spanFrom(start)

	closeName := jsxNameString(closing.Name)
	if closeName != openName {
		p.report(diag.ErrJSXMismatchedClosing, closing.Loc,
			diag.Details{"open": openName, "close": closeName})
	}
	return closing
}

// parseJSXAttrValue: строка, {выражение} или вложенный элемент.
func (p *Parser) parseJSXAttrValue() ast.Node {
	switch {
	case p.at(token.StringLit):
		t := p.advance()
		return &ast.StringLit{Loc: t.Span, Raw: t.Text}
	case p.at(token.LBrace):
		start := p.advance().Span
		x := p.parseAssign(false)
		p.expect(token.RBrace, diag.ErrUnclosedBrace)
		return &ast.JSXExprContainer{Loc: p.spanFrom(start), X: x}
	case p.at(token.Lt):
		return p.parseJSXElementOrFragment()
	default:
		p.err(diag.ErrJSXExpectAttrValue, nil)
		return nil
	}
}

// parseJSXName: идентификатор с дефисами (data-id), ns:name или
// цепочка A.B.C. Дефисные куски склеиваются только при смежных span.
func (p *Parser) parseJSXName() ast.JSXName {
	first, ok := p.parseJSXIdent()
	if !ok {
		p.err(diag.ErrJSXExpectElementName, nil)
		return &ast.JSXIdent{Loc: p.getDiagnosticSpan()}
	}

	// ns:name
	if p.at(token.Colon) {
		p.advance()
		nm, ok := p.parseJSXIdent()
		if !ok {
			p.err(diag.ErrJSXExpectElementName, nil)
			nm = &ast.JSXIdent{Loc: p.getDiagnosticSpan()}
		}
		return &ast.JSXNamespacedName{
			Loc: first.Loc.Cover(nm.Loc), NS: first, Name: nm,
		}
	}

	// A.B.C
	var name ast.JSXName = first
	for p.at(token.Dot) {
		p.advance()
		prop, ok := p.parseJSXIdent()
		if !ok {
			p.err(diag.ErrJSXExpectElementName, nil)
			break
		}
		name = &ast.JSXMember{Loc: name.Span().Cover(prop.Loc), Obj: name, Prop: prop}
	}
	return name
}

// parseJSXIdent собирает JSX-идентификатор, склеивая `foo-bar-baz`
// из смежных токенов Ident и Minus.
func (p *Parser) parseJSXIdent() (*ast.JSXIdent, bool) {
	t := p.lx.Peek()
	if !jsxNamePart(t) {
		return nil, false
	}
	p.advance()
	loc := t.Span
	var sb strings.Builder
	sb.WriteString(t.Text)

	for {
		next := p.lx.Peek()
		if next.Kind != token.Minus || next.Span.Start != loc.End {
			break
		}
		p.advance()
		sb.WriteByte('-')
		loc.End = next.Span.End
		part := p.lx.Peek()
		if !jsxNamePart(part) || part.Span.Start != loc.End {
			break
		}
		p.advance()
		sb.WriteString(part.Text)
		loc.End = part.Span.End
	}
	return &ast.JSXIdent{Loc: loc, Name: sb.String()}, true
}

func jsxNamePart(t token.Token) bool {
	return t.Kind == token.Ident || t.Kind.IsKeyword()
}

func (p *Parser) atJSXNameStart() bool {
	return jsxNamePart(p.lx.Peek())
}

// expectJSXGt съедает '>' закрывающий тег.
func (p *Parser) expectJSXGt() {
	if p.at(token.Gt) {
		p.advance()
		return
	}
	p.unexpected()
}

func jsxNameString(n ast.JSXName) string {
	switch x := n.(type) {
	case *ast.JSXIdent:
		return x.Name
	case *ast.JSXMember:
		return jsxNameString(x.Obj) + "." + x.Prop.Name
	case *ast.JSXNamespacedName:
		return x.NS.Name + ":" + x.Name.Name
	default:
		return ""
	}
}
