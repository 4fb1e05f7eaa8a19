package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// tryParseImportDecl обрабатывает `import` на позиции statement.
// import( и import.meta — выражения, для них возвращаем (nil,false)
// и отдаём разбор parseExprStatement.
func (p *Parser) tryParseImportDecl() (ast.Stmt, bool) {
	cp := p.mark()
	start := p.advance().Span // import
	if p.atOr(token.LParen, token.Dot) {
		p.restore(cp)
		return nil, false
	}
	if p.opts.SourceType != ast.Module {
		p.report(diag.ErrImportOutsideModule, start, nil)
	}

	decl := &ast.ImportDecl{}

	// import "mod";
	if p.at(token.StringLit) {
		decl.Source = p.parseModuleSource()
		p.consumeSemicolon()
		decl.Loc = p.spanFrom(start)
		return decl, true
	}

	// default import
	if p.atIdentLike() {
		local := p.parseIdent()
		decl.Specs = append(decl.Specs, &ast.ImportSpec{
			Loc: local.Loc, Kind: ast.ImportDefault, Local: local,
		})
		if _, ok := p.eat(token.Comma); !ok {
			p.expectFrom()
			decl.Source = p.parseModuleSource()
			p.consumeSemicolon()
			decl.Loc = p.spanFrom(start)
			return decl, true
		}
	}

	switch {
	case p.at(token.Star):
		decl.Specs = append(decl.Specs, p.parseNamespaceImport())
	case p.at(token.LBrace):
		decl.Specs = append(decl.Specs, p.parseNamedImports()...)
	default:
		p.unexpected()
		p.resyncStmt()
		decl.Loc = p.spanFrom(start)
		return decl, true
	}

	p.expectFrom()
	decl.Source = p.parseModuleSource()
	p.consumeSemicolon()
	decl.Loc = p.spanFrom(start)
	return decl, true
}

// parseNamespaceImport: `* as ns`.
func (p *Parser) parseNamespaceImport() *ast.ImportSpec {
	star := p.advance() // '*'
	p.expectAs()
	local := p.parseIdent()
	return &ast.ImportSpec{
		Loc:  star.Span.Cover(local.Loc),
		Kind: ast.ImportNamespace, Local: local,
	}
}

// parseNamedImports: `{ a, b as c, "x y" as d }`.
func (p *Parser) parseNamedImports() []*ast.ImportSpec {
	p.advance() // '{'
	specs := make([]*ast.ImportSpec, 0, 4)
	for !p.done() && !p.at(token.RBrace) {
		sStart := p.lx.Peek().Span
		var imported ast.Expr
		switch {
		case p.at(token.StringLit):
			t := p.advance()
			imported = &ast.StringLit{Loc: t.Span, Raw: t.Text}
		case p.atIdentOrKeyword():
			t := p.advance()
			imported = &ast.Ident{Loc: t.Span, Name: t.Text}
		default:
			p.unexpected()
			p.resyncStmt()
			return specs
		}

		var local *ast.Ident
		if p.atContextualAs() {
			p.advance()
			local = p.parseIdent()
		} else if id, isIdent := imported.(*ast.Ident); isIdent {
			local = id
		} else {
			// строковое имя импорта обязано иметь `as`
			p.expectAs()
			local = &ast.Ident{Loc: p.getDiagnosticSpan()}
		}

		specs = append(specs, &ast.ImportSpec{
			Loc: p.spanFrom(sStart), Kind: ast.ImportNamed,
			Imported: imported, Local: local,
		})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return specs
}

func (p *Parser) parseExportDecl() ast.Stmt {
	start := p.advance().Span // export
	if p.opts.SourceType != ast.Module {
		p.report(diag.ErrExportOutsideModule, start, nil)
	}

	switch {
	case p.at(token.Star):
		p.advance()
		all := &ast.ExportAllDecl{}
		if p.atContextualAs() {
			p.advance()
			all.Name = p.parseIdent()
		}
		p.expectFrom()
		all.Source = p.parseModuleSource()
		p.consumeSemicolon()
		all.Loc = p.spanFrom(start)
		return all

	case p.at(token.KwDefault):
		p.advance()
		d := &ast.ExportDefaultDecl{}
		switch {
		case p.at(token.KwFunction):
			d.Decl = p.parseFunctionDecl(false, p.lx.Peek().Span)
		case p.at(token.KwClass):
			d.Decl = p.parseClassDecl(p.lx.Peek().Span, nil)
		case p.atAsyncFunction():
			t := p.advance() // async
			d.Decl = p.parseFunctionDecl(true, t.Span)
		default:
			d.Decl = p.parseAssign(false)
			p.consumeSemicolon()
		}
		d.Loc = p.spanFrom(start)
		return d

	case p.at(token.LBrace):
		named := &ast.ExportNamedDecl{Specs: p.parseExportSpecs()}
		if p.atContextualFrom() {
			p.advance()
			named.Source = p.parseModuleSource()
		}
		p.consumeSemicolon()
		named.Loc = p.spanFrom(start)
		return named

	case p.atOr(token.KwVar, token.KwLet, token.KwConst):
		named := &ast.ExportNamedDecl{Decl: p.parseVarDecl(false, true)}
		named.Loc = p.spanFrom(start)
		return named

	case p.at(token.KwFunction):
		named := &ast.ExportNamedDecl{Decl: p.parseFunctionDecl(false, p.lx.Peek().Span)}
		named.Loc = p.spanFrom(start)
		return named

	case p.at(token.KwClass):
		named := &ast.ExportNamedDecl{Decl: p.parseClassDecl(p.lx.Peek().Span, nil)}
		named.Loc = p.spanFrom(start)
		return named

	case p.atAsyncFunction():
		t := p.advance() // async
		named := &ast.ExportNamedDecl{Decl: p.parseFunctionDecl(true, t.Span)}
		named.Loc = p.spanFrom(start)
		return named

	default:
		p.unexpected()
		p.resyncStmt()
		return &ast.BadStmt{Loc: p.spanFrom(start)}
	}
}

// parseExportSpecs: `{ a, b as c, d as "e f" }`.
func (p *Parser) parseExportSpecs() []*ast.ExportSpec {
	p.advance() // '{'
	specs := make([]*ast.ExportSpec, 0, 4)
	for !p.done() && !p.at(token.RBrace) {
		sStart := p.lx.Peek().Span
		if !p.atIdentOrKeyword() {
			p.unexpected()
			p.resyncStmt()
			return specs
		}
		t := p.advance()
		local := &ast.Ident{Loc: t.Span, Name: t.Text}

		var exported ast.Expr
		if p.atContextualAs() {
			p.advance()
			switch {
			case p.at(token.StringLit):
				s := p.advance()
				exported = &ast.StringLit{Loc: s.Span, Raw: s.Text}
			case p.atIdentOrKeyword():
				e := p.advance()
				exported = &ast.Ident{Loc: e.Span, Name: e.Text}
			default:
				p.err(diag.ErrExpectIdentifier, nil)
			}
		}

		specs = append(specs, &ast.ExportSpec{
			Loc: p.spanFrom(sStart), Local: local, Exported: exported,
		})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.ErrUnclosedBrace)
	return specs
}

// parseModuleSource: строковый литерал после from.
func (p *Parser) parseModuleSource() *ast.StringLit {
	if !p.at(token.StringLit) {
		p.err(diag.ErrExpectString, nil)
		return &ast.StringLit{Loc: p.getDiagnosticSpan()}
	}
	t := p.advance()
	return &ast.StringLit{Loc: t.Span, Raw: t.Text}
}

func (p *Parser) expectFrom() {
	if p.atContextualFrom() {
		p.advance()
		return
	}
	p.err(diag.ErrExpectFrom, nil)
}

func (p *Parser) expectAs() {
	if p.atContextualAs() {
		p.advance()
		return
	}
	p.report(diag.ErrUnexpectedToken, p.getDiagnosticSpan(),
		diag.Details{"found": p.lx.Peek().Kind.String()})
}

func (p *Parser) atContextualAs() bool {
	t := p.lx.Peek()
	return t.Kind == token.Ident && t.Text == "as"
}

func (p *Parser) atContextualFrom() bool {
	t := p.lx.Peek()
	return t.Kind == token.Ident && t.Text == "from"
}

// atIdentOrKeyword: в позициях имени импорта/экспорта любое ключевое
// слово допустимо (`import { default as d }`).
func (p *Parser) atIdentOrKeyword() bool {
	t := p.lx.Peek()
	return t.Kind == token.Ident || t.Kind.IsKeyword()
}

func (p *Parser) atAsyncFunction() bool {
	t := p.lx.Peek()
	if t.Kind != token.Ident || t.Text != "async" {
		return false
	}
	cp := p.mark()
	p.advance()
	ok := p.at(token.KwFunction) && !p.lx.Peek().NewlineBefore
	p.restore(cp)
	return ok
}
