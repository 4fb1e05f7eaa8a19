package parser

import (
	"slices"

	"volt/internal/ast"
	"volt/internal/dialect"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

type Options struct {
	SourceType ast.SourceType
	Dialects   dialect.Set
	// AllowReturnOutsideFunction подавляет диагностику для top-level return
	// (нужно для eval-подобных вызовов и скриптов CommonJS).
	AllowReturnOutsideFunction bool
	// MaxErrors == 0 значит «без ограничений».
	MaxErrors uint
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) enough(current uint) bool {
	if o.MaxErrors == 0 {
		return false
	}
	return current >= o.MaxErrors
}

type Result struct {
	File *ast.File
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	file     *source.File
	bag      *diag.Bag
	opts     Options
	ext      [pointCount][]Handler
	ctx      []scopeCtx
	// pendingPostfix — операнд для обработчиков PointPostfixSuffix на
	// время dispatch (см. parsePostfix).
	pendingPostfix ast.Expr
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	errCount uint
	// fatal выставляется после фатальной диагностики; весь разбор
	// сворачивается с частичным деревом.
	fatal bool
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File) и bag, куда лексер
// репортит свои диагностики: спекулятивный откат должен срезать и их.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, bag *diag.Bag, opts Options) Result {
	p := Parser{
		lx:       lx,
		fs:       fs,
		file:     lx.File(),
		bag:      bag,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.ctx = []scopeCtx{{strict: opts.SourceType == ast.Module}}
	p.installDialects()

	f := &ast.File{
		SourceType: opts.SourceType,
		Dialects:   opts.Dialects,
	}
	p.parseHashbang(f)

	startSpan := p.lx.Peek().Span
	f.Stmts = p.parseStmtList(token.EOF)
	f.Loc = startSpan.Cover(p.lastSpan)
	if len(f.Stmts) == 0 {
		f.Loc = startSpan.Collapse()
	}
	p.checkFatalFromBag()

	return Result{File: f, Bag: p.bag}
}

// parseHashbang съедает ведущую `#!` строку, если файл с неё начинается.
func (p *Parser) parseHashbang(f *ast.File) {
	if p.file == nil || len(p.file.Content) < 2 {
		return
	}
	if p.file.Content[0] != '#' || p.file.Content[1] != '!' {
		return
	}
	end := uint32(0)
	for end < uint32(len(p.file.Content)) && p.file.Content[end] != '\n' {
		end++
	}
	sp := source.Span{File: p.file.ID, Start: 0, End: end}
	f.Hashbang = &sp
	// лексер сам отдал бы '#' как ошибку, поэтому перескакиваем руками
	p.lx.SkipTo(end)
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// done — общий предикат выхода из циклов разбора.
func (p *Parser) done() bool {
	return p.fatal || p.at(token.EOF)
}

// parseStmtList parses statements until the closing kind (EOF or RBrace).
// The closer itself is not consumed.
func (p *Parser) parseStmtList(closer token.Kind) []ast.Stmt {
	stmts := make([]ast.Stmt, 0, 8)
	for !p.done() && !p.at(closer) {
		before := p.lx.Peek().Span
		st := p.parseStatement()
		if st != nil {
			stmts = append(stmts, st)
		}
		// защита от зависания: если ничего не съели, выкидываем токен
		if p.lx.Peek().Span == before && !p.done() && !p.at(closer) {
			p.advance()
		}
	}
	return stmts
}
