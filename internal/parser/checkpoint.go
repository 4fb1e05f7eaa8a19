package parser

import (
	"volt/internal/source"

	"volt/internal/lexer"
)

// checkpoint — снимок полного состояния парсера для спекулятивного
// разбора (стрелка-или-скобки, JSX-заход и т.п.). Откат срезает все
// диагностики, добавленные после снимка, включая лексические.
type checkpoint struct {
	lx       lexer.Checkpoint
	diags    int
	errCount uint
	fatal    bool
	ctxDepth int
	lastSpan source.Span
}

func (p *Parser) mark() checkpoint {
	return checkpoint{
		lx:       p.lx.Checkpoint(),
		diags:    p.bag.Len(),
		errCount: p.errCount,
		fatal:    p.fatal,
		ctxDepth: len(p.ctx),
		lastSpan: p.lastSpan,
	}
}

// restore откатывает парсер к снимку. Снимки образуют стек: откат к
// более раннему снимку обнуляет и все вложенные.
func (p *Parser) restore(cp checkpoint) {
	p.lx.Restore(cp.lx)
	p.bag.Truncate(cp.diags)
	p.errCount = cp.errCount
	p.fatal = cp.fatal
	p.ctx = p.ctx[:cp.ctxDepth]
	p.lastSpan = cp.lastSpan
}

// speculate прогоняет fn и откатывается, если она вернула false.
func (p *Parser) speculate(fn func() bool) bool {
	cp := p.mark()
	if fn() {
		return true
	}
	p.restore(cp)
	return false
}
