package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
)

// scopeCtx — один кадр стека контекстов. Кадры наследуют часть флагов
// родителя при входе в конструкцию и снимаются на каждом выходе.
type scopeCtx struct {
	strict      bool
	inFunction  bool
	inGenerator bool
	inAsync     bool
	inParams    bool
	inClass     bool
	inLoop      bool
	inSwitch    bool
	// fnBoundary стоит только на кадре входа в функцию; loop/switch
	// кадры внутри тела его не несут. Метки не видны сквозь эту границу.
	fnBoundary bool
	labels     []labelInfo
}

type labelInfo struct {
	name string
	loop bool // метка висит на итерирующем statement
}

func (p *Parser) cur() *scopeCtx {
	return &p.ctx[len(p.ctx)-1]
}

func (p *Parser) push(c scopeCtx) {
	p.ctx = append(p.ctx, c)
}

func (p *Parser) pop() {
	p.ctx = p.ctx[:len(p.ctx)-1]
}

// pushFunction входит в тело функции: loop/switch/labels сбрасываются,
// strict наследуется (и может быть донастроен прологом "use strict").
func (p *Parser) pushFunction(async, generator bool) {
	p.push(scopeCtx{
		strict:      p.cur().strict,
		inFunction:  true,
		inAsync:     async,
		inGenerator: generator,
		inClass:     false,
		fnBoundary:  true,
	})
}

// pushArrow: стрелка наследует class-контекст (this/super лексические),
// но await/yield определяются её собственными флагами.
func (p *Parser) pushArrow(async bool) {
	p.push(scopeCtx{
		strict:     p.cur().strict,
		inFunction: true,
		inAsync:    async,
		inClass:    p.cur().inClass,
		fnBoundary: true,
	})
}

// pushMethod входит в метод класса.
func (p *Parser) pushMethod(async, generator bool) {
	p.push(scopeCtx{
		strict:      true, // тела классов всегда strict
		inFunction:  true,
		inAsync:     async,
		inGenerator: generator,
		inClass:     true,
		fnBoundary:  true,
	})
}

// pushLoop/pushSwitch наследуют всё и добавляют свой флаг.
func (p *Parser) pushLoop() {
	c := *p.cur()
	c.inLoop = true
	c.fnBoundary = false
	c.labels = nil
	p.push(c)
}

func (p *Parser) pushSwitch() {
	c := *p.cur()
	c.inSwitch = true
	c.fnBoundary = false
	c.labels = nil
	p.push(c)
}

// declareLabel регистрирует метку в текущем кадре; дубликат в пределах
// функции — ошибка.
func (p *Parser) declareLabel(name string, sp source.Span, loop bool) {
	for i := len(p.ctx) - 1; i >= 0; i-- {
		for _, l := range p.ctx[i].labels {
			if l.name == name {
				p.report(diag.ErrDuplicateLabel, sp, diag.Details{"label": name})
				return
			}
		}
		if p.ctx[i].fnBoundary {
			break
		}
	}
	c := p.cur()
	c.labels = append(c.labels, labelInfo{name: name, loop: loop})
}

func (p *Parser) dropLabel(name string) {
	c := p.cur()
	for i := len(c.labels) - 1; i >= 0; i-- {
		if c.labels[i].name == name {
			c.labels = append(c.labels[:i], c.labels[i+1:]...)
			return
		}
	}
}

// lookupLabel ищет метку вниз по стеку до границы функции.
func (p *Parser) lookupLabel(name string) (labelInfo, bool) {
	for i := len(p.ctx) - 1; i >= 0; i-- {
		for _, l := range p.ctx[i].labels {
			if l.name == name {
				return l, true
			}
		}
		if p.ctx[i].fnBoundary {
			break
		}
	}
	return labelInfo{}, false
}

// awaitIsKeyword: await — ключевое слово в async-контексте и на верхнем
// уровне модуля (top-level await).
func (p *Parser) awaitIsKeyword() bool {
	c := p.cur()
	if c.inAsync {
		return true
	}
	return !c.inFunction && p.opts.SourceType == ast.Module
}

// yieldIsKeyword: yield — ключевое слово только в генераторах (и как
// резерв в strict mode, что проверяет parseIdent).
func (p *Parser) yieldIsKeyword() bool {
	return p.cur().inGenerator
}
