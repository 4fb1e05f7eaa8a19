package parser

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/dialect"
)

// Point — точка расширения грамматики. Обработчики подключаются при
// конструировании парсера и образуют цепочку: более поздняя регистрация
// опрашивается раньше и может «пропустить» запрос дальше, вернув false.
type Point uint8

const (
	// PointPrimaryExpr опрашивается перед базовым разбором первичного
	// выражения (JSX подключается здесь).
	PointPrimaryExpr Point = iota
	// PointStatementLead опрашивается в начале statement (декораторы).
	PointStatementLead
	// PointPostfixSuffix опрашивается после постфиксной цепочки.
	PointPostfixSuffix
	// PointParamAnnotation опрашивается после биндинга параметра или
	// объявления (аннотации типов).
	PointParamAnnotation

	pointCount
)

func (pt Point) String() string {
	switch pt {
	case PointPrimaryExpr:
		return "PrimaryExpr"
	case PointStatementLead:
		return "StatementLead"
	case PointPostfixSuffix:
		return "PostfixSuffix"
	case PointParamAnnotation:
		return "ParamAnnotation"
	default:
		return fmt.Sprintf("Point(%d)", uint8(pt))
	}
}

// Handler возвращает (узел, true), если распознал конструкцию, иначе
// (nil, false) и цепочка продолжается.
type Handler func(p *Parser) (ast.Node, bool)

// register подключает обработчик к точке. Неизвестная точка — ошибка
// программиста, паникуем при конструировании.
func (p *Parser) register(pt Point, h Handler) {
	if pt >= pointCount {
		panic(fmt.Sprintf("parser: register on unknown extension point %s", pt))
	}
	// prepend: последняя регистрация опрашивается первой
	p.ext[pt] = append([]Handler{h}, p.ext[pt]...)
}

// dispatch прогоняет цепочку обработчиков точки.
func (p *Parser) dispatch(pt Point) (ast.Node, bool) {
	for _, h := range p.ext[pt] {
		if n, ok := h(p); ok {
			return n, true
		}
	}
	return nil, false
}

// installDialects настраивает цепочки под выбранный набор диалектов.
// Для неактивного диалекта ставится «шлагбаум»: синтаксис опознаётся,
// выдаётся ровно одна диагностика с MissingDialect, разбор продолжается.
func (p *Parser) installDialects() {
	// шлагбаумы регистрируются первыми, чтобы активные обработчики,
	// зарегистрированные позже, перехватывали запрос раньше них
	p.register(PointPrimaryExpr, gateJSX)
	p.register(PointStatementLead, gateDecorators)
	p.register(PointParamAnnotation, gateTypeAnno)

	if p.opts.Dialects.Has(dialect.JSX) {
		p.register(PointPrimaryExpr, parseJSXPrimary)
	}
	if p.opts.Dialects.Has(dialect.Decorators) {
		p.register(PointStatementLead, parseDecoratedStatement)
	}
	if p.opts.Dialects.Has(dialect.TypeAnno) {
		p.register(PointParamAnnotation, parseTypeAnnotation)
	}
	// pipeline не добавляет узлов: он включает `|>` в таблице приоритетов
	// (см. op_table.go) и гейтится прямо в parseBinary.
}

func (p *Parser) jsxEnabled() bool        { return p.opts.Dialects.Has(dialect.JSX) }
func (p *Parser) typeAnnoEnabled() bool   { return p.opts.Dialects.Has(dialect.TypeAnno) }
func (p *Parser) decoratorsEnabled() bool { return p.opts.Dialects.Has(dialect.Decorators) }
