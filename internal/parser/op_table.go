package parser

import (
	"volt/internal/dialect"
	"volt/internal/token"
)

// Таблица приоритетов бинарных операторов. Чем больше число, тем выше
// приоритет. Присваивание, тернарник, yield и стрелки разбираются
// рекурсивным спуском выше этой таблицы.
const (
	precPipeline       = 1  // |>
	precCoalesce       = 2  // ??
	precLogicalOr      = 3  // ||
	precLogicalAnd     = 4  // &&
	precBitwiseOr      = 5  // |
	precBitwiseXor     = 6  // ^
	precBitwiseAnd     = 7  // &
	precEquality       = 8  // == != === !==
	precComparison     = 9  // < <= > >= in instanceof
	precShift          = 10 // << >> >>>
	precAdditive       = 11 // + -
	precMultiplicative = 12 // * / %
	precExponent       = 13 // ** (правоассоциативный)
)

// binaryPrec возвращает (приоритет, правоассоциативность) для бинарного
// оператора, либо (-1, false). noIn выключает `in` в заголовке for.
func (p *Parser) binaryPrec(kind token.Kind, noIn bool) (int, bool) {
	switch kind {
	case token.PipeGt:
		// и при выключенном диалекте приоритет известен: parseBinary
		// сперва выдаст диагностику шлагбаума
		return precPipeline, false
	case token.Coalesce:
		return precCoalesce, false
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwInstanceof:
		return precComparison, false
	case token.KwIn:
		if noIn {
			return -1, false
		}
		return precComparison, false
	case token.Shl, token.Shr, token.UShr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.StarStar:
		return precExponent, true
	default:
		return -1, false
	}
}

// pipelineEnabled — включён ли диалект pipeline для этого разбора.
func (p *Parser) pipelineEnabled() bool {
	return p.opts.Dialects.Has(dialect.Pipeline)
}
