package token

import (
	"volt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// NewlineBefore is true when a line terminator was crossed between the
	// previous significant token and this one.
	NewlineBefore bool
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NullLit, TrueLit, FalseLit, NumberLit, BigIntLit, StringLit,
		RegExpLit, NoSubTemplate, TemplateHead, TemplateMiddle, TemplateTail:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwBreak, KwCase, KwCatch, KwClass, KwConst, KwContinue, KwDebugger,
		KwDefault, KwDelete, KwDo, KwElse, KwExport, KwExtends, KwFinally,
		KwFor, KwFunction, KwIf, KwImport, KwIn, KwInstanceof, KwNew,
		KwReturn, KwSuper, KwSwitch, KwThis, KwThrow, KwTry, KwTypeof,
		KwVar, KwVoid, KwWhile, KwWith, KwLet, KwAwait, KwYield:
		return true
	default:
		return false
	}
}

// IsIdentLike reports whether the token can serve as an identifier in some
// context (plain identifiers plus the contextual keywords).
func (t Token) IsIdentLike() bool {
	switch t.Kind {
	case Ident, KwLet, KwAwait, KwYield:
		return true
	default:
		return false
	}
}

// IsTemplatePart reports whether the token belongs to a template literal.
func (t Token) IsTemplatePart() bool {
	switch t.Kind {
	case NoSubTemplate, TemplateHead, TemplateMiddle, TemplateTail:
		return true
	default:
		return false
	}
}
