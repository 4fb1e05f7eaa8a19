package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// PrivateName represents a '#name' class member reference.
	PrivateName

	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDebugger represents the 'debugger' keyword.
	KwDebugger // debugger
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with

	// KwLet is contextual: a keyword at declaration position, an identifier elsewhere.
	KwLet // let
	// KwAwait is a keyword only inside async contexts.
	KwAwait // await
	// KwYield is a keyword only inside generator contexts.
	KwYield // yield

	// NullLit represents the 'null' literal.
	NullLit // null
	// TrueLit represents the 'true' literal.
	TrueLit // true
	// FalseLit represents the 'false' literal.
	FalseLit // false
	// NumberLit represents a numeric literal.
	NumberLit
	// BigIntLit represents a numeric literal with the 'n' suffix.
	BigIntLit
	// StringLit represents a string literal.
	StringLit
	// RegExpLit represents a regular expression literal (re-scanned on demand).
	RegExpLit
	// NoSubTemplate represents `...` without substitutions.
	NoSubTemplate
	// TemplateHead represents `...${ opening a substitution.
	TemplateHead
	// TemplateMiddle represents }...${ between substitutions.
	TemplateMiddle
	// TemplateTail represents }...` closing a template.
	TemplateTail
	// JSXText represents raw text between JSX tags.
	JSXText

	Plus       // +
	Minus      // -
	Star       // *
	StarStar   // **
	Slash      // /
	Percent    // %
	PlusPlus   // ++
	MinusMinus // --

	Assign         // =
	PlusAssign     // +=
	MinusAssign    // -=
	StarAssign     // *=
	StarStarAssign // **=
	SlashAssign    // /=
	PercentAssign  // %=
	AmpAssign      // &=
	PipeAssign     // |=
	CaretAssign    // ^=
	ShlAssign      // <<=
	ShrAssign      // >>=
	UShrAssign     // >>>=
	AndAndAssign   // &&=
	OrOrAssign     // ||=
	CoalesceAssign // ??=

	EqEq     // ==
	BangEq   // !=
	EqEqEq   // ===
	BangEqEq // !==
	Lt       // <
	LtEq     // <=
	Gt       // >
	GtEq     // >=

	Shl  // <<
	Shr  // >>
	UShr // >>>

	Amp      // &
	Pipe     // |
	Caret    // ^
	Tilde    // ~
	Bang     // !
	AndAnd   // &&
	OrOr     // ||
	Coalesce // ??

	Question    // ?
	QuestionDot // ?.
	Colon       // :
	Semicolon   // ;
	Comma       // ,
	Dot         // .
	DotDotDot   // ...
	Arrow       // =>
	PipeGt      // |> (pipeline dialect)
	At          // @  (decorators dialect)

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid: "Invalid", EOF: "EOF",
	Ident: "Ident", PrivateName: "PrivateName",
	KwBreak: "break", KwCase: "case", KwCatch: "catch", KwClass: "class",
	KwConst: "const", KwContinue: "continue", KwDebugger: "debugger",
	KwDefault: "default", KwDelete: "delete", KwDo: "do", KwElse: "else",
	KwExport: "export", KwExtends: "extends", KwFinally: "finally",
	KwFor: "for", KwFunction: "function", KwIf: "if", KwImport: "import",
	KwIn: "in", KwInstanceof: "instanceof", KwNew: "new", KwReturn: "return",
	KwSuper: "super", KwSwitch: "switch", KwThis: "this", KwThrow: "throw",
	KwTry: "try", KwTypeof: "typeof", KwVar: "var", KwVoid: "void",
	KwWhile: "while", KwWith: "with",
	KwLet: "let", KwAwait: "await", KwYield: "yield",
	NullLit: "null", TrueLit: "true", FalseLit: "false",
	NumberLit: "NumberLit", BigIntLit: "BigIntLit", StringLit: "StringLit",
	RegExpLit: "RegExpLit", NoSubTemplate: "NoSubTemplate",
	TemplateHead: "TemplateHead", TemplateMiddle: "TemplateMiddle",
	TemplateTail: "TemplateTail", JSXText: "JSXText",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/",
	Percent: "%", PlusPlus: "++", MinusMinus: "--",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	StarStarAssign: "**=", SlashAssign: "/=", PercentAssign: "%=",
	AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=",
	ShlAssign: "<<=", ShrAssign: ">>=", UShrAssign: ">>>=",
	AndAndAssign: "&&=", OrOrAssign: "||=", CoalesceAssign: "??=",
	EqEq: "==", BangEq: "!=", EqEqEq: "===", BangEqEq: "!==",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Shl: "<<", Shr: ">>", UShr: ">>>",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", Bang: "!",
	AndAnd: "&&", OrOr: "||", Coalesce: "??",
	Question: "?", QuestionDot: "?.", Colon: ":", Semicolon: ";",
	Comma: ",", Dot: ".", DotDotDot: "...", Arrow: "=>",
	PipeGt: "|>", At: "@",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

// IsKeyword reports whether the kind is a reserved or contextual keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwBreak && k <= KwYield
}

// IsAssignOp reports whether the kind is an assignment operator.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, StarStarAssign,
		SlashAssign, PercentAssign, AmpAssign, PipeAssign, CaretAssign,
		ShlAssign, ShrAssign, UShrAssign, AndAndAssign, OrOrAssign, CoalesceAssign:
		return true
	default:
		return false
	}
}
