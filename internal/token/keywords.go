package token

var keywords = map[string]Kind{
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"debugger":   KwDebugger,
	"default":    KwDefault,
	"delete":     KwDelete,
	"do":         KwDo,
	"else":       KwElse,
	"export":     KwExport,
	"extends":    KwExtends,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"import":     KwImport,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"new":        KwNew,
	"return":     KwReturn,
	"super":      KwSuper,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"var":        KwVar,
	"void":       KwVoid,
	"while":      KwWhile,
	"with":       KwWith,
	"let":        KwLet,
	"await":      KwAwait,
	"yield":      KwYield,
	"null":       NullLit,
	"true":       TrueLit,
	"false":      FalseLit,
}

// Words reserved only in strict mode; lexed as Ident, checked by the parser.
var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsStrictReserved reports whether the word is reserved in strict mode only.
func IsStrictReserved(word string) bool {
	return strictReserved[word]
}
