package diag

import "fmt"

// Catalog of diagnostic kinds used by the lexer and parser. Every kind is a
// package-level variable so call sites reference catalog entries directly,
// never raw codes. The Fatal flag is the single source of truth for the
// recoverable/fatal policy.
var (
	// Лексические. Незакрытые литералы фатальны: лексер не может осмысленно
	// продолжать за ними.
	ErrUnknownChar = Define(LexUnknownChar, "UnknownChar",
		func(d Details) string { return fmt.Sprintf("unexpected character %q", d["char"]) },
		WithRequired("char"))
	ErrUnterminatedString = Define(LexUnterminatedString, "UnterminatedString",
		Static("unterminated string literal"), Fatal())
	ErrUnterminatedBlockComment = Define(LexUnterminatedBlockComment, "UnterminatedBlockComment",
		Static("unterminated block comment"), Fatal())
	ErrBadNumber = Define(LexBadNumber, "BadNumber",
		func(d Details) string { return fmt.Sprintf("malformed numeric literal: %s", d["why"]) },
		WithRequired("why"))
	ErrUnterminatedTemplate = Define(LexUnterminatedTemplate, "UnterminatedTemplate",
		Static("unterminated template literal"), Fatal())
	ErrUnterminatedRegExp = Define(LexUnterminatedRegExp, "UnterminatedRegExp",
		Static("unterminated regular expression"), Fatal())
	ErrInvalidEscape = Define(LexInvalidEscape, "InvalidEscape",
		func(d Details) string { return fmt.Sprintf("invalid escape sequence %q", d["escape"]) },
		WithRequired("escape"))
	ErrIdentAfterNumber = Define(LexIdentAfterNumber, "IdentAfterNumber",
		Static("identifier characters cannot directly follow a numeric literal"))
	ErrInvalidPrivateName = Define(LexInvalidPrivateName, "InvalidPrivateName",
		Static("'#' must be followed by an identifier"))
	ErrBadCodePoint = Define(LexBadCodePoint, "BadCodePoint",
		Static("code point in \\u{...} escape is out of range"))

	// Синтаксические.
	ErrUnexpectedToken = Define(SynUnexpectedToken, "UnexpectedToken",
		func(d Details) string { return fmt.Sprintf("unexpected token %q", d["found"]) },
		WithRequired("found"))
	ErrUnexpectedEOF = Define(SynUnexpectedEOF, "UnexpectedEOF",
		Static("unexpected end of input"), Fatal())
	ErrExpectExpression = Define(SynExpectExpression, "ExpectExpression",
		Static("expected an expression"))
	ErrExpectIdentifier = Define(SynExpectIdentifier, "ExpectIdentifier",
		Static("expected an identifier"))
	ErrExpectSemicolon = Define(SynExpectSemicolon, "ExpectSemicolon",
		Static("expected ';'"))
	ErrUnclosedParen = Define(SynUnclosedParen, "UnclosedParen",
		Static("expected ')'"))
	ErrUnclosedBrace = Define(SynUnclosedBrace, "UnclosedBrace",
		Static("expected '}'"))
	ErrUnclosedBracket = Define(SynUnclosedBracket, "UnclosedBracket",
		Static("expected ']'"))
	ErrBadAssignTarget = Define(SynBadAssignTarget, "BadAssignTarget",
		Static("invalid assignment target"))
	ErrRestMustBeLast = Define(SynRestMustBeLast, "RestMustBeLast",
		Static("rest element must be the last element"))
	ErrMalformedArrowParams = Define(SynMalformedArrowParams, "MalformedArrowParams",
		Static("malformed arrow function parameter list"))
	ErrExpectColon = Define(SynExpectColon, "ExpectColon",
		Static("expected ':'"))
	ErrBadForHeader = Define(SynBadForHeader, "BadForHeader",
		Static("malformed for-loop header"))
	ErrBadPropertyName = Define(SynBadPropertyName, "BadPropertyName",
		Static("invalid property name"))
	ErrImportOutsideModule = Define(SynImportOutsideModule, "ImportOutsideModule",
		Static("'import' declarations may only appear in modules"))
	ErrExportOutsideModule = Define(SynExportOutsideModule, "ExportOutsideModule",
		Static("'export' declarations may only appear in modules"))
	ErrTrailingCommaAfterRest = Define(SynTrailingCommaAfterRest, "TrailingCommaAfterRest",
		Static("trailing comma is not allowed after a rest element"))
	ErrExpectArrowBody = Define(SynExpectArrowBody, "ExpectArrowBody",
		Static("expected arrow function body"))
	ErrExpectTemplateTail = Define(SynExpectTemplateTail, "ExpectTemplateTail",
		Static("expected '}' to close template substitution"), Fatal())
	ErrMissingInitializer = Define(SynMissingInitializer, "MissingInitializer",
		func(d Details) string { return fmt.Sprintf("missing initializer in %s declaration", d["decl"]) },
		WithRequired("decl"))
	ErrMultipleDefaults = Define(SynMultipleDefaults, "MultipleDefaults",
		Static("more than one default clause in switch statement"))
	ErrExpectParen = Define(SynExpectParen, "ExpectParen",
		Static("expected '('"))
	ErrExpectFrom = Define(SynExpectFrom, "ExpectFrom",
		Static("expected 'from'"))
	ErrExpectString = Define(SynExpectString, "ExpectString",
		Static("expected a string literal"))

	// JSX-синтаксис — активен только вместе с диалектом jsx,
	// поэтому все кинды помечены тегом.
	ErrJSXUnclosedElement = Define(SynJSXUnclosedElement, "JSXUnclosedElement",
		func(d Details) string { return fmt.Sprintf("unclosed JSX element <%s>", d["name"]) },
		WithRequired("name"), WithDialect("jsx"))
	ErrJSXMismatchedClosing = Define(SynJSXMismatchedClosing, "JSXMismatchedClosing",
		func(d Details) string {
			return fmt.Sprintf("expected closing tag </%s>, found </%s>", d["open"], d["close"])
		},
		WithRequired("open", "close"), WithDialect("jsx"))
	ErrJSXExpectAttrValue = Define(SynJSXExpectAttrValue, "JSXExpectAttrValue",
		Static("expected JSX attribute value"), WithDialect("jsx"))
	ErrJSXExpectElementName = Define(SynJSXExpectElementName, "JSXExpectElementName",
		Static("expected JSX element name"), WithDialect("jsx"))

	// Контекстные.
	ErrAwaitOutsideAsync = Define(CtxAwaitOutsideAsync, "AwaitOutsideAsync",
		Static("'await' is only allowed within async functions"))
	ErrYieldOutsideGenerator = Define(CtxYieldOutsideGenerator, "YieldOutsideGenerator",
		Static("'yield' is only allowed within generator functions"))
	ErrReturnOutsideFunction = Define(CtxReturnOutsideFunction, "ReturnOutsideFunction",
		Static("'return' outside of function"))
	ErrBreakOutsideLoop = Define(CtxBreakOutsideLoop, "BreakOutsideLoop",
		Static("'break' outside of loop or switch"))
	ErrContinueOutsideLoop = Define(CtxContinueOutsideLoop, "ContinueOutsideLoop",
		Static("'continue' outside of loop"))
	ErrUnknownLabel = Define(CtxUnknownLabel, "UnknownLabel",
		func(d Details) string { return fmt.Sprintf("label %q is not defined", d["label"]) },
		WithRequired("label"))
	ErrDuplicateLabel = Define(CtxDuplicateLabel, "DuplicateLabel",
		func(d Details) string { return fmt.Sprintf("label %q is already declared", d["label"]) },
		WithRequired("label"))
	ErrStrictReservedWord = Define(CtxStrictReservedWord, "StrictReservedWord",
		func(d Details) string { return fmt.Sprintf("%q is a reserved word in strict mode", d["word"]) },
		WithRequired("word"))
	ErrStrictDuplicateParam = Define(CtxStrictDuplicateParam, "StrictDuplicateParam",
		func(d Details) string { return fmt.Sprintf("duplicate parameter name %q in strict mode", d["name"]) },
		WithRequired("name"))
	ErrStrictOctalLiteral = Define(CtxStrictOctalLiteral, "StrictOctalLiteral",
		Static("legacy octal literals are not allowed in strict mode"))
	ErrStrictDelete = Define(CtxStrictDelete, "StrictDelete",
		Static("deleting a plain variable is not allowed in strict mode"))
	ErrStrictWith = Define(CtxStrictWith, "StrictWith",
		Static("'with' statements are not allowed in strict mode"))
	ErrSuperOutsideClass = Define(CtxSuperOutsideClass, "SuperOutsideClass",
		Static("'super' is only allowed within class members"))
	ErrNewTargetOutside = Define(CtxNewTargetOutside, "NewTargetOutside",
		Static("'new.target' is only allowed within functions"))
	ErrDuplicateConstructor = Define(CtxDuplicateConstructor, "DuplicateConstructor",
		Static("a class may only have one constructor"))
	ErrLetAsBindingName = Define(CtxLetAsBindingName, "LetAsBindingName",
		Static("'let' cannot be used as a lexical binding name"))

	// Диалектные: синтаксис опознан, но соответствующий диалект выключен.
	ErrJSXNotEnabled = Define(DialJSXNotEnabled, "JSXNotEnabled",
		Static("JSX syntax is not enabled"), WithDialect("jsx"))
	ErrTypeAnnoNotEnabled = Define(DialTypeAnnoNotEnabled, "TypeAnnoNotEnabled",
		Static("type annotation syntax is not enabled"), WithDialect("typeanno"))
	ErrDecoratorsNotEnabled = Define(DialDecoratorsNotEnabled, "DecoratorsNotEnabled",
		Static("decorator syntax is not enabled"), WithDialect("decorators"))
	ErrPipelineNotEnabled = Define(DialPipelineNotEnabled, "PipelineNotEnabled",
		Static("pipeline operator is not enabled"), WithDialect("pipeline"))

	// I/O
	ErrLoadFile = Define(IOLoadFileError, "LoadFile",
		func(d Details) string { return fmt.Sprintf("failed to load file: %v", d["err"]) },
		WithRequired("err"), Fatal())
)
