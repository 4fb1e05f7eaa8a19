package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegExp       Code = 1006
	LexInvalidEscape            Code = 1007
	LexIdentAfterNumber         Code = 1008
	LexInvalidPrivateName       Code = 1009
	LexBadCodePoint             Code = 1010

	// Синтаксические
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnexpectedEOF         Code = 2002
	SynExpectExpression      Code = 2003
	SynExpectIdentifier      Code = 2004
	SynExpectSemicolon       Code = 2005
	SynUnclosedParen         Code = 2006
	SynUnclosedBrace         Code = 2007
	SynUnclosedBracket       Code = 2008
	SynBadAssignTarget       Code = 2009
	SynRestMustBeLast        Code = 2010
	SynMalformedArrowParams  Code = 2011
	SynExpectColon           Code = 2012
	SynBadForHeader          Code = 2013
	SynBadPropertyName       Code = 2014
	SynImportOutsideModule   Code = 2015
	SynExportOutsideModule   Code = 2016
	SynTrailingCommaAfterRest Code = 2017
	SynExpectArrowBody       Code = 2018
	SynExpectTemplateTail    Code = 2019
	SynMissingInitializer    Code = 2020
	SynMultipleDefaults      Code = 2021
	SynExpectParen           Code = 2022
	SynExpectFrom            Code = 2023
	SynExpectString          Code = 2024

	// JSX (подмножество синтаксических; активны только с диалектом jsx)
	SynJSXUnclosedElement    Code = 2100
	SynJSXMismatchedClosing  Code = 2101
	SynJSXExpectAttrValue    Code = 2102
	SynJSXExpectElementName  Code = 2103

	// Контекстные: грамматика валидна, но запрещена в текущем окружении
	CtxInfo                 Code = 3000
	CtxAwaitOutsideAsync    Code = 3001
	CtxYieldOutsideGenerator Code = 3002
	CtxReturnOutsideFunction Code = 3003
	CtxBreakOutsideLoop     Code = 3004
	CtxContinueOutsideLoop  Code = 3005
	CtxUnknownLabel         Code = 3006
	CtxDuplicateLabel       Code = 3007
	CtxStrictReservedWord   Code = 3008
	CtxStrictDuplicateParam Code = 3009
	CtxStrictOctalLiteral   Code = 3010
	CtxStrictDelete         Code = 3011
	CtxStrictWith           Code = 3012
	CtxSuperOutsideClass    Code = 3013
	CtxNewTargetOutside     Code = 3014
	CtxDuplicateConstructor Code = 3015
	CtxLetAsBindingName     Code = 3016

	// Диалектные: конструкция валидна в известном, но выключенном диалекте
	DialInfo                Code = 4000
	DialJSXNotEnabled       Code = 4001
	DialTypeAnnoNotEnabled  Code = 4002
	DialDecoratorsNotEnabled Code = 4003
	DialPipelineNotEnabled  Code = 4004

	// Ошибки I/O
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexUnterminatedTemplate:     "Unterminated template literal",
	LexUnterminatedRegExp:       "Unterminated regular expression",
	LexInvalidEscape:            "Invalid escape sequence",
	LexIdentAfterNumber:         "Identifier directly after number",
	LexInvalidPrivateName:       "Invalid private name",
	LexBadCodePoint:             "Code point out of range",

	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynUnexpectedEOF:          "Unexpected end of input",
	SynExpectExpression:       "Expect expression",
	SynExpectIdentifier:       "Expect identifier",
	SynExpectSemicolon:        "Expect semicolon",
	SynUnclosedParen:          "Unclosed parenthesis",
	SynUnclosedBrace:          "Unclosed brace",
	SynUnclosedBracket:        "Unclosed bracket",
	SynBadAssignTarget:        "Invalid assignment target",
	SynRestMustBeLast:         "Rest element must be last",
	SynMalformedArrowParams:   "Malformed arrow function parameters",
	SynExpectColon:            "Expect colon",
	SynBadForHeader:           "Malformed for-loop header",
	SynBadPropertyName:        "Invalid property name",
	SynImportOutsideModule:    "'import' outside a module",
	SynExportOutsideModule:    "'export' outside a module",
	SynTrailingCommaAfterRest: "Trailing comma after rest element",
	SynExpectArrowBody:        "Expect arrow function body",
	SynExpectTemplateTail:     "Unterminated template substitution",
	SynMissingInitializer:     "Missing initializer",
	SynMultipleDefaults:       "Multiple default clauses",
	SynExpectParen:            "Expect parenthesis",
	SynExpectFrom:             "Expect 'from'",
	SynExpectString:           "Expect string literal",

	SynJSXUnclosedElement:   "Unclosed JSX element",
	SynJSXMismatchedClosing: "Mismatched JSX closing tag",
	SynJSXExpectAttrValue:   "Expect JSX attribute value",
	SynJSXExpectElementName: "Expect JSX element name",

	CtxInfo:                  "Context information",
	CtxAwaitOutsideAsync:     "'await' outside async context",
	CtxYieldOutsideGenerator: "'yield' outside generator",
	CtxReturnOutsideFunction: "'return' outside function",
	CtxBreakOutsideLoop:      "'break' outside loop or switch",
	CtxContinueOutsideLoop:   "'continue' outside loop",
	CtxUnknownLabel:          "Unknown label",
	CtxDuplicateLabel:        "Duplicate label",
	CtxStrictReservedWord:    "Reserved word in strict mode",
	CtxStrictDuplicateParam:  "Duplicate parameter in strict mode",
	CtxStrictOctalLiteral:    "Legacy octal literal in strict mode",
	CtxStrictDelete:          "Unqualified delete in strict mode",
	CtxStrictWith:            "'with' in strict mode",
	CtxSuperOutsideClass:     "'super' outside class",
	CtxNewTargetOutside:      "'new.target' outside function",
	CtxDuplicateConstructor:  "Duplicate constructor",
	CtxLetAsBindingName:      "'let' as lexical binding name",

	DialInfo:                 "Dialect information",
	DialJSXNotEnabled:        "JSX syntax requires the jsx dialect",
	DialTypeAnnoNotEnabled:   "Type annotations require the typeanno dialect",
	DialDecoratorsNotEnabled: "Decorators require the decorators dialect",
	DialPipelineNotEnabled:   "Pipeline operator requires the pipeline dialect",

	IOLoadFileError: "Failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CTX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DIA%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
