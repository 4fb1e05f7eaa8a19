// Package token defines lexical token kinds for the volt front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Tokens are produced in strictly increasing span order.
//   - NewlineBefore is set when at least one line terminator was skipped
//     between the previous significant token and this one; the parser needs
//     it for automatic semicolon insertion and restricted productions.
//   - `/` is lexed as Slash (or SlashAssign) by default; the parser asks the
//     lexer to re-scan it as RegExpLit when it sits at expression position.
//   - Contextual keywords (async, of, get, set, static, from, as) are lexed
//     as Ident; await/yield/let get their own kinds and the parser decides
//     from context whether they act as identifiers.
package token
