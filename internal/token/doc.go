// Package token defines lexical token kinds and trivia for the mygo toolchain.
// Invariants:
//   - Token.Text is the exact lexeme taken from the source buffer.
//   - Token.Span matches Text exactly (Start..End) and Token.Pos is the
//     line/column of Span.Start.
//   - Keywords are recognised only when they consume the whole identifier run:
//     "variable" is one Ident, never KwVar followed by "iable".
//   - Newlines, whitespace and comments are Trivia. They never appear in the
//     token stream; the lexer may attach them to Token.Leading on request.
//   - String literal values are the verbatim text between the delimiters;
//     escape sequences are decoded only for rune literals.
package token
