package lexer

import (
	"mygo/internal/diag"
	"mygo/internal/source"
	"mygo/internal/token"
)

type Options struct {
	// Reporter может быть nil - тогда ошибки только возвращаются из Next.
	Reporter diag.Reporter
	// KeepTrivia attaches skipped whitespace, newlines and comments to
	// Token.Leading. They are never returned as tokens either way.
	KeepTrivia bool
}

// fail builds the error for the lexeme started at m and reports it.
func (lx *Lexer) fail(kind ErrorKind, m Mark, pos source.LineCol) (token.Token, *Error) {
	sp := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[sp.Start:sp.End])
	err := &Error{Kind: kind, Span: sp, Pos: pos, Text: text}
	err.Report(lx.opts.Reporter)
	return token.Token{Kind: token.Invalid, Span: sp, Pos: pos, Text: text}, err
}
