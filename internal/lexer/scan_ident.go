package lexer

import (
	"mygo/internal/token"
)

// scanIdentOrKeyword сканирует максимальный идентификатор и только потом
// проверяет его через LookupKeyword: "variable" - Ident, "var" - KwVar.
// Token.Text - ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, *Error) {
	start := lx.cursor.Mark()
	pos := lx.cursorPos()

	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		// не буква (например '€' или битый UTF-8)
		lx.bumpRune()
		return lx.fail(UnknownToken, start, pos)
	}
	lx.bumpRune()
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}
	return token.Token{Kind: kind, Span: sp, Pos: pos, Text: text}, nil
}
