package lexer

import (
	"strconv"
	"strings"

	"mygo/internal/token"
)

// Поддержка: 123, 1_000, 1.5, 1., .5, 1_2.3_4.
// Только десятичные; '_' допустим лишь между цифрами и выбрасывается перед
// разбором. Целые - всегда int64, независимо от платформы.
//
// A literal glued to a letter or '_' (12abc, 1.5f, 1_, 1__2) is consumed up
// to the end of that run and rejected as a whole.
func (lx *Lexer) scanNumber() (token.Token, *Error) {
	start := lx.cursor.Mark()
	pos := lx.cursorPos()

	isFloat := false
	if lx.cursor.Eat('.') {
		// ".digits" - вызваны после проверки isNumberAfterDot
		isFloat = true
		lx.scanDigits()
	} else {
		lx.scanDigits()
		if lx.cursor.Eat('.') {
			isFloat = true
			lx.scanDigits()
		}
	}

	kind := InvalidInteger
	if isFloat {
		kind = InvalidFloat
	}

	// недопустимый суффикс
	if r, sz := lx.peekRune(); sz > 0 && isIdentStartRune(r) {
		for {
			r, sz := lx.peekRune()
			if sz == 0 || !isIdentContinueRune(r) {
				break
			}
			lx.bumpRune()
		}
		return lx.fail(kind, start, pos)
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	digits := strings.ReplaceAll(text, "_", "")

	if isFloat {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return lx.fail(kind, start, pos)
		}
		return token.Token{Kind: token.FloatLit, Span: sp, Pos: pos, Text: text, Float: v}, nil
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return lx.fail(kind, start, pos)
	}
	return token.Token{Kind: token.IntLit, Span: sp, Pos: pos, Text: text, Int: v}, nil
}

// scanDigits съедает [0-9]('_'?[0-9])*. '_' без цифры справа не трогаем.
func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '_' && isDec(b1) {
			lx.cursor.Bump()
		}
	}
}
