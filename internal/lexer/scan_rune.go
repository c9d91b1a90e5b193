package lexer

import (
	"unicode"

	"mygo/internal/token"
)

// scanRune сканирует '...'. Внутри ровно одно из:
//   - буква (Unicode) или '_'
//   - десятичная цифра
//   - знак пунктуации, кроме ' и "
//   - escape: \n \r \t \v \f \a \b \\ \' \"
//
// Всё остальное ('', 'ab', '\q', ' ', незакрытая) - InvalidRune.
// В отличие от строк, escape здесь раскрывается в Token.Rune.
func (lx *Lexer) scanRune() (token.Token, *Error) {
	start := lx.cursor.Mark()
	pos := lx.cursorPos()
	lx.cursor.Bump() // '

	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		return lx.fail(InvalidRune, start, pos)
	}

	var (
		val rune
		ok  bool
	)
	switch lx.cursor.Peek() {
	case '\'':
		// ''
		lx.cursor.Bump()
		return lx.fail(InvalidRune, start, pos)
	case '\\':
		lx.cursor.Bump()
		if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			val, ok = decodeEscape(lx.cursor.Peek())
			lx.bumpRune()
		}
	default:
		r, _ := lx.peekRune()
		val, ok = r, isRuneBody(r)
		lx.bumpRune()
	}

	if !ok || !lx.cursor.Eat('\'') {
		lx.skipRuneTail()
		return lx.fail(InvalidRune, start, pos)
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.RuneLit,
		Span: sp,
		Pos:  pos,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Rune: val,
	}, nil
}

func isRuneBody(r rune) bool {
	switch {
	case r == '\'' || r == '"':
		return false
	case r == utf8RuneError:
		return false
	case isIdentStartRune(r), r >= '0' && r <= '9':
		return true
	default:
		return unicode.IsPunct(r)
	}
}

// skipRuneTail дочитывает битый литерал до закрывающей ' (включительно),
// но не дальше конца строки.
func (lx *Lexer) skipRuneTail() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\n':
			return
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.bumpRune()
			}
		case '\'':
			lx.cursor.Bump()
			return
		default:
			lx.bumpRune()
		}
	}
}
