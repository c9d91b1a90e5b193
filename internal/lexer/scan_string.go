package lexer

import (
	"unicode"

	"mygo/internal/source"
	"mygo/internal/token"
)

// scanString сканирует "..." в пределах одной строки.
// Escape-последовательности не раскрываются: Token.Str - срез между
// кавычками как есть ("a\n" -> `a\n`). Пара '\' + руна пропускается целиком,
// поэтому \" не закрывает строку.
//
// Unterminated literals (newline or EOF before the closing quote) become
// UnknownToken; the newline itself is left for the next call. A literal
// holding a rune outside isStringRune is scanned to its closing quote and
// rejected as a whole with UnknownToken.
func (lx *Lexer) scanString() (token.Token, *Error) {
	start := lx.cursor.Mark()
	pos := lx.cursorPos()
	lx.cursor.Bump() // "

	bad := false
	for {
		if lx.cursor.EOF() {
			return lx.fail(UnknownToken, start, pos)
		}
		switch lx.cursor.Peek() {
		case '\n':
			return lx.fail(UnknownToken, start, pos)
		case '"':
			lx.cursor.Bump()
			if bad {
				return lx.fail(UnknownToken, start, pos)
			}
			return lx.emitString(start, pos), nil
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				continue
			}
		}
		r, _ := lx.peekRune()
		if !isStringRune(r) {
			bad = true
		}
		lx.bumpRune()
	}
}

// scanRawString сканирует `...`: переводы строк внутри допустимы и
// учитываются в счётчике строк, escape-обработки нет. Содержимое
// ограничено тем же классом, что и у "...".
func (lx *Lexer) scanRawString() (token.Token, *Error) {
	start := lx.cursor.Mark()
	pos := lx.cursorPos()
	lx.cursor.Bump() // `

	bad := false
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		switch {
		case r == '`':
			lx.cursor.Bump()
			if bad {
				return lx.fail(UnknownToken, start, pos)
			}
			return lx.emitString(start, pos), nil
		case r == '\n':
			lx.cursor.Bump()
			lx.newline()
		default:
			if !isStringRune(r) {
				bad = true
			}
			lx.bumpRune()
		}
	}
	return lx.fail(UnknownToken, start, pos)
}

// isStringRune - допустимое содержимое строкового литерала: буква или '_',
// цифра 0-9, пунктуация (категория P) или пробельный символ.
// Символы категории S (+ $ < = ~ ...) и управляющие байты не допускаются.
func isStringRune(r rune) bool {
	switch {
	case r == utf8RuneError:
		return false
	case isIdentStartRune(r), r >= '0' && r <= '9':
		return true
	default:
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	}
}

func (lx *Lexer) emitString(start Mark, pos source.LineCol) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Pos:  pos,
		Text: text,
		Str:  text[1 : len(text)-1],
	}
}
