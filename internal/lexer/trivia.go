package lexer

import (
	"mygo/internal/token"
)

// collectLeadingTrivia пропускает trivia перед значимым токеном.
//   - ' ', '\t', '\f' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - //... до \n (сам \n не входит) -> TriviaLineComment
//   - /* ... */ без вложенности, до первого */ -> TriviaBlockComment
//
// Every newline, including those inside block comments, advances the line
// counter. An unterminated block comment is reported as UnknownToken.
func (lx *Lexer) collectLeadingTrivia() (token.Token, *Error) {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.keep(token.TriviaSpace, start)

		case b == '\n':
			for lx.cursor.Eat('\n') {
				lx.newline()
			}
			lx.keep(token.TriviaNewline, start)

		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
				// это не комментарий - пусть сканируется как оператор '/'
				return token.Token{}, nil
			}
			if b1 == '/' {
				lx.scanLineComment(start)
				continue
			}
			if tok, lerr := lx.scanBlockComment(start); lerr != nil {
				return tok, lerr
			}

		default:
			return token.Token{}, nil
		}
	}
	return token.Token{}, nil
}

func (lx *Lexer) scanLineComment(start Mark) {
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.keep(token.TriviaLineComment, start)
}

func (lx *Lexer) scanBlockComment(start Mark) (token.Token, *Error) {
	pos := lx.cursorPos()
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Advance(2)
			lx.keep(token.TriviaBlockComment, start)
			return token.Token{}, nil
		}
		if lx.cursor.Bump() == '\n' {
			lx.newline()
		}
	}
	return lx.fail(UnknownToken, start, pos)
}

// keep сохраняет trivia, если об этом попросили в Options.
func (lx *Lexer) keep(kind token.TriviaKind, start Mark) {
	if !lx.opts.KeepTrivia {
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
