package lexer

import (
	"iter"

	"mygo/internal/source"
	"mygo/internal/token"
)

type lookahead struct {
	tok token.Token
	err *Error
	pos source.LineCol // позиция курсора до Peek
}

// Lexer turns one source file into a stream of tokens.
// A Lexer is not safe for concurrent use; separate Lexers over separate
// files need no coordination.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *lookahead     // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia

	// line - номер текущей строки (1-based), lineStart - смещение её начала.
	// Меняются только в newline().
	line      uint32
	lineStart uint32
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		line:   1,
	}
}

// Next returns the next token. At end of input it returns an EOF token and a
// nil error, and keeps doing so on every later call.
//
// A non-nil error is always an *Error; the returned token then has Kind
// Invalid and covers the rejected lexeme. Errors are not terminal: the next
// call continues right after that lexeme.
func (lx *Lexer) Next() (token.Token, error) {
	var (
		tok  token.Token
		lerr *Error
	)
	if lx.look != nil {
		tok, lerr = lx.look.tok, lx.look.err
		lx.look = nil
	} else {
		tok, lerr = lx.next()
	}
	if lerr != nil {
		return tok, lerr
	}
	return tok, nil
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look == nil {
		pos := lx.cursorPos()
		tok, lerr := lx.next()
		lx.look = &lookahead{tok: tok, err: lerr, pos: pos}
	}
	if lx.look.err != nil {
		return lx.look.tok, lx.look.err
	}
	return lx.look.tok, nil
}

// All yields every token and error up to, but not including, EOF.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lx.Next()
			if err == nil && tok.Kind == token.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Pos returns the line/column of the cursor. A pending Peek does not move
// it: until Next consumes the peeked token, Pos reports where the cursor
// stood before the Peek.
func (lx *Lexer) Pos() source.LineCol {
	if lx.look != nil {
		return lx.look.pos
	}
	return lx.cursorPos()
}

func (lx *Lexer) cursorPos() source.LineCol {
	return lx.posAt(lx.cursor.Off)
}

func (lx *Lexer) posAt(off uint32) source.LineCol {
	return source.LineCol{Line: lx.line, Col: off - lx.lineStart + 1}
}

// newline вызывается сразу после того, как курсор съел '\n'.
func (lx *Lexer) newline() {
	lx.line++
	lx.lineStart = lx.cursor.Off
}

func (lx *Lexer) next() (token.Token, *Error) {
	// 1) trivia: пробелы, переводы строк, комментарии
	if tok, lerr := lx.collectLeadingTrivia(); lerr != nil {
		tok.Leading = lx.takeHold()
		return tok, lerr
	}

	// 2) EOF (Leading из hold к EOF не приклеиваем)
	if lx.cursor.EOF() {
		lx.hold = nil
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
			Pos:  lx.cursorPos(),
		}, nil
	}

	// 3) выбрать сканер по текущему байту
	ch := lx.cursor.Peek()
	var (
		tok  token.Token
		lerr *Error
	)
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok, lerr = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok, lerr = lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		tok, lerr = lx.scanNumber()
	case ch == '\'':
		tok, lerr = lx.scanRune()
	case ch == '"':
		tok, lerr = lx.scanString()
	case ch == '`':
		tok, lerr = lx.scanRawString()
	default:
		tok, lerr = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	return tok, lerr
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	h := lx.hold
	lx.hold = nil
	return h
}

// Tokenize lexes the whole file. Tokens are returned in source order and end
// with the EOF token; lexemes that failed are left out of the token slice and
// returned as errors instead.
func Tokenize(file *source.File, opts Options) ([]token.Token, []*Error) {
	lx := New(file, opts)
	var (
		tokens []token.Token
		errs   []*Error
	)
	for {
		tok, lerr := lx.next()
		if lerr != nil {
			errs = append(errs, lerr)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, errs
		}
	}
}
