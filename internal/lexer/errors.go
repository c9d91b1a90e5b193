package lexer

import (
	"fmt"
	"strings"

	"mygo/internal/diag"
	"mygo/internal/source"
)

// ErrorKind classifies a lexical error. The zero value is UnknownToken,
// the fallback for input that matches no production.
type ErrorKind uint8

const (
	UnknownToken ErrorKind = iota
	InvalidInteger
	InvalidFloat
	InvalidRune
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInteger:
		return "InvalidInteger"
	case InvalidFloat:
		return "InvalidFloat"
	case InvalidRune:
		return "InvalidRune"
	default:
		return "UnknownToken"
	}
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case InvalidInteger:
		return diag.LexInvalidInteger
	case InvalidFloat:
		return diag.LexInvalidFloat
	case InvalidRune:
		return diag.LexInvalidRune
	default:
		return diag.LexUnknownToken
	}
}

func (k ErrorKind) message() string {
	switch k {
	case InvalidInteger:
		return "invalid integer literal"
	case InvalidFloat:
		return "invalid float literal"
	case InvalidRune:
		return "invalid rune literal"
	default:
		return "unknown token"
	}
}

// Error is a lexical error. Span covers the rejected lexeme; the lexer has
// already moved past it, so calling Next again resumes after Text.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Pos  source.LineCol
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s %q", e.Pos.Line, e.Pos.Col, e.Kind.message(), e.Text)
}

// Report emits e as an error diagnostic. A nil reporter is ignored.
// Unterminated literals and block comments get a note pointing at the end
// of the lexeme.
func (e *Error) Report(r diag.Reporter) {
	if r == nil {
		return
	}
	b := diag.ReportError(r, e.Kind.Code(), e.Span, fmt.Sprintf("%s %q", e.Kind.message(), e.Text))
	if closer := e.missingCloser(); closer != "" {
		at := source.Span{File: e.Span.File, Start: e.Span.End, End: e.Span.End}
		b.WithNote(at, "missing closing "+closer)
	}
	b.Emit()
}

// missingCloser возвращает разделитель, которого не хватает лексеме,
// или "", если литерал закрыт.
func (e *Error) missingCloser() string {
	t := e.Text
	switch {
	case strings.HasPrefix(t, "/*"):
		if len(t) < 4 || !strings.HasSuffix(t, "*/") {
			return "*/"
		}
	case strings.HasPrefix(t, "`"):
		if len(t) < 2 || !strings.HasSuffix(t, "`") {
			return "`"
		}
	case strings.HasPrefix(t, `"`):
		if !closedQuoted(t, '"') {
			return `"`
		}
	case strings.HasPrefix(t, "'"):
		if !closedQuoted(t, '\'') {
			return "'"
		}
	}
	return ""
}

// closedQuoted: последний байт - кавычка q, и перед ней чётное число '\'.
func closedQuoted(t string, q byte) bool {
	if len(t) < 2 || t[len(t)-1] != q {
		return false
	}
	n := 0
	for i := len(t) - 2; i > 0 && t[i] == '\\'; i-- {
		n++
	}
	return n%2 == 0
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrInvalidRune) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnknownToken   = &Error{Kind: UnknownToken}
	ErrInvalidInteger = &Error{Kind: InvalidInteger}
	ErrInvalidFloat   = &Error{Kind: InvalidFloat}
	ErrInvalidRune    = &Error{Kind: InvalidRune}
)
