package token

import (
	"mygo/internal/source"
)

// Token represents a single source token with its location and decoded value.
//
// Only the value field matching Kind is meaningful:
// Int for IntLit, Float for FloatLit, Rune for RuneLit, Str for StringLit.
// Identifiers and keywords carry their name in Text.
type Token struct {
	Kind    Kind
	Span    source.Span
	Pos     source.LineCol
	Text    string
	Int     int64
	Float   float64
	Rune    rune
	Str     string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, rune, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, RuneLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVar, KwIf, KwElse, KwFor, KwConst, KwFunc:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
