package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunc represents the 'func' keyword.
	KwFunc // func

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// RuneLit represents the rune literal token.
	RuneLit
	// StringLit represents the interpreted or raw string literal token.
	StringLit

	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	Amp      // &
	Pipe     // |
	Caret    // ^
	Shl      // <<
	Shr      // >>
	AmpCaret // &^

	PlusAssign     // +=
	MinusAssign    // -=
	StarAssign     // *=
	SlashAssign    // /=
	PercentAssign  // %=
	AmpAssign      // &=
	PipeAssign     // |=
	CaretAssign    // ^=
	ShlAssign      // <<=
	ShrAssign      // >>=
	AmpCaretAssign // &^=

	AndAnd // &&
	OrOr   // ||
	Bang   // !
	Inc    // ++
	Dec    // --

	EqEq   // ==
	BangEq // !=
	Lt     // <
	LtEq   // <=
	Gt     // >
	GtEq   // >=

	Assign    // =
	ShortDecl // :=

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Semicolon // ;
	Colon     // :
	Comma     // ,
	Dot       // .

	kindCount
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	KwVar:          "KwVar",
	KwIf:           "KwIf",
	KwElse:         "KwElse",
	KwFor:          "KwFor",
	KwConst:        "KwConst",
	KwFunc:         "KwFunc",
	IntLit:         "IntLit",
	FloatLit:       "FloatLit",
	RuneLit:        "RuneLit",
	StringLit:      "StringLit",
	Plus:           "Plus",
	Minus:          "Minus",
	Star:           "Star",
	Slash:          "Slash",
	Percent:        "Percent",
	Amp:            "Amp",
	Pipe:           "Pipe",
	Caret:          "Caret",
	Shl:            "Shl",
	Shr:            "Shr",
	AmpCaret:       "AmpCaret",
	PlusAssign:     "PlusAssign",
	MinusAssign:    "MinusAssign",
	StarAssign:     "StarAssign",
	SlashAssign:    "SlashAssign",
	PercentAssign:  "PercentAssign",
	AmpAssign:      "AmpAssign",
	PipeAssign:     "PipeAssign",
	CaretAssign:    "CaretAssign",
	ShlAssign:      "ShlAssign",
	ShrAssign:      "ShrAssign",
	AmpCaretAssign: "AmpCaretAssign",
	AndAnd:         "AndAnd",
	OrOr:           "OrOr",
	Bang:           "Bang",
	Inc:            "Inc",
	Dec:            "Dec",
	EqEq:           "EqEq",
	BangEq:         "BangEq",
	Lt:             "Lt",
	LtEq:           "LtEq",
	Gt:             "Gt",
	GtEq:           "GtEq",
	Assign:         "Assign",
	ShortDecl:      "ShortDecl",
	LParen:         "LParen",
	RParen:         "RParen",
	LBracket:       "LBracket",
	RBracket:       "RBracket",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	Semicolon:      "Semicolon",
	Colon:          "Colon",
	Comma:          "Comma",
	Dot:            "Dot",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }
