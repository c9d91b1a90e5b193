package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo           Code = 1000
	LexUnknownToken   Code = 1001
	LexInvalidInteger Code = 1002
	LexInvalidFloat   Code = 1003
	LexInvalidRune    Code = 1004
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	LexInfo:           "Lexical information",
	LexUnknownToken:   "Unknown token",
	LexInvalidInteger: "Invalid integer literal",
	LexInvalidFloat:   "Invalid float literal",
	LexInvalidRune:    "Invalid rune literal",
}

func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
