package token

import (
	"maps"
	"slices"
)

var keywords = map[string]Kind{
	"var":   KwVar,
	"if":    KwIf,
	"else":  KwElse,
	"for":   KwFor,
	"const": KwConst,
	"func":  KwFunc,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые - только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns all keyword spellings in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}
