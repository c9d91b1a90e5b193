package lexer

import "strings"

// escape - символ после '\' и его значение.
var escapes = map[byte]rune{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'f':  '\f',
	'a':  '\a',
	'b':  '\b',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

func decodeEscape(c byte) (rune, bool) {
	r, ok := escapes[c]
	return r, ok
}

// DecodeEscapes expands \n \r \t \v \f \a \b \\ \' \" inside s.
// Unknown sequences and a trailing lone backslash are kept verbatim.
//
// The lexer never applies this to StringLit values; callers that want
// decoded string contents opt in explicitly.
func DecodeEscapes(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		if r, ok := decodeEscape(s[i+1]); ok {
			b.WriteRune(r)
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
