package testkit

import (
	"strings"
	"testing"

	"mygo/internal/lexer"
	"mygo/internal/source"
	"mygo/internal/token"
)

func lex(input string) ([]token.Token, []*lexer.Error, *source.FileSet, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("inv.mygo", []byte(input)))
	tokens, errs := lexer.Tokenize(file, lexer.Options{})
	return tokens, errs, fs, file
}

func TestCheckTokenInvariants_Valid(t *testing.T) {
	inputs := []string{
		"",
		"var x = 1\n",
		"func f() { /* c\n */ return '\\n' }",
		"# 12abc 'ab' \"open\nx := `raw\nstring` 本",
		"/* unterminated\n\n",
	}
	for _, in := range inputs {
		tokens, errs, fs, file := lex(in)
		if err := CheckTokenInvariants(tokens, errs, fs, file); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCheckTokenInvariants_Detects(t *testing.T) {
	tokens, errs, fs, file := lex("a b")

	broken := append([]token.Token(nil), tokens...)
	broken[1].Pos.Col++
	if err := CheckTokenInvariants(broken, errs, fs, file); err == nil || !strings.Contains(err.Error(), "pos") {
		t.Errorf("expected position error, got %v", err)
	}

	broken = append([]token.Token(nil), tokens...)
	broken[1].Text = "c"
	if err := CheckTokenInvariants(broken, errs, fs, file); err == nil {
		t.Error("expected text mismatch")
	}

	broken = append([]token.Token(nil), tokens...)
	broken[0].Span.End = broken[1].Span.End
	if err := CheckTokenInvariants(broken, errs, fs, file); err == nil {
		t.Error("expected overlap or text error")
	}

	if err := CheckTokenInvariants(tokens[:2], errs, fs, file); err == nil {
		t.Error("expected missing EOF error")
	}
}
