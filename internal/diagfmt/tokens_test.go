package diagfmt

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"mygo/internal/lexer"
	"mygo/internal/source"
	"mygo/internal/token"
)

func lexString(t *testing.T, input string, opts lexer.Options) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("tok.mygo", []byte(input)))
	tokens, errs := lexer.Tokenize(file, opts)
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	return tokens, fs
}

func TestBuildTokenOutputs(t *testing.T) {
	tokens, _ := lexString(t, "x := 42 + 1.5 * '\\n' \"s\"", lexer.Options{})
	out := BuildTokenOutputs(tokens)

	if len(out) != len(tokens) || out[len(out)-1].Kind != "EOF" {
		t.Fatalf("unexpected outputs %+v", out)
	}
	if out[2].Int == nil || *out[2].Int != 42 {
		t.Errorf("expected int 42, got %+v", out[2])
	}
	if out[4].Float == nil || *out[4].Float != 1.5 {
		t.Errorf("expected float 1.5, got %+v", out[4])
	}
	if out[6].Rune != "\n" {
		t.Errorf("expected newline rune, got %q", out[6].Rune)
	}
	if out[7].Str == nil || *out[7].Str != "s" {
		t.Errorf("expected str s, got %+v", out[7])
	}
	if out[0].Int != nil || out[0].Str != nil {
		t.Errorf("identifier must not carry values")
	}
	if out[1].Line != 1 || out[1].Col != 3 {
		t.Errorf("unexpected position %d:%d", out[1].Line, out[1].Col)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := lexString(t, "var 本 = 7", lexer.Options{KeepTrivia: true})
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: KwVar") || !strings.Contains(lines[0], "1:1-1:4") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[3], "= 7") || !strings.Contains(lines[3], "(leading: Space)") {
		t.Errorf("unexpected literal line %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "  5: EOF") {
		t.Errorf("unexpected last line %q", lines[4])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, _ := lexString(t, "a 1", lexer.Options{})
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, BuildTokenOutputs(tokens)) {
		t.Errorf("json output differs from BuildTokenOutputs")
	}
}

func TestFormatTokensYAML(t *testing.T) {
	tokens, _ := lexString(t, "if x { y }", lexer.Options{})
	var buf bytes.Buffer
	if err := FormatTokensYAML(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 6 || out[0].Kind != "KwIf" || out[2].Kind != "LBrace" {
		t.Errorf("unexpected yaml tokens %+v", out)
	}
}

func TestMsgpackDecode(t *testing.T) {
	tokens, _ := lexString(t, "const π = 3.14 // c\n'x'", lexer.Options{KeepTrivia: true})
	var buf bytes.Buffer
	if err := FormatTokensMsgpack(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeTokensMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, BuildTokenOutputs(tokens)) {
		t.Errorf("decoded tokens differ:\n%+v\n%+v", got, BuildTokenOutputs(tokens))
	}
}

func TestWriteTokens_Dispatch(t *testing.T) {
	tokens, fs := lexString(t, "a", lexer.Options{})
	for _, name := range []string{"pretty", "json", "yaml", "msgpack"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatal(err)
		}
		if f.String() != name {
			t.Errorf("format %q round-trips as %q", name, f.String())
		}
		var buf bytes.Buffer
		if err := WriteTokens(&buf, f, tokens, fs); err != nil || buf.Len() == 0 {
			t.Errorf("%s: empty output or error %v", name, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
