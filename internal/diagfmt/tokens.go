package diagfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"mygo/internal/source"
	"mygo/internal/token"
)

// TriviaOutput - одна leading trivia в сериализуемом виде.
type TriviaOutput struct {
	Kind string `json:"kind" yaml:"kind" msgpack:"kind"`
	Text string `json:"text" yaml:"text" msgpack:"text"`
}

// TokenOutput is the serialised form of a token. Exactly one of the value
// fields is set, and only for literals.
type TokenOutput struct {
	Kind    string         `json:"kind" yaml:"kind" msgpack:"kind"`
	Text    string         `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty"`
	Line    uint32         `json:"line" yaml:"line" msgpack:"line"`
	Col     uint32         `json:"col" yaml:"col" msgpack:"col"`
	Start   uint32         `json:"start" yaml:"start" msgpack:"start"`
	End     uint32         `json:"end" yaml:"end" msgpack:"end"`
	Int     *int64         `json:"int,omitempty" yaml:"int,omitempty" msgpack:"int,omitempty"`
	Float   *float64       `json:"float,omitempty" yaml:"float,omitempty" msgpack:"float,omitempty"`
	Rune    string         `json:"rune,omitempty" yaml:"rune,omitempty" msgpack:"rune,omitempty"`
	Str     *string        `json:"str,omitempty" yaml:"str,omitempty" msgpack:"str,omitempty"`
	Leading []TriviaOutput `json:"leading,omitempty" yaml:"leading,omitempty" msgpack:"leading,omitempty"`
}

// BuildTokenOutputs converts tokens up to and including EOF.
func BuildTokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Line:  tok.Pos.Line,
			Col:   tok.Pos.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		switch tok.Kind {
		case token.IntLit:
			v := tok.Int
			to.Int = &v
		case token.FloatLit:
			v := tok.Float
			to.Float = &v
		case token.RuneLit:
			to.Rune = string(tok.Rune)
		case token.StringLit:
			v := tok.Str
			to.Str = &v
		}
		for _, tr := range tok.Leading {
			to.Leading = append(to.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
		}
		out = append(out, to)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// WriteTokens writes tokens in the requested format.
func WriteTokens(w io.Writer, format Format, tokens []token.Token, fs *source.FileSet) error {
	switch format {
	case FormatJSON:
		return FormatTokensJSON(w, tokens)
	case FormatYAML:
		return FormatTokensYAML(w, tokens)
	case FormatMsgpack:
		return FormatTokensMsgpack(w, tokens)
	default:
		return FormatTokensPretty(w, tokens, fs)
	}
}

const prettyTextWidth = 24

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: KwVar        "var"                    1:1-1:4
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	var buf bytes.Buffer
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		// ширина считается в колонках терминала, а не в байтах
		text := runewidth.Truncate(strconv.Quote(tok.Text), prettyTextWidth, "…\"")
		text = runewidth.FillRight(text, prettyTextWidth)

		fmt.Fprintf(&buf, "%3d: %-14s %s %d:%d-%d:%d",
			i+1, tok.Kind.String(), text,
			startPos.Line, startPos.Col, endPos.Line, endPos.Col)

		if v := literalValue(tok); v != "" {
			fmt.Fprintf(&buf, "  = %s", v)
		}
		if len(tok.Leading) > 0 {
			kinds := make([]string, 0, len(tok.Leading))
			for _, tr := range tok.Leading {
				kinds = append(kinds, tr.Kind.String())
			}
			fmt.Fprintf(&buf, "  (leading: %s)", strings.Join(kinds, ", "))
		}
		buf.WriteByte('\n')

		if tok.Kind == token.EOF {
			break
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func literalValue(tok token.Token) string {
	switch tok.Kind {
	case token.IntLit:
		return strconv.FormatInt(tok.Int, 10)
	case token.FloatLit:
		return strconv.FormatFloat(tok.Float, 'g', -1, 64)
	case token.RuneLit:
		return fmt.Sprintf("%U", tok.Rune)
	case token.StringLit:
		return strconv.Quote(tok.Str)
	default:
		return ""
	}
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokenOutputs(tokens))
}

// FormatTokensYAML выводит токены в YAML.
func FormatTokensYAML(w io.Writer, tokens []token.Token) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildTokenOutputs(tokens)); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	if err := enc.Encode(BuildTokenOutputs(tokens)); err != nil {
		return fmt.Errorf("msgpack encode: %w", err)
	}
	return nil
}

// DecodeTokensMsgpack reads back what FormatTokensMsgpack wrote.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("msgpack decode: %w", err)
	}
	return out, nil
}
