// Package testkit holds checks shared by unit tests and fuzzers.
package testkit

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"mygo/internal/lexer"
	"mygo/internal/source"
	"mygo/internal/token"
)

// CheckTokenInvariants validates the output of lexer.Tokenize for file:
//  1. the stream ends with exactly one EOF token, which is empty and sits at the end
//  2. every other token and every error covers a non-empty span of this file
//  3. tokens and errors do not overlap and appear in source order
//  4. Text is exactly the covered bytes
//  5. Pos agrees with FileSet.Resolve
func CheckTokenInvariants(tokens []token.Token, errs []*lexer.Error, fs *source.FileSet, file *source.File) error {
	if fs == nil || file == nil {
		return fmt.Errorf("nil file set or file")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	// 1) EOF
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	eof := tokens[len(tokens)-1]
	if eof.Kind != token.EOF {
		return fmt.Errorf("last token is %v, want EOF", eof.Kind)
	}
	if !eof.Span.Empty() || eof.Span.Start != lenContent {
		return fmt.Errorf("EOF span %v, want empty at %d", eof.Span, lenContent)
	}

	type piece struct {
		what string
		span source.Span
		pos  source.LineCol
		text string
	}
	pieces := make([]piece, 0, len(tokens)+len(errs))
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("EOF token at index %d before end of stream", i)
		}
		if tok.Kind == token.Invalid {
			return fmt.Errorf("invalid token %q in token stream", tok.Text)
		}
		pieces = append(pieces, piece{what: tok.Kind.String(), span: tok.Span, pos: tok.Pos, text: tok.Text})
	}
	for _, e := range errs {
		pieces = append(pieces, piece{what: "error " + e.Kind.String(), span: e.Span, pos: e.Pos, text: e.Text})
	}
	slices.SortStableFunc(pieces, func(a, b piece) int {
		return int(a.span.Start) - int(b.span.Start)
	})

	var prevEnd uint32
	for _, p := range pieces {
		sp := p.span
		// 2) непустой span внутри файла
		if sp.File != file.ID {
			return fmt.Errorf("%s %q: span file %d, want %d", p.what, p.text, sp.File, file.ID)
		}
		if sp.End <= sp.Start || sp.End > lenContent {
			return fmt.Errorf("%s %q: bad span %v", p.what, p.text, sp)
		}
		// 3) порядок без перекрытий
		if sp.Start < prevEnd {
			return fmt.Errorf("%s %q: span %v overlaps previous end %d", p.what, p.text, sp, prevEnd)
		}
		prevEnd = sp.End
		// 4) текст
		if got := string(file.Content[sp.Start:sp.End]); got != p.text {
			return fmt.Errorf("%s: text %q, content %q", p.what, p.text, got)
		}
		// 5) позиция
		if start, _ := fs.Resolve(sp); start != p.pos {
			return fmt.Errorf("%s %q: pos %v, resolved %v", p.what, p.text, p.pos, start)
		}
	}
	if start, _ := fs.Resolve(eof.Span); start != eof.Pos {
		return fmt.Errorf("EOF pos %v, resolved %v", eof.Pos, start)
	}
	return nil
}
