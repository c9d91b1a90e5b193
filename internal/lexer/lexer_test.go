package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"mygo/internal/diag"
	"mygo/internal/lexer"
	"mygo/internal/source"
	"mygo/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	return makeTestLexerWith(input, lexer.Options{})
}

func makeTestLexerWith(input string, opts lexer.Options) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mygo", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	opts.Reporter = reporter
	return lexer.New(file, opts), reporter
}

// lexed - токен или ошибка в порядке появления
type lexed struct {
	tok token.Token
	err *lexer.Error
}

// collectAll собирает всё до EOF, включая ошибки
func collectAll(t *testing.T, lx *lexer.Lexer) []lexed {
	t.Helper()
	var out []lexed
	for i := 0; ; i++ {
		if i > 10000 {
			t.Fatal("lexer does not make progress")
		}
		tok, err := lx.Next()
		if err != nil {
			var lerr *lexer.Error
			if !errors.As(err, &lerr) {
				t.Fatalf("unexpected error type %T", err)
			}
			out = append(out, lexed{tok: tok, err: lerr})
			continue
		}
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, lexed{tok: tok})
	}
}

// expectTokens проверяет последовательность токенов без ошибок
func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	items := collectAll(t, lx)
	tokens := make([]token.Token, 0, len(items))
	for _, it := range items {
		if it.err != nil {
			t.Fatalf("input %q: unexpected error %v", input, it.err)
		}
		tokens = append(tokens, it.tok)
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("input %q: unexpected diagnostics %v", input, reporter.diagnostics)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %s", input, len(expected), len(tokens), tokensToString(tokens))
	}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Errorf("input %q: token %d: expected %v, got %v (%q)", input, i, k, tokens[i].Kind, tokens[i].Text)
		}
	}
	return tokens
}

// expectSingleToken проверяет, что вход - ровно один токен с данным текстом
func expectSingleToken(t *testing.T, input string, kind token.Kind) token.Token {
	t.Helper()
	toks := expectTokens(t, input, kind)
	if toks[0].Text != input {
		t.Errorf("input %q: expected text %q, got %q", input, input, toks[0].Text)
	}
	return toks[0]
}

// expectSingleError проверяет, что вход целиком - одна ошибка данного вида
func expectSingleError(t *testing.T, input string, kind lexer.ErrorKind) *lexer.Error {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	items := collectAll(t, lx)
	if len(items) != 1 || items[0].err == nil {
		t.Fatalf("input %q: expected single error, got %d items", input, len(items))
	}
	err := items[0].err
	if err.Kind != kind {
		t.Errorf("input %q: expected %v, got %v", input, kind, err.Kind)
	}
	if err.Text != input {
		t.Errorf("input %q: error text %q", input, err.Text)
	}
	if items[0].tok.Kind != token.Invalid {
		t.Errorf("input %q: expected Invalid token, got %v", input, items[0].tok.Kind)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != kind.Code() {
		t.Errorf("input %q: expected one %s diagnostic, got %v", input, kind.Code().ID(), reporter.diagnostics)
	}
	return err
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, fmt.Sprintf("%s(%q)", tok.Kind, tok.Text))
	}
	return strings.Join(parts, " ")
}

func TestIdentifiers_ASCII(t *testing.T) {
	for _, in := range []string{"x", "foo", "foo_bar", "_private", "x1", "CamelCase", "a_1_b"} {
		expectSingleToken(t, in, token.Ident)
	}
}

func TestUnderscore_Single(t *testing.T) {
	expectSingleToken(t, "_", token.Ident)
}

func TestIdentifiers_Unicode(t *testing.T) {
	for _, in := range []string{"переменная", "变量", "café", "αβγ"} {
		expectSingleToken(t, in, token.Ident)
	}
}

func TestKeywords(t *testing.T) {
	cases := map[string]token.Kind{
		"var":   token.KwVar,
		"if":    token.KwIf,
		"else":  token.KwElse,
		"for":   token.KwFor,
		"const": token.KwConst,
		"func":  token.KwFunc,
	}
	for in, kind := range cases {
		expectSingleToken(t, in, kind)
	}
}

func TestKeywords_PrefixIsIdent(t *testing.T) {
	for _, in := range []string{"variable", "iffy", "elsewhere", "format", "constant", "function", "Var", "IF"} {
		expectSingleToken(t, in, token.Ident)
	}
}

func TestNumbers_Integer(t *testing.T) {
	cases := map[string]int64{
		"0":                   0,
		"42":                  42,
		"1_2":                 12,
		"1_000_000":           1000000,
		"9223372036854775807": 9223372036854775807,
	}
	for in, want := range cases {
		tok := expectSingleToken(t, in, token.IntLit)
		if tok.Int != want {
			t.Errorf("%q: expected %d, got %d", in, want, tok.Int)
		}
	}
}

func TestNumbers_Float(t *testing.T) {
	cases := map[string]float64{
		".34":    0.34,
		"1.":     1.0,
		"1.2":    1.2,
		"1_2.34": 12.34,
		"0.5_5":  0.55,
	}
	for in, want := range cases {
		tok := expectSingleToken(t, in, token.FloatLit)
		if tok.Float != want {
			t.Errorf("%q: expected %v, got %v", in, want, tok.Float)
		}
	}
}

func TestNumbers_IntegerOverflow(t *testing.T) {
	expectSingleError(t, "9223372036854775808", lexer.InvalidInteger)
}

func TestNumbers_FloatOverflow(t *testing.T) {
	expectSingleError(t, strings.Repeat("9", 400)+".0", lexer.InvalidFloat)
}

func TestNumbers_InvalidSuffix(t *testing.T) {
	expectSingleError(t, "12abc", lexer.InvalidInteger)
	expectSingleError(t, "1_", lexer.InvalidInteger)
	expectSingleError(t, "1__2", lexer.InvalidInteger)
	expectSingleError(t, "1.5f", lexer.InvalidFloat)
	expectSingleError(t, ".5_", lexer.InvalidFloat)
}

func TestNumbers_DotAfterIdent(t *testing.T) {
	expectTokens(t, "x.y", token.Ident, token.Dot, token.Ident)
	expectTokens(t, "x.5", token.Ident, token.FloatLit)
	expectTokens(t, ". 5", token.Dot, token.IntLit)
}

func TestRune_Valid(t *testing.T) {
	cases := map[string]rune{
		`'a'`:  'a',
		`'本'`:  '本',
		`'_'`:  '_',
		`'7'`:  '7',
		`'.'`:  '.',
		`'\n'`: '\n',
		`'\r'`: '\r',
		`'\t'`: '\t',
		`'\v'`: 0x0B,
		`'\f'`: 0x0C,
		`'\a'`: 0x07,
		`'\b'`: 0x08,
		`'\\'`: '\\',
		`'\''`: '\'',
		`'\"'`: '"',
	}
	for in, want := range cases {
		tok := expectSingleToken(t, in, token.RuneLit)
		if tok.Rune != want {
			t.Errorf("%s: expected %U, got %U", in, want, tok.Rune)
		}
	}
}

func TestRune_Invalid(t *testing.T) {
	for _, in := range []string{`''`, `'ab'`, `'\q'`, `' '`, `'a`, `'\'`, "'e\u0301'"} {
		err := expectSingleError(t, in, lexer.InvalidRune)
		if !errors.Is(err, lexer.ErrInvalidRune) {
			t.Errorf("%q: errors.Is(ErrInvalidRune) = false", in)
		}
	}
}

func TestRune_InvalidStopsAtNewline(t *testing.T) {
	lx, _ := makeTestLexer("'ab\nx")
	items := collectAll(t, lx)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].err == nil || items[0].err.Text != "'ab" {
		t.Fatalf("expected error over 'ab, got %+v", items[0])
	}
	if items[1].tok.Kind != token.Ident || items[1].tok.Pos != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("expected Ident at 2:1, got %v at %v", items[1].tok.Kind, items[1].tok.Pos)
	}
}

func TestString_Interpreted(t *testing.T) {
	cases := map[string]string{
		`"abc"`:          "abc",
		`""`:             "",
		`"hello, world"`: "hello, world",
		`"a\nb"`:         `a\nb`,
		`"a\"b"`:         `a\"b`,
		`"tab\there"`:    `tab\there`,
	}
	for in, want := range cases {
		tok := expectSingleToken(t, in, token.StringLit)
		if tok.Str != want {
			t.Errorf("%s: expected %q, got %q", in, want, tok.Str)
		}
	}
}

func TestString_Raw(t *testing.T) {
	in := "`abc\n    123` x"
	toks := expectTokens(t, in, token.StringLit, token.Ident)
	if toks[0].Str != "abc\n    123" {
		t.Errorf("unexpected raw value %q", toks[0].Str)
	}
	if toks[0].Pos != (source.LineCol{Line: 1, Col: 1}) {
		t.Errorf("raw string at %v", toks[0].Pos)
	}
	if toks[1].Pos != (source.LineCol{Line: 2, Col: 10}) {
		t.Errorf("expected x at 2:10, got %v", toks[1].Pos)
	}
}

func TestString_RawKeepsBackslashes(t *testing.T) {
	tok := expectSingleToken(t, "`a\\nb`", token.StringLit)
	if tok.Str != `a\nb` {
		t.Errorf("unexpected raw value %q", tok.Str)
	}
}

func TestString_Unterminated(t *testing.T) {
	lx, _ := makeTestLexer("\"abc\nx")
	items := collectAll(t, lx)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].err == nil || items[0].err.Kind != lexer.UnknownToken || items[0].err.Text != `"abc` {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[1].tok.Kind != token.Ident || items[1].tok.Pos.Line != 2 {
		t.Errorf("expected Ident on line 2, got %v at %v", items[1].tok.Kind, items[1].tok.Pos)
	}

	expectSingleError(t, "`abc\ndef", lexer.UnknownToken)
	expectSingleError(t, `"abc`, lexer.UnknownToken)
}

func TestString_ContentClass(t *testing.T) {
	valid := map[string]string{
		`"a, b. (c)!?"`:      "a, b. (c)!?",
		"\"tab\tand space\"": "tab\tand space",
		`"\\ \' \" \q"`:      `\\ \' \" \q`,
		`"日本_9'"`:            "日本_9'",
		"`a, b\n\t\"c\"`":    "a, b\n\t\"c\"",
	}
	for in, want := range valid {
		tok := expectSingleToken(t, in, token.StringLit)
		if tok.Str != want {
			t.Errorf("%s: expected %q, got %q", in, want, tok.Str)
		}
	}

	invalid := []string{
		`"a+b"`,
		`"$<>~"`,
		`"x = y | z ^ w"`,
		"\"\x01\"",
		"\"\xff\"",
		`"\+"`,
		"`a+b`",
		"`line\n=`",
		"`\x00`",
	}
	for _, in := range invalid {
		expectSingleError(t, in, lexer.UnknownToken)
	}
}

func TestString_InvalidContentResumes(t *testing.T) {
	lx, _ := makeTestLexer("`a\n+` x \"$\" y")
	items := collectAll(t, lx)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].err == nil || items[0].err.Text != "`a\n+`" {
		t.Fatalf("expected error over raw string, got %+v", items[0])
	}
	if items[1].tok.Kind != token.Ident || items[1].tok.Pos != (source.LineCol{Line: 2, Col: 4}) {
		t.Errorf("expected Ident at 2:4, got %v at %v", items[1].tok.Kind, items[1].tok.Pos)
	}
	if items[2].err == nil || items[2].err.Text != `"$"` {
		t.Fatalf("expected error over \"$\", got %+v", items[2])
	}
	if items[3].tok.Kind != token.Ident || items[3].tok.Text != "y" {
		t.Errorf("expected Ident y, got %+v", items[3].tok)
	}
}

func TestOperators_Single(t *testing.T) {
	cases := map[string]token.Kind{
		"+": token.Plus, "-": token.Minus, "*": token.Star, "/": token.Slash,
		"%": token.Percent, "&": token.Amp, "|": token.Pipe, "^": token.Caret,
		"=": token.Assign, "!": token.Bang, "<": token.Lt, ">": token.Gt,
	}
	for in, kind := range cases {
		expectSingleToken(t, in, kind)
	}
}

func TestOperators_Double(t *testing.T) {
	cases := map[string]token.Kind{
		"&&": token.AndAnd, "||": token.OrOr, "==": token.EqEq, "!=": token.BangEq,
		"<=": token.LtEq, ">=": token.GtEq, "<<": token.Shl, ">>": token.Shr,
		"&^": token.AmpCaret, "++": token.Inc, "--": token.Dec, ":=": token.ShortDecl,
		"+=": token.PlusAssign, "-=": token.MinusAssign, "*=": token.StarAssign,
		"/=": token.SlashAssign, "%=": token.PercentAssign, "&=": token.AmpAssign,
		"|=": token.PipeAssign, "^=": token.CaretAssign,
	}
	for in, kind := range cases {
		expectSingleToken(t, in, kind)
	}
}

func TestOperators_Triple(t *testing.T) {
	expectSingleToken(t, "<<=", token.ShlAssign)
	expectSingleToken(t, ">>=", token.ShrAssign)
	expectSingleToken(t, "&^=", token.AmpCaretAssign)
}

func TestOperators_Greedy(t *testing.T) {
	expectTokens(t, "a<<=b", token.Ident, token.ShlAssign, token.Ident)
	expectTokens(t, "a<<b", token.Ident, token.Shl, token.Ident)
	expectTokens(t, "a<b", token.Ident, token.Lt, token.Ident)
	expectTokens(t, "a+++b", token.Ident, token.Inc, token.Plus, token.Ident)
	expectTokens(t, "x:=1", token.Ident, token.ShortDecl, token.IntLit)
	expectTokens(t, "&&&", token.AndAnd, token.Amp)
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) [ ] { } ; : , .",
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.LBrace, token.RBrace, token.Semicolon, token.Colon, token.Comma, token.Dot)
}

func TestUnknownCharacters(t *testing.T) {
	expectSingleError(t, "#", lexer.UnknownToken)
	expectSingleError(t, "€", lexer.UnknownToken)
	expectSingleError(t, "\r", lexer.UnknownToken)
	expectSingleError(t, "\x00", lexer.UnknownToken)
}

func TestErrors_Resume(t *testing.T) {
	lx, reporter := makeTestLexer("a # b 12abc + 1")
	items := collectAll(t, lx)
	wantKinds := []token.Kind{token.Ident, token.Invalid, token.Ident, token.Invalid, token.Plus, token.IntLit}
	if len(items) != len(wantKinds) {
		t.Fatalf("expected %d items, got %d", len(wantKinds), len(items))
	}
	for i, k := range wantKinds {
		if items[i].tok.Kind != k {
			t.Errorf("item %d: expected %v, got %v", i, k, items[i].tok.Kind)
		}
	}
	if items[1].err.Kind != lexer.UnknownToken || items[3].err.Kind != lexer.InvalidInteger {
		t.Errorf("unexpected error kinds %v %v", items[1].err.Kind, items[3].err.Kind)
	}
	if items[3].err.Pos != (source.LineCol{Line: 1, Col: 7}) {
		t.Errorf("expected 12abc at 1:7, got %v", items[3].err.Pos)
	}
	if len(reporter.diagnostics) != 2 {
		t.Errorf("expected 2 diagnostics, got %d", len(reporter.diagnostics))
	}
}

func TestErrorString(t *testing.T) {
	lx, _ := makeTestLexer("  ''")
	_, err := lx.Next()
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), `1:3: invalid rune literal "''"`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPositions(t *testing.T) {
	toks := expectTokens(t, "var x = 1\n  y\n\n\tz",
		token.KwVar, token.Ident, token.Assign, token.IntLit, token.Ident, token.Ident)
	want := []source.LineCol{{Line: 1, Col: 1}, {Line: 1, Col: 5}, {Line: 1, Col: 7}, {Line: 1, Col: 9}, {Line: 2, Col: 3}, {Line: 4, Col: 2}}
	for i, w := range want {
		if toks[i].Pos != w {
			t.Errorf("token %d (%q): expected %v, got %v", i, toks[i].Text, w, toks[i].Pos)
		}
	}
}

func TestPositions_MatchFileSet(t *testing.T) {
	input := "func f() {\n\tx := '本' // c\n\t/* a\nb */ y += \"s\"\n}\n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("pos.mygo", []byte(input)))
	tokens, errs := lexer.Tokenize(file, lexer.Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		if tok.Pos != start {
			t.Errorf("%s(%q): Pos %v, FileSet %v", tok.Kind, tok.Text, tok.Pos, start)
		}
	}
}

func TestTrivia_Skipped(t *testing.T) {
	expectTokens(t, "  a\t\f b  ", token.Ident, token.Ident)
	expectTokens(t, "a // comment\nb", token.Ident, token.Ident)
	expectTokens(t, "a /* x */ b", token.Ident, token.Ident)
	expectTokens(t, "// only comment", []token.Kind{}...)
	expectTokens(t, "a / b", token.Ident, token.Slash, token.Ident)
}

func TestTrivia_BlockCommentCountsLines(t *testing.T) {
	toks := expectTokens(t, "/* a\nb\n*/ x", token.Ident)
	if toks[0].Pos != (source.LineCol{Line: 3, Col: 4}) {
		t.Errorf("expected x at 3:4, got %v", toks[0].Pos)
	}
}

func TestTrivia_BlockCommentUnterminated(t *testing.T) {
	lx, _ := makeTestLexer("x /* abc\ndef")
	items := collectAll(t, lx)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].err == nil || items[1].err.Kind != lexer.UnknownToken || items[1].err.Text != "/* abc\ndef" {
		t.Errorf("unexpected item %+v", items[1])
	}
}

func TestTrivia_Keep(t *testing.T) {
	lx, _ := makeTestLexerWith("// c\n  x", lexer.Options{KeepTrivia: true})
	tok, err := lx.Next()
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		kind token.TriviaKind
		text string
	}{
		{token.TriviaLineComment, "// c"},
		{token.TriviaNewline, "\n"},
		{token.TriviaSpace, "  "},
	}
	if len(tok.Leading) != len(want) {
		t.Fatalf("expected %d trivia, got %d", len(want), len(tok.Leading))
	}
	for i, w := range want {
		if tok.Leading[i].Kind != w.kind || tok.Leading[i].Text != w.text {
			t.Errorf("trivia %d: expected %v %q, got %v %q", i, w.kind, w.text, tok.Leading[i].Kind, tok.Leading[i].Text)
		}
	}
}

func TestTrivia_DroppedByDefault(t *testing.T) {
	lx, _ := makeTestLexer("// c\n  x")
	tok, _ := lx.Next()
	if tok.Leading != nil {
		t.Errorf("expected no trivia, got %v", tok.Leading)
	}
}

func TestEOF_Repeats(t *testing.T) {
	lx, _ := makeTestLexer("x")
	if tok, _ := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	for range 3 {
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v %v", tok.Kind, err)
		}
	}
}

func TestPeek(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p1, _ := lx.Peek()
	p2, _ := lx.Peek()
	if p1.Text != "a" || p2.Text != "a" {
		t.Fatalf("peek should not consume: %q %q", p1.Text, p2.Text)
	}
	n, _ := lx.Next()
	if n.Text != "a" {
		t.Fatalf("expected a, got %q", n.Text)
	}
	n, _ = lx.Next()
	if n.Text != "b" {
		t.Fatalf("expected b, got %q", n.Text)
	}
}

func TestPeek_KeepsPos(t *testing.T) {
	lx, _ := makeTestLexer("a\n  bc d")
	if _, err := lx.Next(); err != nil {
		t.Fatal(err)
	}
	before := lx.Pos()
	if before != (source.LineCol{Line: 1, Col: 2}) {
		t.Fatalf("expected 1:2 after a, got %v", before)
	}
	p, _ := lx.Peek()
	if p.Pos != (source.LineCol{Line: 2, Col: 3}) {
		t.Fatalf("expected peeked bc at 2:3, got %v", p.Pos)
	}
	if got := lx.Pos(); got != before {
		t.Fatalf("Peek moved Pos: %v -> %v", before, got)
	}
	if n, _ := lx.Next(); n.Text != "bc" {
		t.Fatalf("expected bc, got %q", n.Text)
	}
	if got := lx.Pos(); got != (source.LineCol{Line: 2, Col: 5}) {
		t.Fatalf("expected 2:5 after bc, got %v", got)
	}
}

func TestPeek_Error(t *testing.T) {
	lx, _ := makeTestLexer("# a")
	if _, err := lx.Peek(); !errors.Is(err, lexer.ErrUnknownToken) {
		t.Fatalf("expected unknown token from Peek, got %v", err)
	}
	if _, err := lx.Next(); !errors.Is(err, lexer.ErrUnknownToken) {
		t.Fatalf("expected unknown token from Next, got %v", err)
	}
	if tok, err := lx.Next(); err != nil || tok.Text != "a" {
		t.Fatalf("expected a, got %q %v", tok.Text, err)
	}
}

func TestAll(t *testing.T) {
	lx, _ := makeTestLexer("a # b")
	var texts []string
	errCount := 0
	for tok, err := range lx.All() {
		if err != nil {
			errCount++
			continue
		}
		texts = append(texts, tok.Text)
	}
	if strings.Join(texts, ",") != "a,b" || errCount != 1 {
		t.Errorf("unexpected result %v, %d errors", texts, errCount)
	}
}

func TestTokenize(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.mygo", []byte("a # b")))
	tokens, errs := lexer.Tokenize(file, lexer.Options{})
	if len(tokens) != 3 || tokens[2].Kind != token.EOF {
		t.Fatalf("unexpected tokens %s", tokensToString(tokens))
	}
	if len(errs) != 1 || errs[0].Kind != lexer.UnknownToken {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func TestReporter_Bag(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.mygo", []byte("'' 1_")))
	bag := diag.NewBag(10)
	lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(items))
	}
	if items[0].Code != diag.LexInvalidRune || items[1].Code != diag.LexInvalidInteger {
		t.Errorf("unexpected codes %v %v", items[0].Code, items[1].Code)
	}
}

// Токен, пересканированный отдельно, классифицируется так же.
func TestRelexIsolated(t *testing.T) {
	input := "var x := 1_0 + .5 * 'a' - \"s\\n\" << y; if a <= b { c &^= d } `r\naw`"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("relex.mygo", []byte(input)))
	tokens, errs := lexer.Tokenize(file, lexer.Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		lx, _ := makeTestLexer(tok.Text)
		got, err := lx.Next()
		if err != nil || got.Kind != tok.Kind || got.Text != tok.Text {
			t.Errorf("%q: relexed as %v %q (%v)", tok.Text, got.Kind, got.Text, err)
		}
	}
}

func TestReporter_MissingCloserNote(t *testing.T) {
	cases := []struct {
		in     string
		closer string // "" - без заметки
	}{
		{`"abc`, `"`},
		{`"abc\"`, `"`},
		{"`abc", "`"},
		{"/* abc", "*/"},
		{"/*/", "*/"},
		{"'a", "'"},
		{`'\'`, "'"},
		{"'ab'", ""},
		{`"a+b"`, ""},
		{"#", ""},
	}
	for _, tc := range cases {
		lx, reporter := makeTestLexer(tc.in)
		collectAll(t, lx)
		if len(reporter.diagnostics) != 1 {
			t.Fatalf("%q: expected 1 diagnostic, got %d", tc.in, len(reporter.diagnostics))
		}
		notes := reporter.diagnostics[0].Notes
		if tc.closer == "" {
			if len(notes) != 0 {
				t.Errorf("%q: unexpected notes %v", tc.in, notes)
			}
			continue
		}
		if len(notes) != 1 || notes[0].Msg != "missing closing "+tc.closer {
			t.Errorf("%q: expected note for %s, got %v", tc.in, tc.closer, notes)
			continue
		}
		if end := uint32(len(tc.in)); notes[0].Span.Start != end || notes[0].Span.End != end {
			t.Errorf("%q: note span %v, want empty span at %d", tc.in, notes[0].Span, end)
		}
	}
}
