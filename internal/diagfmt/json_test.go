package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"mygo/internal/diag"
	"mygo/internal/source"
)

func TestJSON_Diagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("j.mygo", []byte("a\n# 'x\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownToken, source.Span{File: fileID, Start: 2, End: 3}, "unknown token"))
	bag.Add(diag.NewError(diag.LexInvalidRune, source.Span{File: fileID, Start: 4, End: 6}, "invalid rune literal").
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "opened here"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", out.Count)
	}
	first := out.Diagnostics[0]
	if first.Code != "LEX1001" || first.Severity != diag.SevError {
		t.Errorf("unexpected first diagnostic %+v", first)
	}
	if first.Location.StartLine != 2 || first.Location.StartCol != 1 || first.Location.File != "j.mygo" {
		t.Errorf("unexpected location %+v", first.Location)
	}
	if len(out.Diagnostics[1].Notes) != 1 {
		t.Errorf("expected a note on second diagnostic")
	}
}

func TestJSON_MaxAndNoPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.mygo", []byte("###"))
	bag := diag.NewBag(10)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.LexUnknownToken, source.Span{File: fileID, Start: i, End: i + 1}, "unknown token"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", out.Count)
	}
	if out.Diagnostics[1].Location.StartLine != 0 {
		t.Errorf("positions must be omitted")
	}
	if out.Diagnostics[1].Location.StartByte != 1 {
		t.Errorf("unexpected start byte %d", out.Diagnostics[1].Location.StartByte)
	}
}
