package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// FileTokensOutput - результат одного файла при токенизации директории.
type FileTokensOutput struct {
	Path      string        `json:"path" yaml:"path" msgpack:"path"`
	Tokens    []TokenOutput `json:"tokens,omitempty" yaml:"tokens,omitempty" msgpack:"tokens,omitempty"`
	Errors    int           `json:"errors" yaml:"errors" msgpack:"errors"`
	LoadError string        `json:"load_error,omitempty" yaml:"load_error,omitempty" msgpack:"load_error,omitempty"`
	ElapsedMS float64       `json:"elapsed_ms" yaml:"elapsed_ms" msgpack:"elapsed_ms"`
}

// WriteFileTokens writes per-file results. FormatPretty prints one summary
// line per file instead of the tokens.
func WriteFileTokens(w io.Writer, format Format, files []FileTokensOutput) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.UseCompactInts(true)
		if err := enc.Encode(files); err != nil {
			return fmt.Errorf("msgpack encode: %w", err)
		}
		return nil
	default:
		return writeFileSummary(w, files)
	}
}

func writeFileSummary(w io.Writer, files []FileTokensOutput) error {
	var tokens, errs, failed int
	for _, f := range files {
		var err error
		if f.LoadError != "" {
			failed++
			_, err = fmt.Fprintf(w, "%s: %s\n", f.Path, f.LoadError)
		} else {
			tokens += len(f.Tokens)
			errs += f.Errors
			_, err = fmt.Fprintf(w, "%s: %d tokens, %d errors (%.1f ms)\n", f.Path, len(f.Tokens), f.Errors, f.ElapsedMS)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d files, %d tokens, %d errors, %d unreadable\n", len(files), tokens, errs, failed)
	return err
}

// Millis converts a duration for ElapsedMS.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
