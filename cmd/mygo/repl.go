package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"mygo/internal/diagfmt"
	"mygo/internal/driver"
	"mygo/internal/token"
	"mygo/internal/version"
)

const (
	replPrompt  = "mygo> "
	historyFile = ".mygo_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines interactively",
	Long:  `Each entered line is tokenized and its tokens and diagnostics are printed`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().Bool("keep-trivia", false, "attach whitespace and comments to tokens")
	replCmd.Flags().Bool("nfc", false, "normalize input to Unicode NFC before lexing")
}

// replCompletions - ключевые слова для Tab.
func replCompletions(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasSuffix(line, " ") {
		return nil
	}
	last := fields[len(fields)-1]
	prefix := line[:len(line)-len(last)]
	var out []string
	for _, kw := range token.Keywords() {
		if strings.HasPrefix(kw, last) {
			out = append(out, prefix+kw)
		}
	}
	return out
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, ".")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := colorEnabled(colorFlag, os.Stderr)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	defer cleanup()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(replCompletions)

	historyPath := filepath.Join(os.TempDir(), historyFile)
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, version.String())
	fmt.Fprintln(out, "Type a line to tokenize it; Ctrl+D or 'exit' to quit")

	opts := driver.Options{
		MaxDiagnostics: cfg.Tokenize.MaxDiagnostics,
		KeepTrivia:     cfg.Tokenize.KeepTrivia,
		NFC:            cfg.Tokenize.NFC,
	}
	for n := 1; ; n++ {
		input, err := line.Prompt(replPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		res := driver.TokenizeSource(cmd.Context(), fmt.Sprintf("<repl:%d>", n), []byte(input), opts)
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: useColor})
		}
		if err := diagfmt.FormatTokensPretty(out, res.Tokens, res.FileSet); err != nil {
			return fmt.Errorf("failed to write tokens: %w", err)
		}
	}
}
