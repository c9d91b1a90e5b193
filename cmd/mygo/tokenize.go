package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mygo/internal/diag"
	"mygo/internal/diagfmt"
	"mygo/internal/driver"
	"mygo/internal/observ"
	"mygo/internal/project"
	"mygo/internal/source"
	"mygo/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.mygo|dir>",
	Short: "Tokenize a mygo source file or directory",
	Long: `Tokenize breaks a mygo source file into its tokens.
Given a directory, every *.mygo file below it is tokenized in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|msgpack)")
	tokenizeCmd.Flags().Bool("watch", false, "re-tokenize when files change")
	tokenizeCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers (0=GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("keep-trivia", false, "attach whitespace and comments to tokens")
	tokenizeCmd.Flags().Bool("nfc", false, "normalize sources to Unicode NFC before lexing")
	tokenizeCmd.Flags().String("diag-format", "pretty", "diagnostics format on stderr (pretty|json|short)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached tokens for unchanged files")
}

// tokenizeRun - всё, что нужно одному прогону tokenize (и каждому
// повтору в --watch).
type tokenizeRun struct {
	target   string
	isDir    bool
	format   diagfmt.Format
	cfg      project.Config
	ui       uiMode
	timings  bool
	useColor bool
	diagFmt  string
	cache    *driver.TokenCache
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	startDir := target
	if !st.IsDir() {
		startDir = "."
	}
	cfg, err := loadConfig(cmd, startDir)
	if err != nil {
		return err
	}
	format, err := diagfmt.ParseFormat(cfg.Tokenize.Format)
	if err != nil {
		return err
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := colorEnabled(colorFlag, os.Stderr)
	if err != nil {
		return err
	}

	diagFmt, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch diagFmt {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown diag-format %q (expected pretty|json|short)", diagFmt)
	}

	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	defer cleanup()

	var cache *driver.TokenCache
	if cfg.Tokenize.Cache {
		if cache, err = driver.OpenTokenCache(cacheApp); err != nil {
			return err
		}
	}

	run := tokenizeRun{
		target:   target,
		isDir:    st.IsDir(),
		format:   format,
		cfg:      cfg,
		ui:       mode,
		timings:  timings,
		useColor: useColor,
		diagFmt:  diagFmt,
		cache:    cache,
	}
	ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, "tokenize "+target)
	defer span.End("")
	if watch {
		// в режиме наблюдения TUI мешает повторным прогонам
		run.ui = uiModeOff
		return watchAndTokenize(ctx, run)
	}
	return run.once(ctx)
}

func (r tokenizeRun) driverOptions(timer *observ.Timer) driver.Options {
	return driver.Options{
		MaxDiagnostics: r.cfg.Tokenize.MaxDiagnostics,
		Jobs:           r.cfg.Tokenize.Jobs,
		KeepTrivia:     r.cfg.Tokenize.KeepTrivia,
		NFC:            r.cfg.Tokenize.NFC,
		Timer:          timer,
		Cache:          r.cache,
	}
}

// once tokenizes the target a single time. It returns errLexical when any
// file had lexical errors.
func (r tokenizeRun) once(ctx context.Context) error {
	var timer *observ.Timer
	if r.timings {
		timer = observ.NewTimer()
	}
	var err error
	if r.isDir {
		err = r.tokenizeDir(ctx, timer)
	} else {
		err = r.tokenizeFile(ctx, timer)
	}
	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return err
}

func (r tokenizeRun) tokenizeFile(ctx context.Context, timer *observ.Timer) error {
	result, err := driver.Tokenize(ctx, r.target, r.driverOptions(timer))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	r.printDiagnostics(result.Bag, result.FileSet)

	// Выводим токены в выбранном формате
	if err := diagfmt.WriteTokens(os.Stdout, r.format, result.Tokens, result.FileSet); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}
	if len(result.Errors) > 0 {
		return errLexical
	}
	return nil
}

func (r tokenizeRun) tokenizeDir(ctx context.Context, timer *observ.Timer) error {
	files, err := driver.ListSourceFiles(r.target)
	if err != nil {
		return err
	}
	opts := r.driverOptions(timer)

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if r.format == diagfmt.FormatPretty && len(files) > 0 && shouldUseTUI(r.ui) {
		fileSet, results, err = runTokenizeDirWithUI(ctx, "tokenize "+r.target, r.target, files, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(ctx, r.target, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	bag := diag.NewBag(r.cfg.Tokenize.MaxDiagnostics)
	outputs := make([]diagfmt.FileTokensOutput, 0, len(results))
	failed := false
	for i := range results {
		res := &results[i]
		out := diagfmt.FileTokensOutput{
			Path:      res.Path,
			Errors:    len(res.Errors),
			ElapsedMS: diagfmt.Millis(res.Elapsed),
		}
		if res.LoadErr != nil {
			out.LoadError = res.LoadErr.Error()
			failed = true
		} else {
			out.Tokens = diagfmt.BuildTokenOutputs(res.Tokens)
			bag.Merge(res.Bag)
			if len(res.Errors) > 0 {
				failed = true
			}
		}
		outputs = append(outputs, out)
	}

	r.printDiagnostics(bag, fileSet)
	if err := diagfmt.WriteFileTokens(os.Stdout, r.format, outputs); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}
	if failed {
		return errLexical
	}
	return nil
}

func (r tokenizeRun) printDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	switch r.diagFmt {
	case "json":
		err := diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to write diagnostics: %v\n", err)
		}
	case "short":
		fmt.Fprintln(os.Stderr, diag.FormatShortDiagnostics(bag.Items(), fs, false))
	default:
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     r.useColor,
			Context:   1,
			ShowNotes: true,
		})
	}
}
