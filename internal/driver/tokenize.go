package driver

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"mygo/internal/diag"
	"mygo/internal/lexer"
	"mygo/internal/observ"
	"mygo/internal/source"
	"mygo/internal/token"
	"mygo/internal/trace"
)

// Options configures Tokenize and TokenizeDir.
type Options struct {
	MaxDiagnostics int // <= 0 - без ограничения
	Jobs           int // только TokenizeDir; <= 0 - GOMAXPROCS
	KeepTrivia     bool
	NFC            bool
	Progress       ProgressSink  // может быть nil
	Timer          *observ.Timer // может быть nil
	Cache          *TokenCache   // nil - без кэша
}

// TokenizeResult holds the outcome of lexing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // по порядку, последний - EOF
	Errors  []*lexer.Error
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it completely.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.ParentID(ctx)

	fs := source.NewFileSet()
	loadIdx := opts.Timer.Begin("load")
	fileID, err := fs.LoadWith(path, source.LoadOptions{NFC: opts.NFC})
	opts.Timer.End(loadIdx, path)
	if err != nil {
		trace.Point(tracer, trace.ScopeFile, "load:"+path, parent, err)
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return tokenizeFile(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource lexes an in-memory buffer, e.g. one REPL line.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	if opts.NFC {
		content, _ = source.Normalize(content, source.LoadOptions{NFC: true})
	}
	return tokenizeFile(ctx, fs, fs.Get(fs.AddVirtual(name, content)), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	tracer := trace.FromContext(ctx)
	_, span := trace.Start(ctx, trace.ScopeFile, "file:"+file.Path)

	idx := opts.Timer.Begin("tokenize")
	bag := newBag(opts.MaxDiagnostics)
	tokens, errs, hit := lexCached(tracer, span.ID(), file, opts, bag)
	note := fmt.Sprintf("%d tokens, %d errors", len(tokens), len(errs))
	if hit {
		note += ", cached"
	}
	opts.Timer.End(idx, note)

	if tracer.Level() >= trace.LevelDebug {
		for _, tok := range tokens {
			trace.Point(tracer, trace.ScopeToken, tok.Kind.String()+" "+strconv.Quote(tok.Text), span.ID(), nil)
		}
	}
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).
		WithExtra("errors", strconv.Itoa(len(errs))).
		WithExtra("cached", strconv.FormatBool(hit)).
		End("")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Errors:  errs,
		Bag:     bag,
	}
}

func newBag(maxDiagnostics int) *diag.Bag {
	if maxDiagnostics <= 0 {
		maxDiagnostics = math.MaxUint16
	}
	return diag.NewBag(maxDiagnostics)
}

// lexCached returns the cached result for file when there is one, otherwise
// lexes it and stores the result. Cache failures never fail the run.
func lexCached(tracer trace.Tracer, parent uint64, file *source.File, opts Options, bag *diag.Bag) ([]token.Token, []*lexer.Error, bool) {
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	var key CacheKey
	if opts.Cache != nil {
		key = cacheKey(file, opts.KeepTrivia)
		tokens, errs, ok, err := opts.Cache.get(key, file)
		if err != nil {
			trace.Point(tracer, trace.ScopeFile, "cache-get:"+file.Path, parent, err)
		}
		if ok {
			for _, e := range errs {
				e.Report(reporter)
			}
			return tokens, errs, true
		}
	}

	tokens, errs := lexer.Tokenize(file, lexer.Options{
		Reporter:   reporter,
		KeepTrivia: opts.KeepTrivia,
	})
	if opts.Cache != nil {
		if err := opts.Cache.put(key, tokens, errs); err != nil {
			trace.Point(tracer, trace.ScopeFile, "cache-put:"+file.Path, parent, err)
		}
	}
	return tokens, errs, false
}
