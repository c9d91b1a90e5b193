package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mygo/internal/diag"
	"mygo/internal/lexer"
	"mygo/internal/source"
	"mygo/internal/token"
	"mygo/internal/trace"
)

// SourceExt is the extension of files picked up by TokenizeDir.
const SourceExt = ".mygo"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path    string         // путь к файлу
	FileID  source.FileID  // ID файла в FileSet (не определён при LoadErr)
	Tokens  []token.Token  // токены файла, последний - EOF
	Errors  []*lexer.Error // лексические ошибки
	Bag     *diag.Bag      // диагностики
	LoadErr error          // файл не удалось прочитать
	Elapsed time.Duration
}

// ListSourceFiles возвращает отсортированный список всех *.mygo файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	// сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.mygo файлы в директории параллельно.
// Результаты упорядочены по пути независимо от порядка завершения воркеров.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	tracer := trace.FromContext(ctx)
	ctx, pass := trace.Start(ctx, trace.ScopePass, "tokenize-dir")

	files, err := ListSourceFiles(dir)
	if err != nil {
		pass.End("walk failed")
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		pass.End("no files")
		return fileSet, nil, nil
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем последовательно, лексим параллельно
	results := make([]TokenizeDirResult, len(files))
	loadIdx := opts.Timer.Begin("load")
	for i, path := range files {
		results[i].Path = path
		fileID, err := fileSet.LoadWith(path, source.LoadOptions{NFC: opts.NFC})
		if err != nil {
			results[i].LoadErr = err
			trace.Point(tracer, trace.ScopeFile, "load:"+path, pass.ID(), err)
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		results[i].FileID = fileID
	}
	opts.Timer.End(loadIdx, strconv.Itoa(len(files))+" files")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	lexIdx := opts.Timer.Begin("tokenize")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	// без мьютекса: каждая горутина пишет только в свой results[i]
	for i := range results {
		if results[i].LoadErr != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := &results[i]
			emit(opts.Progress, Event{File: r.Path, Stage: StageTokenize, Status: StatusWorking})

			start := time.Now()
			res := tokenizeFile(gctx, fileSet, fileSet.Get(r.FileID), opts.forWorker())
			r.Tokens, r.Errors, r.Bag = res.Tokens, res.Errors, res.Bag
			r.Elapsed = time.Since(start)

			status := StatusDone
			if len(r.Errors) > 0 {
				status = StatusError
			}
			emit(opts.Progress, Event{
				File:    r.Path,
				Stage:   StageTokenize,
				Status:  status,
				Elapsed: r.Elapsed,
				Tokens:  len(r.Tokens),
				Errors:  len(r.Errors),
			})
			return nil
		})
	}

	err = g.Wait()
	opts.Timer.End(lexIdx, strconv.Itoa(len(files))+" files")
	pass.WithExtra("files", strconv.Itoa(len(files))).End("")
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// forWorker убирает Timer: он не потокобезопасен и меряет проход целиком.
func (o Options) forWorker() Options {
	o.Timer = nil
	return o
}
