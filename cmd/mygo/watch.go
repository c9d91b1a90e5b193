package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"mygo/internal/driver"
)

const watchDebounce = 100 * time.Millisecond

// watchAndTokenize tokenizes the target, then again after every change
// until ctx is cancelled.
func watchAndTokenize(ctx context.Context, run tokenizeRun) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(run.target)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", run.target, err)
	}
	if run.isDir {
		err = watchDirRecursive(w, target)
	} else {
		// редакторы часто заменяют файл целиком, поэтому следим за директорией
		err = w.Add(filepath.Dir(target))
	}
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", run.target, err)
	}

	rerun := func(reason string) {
		if reason != "" {
			fmt.Fprintf(os.Stderr, "\n--- %s changed, re-tokenizing\n", reason)
		}
		if err := run.once(ctx); err != nil && !errors.Is(err, errLexical) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	rerun("")
	fmt.Fprintf(os.Stderr, "watching %s (Ctrl+C to stop)\n", run.target)

	pending := time.NewTimer(watchDebounce)
	pending.Stop()
	var changed string

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if run.isDir && ev.Has(fsnotify.Create) {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err := watchDirRecursive(w, ev.Name); err != nil {
						fmt.Fprintf(os.Stderr, "watch: %v\n", err)
					}
					continue
				}
			}
			if !relevantChange(run.isDir, target, ev.Name) {
				continue
			}
			changed = ev.Name
			pending.Reset(watchDebounce)

		case <-pending.C:
			rerun(changed)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

func relevantChange(isDir bool, target, name string) bool {
	if isDir {
		return filepath.Ext(name) == driver.SourceExt
	}
	return filepath.Clean(name) == target
}

// watchDirRecursive adds root and its subdirectories, skipping hidden ones.
func watchDirRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
