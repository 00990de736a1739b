package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
)

// Result summarizes one CleanFolder call.
type Result struct {
	// Deleted counts direct children that were removed.
	Deleted int `json:"deleted" yaml:"deleted"`

	// Errors has one message per child that could not be removed, or a
	// single message when the folder itself could not be processed.
	Errors []string `json:"errors" yaml:"errors"`
}

// Failed reports whether any error was recorded.
func (r Result) Failed() bool {
	return len(r.Errors) > 0
}

// CleanFolder deletes every direct child of folder and reports what
// happened. The folder itself is never removed. Expected failures are
// returned in the Result, never as a panic or error.
func CleanFolder(folder string) Result {
	var res Result

	folder = filepath.Clean(folder)

	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			res.Errors = append(res.Errors, "Not found: "+folder)
		} else {
			res.Errors = append(res.Errors, fmt.Sprintf("Could not access %s: %v", folder, err))
		}
		return res
	}
	if !info.IsDir() {
		res.Errors = append(res.Errors, "Not a directory: "+folder)
		return res
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("Could not access %s: %v", folder, err))
		return res
	}

	for _, e := range entries {
		path := filepath.Join(folder, e.Name())
		if err := removeEntry(path, folder, e); err != nil {
			zap.L().Debug("delete failed", zap.String("path", path), zap.Error(err))
			res.Errors = append(res.Errors, fmt.Sprintf("Failed to delete %s: %v", path, err))
			continue
		}
		res.Deleted++
	}

	zap.L().Info("folder cleaned",
		zap.String("folder", folder),
		zap.Int("deleted", res.Deleted),
		zap.Int("errors", len(res.Errors)))
	return res
}

// removeEntry is swapped in tests to force a per-child failure.
var removeEntry = removeChild

// removeChild removes one direct child of root. Non-directories (files,
// links, anything else) are unlinked; directories go away with their
// subtree. root itself is never modified.
func removeChild(path, root string, e os.DirEntry) error {
	if e.IsDir() {
		return removeTree(path, root)
	}
	if e.Type()&os.ModeSymlink == 0 {
		// Best effort; a failure here shows up in the Remove below.
		_ = clearReadOnly(path)
	}
	return os.Remove(path)
}

// cleanFolder is swapped in tests to exercise the batch recovery path.
var cleanFolder = CleanFolder

// CleanMany cleans each target in order and returns one Result per target
// name; later duplicates overwrite earlier ones. A panic while cleaning one
// target is recorded as that target's only error and the batch continues.
func CleanMany(targets []config.CleanTarget) map[string]Result {
	results := make(map[string]Result, len(targets))
	for _, t := range targets {
		results[t.Name] = cleanOne(t)
	}
	return results
}

// CleanPaths is CleanMany for bare directories; each result is keyed by its
// path.
func CleanPaths(paths []string) map[string]Result {
	targets := make([]config.CleanTarget, 0, len(paths))
	for _, p := range paths {
		targets = append(targets, config.CleanTarget{Name: p, Path: p})
	}
	return CleanMany(targets)
}

func cleanOne(t config.CleanTarget) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("clean panicked",
				zap.String("target", t.Name),
				zap.String("path", t.Path),
				zap.Any("panic", r))
			res = Result{Errors: []string{fmt.Sprint(r)}}
		}
	}()
	return cleanFolder(t.Path)
}

// Summary totals a batch for the status line.
type Summary struct {
	Targets int `json:"targets" yaml:"targets"`
	Deleted int `json:"deleted" yaml:"deleted"`
	Errors  int `json:"errors" yaml:"errors"`
}

// Summarize totals the results of a batch.
func Summarize(results map[string]Result) Summary {
	s := Summary{Targets: len(results)}
	for _, r := range results {
		s.Deleted += r.Deleted
		s.Errors += len(r.Errors)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("Deleted %d items from %d targets (%d errors)", s.Deleted, s.Targets, s.Errors)
}
