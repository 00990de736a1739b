package analyze

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// Usage is the measured footprint of a directory's contents.
type Usage struct {
	Path  string `json:"path" yaml:"path"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
	Files int64  `json:"files" yaml:"files"`
	Dirs  int64  `json:"dirs" yaml:"dirs"`
}

// Items is the number of files and directories below the root.
func (u Usage) Items() int64 {
	return u.Files + u.Dirs
}

// Scanner measures directory trees in parallel with bounded I/O.
type Scanner struct {
	sem      chan struct{}
	mu       sync.Mutex
	warnings []string
}

// NewScanner creates a scanner allowing maxConcurrency simultaneous
// directory reads.
func NewScanner(maxConcurrency int) *Scanner {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	return &Scanner{sem: make(chan struct{}, maxConcurrency)}
}

// Warnings returns any warnings accumulated during scanning.
func (s *Scanner) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}

func (s *Scanner) addWarning(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.warnings) < 500 {
		s.warnings = append(s.warnings, msg)
	}
}

// longPath adds the \\?\ prefix for paths exceeding MAX_PATH on Windows.
func longPath(path string) string {
	if len(path) >= 260 && filepath.Separator == '\\' && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}

// Measure totals the contents of root without following links or
// junctions. Unreadable entries and skipped junctions are left out of the
// totals and listed by Warnings.
func (s *Scanner) Measure(root string) (Usage, error) {
	root = filepath.Clean(root)
	u := Usage{Path: root}

	info, err := os.Stat(longPath(root))
	if err != nil {
		return u, err
	}
	if !info.IsDir() {
		u.Bytes = info.Size()
		u.Files = 1
		return u, nil
	}

	var bytes, files, dirs atomic.Int64
	s.walk(root, &bytes, &files, &dirs)

	u.Bytes = bytes.Load()
	u.Files = files.Load()
	u.Dirs = dirs.Load()
	return u, nil
}

// walk holds the semaphore only during ReadDir so nested goroutines never
// deadlock waiting on their parents.
func (s *Scanner) walk(dir string, bytes, files, dirs *atomic.Int64) {
	s.sem <- struct{}{}
	entries, err := os.ReadDir(longPath(dir))
	<-s.sem

	if err != nil {
		s.addWarning("cannot read " + dir + ": " + err.Error())
		return
	}

	var wg sync.WaitGroup
	for _, e := range entries {
		childPath := filepath.Join(dir, e.Name())

		if e.IsDir() {
			dirs.Add(1)
			if isReparsePoint(childPath) {
				s.addWarning("skipping junction/reparse: " + childPath)
				continue
			}
			wg.Add(1)
			go func(p string) {
				defer wg.Done()
				s.walk(p, bytes, files, dirs)
			}(childPath)
			continue
		}

		files.Add(1)
		info, err := e.Info()
		if err != nil {
			s.addWarning("cannot stat " + childPath + ": " + err.Error())
			continue
		}
		if info.Mode().IsRegular() {
			bytes.Add(info.Size())
		}
	}

	wg.Wait()
}
