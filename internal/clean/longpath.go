package clean

import (
	"path/filepath"
	"runtime"
	"strings"
)

// longPath adds the \\?\ prefix for paths exceeding MAX_PATH on Windows.
func longPath(path string) string {
	if runtime.GOOS != "windows" {
		return path
	}
	if len(path) >= 260 && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}
