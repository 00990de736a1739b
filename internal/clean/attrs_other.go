//go:build !windows

package clean

import "os"

// clearReadOnly gives the owner write access to path. Directories also get
// search permission so their entries can be unlinked.
func clearReadOnly(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm() | 0o200
	if info.IsDir() {
		mode |= 0o700
	}
	return os.Chmod(path, mode)
}
