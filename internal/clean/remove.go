package clean

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// removeTree deletes path and everything below it. Entries that fail with a
// permission error get one repair attempt; the first unrecoverable failure
// stops the walk and is returned. root is the folder being cleaned and is
// never repaired.
func removeTree(path, root string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Links are removed, never followed.
	if info.IsDir() {
		entries, err := readDirWithRepair(path)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := removeTree(filepath.Join(path, e.Name()), root); err != nil {
				return err
			}
		}
	}

	return removeWithRepair(path, root)
}

func readDirWithRepair(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err == nil || !errors.Is(err, fs.ErrPermission) {
		return entries, err
	}
	repair(dir)
	return os.ReadDir(dir)
}

// removeWithRepair removes a single file or empty directory. On a
// permission error it clears the read-only state of the entry, and of its
// parent unless that parent is root, and retries once.
func removeWithRepair(path, root string) error {
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	if !errors.Is(err, fs.ErrPermission) {
		return err
	}

	repair(path)
	if parent := filepath.Dir(path); parent != root {
		repair(parent)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func repair(path string) {
	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return
	}
	_ = clearReadOnly(path)
}
