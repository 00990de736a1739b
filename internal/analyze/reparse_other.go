//go:build !windows

package analyze

// isReparsePoint is always false: os.ReadDir reports symlinks as
// non-directories, so they are never descended into.
func isReparsePoint(string) bool { return false }
