//go:build windows

package clean

import (
	"golang.org/x/sys/windows"
)

// clearReadOnly drops FILE_ATTRIBUTE_READONLY from path, leaving every other
// attribute alone.
func clearReadOnly(path string) error {
	p, err := windows.UTF16PtrFromString(longPath(path))
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY == 0 {
		return nil
	}
	return windows.SetFileAttributes(p, attrs&^windows.FILE_ATTRIBUTE_READONLY)
}
