package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownTarget is returned by LookupTarget for names that do not match
// any resolved target.
var ErrUnknownTarget = errors.New("unknown target")

// Target names, in display order.
const (
	TargetUserTemp    = "User %TEMP%"
	TargetWindowsTemp = "Windows Temp"
	TargetPrefetch    = "Prefetch"
	TargetRecent      = "Recent"
)

// CleanTarget is a named directory whose contents may be deleted.
type CleanTarget struct {
	// Name is the human-readable label shown on buttons and in reports.
	Name string `json:"name" yaml:"name"`

	// Path is the directory to clean. It is not validated here.
	Path string `json:"path" yaml:"path"`

	// Description is a one-line tooltip.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// RequiresAdmin indicates whether elevated privileges are usually needed.
	RequiresAdmin bool `json:"requires_admin" yaml:"requires_admin"`
}

// SystemTemp returns the OS default temp directory.
func SystemTemp() string {
	return os.TempDir()
}

// userTemp returns %TEMP%, then %TMP%, then the OS temp directory.
func userTemp() string {
	for _, name := range []string{"TEMP", "TMP"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return SystemTemp()
}

// systemRoot returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %SystemRoot% is not set.
func systemRoot() string {
	if r := os.Getenv("SystemRoot"); r != "" {
		return r
	}
	return `C:\Windows`
}

// recentFolder returns the user's Recent folder, trying %USERPROFILE% and
// then $HOME. Without either it returns the OS temp directory.
func recentFolder() string {
	if p := os.Getenv("USERPROFILE"); p != "" {
		return filepath.Join(p, "Recent")
	}
	if h := os.Getenv("HOME"); h != "" {
		return filepath.Join(h, "Recent")
	}
	return SystemTemp()
}

// ResolveTargets returns the cleanup targets with paths computed from the
// current environment. Nothing is cached: every call re-reads it.
func ResolveTargets() []CleanTarget {
	root := systemRoot()

	return []CleanTarget{
		{
			Name:        TargetUserTemp,
			Path:        userTemp(),
			Description: "Temporary files of the current user (%TEMP%)",
		},
		{
			Name:          TargetWindowsTemp,
			Path:          filepath.Join(root, "Temp"),
			Description:   "System temporary files under the Windows directory",
			RequiresAdmin: true,
		},
		{
			Name:          TargetPrefetch,
			Path:          filepath.Join(root, "Prefetch"),
			Description:   "Application prefetch traces (rebuilt by Windows on demand)",
			RequiresAdmin: true,
		},
		{
			Name:        TargetRecent,
			Path:        recentFolder(),
			Description: "Shortcuts to recently opened files",
		},
	}
}

// TargetPaths returns the resolved targets as a name → path mapping.
func TargetPaths() map[string]string {
	targets := ResolveTargets()
	out := make(map[string]string, len(targets))
	for _, t := range targets {
		out[t.Name] = t.Path
	}
	return out
}

// LookupTarget finds a resolved target by name, ignoring case. Spaces, dashes
// and the % signs may be omitted, so "windows-temp" and "usertemp" both match.
func LookupTarget(name string) (CleanTarget, error) {
	want := normalizeName(name)
	for _, t := range ResolveTargets() {
		if normalizeName(t.Name) == want {
			return t, nil
		}
	}
	return CleanTarget{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}

func normalizeName(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "", "%", "")
	return strings.ToLower(r.Replace(s))
}
