package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTargets_Order(t *testing.T) {
	got := ResolveTargets()
	want := []string{TargetUserTemp, TargetWindowsTemp, TargetPrefetch, TargetRecent}
	if len(got) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("target %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestUserTemp_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		temp string
		tmp  string
		want string
	}{
		{"TEMP wins", "/x/temp", "/x/tmp", "/x/temp"},
		{"TMP when TEMP empty", "", "/x/tmp", "/x/tmp"},
		{"OS default", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEMP", tt.temp)
			t.Setenv("TMP", tt.tmp)
			// os.TempDir itself reads TMPDIR on Unix and TMP/TEMP on Windows.
			want := tt.want
			if want == "" {
				want = os.TempDir()
			}
			if got := TargetPaths()[TargetUserTemp]; got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestSystemRoot_Fallback(t *testing.T) {
	t.Setenv("SystemRoot", "")
	paths := TargetPaths()
	if got, want := paths[TargetWindowsTemp], filepath.Join(`C:\Windows`, "Temp"); got != want {
		t.Errorf("Windows Temp: expected %q, got %q", want, got)
	}
	if got, want := paths[TargetPrefetch], filepath.Join(`C:\Windows`, "Prefetch"); got != want {
		t.Errorf("Prefetch: expected %q, got %q", want, got)
	}

	t.Setenv("SystemRoot", "/sysroot")
	if got, want := TargetPaths()[TargetPrefetch], filepath.Join("/sysroot", "Prefetch"); got != want {
		t.Errorf("Prefetch with SystemRoot: expected %q, got %q", want, got)
	}
}

func TestRecentFolder_Fallbacks(t *testing.T) {
	t.Setenv("USERPROFILE", "/profile")
	t.Setenv("HOME", "/home/someone")
	if got, want := TargetPaths()[TargetRecent], filepath.Join("/profile", "Recent"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	t.Setenv("USERPROFILE", "")
	if got, want := TargetPaths()[TargetRecent], filepath.Join("/home/someone", "Recent"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	t.Setenv("HOME", "")
	if got, want := TargetPaths()[TargetRecent], os.TempDir(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestResolveTargets_NotCached(t *testing.T) {
	t.Setenv("TEMP", "/first")
	first := TargetPaths()[TargetUserTemp]
	t.Setenv("TEMP", "/second")
	second := TargetPaths()[TargetUserTemp]
	if first == second {
		t.Fatalf("expected paths to follow the environment, both were %q", first)
	}
}

func TestLookupTarget(t *testing.T) {
	for _, name := range []string{"Prefetch", "prefetch", "windows-temp", "usertemp", "User %TEMP%"} {
		if _, err := LookupTarget(name); err != nil {
			t.Errorf("LookupTarget(%q): unexpected error: %v", name, err)
		}
	}

	_, err := LookupTarget("nope")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}
