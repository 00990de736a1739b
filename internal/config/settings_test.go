package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CommandTimeout != 300*time.Second {
		t.Errorf("expected 300s timeout, got %s", s.CommandTimeout)
	}
	if !s.Confirm {
		t.Error("expected confirmation to be on by default")
	}
	if s.Log.Level != "info" {
		t.Errorf("expected info level, got %q", s.Log.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TEMPCLEANER_COMMAND_TIMEOUT", "45s")
	t.Setenv("TEMPCLEANER_LOG_LEVEL", "debug")

	s, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CommandTimeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", s.CommandTimeout)
	}
	if s.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", s.Log.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempcleaner.yaml")
	content := "command_timeout: 10s\nconfirm: false\nlog:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CommandTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", s.CommandTimeout)
	}
	if s.Confirm {
		t.Error("expected confirmation to be disabled by the file")
	}
	if s.Log.Level != "warn" {
		t.Errorf("expected warn level, got %q", s.Log.Level)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("TEMPCLEANER_COMMAND_TIMEOUT", "0s")
	if _, err := Load(viper.New(), ""); err == nil {
		t.Fatal("expected an error for a zero timeout")
	}
}

func TestDefaultLogFile_UsesCacheDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cache directory comes from XDG_CACHE_HOME on Linux only")
	}
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)

	want := filepath.Join(cache, "TempCleaner", "tempcleaner.log")
	if got := DefaultLogFile(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDefaultLogFile_NoCacheDirAvoidsTemp(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cache directory comes from XDG_CACHE_HOME on Linux only")
	}
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")

	exe, err := os.Executable()
	if err != nil {
		t.Skipf("no executable path: %v", err)
	}
	want := filepath.Join(filepath.Dir(exe), "tempcleaner.log")
	if got := DefaultLogFile(); got != want {
		t.Errorf("expected the log next to the executable (%s), got %s", want, got)
	}
}
