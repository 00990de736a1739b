package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/tasks"
)

func TestSelectTargets(t *testing.T) {
	all := config.ResolveTargets()

	tests := []struct {
		name      string
		names     []string
		all       bool
		paths     []string
		wantNamed int
		wantPaths int
		wantErr   bool
	}{
		{name: "nothing"},
		{name: "by name", names: []string{"usertemp", "Windows-Temp"}, wantNamed: 2},
		{name: "all", all: true, wantNamed: len(all)},
		{name: "all plus path", all: true, paths: []string{"scratch"}, wantNamed: len(all), wantPaths: 1},
		{name: "unknown", names: []string{"downloads"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			named, paths, err := selectTargets(tc.names, tc.all, tc.paths)
			if tc.wantErr {
				if !errors.Is(err, config.ErrUnknownTarget) {
					t.Fatalf("expected ErrUnknownTarget, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(named) != tc.wantNamed || len(paths) != tc.wantPaths {
				t.Fatalf("expected %d targets and %d paths, got %d and %d",
					tc.wantNamed, tc.wantPaths, len(named), len(paths))
			}
		})
	}
}

func TestSelectTargets_PathsAreAbsolute(t *testing.T) {
	_, paths, err := selectTargets(nil, false, []string{"scratch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || !filepath.IsAbs(paths[0]) {
		t.Errorf("expected one absolute path, got %v", paths)
	}
}

func TestMissingFolders(t *testing.T) {
	present := t.TempDir()
	gone := filepath.Join(present, "gone")

	got := missingFolders([]folder{
		{name: "present", path: present},
		{name: "gone", path: gone},
	})
	if len(got) != 1 || got[0].path != gone {
		t.Fatalf("expected only %s to be reported, got %+v", gone, got)
	}
}

func TestConfirmTask_RefusesWithoutTerminal(t *testing.T) {
	if interactive() {
		t.Skip("stdout is a terminal")
	}
	release, err := tasks.Lookup("Release IP")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	ok, err := confirmTask(release)
	if ok || err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected a refusal mentioning --yes, got ok=%v err=%v", ok, err)
	}
}

func TestExecute_Subcommands(t *testing.T) {
	t.Setenv("TEMPCLEANER_LOG_LEVEL", "error")
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"version"}, "tc dev"},
		{[]string{"tasks", "--output", "json"}, `"name": "Flush DNS"`},
		{[]string{"targets", "--output", "yaml"}, "name: Prefetch"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(tc.args)

			if code := Execute(); code != 0 {
				t.Fatalf("expected exit code 0, got %d", code)
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Errorf("output missing %q:\n%s", tc.want, out.String())
			}
		})
	}
}

func TestWriteReport(t *testing.T) {
	task := tasks.List()[1]

	var js bytes.Buffer
	if err := writeReport(&js, outputJSON, task); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(js.String(), `"command": "ipconfig /flushdns"`) {
		t.Errorf("unexpected json:\n%s", js.String())
	}

	var ym bytes.Buffer
	if err := writeReport(&ym, outputYAML, task); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(ym.String(), "command: ipconfig /flushdns") {
		t.Errorf("unexpected yaml:\n%s", ym.String())
	}

	if err := writeReport(&ym, "xml", task); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestExitError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", exitCode(2))
	var ee *exitError
	if !errors.As(err, &ee) || ee.code != 2 {
		t.Fatalf("expected exit code 2, got %v", err)
	}
}
