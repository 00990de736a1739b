package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/clean"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

var (
	cleanAll    bool
	cleanPaths  []string
	cleanYes    bool
	cleanOutput string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [target...]",
	Short: "Delete the contents of temp folders",
	Long: `Delete everything inside one or more temp folders. The folders themselves
are kept. Targets are matched by name, ignoring case and punctuation
(e.g. "usertemp", "windows-temp", "prefetch", "recent").

Exits with status 2 when any item could not be deleted.`,
	Example: `  tc clean usertemp
  tc clean --all --yes
  tc clean --path D:\scratch --output json`,
	ValidArgsFunction: completeTargets,
	RunE:              runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Clean every known target")
	cleanCmd.Flags().StringArrayVar(&cleanPaths, "path", nil, "Also clean this directory (repeatable)")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Do not ask for confirmation")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", outputText, "Output format: text, json or yaml")
}

// cleanEntry is one row of the clean report.
type cleanEntry struct {
	Name    string   `json:"name" yaml:"name"`
	Path    string   `json:"path" yaml:"path"`
	Deleted int      `json:"deleted" yaml:"deleted"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// folder is a cleaning target as shown to the user.
type folder struct {
	name string
	path string
}

type cleanReport struct {
	Targets []cleanEntry  `json:"targets" yaml:"targets"`
	Summary clean.Summary `json:"summary" yaml:"summary"`
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := checkOutput(cleanOutput); err != nil {
		return err
	}

	targets, paths, err := selectTargets(args, cleanAll, cleanPaths)
	if err != nil {
		return err
	}
	if len(targets)+len(paths) == 0 {
		return fmt.Errorf("nothing to clean: name a target, or use --all or --path")
	}

	folders := make([]folder, 0, len(targets)+len(paths))
	for _, t := range targets {
		folders = append(folders, folder{t.Name, t.Path})
	}
	for _, p := range paths {
		folders = append(folders, folder{p, p})
	}

	for _, f := range missingFolders(folders) {
		ui.PrintWarning("Target not found: %s (%s)", f.name, f.path)
	}

	if settings.Confirm && !cleanYes {
		ok, err := confirmClean(folders)
		if err != nil {
			return err
		}
		if !ok {
			ui.PrintWarning("Cancelled")
			return nil
		}
	}

	zap.L().Debug("cleaning", zap.Int("targets", len(targets)), zap.Int("paths", len(paths)))
	results := clean.CleanMany(targets)
	for p, r := range clean.CleanPaths(paths) {
		results[p] = r
	}

	report := cleanReport{Summary: clean.Summarize(results)}
	seen := make(map[string]bool)
	for _, f := range folders {
		if seen[f.name] {
			continue
		}
		seen[f.name] = true
		r := results[f.name]
		report.Targets = append(report.Targets, cleanEntry{
			Name:    f.name,
			Path:    f.path,
			Deleted: r.Deleted,
			Errors:  r.Errors,
		})
	}

	if cleanOutput != outputText {
		if err := writeReport(cmd.OutOrStdout(), cleanOutput, report); err != nil {
			return err
		}
	} else {
		printCleanReport(report)
	}

	if report.Summary.Errors > 0 {
		return exitCode(2)
	}
	return nil
}

// selectTargets turns names and --all into known targets, and --path values
// into absolute directories.
func selectTargets(names []string, all bool, paths []string) ([]config.CleanTarget, []string, error) {
	var targets []config.CleanTarget
	if all {
		targets = config.ResolveTargets()
	} else {
		for _, n := range names {
			t, err := config.LookupTarget(n)
			if err != nil {
				return nil, nil, err
			}
			targets = append(targets, t)
		}
	}

	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		abs = append(abs, a)
	}
	return targets, abs, nil
}

// missingFolders returns the folders that do not exist, so they can be
// reported before anything is deleted.
func missingFolders(folders []folder) []folder {
	var out []folder
	for _, f := range folders {
		if !dirExists(f.path) {
			out = append(out, f)
		}
	}
	return out
}

func confirmClean(folders []folder) (bool, error) {
	if !interactive() {
		return false, fmt.Errorf("refusing to delete without confirmation; pass --yes")
	}

	var lines []string
	for _, f := range folders {
		lines = append(lines, fmt.Sprintf("%s  %s", f.name, f.path))
	}
	return askYesNo(
		fmt.Sprintf("Delete the contents of %d folder(s)?", len(folders)),
		strings.Join(lines, "\n"),
		"Delete",
	)
}

// askYesNo shows a huh confirm. Aborting with ctrl+c counts as no.
func askYesNo(title, description, affirmative string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative(affirmative).
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func printCleanReport(r cleanReport) {
	for _, e := range r.Targets {
		switch {
		case len(e.Errors) == 0:
			ui.PrintSuccess("%s: deleted %d items", e.Name, e.Deleted)
		case e.Deleted == 0:
			ui.PrintError("%s: %d errors", e.Name, len(e.Errors))
		default:
			ui.PrintWarning("%s: deleted %d items, %d errors", e.Name, e.Deleted, len(e.Errors))
		}
		for _, msg := range e.Errors {
			fmt.Fprintf(os.Stderr, "    %s\n", msg)
		}
	}
	fmt.Println()
	ui.PrintInfo("%s", r.Summary)
}

func completeTargets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, t := range config.ResolveTargets() {
		names = append(names, strings.ToLower(strings.NewReplacer(" ", "", "%", "").Replace(t.Name)))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
