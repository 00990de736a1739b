package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/analyze"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/core"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

var (
	targetsSize   bool
	targetsOutput string
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the folders tc knows how to clean",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(targetsOutput); err != nil {
			return err
		}
		targets := config.ResolveTargets()

		var sizes map[string]analyze.Usage
		if targetsSize {
			sizes = measureTargets(targets)
		}

		if targetsOutput != outputText {
			return writeReport(cmd.OutOrStdout(), targetsOutput, targetRows(targets, sizes))
		}
		printTargets(targets, sizes)
		return nil
	},
}

func init() {
	targetsCmd.Flags().BoolVar(&targetsSize, "size", false, "Measure how much each target holds")
	targetsCmd.Flags().StringVarP(&targetsOutput, "output", "o", outputText, "Output format: text, json or yaml")
}

type targetRow struct {
	config.CleanTarget `yaml:",inline"`
	Exists             bool           `json:"exists" yaml:"exists"`
	Usage              *analyze.Usage `json:"usage,omitempty" yaml:"usage,omitempty"`
}

func targetRows(targets []config.CleanTarget, sizes map[string]analyze.Usage) []targetRow {
	rows := make([]targetRow, 0, len(targets))
	for _, t := range targets {
		row := targetRow{CleanTarget: t, Exists: dirExists(t.Path)}
		if u, ok := sizes[t.Name]; ok {
			row.Usage = &u
		}
		rows = append(rows, row)
	}
	return rows
}

func measureTargets(targets []config.CleanTarget) map[string]analyze.Usage {
	sizes := make(map[string]analyze.Usage)
	for _, t := range targets {
		if !dirExists(t.Path) {
			continue
		}
		sc := analyze.NewScanner(8)
		u, err := sc.Measure(t.Path)
		for _, w := range sc.Warnings() {
			zap.L().Debug("measure", zap.String("target", t.Name), zap.String("warning", w))
		}
		if err != nil {
			ui.PrintWarning("%s: %v", t.Name, err)
			continue
		}
		sizes[t.Name] = u
	}
	return sizes
}

func printTargets(targets []config.CleanTarget, sizes map[string]analyze.Usage) {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorText)
	pathStyle := lipgloss.NewStyle().Foreground(ui.ColorTextDim)
	missing := lipgloss.NewStyle().Foreground(ui.ColorWarning)

	for _, t := range targets {
		line := fmt.Sprintf("  %s %s  %s", ui.IconFolder,
			nameStyle.Render(fmt.Sprintf("%-14s", t.Name)), pathStyle.Render(t.Path))
		if !dirExists(t.Path) {
			line += "  " + missing.Render("(missing)")
		}
		if u, ok := sizes[t.Name]; ok {
			line += fmt.Sprintf("  %s in %d items", core.FormatSize(u.Bytes), u.Items())
		}
		if t.RequiresAdmin {
			line += "  " + ui.TagWarningStyle().Render(" admin ")
		}
		fmt.Println(line)
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
