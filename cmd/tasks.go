package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/tasks"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

var tasksOutput string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the maintenance commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(tasksOutput); err != nil {
			return err
		}
		if tasksOutput != outputText {
			return writeReport(cmd.OutOrStdout(), tasksOutput, tasks.List())
		}
		printTasks()
		return nil
	},
}

func init() {
	tasksCmd.Flags().StringVarP(&tasksOutput, "output", "o", outputText, "Output format: text, json or yaml")
}

func printTasks() {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorText)
	cmdStyle := lipgloss.NewStyle().Foreground(ui.ColorSecondary)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	for _, t := range tasks.List() {
		line := fmt.Sprintf("  %s %s  %s", ui.IconCommand,
			nameStyle.Render(fmt.Sprintf("%-18s", t.Name)), cmdStyle.Render(t.Command))
		if t.Disruptive {
			line += "  " + ui.TagWarningStyle().Render(" disruptive ")
		}
		fmt.Println(line)
		fmt.Println("      " + descStyle.Render(t.Description))
	}
}
