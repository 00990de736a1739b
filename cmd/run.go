package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/tasks"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

var (
	runOutput string
	runYes    bool
)

var runCmd = &cobra.Command{
	Use:   "run <task>",
	Short: "Run one of the maintenance commands",
	Long: `Run a maintenance command by name (see 'tc tasks') and exit with its
exit code. Names are case-insensitive; multi-word names may be quoted or
given as separate words.`,
	Example: `  tc run "Flush DNS"
  tc run flush dns --timeout 30s`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, t := range tasks.List() {
			names = append(names, t.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(runOutput); err != nil {
			return err
		}
		t, err := tasks.Lookup(strings.Join(args, " "))
		if err != nil {
			return err
		}

		if t.Disruptive && settings.Confirm && !runYes {
			ok, err := confirmTask(t)
			if err != nil {
				return err
			}
			if !ok {
				ui.PrintWarning("Cancelled")
				return nil
			}
		}
		if runOutput == outputText {
			ui.PrintStep("%s", t.Command)
		}

		zap.L().Info("running task", zap.String("task", t.Name), zap.Duration("timeout", settings.CommandTimeout))
		res := tasks.RunTask(cmd.Context(), t, settings.CommandTimeout)

		if runOutput != outputText {
			report := struct {
				Task   tasks.Task   `json:"task" yaml:"task"`
				Result tasks.Result `json:"result" yaml:"result"`
			}{t, res}
			if err := writeReport(cmd.OutOrStdout(), runOutput, report); err != nil {
				return err
			}
		} else {
			fmt.Fprint(cmd.OutOrStdout(), res.Stdout)
			fmt.Fprint(os.Stderr, res.Stderr)
			if res.OK() {
				ui.PrintSuccess("%s: exit code 0", t.Name)
			} else {
				ui.PrintError("%s: exit code %d", t.Name, res.ExitCode)
			}
		}

		switch {
		case res.OK():
			return nil
		case res.ExitCode == tasks.SentinelExitCode:
			return exitCode(1)
		default:
			return exitCode(res.ExitCode)
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", outputText, "Output format: text, json or yaml")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Do not ask before disruptive commands")
}

func confirmTask(t tasks.Task) (bool, error) {
	if !interactive() {
		return false, fmt.Errorf("%s is disruptive; pass --yes to run it without a terminal", t.Name)
	}
	return askYesNo(fmt.Sprintf("Run %q now?", t.Command), t.Description, "Run")
}
