package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/status"
)

var statusOutput string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show host and free-space status",
	Long:  "Operating system, elevation, and free space on the volume behind each target.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(statusOutput); err != nil {
			return err
		}
		r := status.Collect(config.ResolveTargets())
		if statusOutput != outputText {
			return writeReport(cmd.OutOrStdout(), statusOutput, r)
		}
		fmt.Fprintln(cmd.OutOrStdout(), status.Render(r, 80))
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", outputText, "Output format: text, json or yaml")
}
