package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [powershell|bash|zsh|fish]",
	Short: "Set up shell tab completion",
	Long: `Generate a tab completion script. PowerShell is the default.

  tc completion | Out-String | Invoke-Expression`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"powershell", "bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := "powershell"
		if len(args) == 1 {
			shell = args[0]
		}
		out := cmd.OutOrStdout()
		switch shell {
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		}
		return fmt.Errorf("unsupported shell %q", shell)
	},
}
