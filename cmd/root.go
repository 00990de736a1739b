package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/app"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/logging"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

var (
	// Global flags
	debug      bool
	configFile string

	// Populated by PersistentPreRunE.
	settings *config.Settings
	v        = viper.New()
	closeLog = func() {}

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "tc",
	Short: "Clean temp folders and run common maintenance commands",
	Long: `TempCleaner - empty Windows temporary folders and run a handful of
administrative commands (Group Policy update, DNS flush, DHCP release/renew).

Run without a subcommand to open the interactive window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			printStatic()
			return nil
		}
		return app.Run(cmd.Context(), app.Options{
			CommandTimeout: settings.CommandTimeout,
			Confirm:        settings.Confirm,
		})
	},
}

// exitError carries a process exit code. An empty message prints nothing.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func exitCode(code int) error { return &exitError{code: code} }

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	closeLog()
	closeLog = func() {}
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			ui.PrintError("%s", ee.msg)
		}
		return ee.code
	}
	ui.PrintError("%v", err)
	return 1
}

func init() {
	// Assigned here because setup refers back to rootCmd.
	rootCmd.PersistentPreRunE = setup

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "Show detailed operation logs")
	pf.StringVar(&configFile, "config", "", "Read settings from this YAML file")
	pf.String("log-file", "", "Write the diagnostic log to this file")
	pf.Duration("timeout", 0, "Timeout for maintenance commands (default 5m0s)")
	pf.Bool("confirm", true, "Ask before deleting or disrupting the network")

	_ = v.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = v.BindPFlag("command_timeout", pf.Lookup("timeout"))
	_ = v.BindPFlag("confirm", pf.Lookup("confirm"))

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads settings and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if debug {
		s.Log.Level = "debug"
	}

	// The window owns the terminal, so its log goes to a file.
	if cmd == rootCmd && interactive() && s.Log.File == "" {
		s.Log.File = config.DefaultLogFile()
	}

	closeFn, err := logging.Init(logging.Options{Level: s.Log.Level, File: s.Log.File})
	if err != nil {
		return err
	}
	closeLog = closeFn
	settings = s
	return nil
}

func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printStatic is the non-terminal rendition of the window.
func printStatic() {
	fmt.Println("TempCleaner")
	fmt.Println()
	ui.PrintStep("Targets")
	printTargets(config.ResolveTargets(), nil)
	ui.PrintStep("Commands")
	printTasks()
	fmt.Println()
	fmt.Println("Run 'tc --help' for available commands.")
}
