//go:build windows

package tasks

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// shellCommand runs command through cmd.exe. The command line is passed
// verbatim because cmd.exe does its own parsing and Go's argument quoting
// would mangle it.
func shellCommand(ctx context.Context, command string) *exec.Cmd {
	shell := os.Getenv("ComSpec")
	if shell == "" {
		shell = filepath.Join(os.Getenv("SystemRoot"), "System32", "cmd.exe")
	}
	cmd := exec.CommandContext(ctx, shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    `cmd.exe /C ` + command,
		HideWindow: true,
	}
	return cmd
}
