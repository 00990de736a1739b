package tasks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a task run when no timeout is given.
	DefaultTimeout = 300 * time.Second

	// SentinelExitCode marks a failure of the runner itself (timeout or
	// launch error), as opposed to an exit status reported by the child.
	SentinelExitCode = -1

	// waitDelay is how long Wait keeps reading output after the shell is
	// killed. Grandchildren holding the pipes are abandoned after that.
	waitDelay = 2 * time.Second
)

var errTimedOut = errors.New("command timed out")

// Result is the outcome of one command run.
type Result struct {
	ExitCode int    `json:"exit_code" yaml:"exit_code"`
	Stdout   string `json:"stdout" yaml:"stdout"`
	Stderr   string `json:"stderr" yaml:"stderr"`
}

// OK reports whether the command ran and exited with status 0.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Run executes command through the system shell and waits up to timeout.
// Every failure is encoded in the Result; Run never panics or returns an
// error. A timeout <= 0 means DefaultTimeout.
func Run(ctx context.Context, command string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeoutCause(ctx, timeout, errTimedOut)
	defer cancel()

	cmd := shellCommand(ctx, command)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log := zap.L().With(zap.String("command", command), zap.Duration("elapsed", time.Since(start)))

	// A command that finished before the deadline is never a timeout, and a
	// deadline inherited from the caller is reported as a plain failure.
	if err != nil && errors.Is(context.Cause(ctx), errTimedOut) {
		log.Warn("command timed out", zap.Duration("timeout", timeout))
		return Result{
			ExitCode: SentinelExitCode,
			Stderr:   fmt.Sprintf("Timeout after %ss", formatSeconds(timeout)),
		}
	}

	if err != nil && ctx.Err() != nil {
		log.Warn("command canceled", zap.Error(context.Cause(ctx)))
		return Result{ExitCode: SentinelExitCode, Stderr: context.Cause(ctx).Error()}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			log.Info("command finished", zap.Int("exit_code", exitErr.ExitCode()))
			return Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		log.Error("command failed to run", zap.Error(err))
		return Result{ExitCode: SentinelExitCode, Stderr: err.Error()}
	}

	log.Info("command finished", zap.Int("exit_code", 0))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}
}

// RunTask runs t.Command.
func RunTask(ctx context.Context, t Task, timeout time.Duration) Result {
	return Run(ctx, t.Command, timeout)
}

// formatSeconds renders 300s as "300" and 1500ms as "1.5".
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
