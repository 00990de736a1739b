package tasks

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestRun_ExitZero(t *testing.T) {
	res := Run(context.Background(), "exit 0", 10*time.Second)
	if res.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", res.ExitCode, res.Stderr)
	}
	if !res.OK() {
		t.Error("expected OK")
	}
}

func TestRun_ChildExitCode(t *testing.T) {
	res := Run(context.Background(), "exit 3", 10*time.Second)
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d (stderr %q)", res.ExitCode, res.Stderr)
	}
}

func TestRun_CapturesOutput(t *testing.T) {
	res := Run(context.Background(), "echo hello && echo oops 1>&2", 10*time.Second)
	if res.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", res.ExitCode, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "hello") {
		t.Errorf("stdout missing output: %q", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "oops") {
		t.Errorf("stderr missing output: %q", res.Stderr)
	}
}

func TestRun_Timeout(t *testing.T) {
	cmd := "sleep 5"
	if runtime.GOOS == "windows" {
		cmd = "ping -n 6 127.0.0.1 >nul"
	}

	start := time.Now()
	res := Run(context.Background(), cmd, 200*time.Millisecond)
	if res.ExitCode != SentinelExitCode {
		t.Fatalf("expected sentinel exit code, got %d", res.ExitCode)
	}
	if res.Stdout != "" {
		t.Errorf("expected empty stdout, got %q", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "Timeout") {
		t.Errorf("expected a Timeout message, got %q", res.Stderr)
	}
	if res.Stderr != "Timeout after 0.2s" {
		t.Errorf("unexpected message %q", res.Stderr)
	}
	if elapsed := time.Since(start); elapsed > 4*time.Second {
		t.Errorf("run took %s, expected it to stop near the timeout", elapsed)
	}
}

func TestRun_CallerDeadlineIsNotOurTimeout(t *testing.T) {
	cmd := "sleep 5"
	if runtime.GOOS == "windows" {
		cmd = "ping -n 6 127.0.0.1 >nul"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	res := Run(ctx, cmd, 30*time.Second)
	if res.ExitCode != SentinelExitCode {
		t.Fatalf("expected sentinel exit code, got %d", res.ExitCode)
	}
	if strings.Contains(res.Stderr, "Timeout after 30s") {
		t.Errorf("the caller's deadline must not be reported as the run timeout: %q", res.Stderr)
	}
	if !strings.Contains(res.Stderr, "deadline exceeded") {
		t.Errorf("expected the caller's deadline in stderr, got %q", res.Stderr)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Run(ctx, "exit 0", time.Second)
	if res.ExitCode != SentinelExitCode {
		t.Fatalf("expected sentinel exit code, got %d", res.ExitCode)
	}
	if res.Stderr == "" {
		t.Error("expected the failure message in stderr")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[time.Duration]string{
		300 * time.Second:       "300",
		1500 * time.Millisecond: "1.5",
		200 * time.Millisecond:  "0.2",
	}
	for d, want := range tests {
		if got := formatSeconds(d); got != want {
			t.Errorf("formatSeconds(%s) = %q, want %q", d, got, want)
		}
	}
}
