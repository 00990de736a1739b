//go:build !windows

package core

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// OSDescription names the running OS, e.g. "ubuntu 24.04 (linux)".
func OSDescription() string {
	info, err := host.Info()
	if err != nil || info.Platform == "" {
		return runtime.GOOS
	}
	return strings.TrimSpace(info.Platform+" "+info.PlatformVersion) + " (" + info.OS + ")"
}
