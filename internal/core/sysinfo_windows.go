//go:build windows

package core

import (
	"strconv"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32OperatingSystem struct {
	Caption string
	Version string
}

// OSDescription names the running OS, e.g.
// "Microsoft Windows 11 Pro (Build 22631)". WMI is preferred because it
// reports the edition; the NT version numbers are the fallback.
func OSDescription() string {
	var dst []win32OperatingSystem
	if err := wmi.Query("SELECT Caption, Version FROM Win32_OperatingSystem", &dst); err == nil && len(dst) > 0 {
		caption := strings.TrimSpace(dst[0].Caption)
		if caption != "" {
			_, _, build := GetWindowsVersion()
			return caption + " (Build " + strconv.FormatUint(uint64(build), 10) + ")"
		}
	}
	return WindowsVersionString()
}
