package status

import (
	"os"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/config"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/core"
)

// VolumeUsage is the free space on the filesystem holding one target.
type VolumeUsage struct {
	Target      string  `json:"target" yaml:"target"`
	Path        string  `json:"path" yaml:"path"`
	Exists      bool    `json:"exists" yaml:"exists"`
	Total       uint64  `json:"total" yaml:"total"`
	Free        uint64  `json:"free" yaml:"free"`
	Used        uint64  `json:"used" yaml:"used"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
	Err         string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is a snapshot of the host and the volumes behind each target.
type Report struct {
	OS       string        `json:"os" yaml:"os"`
	Elevated bool          `json:"elevated" yaml:"elevated"`
	Volumes  []VolumeUsage `json:"volumes" yaml:"volumes"`
}

// usageFunc is swapped in tests.
var usageFunc = disk.Usage

// Collect builds a Report for targets. Missing targets are listed with
// Exists=false; a failing usage query is recorded in Err.
func Collect(targets []config.CleanTarget) Report {
	r := Report{
		OS:       core.OSDescription(),
		Elevated: core.IsElevated(),
	}
	for _, t := range targets {
		r.Volumes = append(r.Volumes, volumeFor(t))
	}
	return r
}

func volumeFor(t config.CleanTarget) VolumeUsage {
	v := VolumeUsage{Target: t.Name, Path: t.Path}
	if info, err := os.Stat(t.Path); err != nil || !info.IsDir() {
		return v
	}
	v.Exists = true

	u, err := usageFunc(t.Path)
	if err != nil {
		v.Err = err.Error()
		return v
	}
	v.Total = u.Total
	v.Free = u.Free
	v.Used = u.Used
	v.UsedPercent = u.UsedPercent
	return v
}
