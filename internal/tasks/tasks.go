package tasks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTask is returned by Lookup for names not in the task table.
var ErrUnknownTask = errors.New("unknown task")

// Task is a preconfigured administrative command.
type Task struct {
	Name        string `json:"name" yaml:"name"`
	Command     string `json:"command" yaml:"command"`
	Description string `json:"description" yaml:"description"`

	// Disruptive tasks interrupt connectivity and ask for confirmation.
	Disruptive bool `json:"disruptive" yaml:"disruptive"`
}

// table is fixed at startup and only handed out as copies.
var table = [...]Task{
	{
		Name:        "GP Update (force)",
		Command:     "gpupdate /force",
		Description: "Force a Group Policy update on the local machine. Useful after changing GPOs.",
	},
	{
		Name:        "Flush DNS",
		Command:     "ipconfig /flushdns",
		Description: "Clear the local DNS resolver cache. Helps when DNS changes aren't reflected locally.",
	},
	{
		Name:        "Release IP",
		Command:     "ipconfig /release",
		Description: "Release the current DHCP lease. This will temporarily drop IPv4 connectivity.",
		Disruptive:  true,
	},
	{
		Name:        "Renew IP",
		Command:     "ipconfig /renew",
		Description: "Request a new DHCP lease from the server after releasing.",
	},
}

// List returns the task table in display order.
func List() []Task {
	out := make([]Task, len(table))
	copy(out, table[:])
	return out
}

// Lookup finds a task by name, ignoring case and surrounding space.
func Lookup(name string) (Task, error) {
	name = strings.TrimSpace(name)
	for _, t := range table {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Task{}, fmt.Errorf("%w: %q", ErrUnknownTask, name)
}

// Description returns the tooltip for name, or "" if the task is unknown.
func Description(name string) string {
	t, err := Lookup(name)
	if err != nil {
		return ""
	}
	return t.Description
}
