package tasks

import (
	"errors"
	"testing"
)

func TestList_FixedTable(t *testing.T) {
	want := map[string]string{
		"GP Update (force)": "gpupdate /force",
		"Flush DNS":         "ipconfig /flushdns",
		"Release IP":        "ipconfig /release",
		"Renew IP":          "ipconfig /renew",
	}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for _, task := range got {
		if want[task.Name] != task.Command {
			t.Errorf("%s: expected %q, got %q", task.Name, want[task.Name], task.Command)
		}
		if task.Description == "" {
			t.Errorf("%s: missing description", task.Name)
		}
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	first := List()
	first[0].Command = "format c:"
	if List()[0].Command == "format c:" {
		t.Fatal("mutating the returned slice changed the task table")
	}
}

func TestLookup(t *testing.T) {
	task, err := Lookup("  flush dns ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Command != "ipconfig /flushdns" {
		t.Errorf("unexpected command %q", task.Command)
	}

	if _, err := Lookup("Defrag"); !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask, got %v", err)
	}
}

func TestDescription(t *testing.T) {
	if Description("Renew IP") == "" {
		t.Error("expected a description for Renew IP")
	}
	if d := Description("unknown"); d != "" {
		t.Errorf("expected empty description, got %q", d)
	}
}
