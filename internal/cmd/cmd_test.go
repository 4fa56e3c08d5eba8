package cmd

import (
	"strings"
	"testing"
	"time"

	"taskclaim/internal/logging"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{"serve", "claim", "status", "teams", "logs"}

	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestClaimCommand_RequiresOwner(t *testing.T) {
	flag := claimCmd.Flags().Lookup("owner")
	if flag == nil {
		t.Fatal("claim command should have an --owner flag")
	}
	// cobra records required flags via the BashCompOneRequiredFlag annotation.
	if _, ok := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]; !ok {
		t.Error("--owner should be marked required")
	}
}

func TestFormatLogEntry(t *testing.T) {
	e := logging.LogEntry{
		Timestamp: time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC),
		Level:     "info",
		Message:   "claim granted",
		Team:      "backend",
		Owner:     "agent-alpha",
		Attrs:     map[string]any{"task_id": "1"},
	}

	got := formatLogEntry(e)
	for _, part := range []string{"09:30:15", "INFO", "[backend/agent-alpha]", "claim granted", "task_id=1"} {
		if !strings.Contains(got, part) {
			t.Errorf("formatted entry %q missing %q", got, part)
		}
	}
}

func TestFormatLogEntry_NoTeam(t *testing.T) {
	e := logging.LogEntry{
		Timestamp: time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC),
		Level:     "error",
		Message:   "lock directory not found",
	}

	got := formatLogEntry(e)
	if strings.Contains(got, "[") {
		t.Errorf("entry without team should have no bracket section: %q", got)
	}
}
