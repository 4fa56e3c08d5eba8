// Package testutil provides testing fixtures for taskclaim tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"taskclaim/internal/tasks"
)

// SetupTeam creates a team directory under base with a lock file and a
// task document holding the given tasks. Returns the team directory path.
func SetupTeam(t *testing.T, base, team string, doc tasks.Document) string {
	t.Helper()

	dir := filepath.Join(base, team)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("create team dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".lock"), nil, 0644); err != nil {
		t.Fatalf("create lock file: %v", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, tasks.DocumentFileName), data, 0644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return dir
}

// PendingTask returns a pending, unowned task record.
func PendingTask(id, subject string) *tasks.Task {
	return &tasks.Task{
		ID:      id,
		Subject: subject,
		Status:  tasks.StatusPending,
	}
}

// OwnedTask returns a task record already claimed by owner.
func OwnedTask(id, subject, owner string) *tasks.Task {
	return &tasks.Task{
		ID:      id,
		Subject: subject,
		Status:  tasks.StatusInProgress,
		Owner:   owner,
	}
}

// ReadDocument loads a team's document directly, bypassing the store,
// for asserting on-disk state.
func ReadDocument(t *testing.T, teamDir string) tasks.Document {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(teamDir, tasks.DocumentFileName))
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var doc tasks.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}
