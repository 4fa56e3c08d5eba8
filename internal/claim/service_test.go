package claim

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"taskclaim/internal/errors"
	"taskclaim/internal/logging"
	"taskclaim/internal/tasks"
	"taskclaim/internal/testutil"
)

func removeDocument(teamDir string) error {
	return os.Remove(filepath.Join(teamDir, tasks.DocumentFileName))
}

func TestService_ClaimPendingSucceeds(t *testing.T) {
	base := t.TempDir()
	dir := testutil.SetupTeam(t, base, "backend", tasks.Document{
		"1": testutil.PendingTask("1", "Write tests"),
	})

	svc := NewService(base, logging.NopLogger())
	msg, err := svc.Claim("1", "agent-alpha", "backend")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if msg != "Claimed task 1: Write tests" {
		t.Errorf("message = %q", msg)
	}

	doc := testutil.ReadDocument(t, dir)
	if doc["1"].Status != tasks.StatusInProgress {
		t.Errorf("persisted status = %q", doc["1"].Status)
	}
	if doc["1"].Owner != "agent-alpha" {
		t.Errorf("persisted owner = %q", doc["1"].Owner)
	}
}

func TestService_SecondClaimRejected(t *testing.T) {
	base := t.TempDir()
	testutil.SetupTeam(t, base, "backend", tasks.Document{
		"1": testutil.PendingTask("1", "Write tests"),
	})

	svc := NewService(base, logging.NopLogger())
	if _, err := svc.Claim("1", "agent-alpha", "backend"); err != nil {
		t.Fatalf("first Claim: %v", err)
	}

	_, err := svc.Claim("1", "agent-beta", "backend")
	if err == nil {
		t.Fatal("second Claim should fail")
	}
	if err.Error() != "already claimed by agent-alpha" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestService_DefaultTeam(t *testing.T) {
	base := t.TempDir()
	testutil.SetupTeam(t, base, "alpha-team", tasks.Document{
		"1": testutil.PendingTask("1", "First team task"),
	})
	testutil.SetupTeam(t, base, "zeta-team", tasks.Document{
		"1": testutil.PendingTask("1", "Other team task"),
	})

	svc := NewService(base, logging.NopLogger())
	msg, err := svc.Claim("1", "agent-alpha", "")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if msg != "Claimed task 1: First team task" {
		t.Errorf("default team should be alpha-team, got %q", msg)
	}
}

func TestService_NoTeams(t *testing.T) {
	svc := NewService(t.TempDir(), logging.NopLogger())
	_, err := svc.Claim("1", "agent-alpha", "")
	if !errors.Is(err, errors.ErrNoTeams) {
		t.Errorf("expected ErrNoTeams, got %v", err)
	}
}

func TestService_MissingDocument(t *testing.T) {
	base := t.TempDir()
	dir := testutil.SetupTeam(t, base, "backend", tasks.Document{})

	// Valid team directory, but the document file is gone.
	if err := removeDocument(dir); err != nil {
		t.Fatal(err)
	}

	svc := NewService(base, logging.NopLogger())
	_, err := svc.Claim("1", "agent-alpha", "backend")
	var corrupt *errors.CorruptDataError
	if !errors.As(err, &corrupt) {
		t.Errorf("expected CorruptDataError, got %T: %v", err, err)
	}
}

func TestService_UnknownTask(t *testing.T) {
	base := t.TempDir()
	dir := testutil.SetupTeam(t, base, "backend", tasks.Document{
		"1": testutil.PendingTask("1", "Write tests"),
	})

	svc := NewService(base, logging.NopLogger())
	_, err := svc.Claim("99", "agent-alpha", "backend")
	var notFound *errors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}

	// Document untouched on failure.
	doc := testutil.ReadDocument(t, dir)
	if doc["1"].Status != tasks.StatusPending || doc["1"].Owner != "" {
		t.Error("failed claim must not change the document")
	}
}

func TestService_EmptyArguments(t *testing.T) {
	svc := NewService(t.TempDir(), logging.NopLogger())

	if _, err := svc.Claim("", "agent-alpha", ""); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("empty task_id: got %v", err)
	}
	if _, err := svc.Claim("1", "", ""); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("empty owner: got %v", err)
	}
}

// TestService_ConcurrentClaims races many owners for one pending task.
// Exactly one attempt must win; everyone else gets AlreadyClaimedError.
func TestService_ConcurrentClaims(t *testing.T) {
	base := t.TempDir()
	testutil.SetupTeam(t, base, "backend", tasks.Document{
		"1": testutil.PendingTask("1", "Contended task"),
	})

	const racers = 8
	svc := NewService(base, logging.NopLogger())

	var wg sync.WaitGroup
	results := make([]error, racers)
	start := make(chan struct{})

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner := string(rune('a' + i))
			<-start
			_, results[i] = svc.Claim("1", "agent-"+owner, "backend")
		}(i)
	}
	close(start)
	wg.Wait()

	var wins, contentions int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.IsContention(err):
			contentions++
		default:
			t.Errorf("unexpected error kind: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("exactly one claim should win, got %d", wins)
	}
	if contentions != racers-1 {
		t.Errorf("expected %d contentions, got %d", racers-1, contentions)
	}
}

func TestService_Tasks(t *testing.T) {
	base := t.TempDir()
	testutil.SetupTeam(t, base, "backend", tasks.Document{
		"2": testutil.OwnedTask("2", "Fix login bug", "agent-beta"),
		"1": testutil.PendingTask("1", "Write tests"),
	})

	svc := NewService(base, logging.NopLogger())
	list, paths, err := svc.Tasks("backend")
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}

	if paths.Team != "backend" {
		t.Errorf("Team = %q", paths.Team)
	}
	if len(list) != 2 || list[0].ID != "1" || list[1].ID != "2" {
		t.Errorf("tasks should be sorted by id, got %+v", list)
	}
}
