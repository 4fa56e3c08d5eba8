package filelock

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskclaim/internal/errors"
)

func TestFileLock_LockUnlock(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, ".lock")
	l := New(lockPath)

	if err := l.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}

	// Lock file should exist
	if _, err := os.Stat(lockPath); err != nil {
		t.Errorf("lock file should exist: %v", err)
	}

	if err := l.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
}

func TestFileLock_UnlockWithoutLock(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), ".lock"))

	// Unlock without Lock should be a no-op
	if err := l.Unlock(); err != nil {
		t.Fatalf("Unlock without Lock should not error: %v", err)
	}
}

func TestFileLock_MissingParentDir(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "no-such-team", ".lock")
	l := New(lockPath)

	err := l.Lock()
	if err == nil {
		t.Fatal("Lock should fail when the parent directory does not exist")
	}
	var setup *errors.SetupError
	if !errors.As(err, &setup) {
		t.Errorf("expected SetupError, got %T: %v", err, err)
	}

	if _, err := l.TryLock(); err == nil {
		t.Fatal("TryLock should fail when the parent directory does not exist")
	}
}

func TestFileLock_TryLockContention(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), ".lock")

	l1 := New(lockPath)
	if err := l1.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	defer func() { _ = l1.Unlock() }()

	// A second lock on a separate fd should see the lock as held.
	l2 := New(lockPath)
	acquired, err := l2.TryLock()
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if acquired {
		_ = l2.Unlock()
		t.Fatal("TryLock should not acquire a held lock")
	}

	if err := l1.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	acquired, err = l2.TryLock()
	if err != nil {
		t.Fatalf("TryLock after release: %v", err)
	}
	if !acquired {
		t.Fatal("TryLock should acquire a released lock")
	}
	_ = l2.Unlock()
}

func TestFileLock_BlocksUntilReleased(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), ".lock")

	l1 := New(lockPath)
	if err := l1.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		l2 := New(lockPath)
		if err := l2.Lock(); err != nil {
			t.Errorf("second Lock: %v", err)
			close(acquired)
			return
		}
		close(acquired)
		_ = l2.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock should block while the first is held")
	case <-time.After(50 * time.Millisecond):
	}

	if err := l1.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second Lock should acquire after release")
	}
}
