package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"taskclaim/internal/errors"
)

// FileLock provides cross-process mutual exclusion using flock(2).
// It protects a team's task document while a claim attempt performs
// its load-validate-mutate-save sequence.
type FileLock struct {
	path string
	fl   *flock.Flock
}

// New creates a FileLock for the given lock file path. The lock file is
// created on first acquisition if it does not exist. Call Lock/Unlock to
// acquire and release.
func New(path string) *FileLock {
	return &FileLock{path: path}
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

// Lock acquires an exclusive file lock, blocking until available.
// If the lock path's parent directory does not exist the attempt fails
// with a SetupError instead of blocking: a missing directory means the
// team location is invalid, not contended.
func (l *FileLock) Lock() error {
	dir := filepath.Dir(l.path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return errors.NewSetupError("lock directory not found", dir, nil)
	}

	fl := flock.New(l.path)
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("flock %s: %w", l.path, err)
	}
	l.fl = fl
	return nil
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false if it is held elsewhere.
func (l *FileLock) TryLock() (bool, error) {
	dir := filepath.Dir(l.path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return false, errors.NewSetupError("lock directory not found", dir, nil)
	}

	fl := flock.New(l.path)
	locked, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("flock %s: %w", l.path, err)
	}
	if !locked {
		return false, nil
	}
	l.fl = fl
	return true, nil
}

// Unlock releases the file lock. Calling Unlock without a held lock is a
// no-op, so callers can defer it unconditionally.
func (l *FileLock) Unlock() error {
	if l.fl == nil {
		return nil
	}
	err := l.fl.Unlock()
	l.fl = nil
	if err != nil {
		return fmt.Errorf("funlock %s: %w", l.path, err)
	}
	return nil
}
