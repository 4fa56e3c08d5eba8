// Package filelock provides cross-process mutual exclusion via an
// exclusive advisory file lock.
//
// Each team directory owns one lock file (".lock"). A claim attempt
// acquires the lock before reading the team's task document and releases
// it after writing the document back, so all load-validate-mutate-save
// sequences for a team execute in a strict total order across processes.
//
// The lock is advisory: it only constrains cooperating processes that
// take the same lock. Acquisition blocks indefinitely in the kernel's
// native flock ordering; there is no timeout or fairness guarantee.
//
// Usage:
//
//	lock := filelock.New(paths.LockFile)
//	if err := lock.Lock(); err != nil {
//		return err
//	}
//	defer lock.Unlock()
package filelock
