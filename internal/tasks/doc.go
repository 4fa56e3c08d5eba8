// Package tasks defines the task record and team document types, their
// on-disk persistence, and the claim state transition.
//
// A team's tasks live in a single JSON document ("tasks.json" in the team
// directory) mapping task id to record. The document is always loaded
// fully into memory, mutated there, and written back fully; saves go
// through a temp file and rename so a crashed writer never leaves a
// truncated document behind.
//
// [Claim] is the only mutation this package performs: it transitions an
// unowned pending task to in_progress under a named owner, and rejects
// everything else. Ownership equality is not special-cased, so a retry by
// the winning owner is rejected like any other claim (first-writer-wins).
//
// Callers must hold the team's file lock across LoadDocument, Claim, and
// SaveDocument; the lock is what makes the sequence atomic across
// processes. See [taskclaim/internal/claim] for the orchestration.
package tasks
