// Package claim drives the safe-claim protocol end to end: resolve the
// team, take its exclusive file lock, load the task document, apply the
// claim transition, and persist the result.
//
// The lock is held for exactly the load-validate-mutate-save span. Every
// failure short-circuits before the save, so the on-disk document is
// untouched unless the whole protocol completed. Contention between
// agents surfaces as an AlreadyClaimedError naming the winning owner;
// callers treat it as a normal outcome, not a fault to retry.
package claim
