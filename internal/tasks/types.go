package tasks

import "encoding/json"

// Status represents the lifecycle state of a task.
//
// The broader task system may write statuses this tool does not know
// about (for example "deleted"). Those are treated as opaque values that
// block claiming, the same as the terminal states below.
type Status string

const (
	// StatusPending indicates the task is waiting to be claimed.
	StatusPending Status = "pending"

	// StatusClaimed indicates the task has been claimed but work has
	// not started yet.
	StatusClaimed Status = "claimed"

	// StatusInProgress indicates an owner is actively working the task.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates the task is done.
	StatusCompleted Status = "completed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Claimable reports whether a task in this status may be claimed.
// Only pending (or unset) tasks are claimable; every other status,
// known or not, blocks the claim.
func (s Status) Claimable() bool {
	return s == "" || s == StatusPending
}

// Task is one work item in a team's document. The field set matches what
// the task system writes; fields this tool never touches (Blocks,
// BlockedBy, Metadata) are carried through round-trips untouched.
type Task struct {
	// ID is the task identifier, unique within a document.
	ID string `json:"id"`

	// Subject is the one-line human-readable description, used in the
	// claim confirmation message.
	Subject string `json:"subject"`

	// Description is the long-form task description.
	Description string `json:"description,omitempty"`

	// ActiveForm is the present-continuous phrasing shown while the
	// task is being worked ("Writing tests").
	ActiveForm string `json:"activeForm,omitempty"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Owner is the agent that claimed the task; empty while unclaimed.
	Owner string `json:"owner,omitempty"`

	// Blocks lists task ids this task blocks.
	Blocks []string `json:"blocks,omitempty"`

	// BlockedBy lists task ids this task waits on.
	BlockedBy []string `json:"blockedBy,omitempty"`

	// Metadata is opaque task-system data, preserved byte-for-byte.
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Document is a team's full task collection, keyed by task id. It is the
// sole unit of read and write: load all, mutate in memory, save all.
type Document map[string]*Task
