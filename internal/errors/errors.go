// Package errors provides centralized error definitions and error handling
// utilities for taskclaim. It defines the error kinds a claim attempt can
// fail with, constructors with context wrapping, and classification helpers.
//
// # Error Kinds
//
// Every failure mode of a claim attempt maps to one type:
//   - SetupError: the team directory or lock path is unusable
//   - CorruptDataError: the task document is missing or unparseable
//   - NotFoundError: the task id is absent from the document
//   - AlreadyClaimedError: the task is owned or past claiming
//   - IOError: the document could not be written back
//
// plus the sentinel ErrNoTeams when no team can be resolved.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewNotFoundError(taskID)
//	err := errors.NewCorruptDataError(path, cause)
//
// Checking errors:
//
//	var claimed *errors.AlreadyClaimedError
//	if errors.As(err, &claimed) { ... }
//
//	if errors.IsContention(err) { ... } // expected, frequent outcome
//
// AlreadyClaimedError is a normal result of agents racing for the same
// task, not a fault: it is classified as contention and logged at a low
// severity, while the remaining kinds are genuine failures.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityInfo is for expected outcomes that don't indicate a problem.
	SeverityInfo Severity = iota
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Sentinel errors.
var (
	// ErrNoTeams indicates that no team directory could be resolved.
	ErrNoTeams = New("no team directories found")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	cause    error
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// SetupError indicates that a team directory or lock path is unusable.
// Claim attempts that hit a SetupError fail before taking the lock.
type SetupError struct {
	baseError
	Path string
}

// NewSetupError creates a new SetupError for the given path.
func NewSetupError(message, path string, cause error) *SetupError {
	return &SetupError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityError,
		},
		Path: path,
	}
}

// Error returns the formatted error message.
func (e *SetupError) Error() string {
	msg := e.message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.message, e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks if this error matches the target.
func (e *SetupError) Is(target error) bool {
	if _, ok := target.(*SetupError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// CorruptDataError indicates that a task document is missing or does not
// parse as the expected shape. It is surfaced verbatim; no auto-repair.
type CorruptDataError struct {
	baseError
	Path string
}

// NewCorruptDataError creates a new CorruptDataError for the given document path.
func NewCorruptDataError(path string, cause error) *CorruptDataError {
	return &CorruptDataError{
		baseError: baseError{
			message:  "task document unreadable",
			cause:    cause,
			severity: SeverityError,
		},
		Path: path,
	}
}

// Error returns the formatted error message.
func (e *CorruptDataError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("task document unreadable: %s: %v", e.Path, e.cause)
	}
	return fmt.Sprintf("task document unreadable: %s", e.Path)
}

// Is checks if this error matches the target.
func (e *CorruptDataError) Is(target error) bool {
	if _, ok := target.(*CorruptDataError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// NotFoundError indicates that a task id is absent from the document.
type NotFoundError struct {
	baseError
	TaskID string
}

// NewNotFoundError creates a new NotFoundError for the given task id.
func NewNotFoundError(taskID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:  fmt.Sprintf("task '%s' not found", taskID),
			severity: SeverityWarning,
		},
		TaskID: taskID,
	}
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// AlreadyClaimedError indicates legitimate contention: the task is owned
// by some agent or has moved past the claimable state. Owner is empty when
// the claim was blocked by status alone.
type AlreadyClaimedError struct {
	baseError
	TaskID string
	Owner  string
	Status string
}

// NewAlreadyClaimedError creates a new AlreadyClaimedError. The message
// names the current owner when one is set, otherwise the blocking status.
func NewAlreadyClaimedError(taskID, owner, status string) *AlreadyClaimedError {
	return &AlreadyClaimedError{
		baseError: baseError{
			severity: SeverityInfo,
		},
		TaskID: taskID,
		Owner:  owner,
		Status: status,
	}
}

// Error returns the formatted error message.
func (e *AlreadyClaimedError) Error() string {
	if e.Owner != "" {
		return fmt.Sprintf("already claimed by %s", e.Owner)
	}
	return fmt.Sprintf("task is already %s", e.Status)
}

// Is checks if this error matches the target.
func (e *AlreadyClaimedError) Is(target error) bool {
	if _, ok := target.(*AlreadyClaimedError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// IOError indicates that writing the task document back failed. The load
// already succeeded, so on-disk state may be stale but is not corrupted.
type IOError struct {
	baseError
	Op   string
	Path string
}

// NewIOError creates a new IOError for the given operation and path.
func NewIOError(op, path string, cause error) *IOError {
	return &IOError{
		baseError: baseError{
			message:  op,
			cause:    cause,
			severity: SeverityError,
		},
		Op:   op,
		Path: path,
	}
}

// Error returns the formatted error message.
func (e *IOError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.cause)
	}
	return fmt.Sprintf("%s %s", e.Op, e.Path)
}

// Is checks if this error matches the target.
func (e *IOError) Is(target error) bool {
	if _, ok := target.(*IOError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// IsContention reports whether err is an expected contention outcome
// (the task was already claimed) rather than a fault.
func IsContention(err error) bool {
	var claimed *AlreadyClaimedError
	return As(err, &claimed)
}

// SeverityOf returns the severity of err, defaulting to SeverityError
// for errors that don't carry one.
func SeverityOf(err error) Severity {
	var s interface{ Severity() Severity }
	if As(err, &s) {
		return s.Severity()
	}
	return SeverityError
}
