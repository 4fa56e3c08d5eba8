package tasks

import "taskclaim/internal/errors"

// Claim transitions the task with the given id to in_progress under the
// given owner, mutating doc in place. It returns the claimed record so
// the caller can build a confirmation message.
//
// The claim is legal only when the record has no owner and a claimable
// status. Any existing owner rejects the claim, including the requesting
// owner itself: first-writer-wins applies to the first writer's own
// retries too. On any failure doc is left untouched and must not be
// persisted.
func Claim(doc Document, taskID, owner string) (*Task, error) {
	task, ok := doc[taskID]
	if !ok {
		return nil, errors.NewNotFoundError(taskID)
	}

	if task.Owner != "" {
		return nil, errors.NewAlreadyClaimedError(taskID, task.Owner, task.Status.String())
	}
	if !task.Status.Claimable() {
		return nil, errors.NewAlreadyClaimedError(taskID, "", task.Status.String())
	}

	task.Owner = owner
	task.Status = StatusInProgress
	return task, nil
}
