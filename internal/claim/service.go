package claim

import (
	"fmt"
	"sort"

	"taskclaim/internal/errors"
	"taskclaim/internal/filelock"
	"taskclaim/internal/logging"
	"taskclaim/internal/tasks"
	"taskclaim/internal/team"
)

// Service performs claim attempts against a base tasks directory.
// It holds no state between calls: every attempt goes through the full
// acquire-load-mutate-save-release sequence with no cached documents.
type Service struct {
	resolver *team.Resolver
	log      *logging.Logger
}

// NewService creates a Service over the given base tasks directory.
func NewService(tasksDir string, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Service{
		resolver: team.NewResolver(tasksDir),
		log:      log,
	}
}

// Resolver returns the service's team resolver.
func (s *Service) Resolver() *team.Resolver {
	return s.resolver
}

// Claim atomically claims the task for owner in the given team (empty
// teamName selects the default team). On success it returns the
// confirmation line "Claimed task <id>: <subject>".
//
// The team lock is acquired before the document is read and released
// after it is written (or after the first failure), so concurrent
// attempts on the same team serialize into a strict total order.
func (s *Service) Claim(taskID, owner, teamName string) (string, error) {
	if taskID == "" {
		return "", fmt.Errorf("%w: task_id must not be empty", errors.ErrInvalidInput)
	}
	if owner == "" {
		return "", fmt.Errorf("%w: owner must not be empty", errors.ErrInvalidInput)
	}

	paths, err := s.resolver.Resolve(teamName)
	if err != nil {
		return "", err
	}

	log := s.log.WithTeam(paths.Team).WithOwner(owner)
	log.Debug("claim attempt", "task_id", taskID)

	lock := filelock.New(paths.LockFile)
	if err := lock.Lock(); err != nil {
		return "", err
	}
	defer func() { _ = lock.Unlock() }()

	doc, err := tasks.LoadDocument(paths.Document)
	if err != nil {
		return "", err
	}

	task, err := tasks.Claim(doc, taskID, owner)
	if err != nil {
		if errors.IsContention(err) {
			log.Info("claim rejected", "task_id", taskID, "reason", err.Error())
		}
		return "", err
	}

	if err := tasks.SaveDocument(paths.Document, doc); err != nil {
		return "", err
	}

	log.Info("claim granted", "task_id", taskID, "subject", task.Subject)
	return fmt.Sprintf("Claimed task %s: %s", taskID, task.Subject), nil
}

// Tasks returns a snapshot of the team's task records sorted by id,
// read under the team lock. The returned slice is detached from disk:
// mutating it has no effect on the document.
func (s *Service) Tasks(teamName string) ([]*tasks.Task, team.Paths, error) {
	paths, err := s.resolver.Resolve(teamName)
	if err != nil {
		return nil, team.Paths{}, err
	}

	lock := filelock.New(paths.LockFile)
	if err := lock.Lock(); err != nil {
		return nil, team.Paths{}, err
	}
	defer func() { _ = lock.Unlock() }()

	doc, err := tasks.LoadDocument(paths.Document)
	if err != nil {
		return nil, team.Paths{}, err
	}

	list := make([]*tasks.Task, 0, len(doc))
	for _, task := range doc {
		cp := *task
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, paths, nil
}
