// Package team maps team names to their on-disk locations under the base
// tasks directory. Each team directory owns one lock file and one task
// document; both paths derive deterministically from the team name.
package team

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"taskclaim/internal/errors"
	"taskclaim/internal/tasks"
)

// LockFileName is the fixed name of a team's lock file inside its
// directory. The file carries no content; it exists only to be flocked.
const LockFileName = ".lock"

// Paths holds the resolved on-disk locations for one team.
type Paths struct {
	// Team is the resolved team name.
	Team string

	// Dir is the team directory.
	Dir string

	// LockFile is the path to the team's lock file.
	LockFile string

	// Document is the path to the team's task document.
	Document string
}

// Resolver maps an optional team name to a team directory under a fixed
// base directory. It holds no other state.
type Resolver struct {
	baseDir string
}

// NewResolver creates a Resolver rooted at baseDir.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

// BaseDir returns the base tasks directory.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Resolve maps a team name to its paths. An empty name selects the
// lexicographically first team directory under the base directory
// (os.ReadDir returns entries sorted by name, which keeps the default
// deterministic across platforms). The team directory must already
// exist; this system never creates teams.
func (r *Resolver) Resolve(name string) (Paths, error) {
	if name == "" {
		first, err := r.firstTeam()
		if err != nil {
			return Paths{}, err
		}
		name = first
	}

	dir := filepath.Join(r.baseDir, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Paths{}, errors.NewSetupError("team directory not found", dir, nil)
	}

	return Paths{
		Team:     name,
		Dir:      dir,
		LockFile: filepath.Join(dir, LockFileName),
		Document: filepath.Join(dir, tasks.DocumentFileName),
	}, nil
}

// Teams lists all team directories under the base directory, sorted by
// name. A missing or empty base directory yields ErrNoTeams.
func (r *Resolver) Teams() ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", errors.ErrNoTeams, r.baseDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", errors.ErrNoTeams, r.baseDir)
	}

	sort.Strings(names)
	return names, nil
}

// firstTeam returns the default team: the first directory by name.
func (r *Resolver) firstTeam() (string, error) {
	names, err := r.Teams()
	if err != nil {
		return "", err
	}
	return names[0], nil
}
