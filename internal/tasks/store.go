package tasks

import (
	"encoding/json"
	"os"

	"taskclaim/internal/errors"
)

// DocumentFileName is the fixed name of a team's task document inside
// its team directory.
const DocumentFileName = "tasks.json"

// LoadDocument reads and parses a team's task document. The caller must
// hold the team's file lock.
//
// A missing file is reported the same way as an unparseable one: the
// store never fabricates an empty document for a team, so both mean the
// team's data is unusable.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCorruptDataError(path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewCorruptDataError(path, err)
	}
	if doc == nil {
		doc = make(Document)
	}
	return doc, nil
}

// SaveDocument serializes the full document and replaces the file at
// path. The caller must still hold the team's file lock.
//
// The write is atomic: data goes to a temp file in the same directory
// first, then renames into place, so a crash mid-write leaves the prior
// document intact rather than a truncated one.
func SaveDocument(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.NewIOError("marshal task document", path, err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.NewIOError("write task document", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return errors.NewIOError("rename task document", path, err)
	}
	return nil
}
