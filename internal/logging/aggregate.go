package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogEntry represents a parsed log line with its structured fields.
type LogEntry struct {
	Timestamp time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	Team      string         `json:"team,omitempty"`
	Owner     string         `json:"owner,omitempty"`
	Tool      string         `json:"tool,omitempty"`
	Attrs     map[string]any `json:"-"`
}

// LogFilter defines criteria for filtering log entries. Zero values mean
// no filtering on that field.
type LogFilter struct {
	// Level keeps entries at or above this level (DEBUG < INFO < WARN < ERROR).
	Level string

	// Since keeps entries at or after this time.
	Since time.Time

	// Team keeps entries for this team.
	Team string

	// Owner keeps entries for this claiming owner.
	Owner string

	// MessageContains keeps entries whose message contains this substring.
	MessageContains string
}

// levelOrder defines the ordering of log levels for filtering.
var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// AggregateLogs reads and parses all entries from the debug.log file in
// the given directory, returned sorted by timestamp ascending.
// Unparseable lines are skipped rather than failing the whole read.
func AggregateLogs(dir string) ([]LogEntry, error) {
	logPath := filepath.Join(dir, LogFileName)

	file, err := os.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file found in %s: %w", dir, err)
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseLogEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

// parseLogEntry parses one JSON log line, capturing unknown fields in Attrs.
func parseLogEntry(line string) (LogEntry, error) {
	var entry LogEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return LogEntry{}, err
	}

	var all map[string]any
	if err := json.Unmarshal([]byte(line), &all); err != nil {
		return LogEntry{}, err
	}
	for _, known := range []string{"time", "level", "msg", "team", "owner", "tool"} {
		delete(all, known)
	}
	if len(all) > 0 {
		entry.Attrs = all
	}
	return entry, nil
}

// FilterLogs returns the entries matching every criterion in filter.
func FilterLogs(entries []LogEntry, filter LogFilter) []LogEntry {
	var out []LogEntry
	for _, e := range entries {
		if matchesFilter(e, filter) {
			out = append(out, e)
		}
	}
	return out
}

func matchesFilter(e LogEntry, f LogFilter) bool {
	if f.Level != "" {
		min, ok := levelOrder[strings.ToUpper(f.Level)]
		if ok && levelOrder[strings.ToUpper(e.Level)] < min {
			return false
		}
	}
	if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
		return false
	}
	if f.Team != "" && e.Team != f.Team {
		return false
	}
	if f.Owner != "" && e.Owner != f.Owner {
		return false
	}
	if f.MessageContains != "" && !strings.Contains(e.Message, f.MessageContains) {
		return false
	}
	return true
}
