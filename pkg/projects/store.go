// Package projects maintains the persisted, usage-ranked history of served
// directories.
package projects

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mattsolo1/servr/errors"
	"github.com/mattsolo1/servr/logging"
	"github.com/mattsolo1/servr/pkg/paths"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Entry is one ranked project returned by TopN.
type Entry struct {
	Path     string    `json:"path"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// record is the persisted per-path state.
type record struct {
	Count    int       `yaml:"count"`
	LastUsed time.Time `yaml:"last_used"`
}

// Store owns the recent-projects mapping and is the sole writer of its
// backing file. It is not safe for concurrent use; all calls happen on the
// control thread.
type Store struct {
	path    string
	records map[string]*record
	logger  *logrus.Entry

	now func() time.Time
}

// New creates a store backed by the given file. A missing or malformed file
// degrades to an empty history; load problems are logged, never returned.
func New(path string) *Store {
	s := &Store{
		path:    path,
		records: make(map[string]*record),
		logger:  logging.NewLogger("projects"),
		now:     time.Now,
	}
	s.load()
	return s
}

// NewDefault creates a store backed by the standard XDG state file.
func NewDefault() *Store {
	return New(paths.RecentProjectsPath())
}

// load reads the persisted mapping. Corrupt or missing state is treated as
// "no history" so a damaged file can never block the server.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(errors.Persistence("load", err)).Warn("Failed to read recent projects, starting empty")
		}
		return
	}

	var records map[string]*record
	if err := yaml.Unmarshal(data, &records); err != nil {
		s.logger.WithError(errors.Persistence("parse", err)).Warn("Recent projects file is malformed, starting empty")
		return
	}
	if records != nil {
		s.records = records
	}
}

// save rewrites the backing file. Failures are logged and swallowed.
func (s *Store) save() {
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.logger.WithError(errors.Persistence("mkdir", err)).Warn("Failed to create state directory")
		return
	}

	data, err := yaml.Marshal(s.records)
	if err != nil {
		s.logger.WithError(errors.Persistence("marshal", err)).Warn("Failed to encode recent projects")
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.WithError(errors.Persistence("write", err)).Warn("Failed to write recent projects")
	}
}

// Add increments the usage count for path, creating the entry at count 1 if
// absent, and persists the full mapping.
func (s *Store) Add(path string) {
	rec, ok := s.records[path]
	if !ok {
		rec = &record{}
		s.records[path] = rec
	}
	rec.Count++
	rec.LastUsed = s.now()
	s.save()
}

// TopN returns up to n entries sorted by count descending. Equal counts are
// ordered most recently used first, then by path. Paths that no longer
// exist on disk are dropped from the mapping; the file is rewritten when
// any drop occurred.
func (s *Store) TopN(n int) []Entry {
	pruned := false
	for path := range s.records {
		if _, err := os.Stat(path); err != nil {
			delete(s.records, path)
			pruned = true
		}
	}
	if pruned {
		s.save()
	}

	entries := make([]Entry, 0, len(s.records))
	for path, rec := range s.records {
		entries = append(entries, Entry{Path: path, Count: rec.Count, LastUsed: rec.LastUsed})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if !entries[i].LastUsed.Equal(entries[j].LastUsed) {
			return entries[i].LastUsed.After(entries[j].LastUsed)
		}
		return entries[i].Path < entries[j].Path
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Clear empties the mapping and persists the empty state.
func (s *Store) Clear() {
	s.records = make(map[string]*record)
	s.save()
}

// Len returns the number of tracked projects, including ones not yet pruned.
func (s *Store) Len() int {
	return len(s.records)
}

// FilePath returns the location of the backing file.
func (s *Store) FilePath() string {
	return s.path
}
