// Package manifest implements the persisted build-history store.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a flat JSON file. Commits stay
// in memory until Flush so a batch writes the file at most once.
type Store struct {
	path   string
	logger ports.Logger

	mu      sync.RWMutex
	entries domain.Manifest
}

// NewStore loads the manifest at the given path. A missing file yields an
// empty manifest; an unreadable or corrupt file also degrades to an empty
// manifest (logged) so a full rebuild can proceed instead of aborting.
func NewStore(path string, logger ports.Logger) *Store {
	s := &Store{
		path:    filepath.Clean(path),
		logger:  logger,
		entries: make(domain.Manifest),
	}
	s.load()
	return s
}

func (s *Store) load() {
	//nolint:gosec // Path is cleaned and comes from the pipeline config
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("manifest unreadable, forcing full rebuild: " + err.Error())
		}
		return
	}

	if len(data) == 0 {
		return
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.logger.Warn("manifest corrupt, forcing full rebuild: " + err.Error())
		s.entries = make(domain.Manifest)
	}
}

// Entry returns a copy of the stored entry for a target name.
func (s *Store) Entry(name string) (*domain.ManifestEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Commit stages a new entry in memory, overwriting any prior entry.
func (s *Store) Commit(name string, entry domain.ManifestEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = entry
}

// Flush writes the manifest to disk in one shot.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create manifest directory")
	}

	//nolint:gosec // Manifest is project metadata, not sensitive
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}

	return nil
}
