// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the paper collection as one pretty-printed JSON
// file per paper. Add, Update, and Delete enforce existence preconditions;
// Get and ListAll degrade to absence for missing or unreadable records.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-reader/pkg/types"
)

// ErrAlreadyExists is returned by Add when a paper with the same ID is
// already in the collection.
var ErrAlreadyExists = errors.New("paper already exists")

// ErrNotFound is returned by Update and Delete when no paper with the
// given ID is in the collection.
var ErrNotFound = errors.New("paper not found")

// Store manages the paper collection directory. It performs no locking;
// a single process owns the collection at a time.
type Store struct {
	dataDir string
}

// New creates a store rooted at cfg.DataDir, creating the directory if needed.
func New(cfg types.StoreConfig) (*Store, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("store: data directory not configured")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating collection directory %s: %w", cfg.DataDir, err)
	}
	return &Store{dataDir: cfg.DataDir}, nil
}

// Add writes a new paper to the collection. It fails with ErrAlreadyExists
// when a record for the paper's ID is already present.
func (s *Store) Add(p *types.Paper) error {
	path := s.paperPath(p.ID)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("paper %s: %w", p.ID, ErrAlreadyExists)
	}
	return s.write(p, path)
}

// Get returns the paper with the given ID. The second return value is false
// when the paper is absent; a record that exists on disk but fails to parse
// is also reported as absent.
func (s *Store) Get(id string) (*types.Paper, bool) {
	p, err := readPaper(s.paperPath(id))
	if err != nil {
		return nil, false
	}
	return p, true
}

// Update overwrites an existing paper wholesale. It fails with ErrNotFound
// when no record for the paper's ID is present. Lookups are keyed by ID, so
// an update can never change a paper's ID.
func (s *Store) Update(p *types.Paper) error {
	path := s.paperPath(p.ID)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("paper %s: %w", p.ID, ErrNotFound)
	}
	return s.write(p, path)
}

// Delete removes the paper with the given ID. It fails with ErrNotFound
// when the paper is absent.
func (s *Store) Delete(id string) error {
	path := s.paperPath(id)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("paper %s: %w", id, ErrNotFound)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting paper %s: %w", id, err)
	}
	return nil
}

// ListAll returns every paper in the collection, in directory enumeration
// order. Files that fail to parse are skipped. A missing collection
// directory yields an empty list.
func (s *Store) ListAll() ([]*types.Paper, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading collection directory %s: %w", s.dataDir, err)
	}

	var papers []*types.Paper
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		p, err := readPaper(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			continue
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// Search returns the papers whose title, or whose concatenated insight
// problem, method, and key results, contains the query as a
// case-insensitive substring. Results keep ListAll order.
func (s *Store) Search(query string) ([]*types.Paper, error) {
	papers, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var results []*types.Paper
	for _, p := range papers {
		if strings.Contains(strings.ToLower(p.Title), q) {
			results = append(results, p)
			continue
		}
		insightText := p.Insights.Problem + p.Insights.Method + p.Insights.KeyResults
		if strings.Contains(strings.ToLower(insightText), q) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Diagnose returns the filenames in the collection directory that exist but
// fail to parse as papers. Get and ListAll silently skip these; Diagnose
// makes them visible without changing that contract.
func (s *Store) Diagnose() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading collection directory %s: %w", s.dataDir, err)
	}

	var bad []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if _, err := readPaper(filepath.Join(s.dataDir, entry.Name())); err != nil {
			bad = append(bad, entry.Name())
		}
	}
	return bad, nil
}

// paperPath maps a paper ID to its file location. Characters unsafe for
// filenames (":" and "/") are replaced with "_"; the namespaced ID scheme
// keeps this mapping injective.
func (s *Store) paperPath(id string) string {
	safe := strings.NewReplacer(":", "_", "/", "_").Replace(id)
	return filepath.Join(s.dataDir, safe+".json")
}

// write serializes the paper to a temp file and renames it into place, so a
// crash mid-write cannot leave a truncated record behind.
func (s *Store) write(p *types.Paper, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling paper %s: %w", p.ID, err)
	}

	tmp, err := os.CreateTemp(s.dataDir, ".paper-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing paper %s: %w", p.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing paper %s: %w", p.ID, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving paper %s: %w", p.ID, err)
	}
	return nil
}

func readPaper(path string) (*types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p types.Paper
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
