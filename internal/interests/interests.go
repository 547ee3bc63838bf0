// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interests stores the user's research interests as a single JSON
// file. Membership edits are idempotent: adding a tag twice or removing an
// absent one is a no-op.
package interests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pdiddy/paper-reader/pkg/types"
)

const interestsFile = "interests.json"

// Manager reads and writes the interests file.
type Manager struct {
	path string
}

// New creates a Manager rooted at cfg.DataDir, creating the directory if needed.
func New(cfg types.InterestsConfig) (*Manager, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("interests: data directory not configured")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating interests directory %s: %w", cfg.DataDir, err)
	}
	return &Manager{path: filepath.Join(cfg.DataDir, interestsFile)}, nil
}

// Load returns the stored interests. The second return value is false when
// no interests have been saved yet or the file cannot be parsed.
func (m *Manager) Load() (*types.Interests, bool) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, false
	}
	var interests types.Interests
	if err := json.Unmarshal(data, &interests); err != nil {
		return nil, false
	}
	return &interests, true
}

// Save writes the interests file, replacing any previous contents.
func (m *Manager) Save(interests *types.Interests) error {
	data, err := json.MarshalIndent(interests, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling interests: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("saving interests: %w", err)
	}
	return nil
}

// AddArea adds a research area if not already present.
func (m *Manager) AddArea(area string) error {
	return m.edit(func(in *types.Interests) {
		in.Areas = appendUnique(in.Areas, area)
	})
}

// AddTopic adds a topic if not already present.
func (m *Manager) AddTopic(topic string) error {
	return m.edit(func(in *types.Interests) {
		in.Topics = appendUnique(in.Topics, topic)
	})
}

// AddCategory adds an arXiv category if not already present.
func (m *Manager) AddCategory(category string) error {
	return m.edit(func(in *types.Interests) {
		in.Categories = appendUnique(in.Categories, category)
	})
}

// RemoveArea removes a research area if present.
func (m *Manager) RemoveArea(area string) error {
	return m.edit(func(in *types.Interests) {
		in.Areas = remove(in.Areas, area)
	})
}

// RemoveTopic removes a topic if present.
func (m *Manager) RemoveTopic(topic string) error {
	return m.edit(func(in *types.Interests) {
		in.Topics = remove(in.Topics, topic)
	})
}

// RemoveCategory removes an arXiv category if present.
func (m *Manager) RemoveCategory(category string) error {
	return m.edit(func(in *types.Interests) {
		in.Categories = remove(in.Categories, category)
	})
}

func (m *Manager) edit(apply func(*types.Interests)) error {
	interests, ok := m.Load()
	if !ok {
		interests = &types.Interests{}
	}
	apply(interests)
	return m.Save(interests)
}

func appendUnique(list []string, value string) []string {
	if slices.Contains(list, value) {
		return list
	}
	return append(list, value)
}

func remove(list []string, value string) []string {
	idx := slices.Index(list, value)
	if idx < 0 {
		return list
	}
	return slices.Delete(list, idx, idx+1)
}
