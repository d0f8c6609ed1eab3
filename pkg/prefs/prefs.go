// Package prefs is the persisted preference store, a flat string-to-string
// map backed by a single human-editable YAML file. The file is read once on
// load and rewritten in full on every set.
package prefs

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// well-known preference keys
const (
	KeyName = "name" // what the user wants to be called
	KeyCity = "city" // home city, default for weather lookups
)

// Store holds preferences in memory and mirrors them to the backing file.
// Safe for concurrent use. Set updates memory first, so on a write failure
// the new value still wins for the rest of the session.
type Store struct {
	path string
	mu   sync.RWMutex
	vals map[string]string
}

// Load reads the preference file. A missing file is an empty store, a file
// that exists but cannot be read or parsed is an error.
func Load(path string) (*Store, error) {
	s := &Store{path: path, vals: map[string]string{}}

	data, err := os.ReadFile(path) //nolint:gosec // path from config
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s.vals); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file %s: %w", path, err)
	}
	if s.vals == nil {
		s.vals = map[string]string{}
	}
	return s, nil
}

// NewMemory creates a store with no backing file, values live only for the
// process lifetime
func NewMemory() *Store {
	return &Store{vals: map[string]string{}}
}

// Get returns the value for key and whether it was set
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vals[key]
	return v, ok
}

// Set stores the value in memory and persists the whole map to the file.
// The in-memory value is kept even when the write fails.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vals[key] = value

	if s.path == "" { // memory-only store
		return nil
	}

	data, err := yaml.Marshal(s.vals)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write preferences file %s: %w", s.path, err)
	}
	return nil
}

// All returns a copy of every stored preference
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make(map[string]string, len(s.vals))
	for k, v := range s.vals {
		res[k] = v
	}
	return res
}

// Name returns the stored user name, empty when not set
func (s *Store) Name() string {
	v, _ := s.Get(KeyName)
	return v
}

// City returns the stored home city, empty when not set
func (s *Store) City() string {
	v, _ := s.Get(KeyCity)
	return v
}
