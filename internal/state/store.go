// Package state persists generator decisions across runs.
//
// The store is a small JSON key/value file kept in the destination root.
// It is read once when a run starts and flushed once after resolution;
// it is always passed around explicitly, never accessed as a global.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/webgen/cli/internal/output"
)

// Filename is the state file name inside the destination root.
const Filename = ".webgenrc.json"

// KeyServerType is the store key for the chosen server framework.
const KeyServerType = "serverType"

// Store is a durable key/value store scoped to one destination root.
type Store struct {
	root   string
	values map[string]string
	dirty  bool
}

// Open loads the store from root. A missing or unreadable state file
// yields an empty store; it is never fatal.
func Open(root string) *Store {
	s := &Store{root: root, values: make(map[string]string)}

	data, err := os.ReadFile(s.path())
	if err != nil {
		output.Debug("no state file found", "path", s.path())
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		output.Warn("malformed state file ignored", "path", s.path(), "error", err)
		s.values = make(map[string]string)
	}
	return s
}

func (s *Store) path() string {
	return filepath.Join(s.root, Filename)
}

// Root returns the destination root the store currently targets.
func (s *Store) Root() string {
	return s.root
}

// MoveTo retargets the store to a relocated destination root. Values
// already read are kept; the next Flush writes to the new location.
func (s *Store) MoveTo(root string) {
	s.root = root
	s.dirty = true
}

// Get returns the stored value for key, "" when absent.
func (s *Store) Get(key string) string {
	return s.values[key]
}

// Set stores a value for key. The change is durable only after Flush.
func (s *Store) Set(key, value string) {
	if s.values[key] == value {
		return
	}
	s.values[key] = value
	s.dirty = true
}

// Flush writes the store to disk if anything changed.
func (s *Store) Flush() error {
	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
