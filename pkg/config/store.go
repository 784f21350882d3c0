// Package config persists user preferences and optional UI settings for the
// saver under the user's config directory (~/.cogsaver by default).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a JSON-backed key/value preference store. Every Set is
// persisted immediately, so preferences survive a crash the same way they
// survive a clean exit.
type FileStore struct {
	path string
	data map[string]string
	mu   sync.RWMutex
}

// NewFileStore creates a preference store backed by the given file.
// If path is empty, defaults to ~/.cogsaver/config.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".cogsaver", "config.json")
	}

	store := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	// Try to load existing preferences, but don't fail if the file is absent
	if err := store.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load preferences from %s: %w", path, err)
	}

	return store, nil
}

// Load reads the preference file from disk, replacing in-memory state.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]string)
			return nil
		}
		return fmt.Errorf("failed to open preference file: %w", err)
	}
	defer file.Close()

	var stored struct {
		Version     string            `json:"version"`
		Preferences map[string]string `json:"preferences"`
	}
	if err := json.NewDecoder(file).Decode(&stored); err != nil {
		return fmt.Errorf("failed to decode preference file: %w", err)
	}

	if stored.Preferences != nil {
		s.data = stored.Preferences
	} else {
		s.data = make(map[string]string)
	}
	return nil
}

// Get returns the value for key and whether it was present.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok
}

// Set stores key=value and writes the file immediately.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.save()
}

// Path returns the file path of the store.
func (s *FileStore) Path() string {
	return s.path
}

// save writes the preference file atomically via a temp file and rename.
// Callers must hold the write lock.
func (s *FileStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp preference file: %w", err)
	}

	stored := struct {
		Version     string            `json:"version"`
		Preferences map[string]string `json:"preferences"`
	}{
		Version:     "1.0",
		Preferences: s.data,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stored); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
