package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	storeDirName   = ".checkout-zone"
	storeFilePerms = 0600 // Read/write for owner only - holds credentials
	storeDirPerms  = 0700
)

// Store is a persistent string key-value store backing session state and UI
// preferences, one JSON file per environment under ~/.checkout-zone.
// It fills the role browser localStorage plays for the web client.
type Store struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// NewStore opens (or creates) the store for the given environment.
// A corrupt store file is discarded rather than failing startup.
func NewStore(env string) (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, storeDirName)
	if err := os.MkdirAll(dir, storeDirPerms); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &Store{
		path:   filepath.Join(dir, fmt.Sprintf("session.%s.json", env)),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		// Unreadable state is worthless; start over.
		s.values = make(map[string]string)
		_ = os.Remove(s.path)
	}
	return s, nil
}

// NewStoreAt opens a store at an explicit path. Used by tests.
func NewStoreAt(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
		_ = os.Remove(path)
	}
	return s, nil
}

// Get returns the stored value for key, or "" if absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores key=value and flushes to disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// Remove deletes key and flushes to disk.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, data, storeFilePerms); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
