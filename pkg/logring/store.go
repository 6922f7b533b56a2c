// Copyright (c) 2026 EventInc. All rights reserved.

package logring

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the durable backend for a persisted log buffer.
type Store interface {
	// Load returns the previously persisted entries, oldest first.
	// A missing snapshot is not an error; it returns (nil, nil).
	Load() ([]Entry, error)

	// Save replaces the persisted snapshot with entries.
	Save(entries []Entry) error

	// Clear removes the persisted snapshot.
	Clear() error
}

// FileStore persists the log buffer as a single JSON array on disk.
//
// It is the filesystem analog of browser local storage: a small keyed blob
// that survives restarts. Writes go through a temp file plus rename so a
// crash mid-write never leaves a truncated snapshot.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot file.
func (s *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("logring: read %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("logring: decode %s: %w", s.path, err)
	}

	return entries, nil
}

// Save writes the snapshot atomically (temp file + rename).
func (s *FileStore) Save(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("logring: encode entries: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("logring: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".logring-*")
	if err != nil {
		return fmt.Errorf("logring: create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("logring: write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("logring: close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("logring: replace %s: %w", s.path, err)
	}

	return nil
}

// Clear deletes the snapshot file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("logring: remove %s: %w", s.path, err)
	}
	return nil
}
