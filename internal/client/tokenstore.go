// Copyright (c) 2026 EventInc. All rights reserved.

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the session token between process runs.
//
// # Semantics
//
// The store is last-writer-wins: concurrent processes sharing a store see
// whichever token was saved most recently. A missing token is not an error;
// Load returns the empty string.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)

	// Save replaces the stored token.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// FileTokenStore keeps the token in a single file under the user's home
// directory, the durable-storage analog of the admin frontend's token entry.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a token store backed by the given file path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultTokenPath returns the conventional token location under the user
// config directory.
func DefaultTokenPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("client: cannot resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "eventinc", "token"), nil
}

// Load implements [TokenStore].
func (store *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("client: failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save implements [TokenStore]. The write is atomic (temp file + rename) so a
// crash never leaves a truncated token behind.
func (store *FileTokenStore) Save(token string) error {
	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("client: failed to create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("client: failed to create temp token file: %w", err)
	}

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("client: failed to write token: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("client: failed to close token file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("client: failed to chmod token file: %w", err)
	}

	if err := os.Rename(tmp.Name(), store.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("client: failed to replace token file: %w", err)
	}

	return nil
}

// Clear implements [TokenStore].
func (store *FileTokenStore) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("client: failed to remove token: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process [TokenStore], used in tests and by
// callers that do not want cross-process persistence.
type MemoryTokenStore struct {
	token string
}

// Load implements [TokenStore].
func (store *MemoryTokenStore) Load() (string, error) { return store.token, nil }

// Save implements [TokenStore].
func (store *MemoryTokenStore) Save(token string) error {
	store.token = token
	return nil
}

// Clear implements [TokenStore].
func (store *MemoryTokenStore) Clear() error {
	store.token = ""
	return nil
}
