package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot implements Slot on the local filesystem: one file per key
// under a base directory.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed slot for the given key. The base
// directory is created if it doesn't exist.
func NewFileSlot(basePath, key string) (*FileSlot, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create slot directory: %w", err)
	}

	return &FileSlot{
		path: filepath.Join(basePath, key+".json"),
	}, nil
}

// Read returns the slot's contents, or ErrNotFound when the file is
// missing.
func (s *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}
	return data, nil
}

// Write replaces the slot's contents.
func (s *FileSlot) Write(data []byte) error {
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

// Erase removes the slot's file. Removing a missing file is not an
// error.
func (s *FileSlot) Erase() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to erase slot: %w", err)
	}
	return nil
}
