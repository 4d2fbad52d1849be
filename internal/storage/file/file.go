// Package file stores the snapshot as a JSON file on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"todo/internal/storage"
)

// Backend implements storage.Backend over a single file.
type Backend struct {
	path string
}

// New returns a backend writing to path. The file is created on first write.
func New(path string) *Backend {
	return &Backend{path: path}
}

// Path returns the snapshot file path.
func (b *Backend) Path() string {
	return b.path
}

// Read implements storage.Backend.
func (b *Backend) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, storage.ErrNoSnapshot
	}
	return data, nil
}

// Write implements storage.Backend. The new snapshot is written to a
// temporary file and renamed over the old one.
func (b *Backend) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Close implements storage.Backend.
func (b *Backend) Close() error { return nil }
