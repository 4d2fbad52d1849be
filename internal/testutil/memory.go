package testutil

import (
	"context"

	"todo/internal/storage"
)

// MemoryBackend is an in-memory storage.Backend.
type MemoryBackend struct {
	Data   []byte
	Writes int

	// Error injection for testing
	ReadErr  error
	WriteErr error
}

// NewMemoryBackend creates an empty backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Read implements storage.Backend.
func (m *MemoryBackend) Read(ctx context.Context) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if m.Data == nil {
		return nil, storage.ErrNoSnapshot
	}
	return append([]byte(nil), m.Data...), nil
}

// Write implements storage.Backend.
func (m *MemoryBackend) Write(ctx context.Context, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Data = append([]byte(nil), data...)
	m.Writes++
	return nil
}

// Close implements storage.Backend.
func (m *MemoryBackend) Close() error { return nil }

// NewMemoryRepository returns a repository over a fresh MemoryBackend.
func NewMemoryRepository() (*storage.Repository, *MemoryBackend) {
	b := NewMemoryBackend()
	return storage.NewRepository(b), b
}
