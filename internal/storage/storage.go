// Package storage persists the account directory as a single snapshot.
//
// The snapshot is one JSON array of accounts, each carrying its full task
// sequence. Every save replaces the previous snapshot; there is no
// versioning and no partial update.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by Backend.Read when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot")

// AccountRecord is the persisted form of one account.
type AccountRecord struct {
	Username string       `json:"username"`
	Password string       `json:"password"`
	Tasks    []TaskRecord `json:"tasks"`
}

// TaskRecord is the persisted form of one task.
type TaskRecord struct {
	ID     int64  `json:"id"`
	Task   string `json:"task"`
	Status string `json:"status"`
}

// Backend reads and writes raw snapshot bytes.
type Backend interface {
	// Read returns the last written snapshot, or ErrNoSnapshot.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the snapshot.
	Write(ctx context.Context, data []byte) error

	// Close releases resources held by the backend.
	Close() error
}

// Repository encodes account records to and from a Backend.
type Repository struct {
	backend Backend
}

// NewRepository wraps backend.
func NewRepository(backend Backend) *Repository {
	return &Repository{backend: backend}
}

// Load returns the persisted accounts. A missing snapshot yields an empty
// slice and no error.
func (r *Repository) Load(ctx context.Context) ([]AccountRecord, error) {
	data, err := r.backend.Read(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		return []AccountRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data)
}

// Save overwrites the snapshot with accounts.
func (r *Repository) Save(ctx context.Context, accounts []AccountRecord) error {
	data, err := Encode(accounts)
	if err != nil {
		return err
	}
	if err := r.backend.Write(ctx, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying backend.
func (r *Repository) Close() error {
	return r.backend.Close()
}

// Encode serializes accounts as a JSON array. Nil task lists are written as
// empty arrays.
func Encode(accounts []AccountRecord) ([]byte, error) {
	out := make([]AccountRecord, len(accounts))
	for i, acc := range accounts {
		if acc.Tasks == nil {
			acc.Tasks = []TaskRecord{}
		}
		out[i] = acc
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) ([]AccountRecord, error) {
	var accounts []AccountRecord
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if accounts == nil {
		accounts = []AccountRecord{}
	}
	return accounts, nil
}
