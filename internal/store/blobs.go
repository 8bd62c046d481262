package store

import (
	"database/sql"
	"errors"
	"sync"
)

// ErrBlobNotFound is returned when no blob is stored under a key
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a simple synchronous key-value blob store
type BlobStore interface {
	Get(key string) ([]byte, error)
	Put(key string, blob []byte) error
}

// Get retrieves the blob stored under key
func (db *DB) Get(key string) ([]byte, error) {
	var value []byte
	err := db.QueryRow(`
		SELECT value FROM blobs WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	return value, err
}

// Put stores or replaces the blob under key
func (db *DB) Put(key string, blob []byte) error {
	_, err := db.Exec(`
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, blob)
	return err
}

// MemoryBlobStore keeps blobs in memory. Useful for tests and throwaway sessions.
type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryBlobStore creates an empty in-memory blob store
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

// Get retrieves the blob stored under key
func (m *MemoryBlobStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return append([]byte(nil), blob...), nil
}

// Put stores or replaces the blob under key
func (m *MemoryBlobStore) Put(key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = append([]byte(nil), blob...)
	return nil
}
