package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

const slotKeyPrefix = "slot:"

// PebbleSlot stores editor documents in a pebble key-value store.
type PebbleSlot struct {
	db *pebble.DB
}

// OpenPebbleSlot opens (or creates) a pebble store at path.
func OpenPebbleSlot(path string) (*PebbleSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &PebbleSlot{db: db}, nil
}

// Load returns the stored record for key.
func (s *PebbleSlot) Load(_ context.Context, key string) ([]byte, bool, error) {
	v, closer, err := s.db.Get([]byte(slotKeyPrefix + key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer closer.Close()
	// pebble owns v until closer is closed
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Save writes the record for key durably.
func (s *PebbleSlot) Save(_ context.Context, key string, data []byte) error {
	return s.db.Set([]byte(slotKeyPrefix+key), data, pebble.Sync)
}

// Close closes the underlying store.
func (s *PebbleSlot) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
