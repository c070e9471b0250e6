package db

import (
	"context"
	"database/sql"
	"time"
)

// SQLiteSlot stores editor documents in the embedg_slots table.
type SQLiteSlot struct {
	db *sql.DB
}

// NewSQLiteSlot wraps an open database. The schema must already exist.
func NewSQLiteSlot(db *sql.DB) *SQLiteSlot {
	return &SQLiteSlot{db: db}
}

// Load returns the stored record for key.
func (s *SQLiteSlot) Load(ctx context.Context, key string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT data FROM embedg_slots WHERE name = ?", key)
	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(data), true, nil
}

// Save upserts the record for key.
func (s *SQLiteSlot) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO embedg_slots (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		  data = excluded.data,
		  updated_at = excluded.updated_at
	`, key, string(data), time.Now().UnixMilli())
	return err
}

// Close is a no-op; the database handle is owned by the caller.
func (s *SQLiteSlot) Close() error {
	return nil
}
