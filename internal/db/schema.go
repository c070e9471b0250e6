package db

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
-- Persisted editor documents, one row per store name
CREATE TABLE IF NOT EXISTS embedg_slots (
  name TEXT PRIMARY KEY,               -- e.g., "current-message"
  data TEXT NOT NULL,                  -- JSON: {"state": ..., "version": N}
  updated_at INTEGER NOT NULL          -- unix ms
);

-- Saved message library
CREATE TABLE IF NOT EXISTS embedg_saved_messages (
  id TEXT PRIMARY KEY,                 -- uuid
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  data TEXT NOT NULL,                  -- JSON message
  updated_at INTEGER NOT NULL          -- unix ms
);

CREATE INDEX IF NOT EXISTS idx_embedg_saved_messages_updated ON embedg_saved_messages(updated_at);

-- Configuration
CREATE TABLE IF NOT EXISTS embedg_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

const defaultConfigSQL = `
INSERT OR IGNORE INTO embedg_config (key, value) VALUES ('highlight_style', 'dracula');
INSERT OR IGNORE INTO embedg_config (key, value) VALUES ('default_embed_color', '');
`

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// InitSchema initializes the embedg schema.
func InitSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := initSchemaWith(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func initSchemaWith(db DBTX) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return err
	}
	if err := migrateSchema(db); err != nil {
		return err
	}
	if _, err := db.Exec(defaultConfigSQL); err != nil {
		return err
	}
	return nil
}

// SchemaExists reports whether the embedg schema is present.
func SchemaExists(db *sql.DB) (bool, error) {
	row := db.QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name='embedg_slots'
	`)
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name != "", nil
}

type tableColumn struct {
	Name    string
	ColType string
	NotNull int
	PK      int
}

func getTableInfo(db DBTX, table string) ([]tableColumn, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []tableColumn
	for rows.Next() {
		var col tableColumn
		var cid int
		var defaultValue sql.NullString
		if err := rows.Scan(&cid, &col.Name, &col.ColType, &col.NotNull, &defaultValue, &col.PK); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

func hasColumn(columns []tableColumn, name string) bool {
	for _, col := range columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// migrateSchema brings databases created by older builds up to date.
func migrateSchema(db DBTX) error {
	savedColumns, err := getTableInfo(db, "embedg_saved_messages")
	if err != nil {
		return err
	}
	// Early libraries stored only name and data.
	if len(savedColumns) > 0 && !hasColumn(savedColumns, "description") {
		if _, err := db.Exec("ALTER TABLE embedg_saved_messages ADD COLUMN description TEXT"); err != nil {
			return err
		}
	}
	return nil
}
