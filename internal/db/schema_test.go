package db

import (
	"testing"
)

func TestInitSchemaCreatesTables(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	exists, err := SchemaExists(db)
	if err != nil {
		t.Fatalf("schema exists: %v", err)
	}
	if !exists {
		t.Fatal("expected schema to exist")
	}

	rows, err := db.Query(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name LIKE 'embedg_%'
		ORDER BY name
	`)
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}
	defer rows.Close()

	seen := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan table: %v", err)
		}
		seen[name] = true
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	for _, table := range []string{"embedg_slots", "embedg_saved_messages", "embedg_config"} {
		if !seen[table] {
			t.Fatalf("expected table %s", table)
		}
	}
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)
	if err := SetConfig(db, "highlight_style", "monokai"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	requireSchema(t, db)

	value, err := GetConfig(db, "highlight_style")
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if value != "monokai" {
		t.Fatalf("re-init overwrote config: %q", value)
	}
}

func TestMigrateAddsDescriptionColumn(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Exec(`
		CREATE TABLE embedg_saved_messages (
		  id TEXT PRIMARY KEY,
		  name TEXT NOT NULL UNIQUE,
		  data TEXT NOT NULL,
		  updated_at INTEGER NOT NULL
		)
	`); err != nil {
		t.Fatalf("create legacy table: %v", err)
	}
	requireSchema(t, db)

	columns, err := getTableInfo(db, "embedg_saved_messages")
	if err != nil {
		t.Fatalf("table info: %v", err)
	}
	if !hasColumn(columns, "description") {
		t.Fatalf("expected description column after migration")
	}
}

func TestDefaultConfigInserted(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	value, err := GetConfig(db, "highlight_style")
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if value != "dracula" {
		t.Fatalf("expected highlight_style=dracula, got %s", value)
	}

	entries, err := GetAllConfig(db)
	if err != nil {
		t.Fatalf("all config: %v", err)
	}
	if len(entries) < 2 || entries[0].Key != "default_embed_color" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
