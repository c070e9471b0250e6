package db

import (
	"database/sql"
	"fmt"

	"github.com/adamavenir/embedg/internal/core"
	_ "modernc.org/sqlite"
)

// OpenDatabase opens the SQLite database for a project and ensures the
// schema exists.
func OpenDatabase(project core.Project) (*sql.DB, error) {
	core.EnsureGitignore(project.Dir())

	conn, err := sql.Open("sqlite", project.DBPath)
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := InitSchema(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return conn, nil
}
