package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/gobwas/glob"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a saved message does not exist.
var ErrNotFound = errors.New("not found")

// SaveMessage stores msg under name. Saving over an existing name keeps its id
// and replaces the data and description.
func SaveMessage(db *sql.DB, name string, description *string, msg types.Message) (types.SavedMessage, error) {
	if name == "" {
		return types.SavedMessage{}, fmt.Errorf("saved message name is required")
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return types.SavedMessage{}, err
	}

	saved := types.SavedMessage{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Data:        msg,
		UpdatedAt:   time.Now().UnixMilli(),
	}
	row := db.QueryRow(`
		INSERT INTO embedg_saved_messages (id, name, description, data, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		  description = excluded.description,
		  data = excluded.data,
		  updated_at = excluded.updated_at
		RETURNING id
	`, saved.ID, saved.Name, saved.Description, string(data), saved.UpdatedAt)
	if err := row.Scan(&saved.ID); err != nil {
		return types.SavedMessage{}, err
	}
	return saved, nil
}

// GetSavedMessage looks a saved message up by id or name.
func GetSavedMessage(db *sql.DB, ref string) (types.SavedMessage, error) {
	row := db.QueryRow(`
		SELECT id, name, description, data, updated_at
		FROM embedg_saved_messages
		WHERE id = ? OR name = ?
		ORDER BY CASE WHEN id = ? THEN 0 ELSE 1 END
		LIMIT 1
	`, ref, ref, ref)
	saved, err := scanSavedMessage(row)
	if err == sql.ErrNoRows {
		return types.SavedMessage{}, fmt.Errorf("saved message %q: %w", ref, ErrNotFound)
	}
	return saved, err
}

// ListSavedMessages returns saved messages, most recent first. A non-empty
// filter is a glob matched against the name.
func ListSavedMessages(db *sql.DB, filter string) ([]types.SavedMessage, error) {
	var matcher glob.Glob
	if filter != "" {
		compiled, err := glob.Compile(filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
		}
		matcher = compiled
	}

	rows, err := db.Query(`
		SELECT id, name, description, data, updated_at
		FROM embedg_saved_messages
		ORDER BY updated_at DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []types.SavedMessage
	for rows.Next() {
		item, err := scanSavedMessage(rows)
		if err != nil {
			return nil, err
		}
		if matcher != nil && !matcher.Match(item.Name) {
			continue
		}
		saved = append(saved, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteSavedMessage removes a saved message by id or name.
func DeleteSavedMessage(db *sql.DB, ref string) error {
	result, err := db.Exec("DELETE FROM embedg_saved_messages WHERE id = ? OR name = ?", ref, ref)
	if err != nil {
		return err
	}
	count, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("saved message %q: %w", ref, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSavedMessage(row scanner) (types.SavedMessage, error) {
	var saved types.SavedMessage
	var description sql.NullString
	var data string
	if err := row.Scan(&saved.ID, &saved.Name, &description, &data, &saved.UpdatedAt); err != nil {
		return types.SavedMessage{}, err
	}
	if description.Valid {
		saved.Description = &description.String
	}
	if err := json.Unmarshal([]byte(data), &saved.Data); err != nil {
		return types.SavedMessage{}, fmt.Errorf("decode saved message %s: %w", saved.ID, err)
	}
	return saved, nil
}
