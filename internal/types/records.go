package types

// SavedMessage is a named snapshot kept in the local library.
type SavedMessage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Data        Message `json:"data"`
	UpdatedAt   int64   `json:"updated_at"`
}

// ConfigEntry represents a config key/value pair.
type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
