package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeMessage accepts a bare message or a persisted {"state", "version"}
// record and returns the normalized message.
func DecodeMessage(data []byte) (Message, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Message{}, fmt.Errorf("invalid message JSON: %w", err)
	}
	if state, ok := probe["state"]; ok {
		if _, hasVersion := probe["version"]; hasVersion {
			data = state
		}
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("invalid message JSON: %w", err)
	}
	msg.Normalize()
	return msg, nil
}

// ParseColor accepts "#58b9ff", "0x58b9ff" or a decimal value. Empty input
// returns nil, meaning no color.
func ParseColor(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	base := 10
	digits := value
	switch {
	case strings.HasPrefix(value, "#"):
		base, digits = 16, value[1:]
	case strings.HasPrefix(strings.ToLower(value), "0x"):
		base, digits = 16, value[2:]
	}
	parsed, err := strconv.ParseInt(digits, base, 64)
	if err != nil || parsed < 0 || parsed > 0xffffff {
		return nil, fmt.Errorf("invalid color: %s. Use #rrggbb or a number up to 16777215", value)
	}
	color := int(parsed)
	return &color, nil
}

// FormatColor renders a color as #rrggbb.
func FormatColor(color *int) string {
	if color == nil {
		return ""
	}
	return fmt.Sprintf("#%06x", *color)
}
