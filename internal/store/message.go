package store

import (
	"github.com/adamavenir/embedg/internal/types"
)

// Clear resets the document to the default message.
func (s *Store) Clear() {
	msg := DefaultMessage(s.ids)
	s.update("clear", func(m *types.Message) bool {
		*m = msg
		return true
	})
}

// Reset replaces the document with an empty message.
func (s *Store) Reset() {
	s.update("reset", func(m *types.Message) bool {
		*m = EmptyMessage()
		return true
	})
}

// Replace swaps in a whole new document.
func (s *Store) Replace(msg types.Message) {
	clone := msg.Clone()
	if r, ok := s.ids.(reserver); ok {
		r.Reserve(clone.MaxID())
	}
	s.update("replace", func(m *types.Message) bool {
		*m = clone
		return true
	})
}

// SetContent sets the message text.
func (s *Store) SetContent(content string) {
	s.update("set_content", func(m *types.Message) bool {
		if m.Content == content {
			return false
		}
		m.Content = content
		return true
	})
}

// SetUsername overrides the sender name. Empty clears it.
func (s *Store) SetUsername(username string) {
	s.update("set_username", func(m *types.Message) bool {
		return setOptional(&m.Username, username)
	})
}

// SetAvatarURL overrides the sender avatar. Empty clears it.
func (s *Store) SetAvatarURL(avatarURL string) {
	s.update("set_avatar_url", func(m *types.Message) bool {
		return setOptional(&m.AvatarURL, avatarURL)
	})
}

// SetTTS toggles text-to-speech.
func (s *Store) SetTTS(tts bool) {
	s.update("set_tts", func(m *types.Message) bool {
		if m.TTS == tts {
			return false
		}
		m.TTS = tts
		return true
	})
}

// setOptional points *target at a new copy of value, or nil when value is
// empty. It never writes through the existing pointer.
func setOptional(target **string, value string) bool {
	current := *target
	if value == "" {
		if current == nil {
			return false
		}
		*target = nil
		return true
	}
	if current != nil && *current == value {
		return false
	}
	*target = types.StringPtr(value)
	return true
}
