package store

import "github.com/adamavenir/embedg/internal/types"

// DefaultMessage is the document a fresh store starts with.
func DefaultMessage(ids IDSource) types.Message {
	return types.Message{
		Content: "Hello World",
		TTS:     false,
		Embeds: []types.Embed{
			{
				ID:          ids.NextID(),
				Description: types.StringPtr("This is an embed!"),
				Fields:      []types.EmbedField{},
			},
		},
		Components: []types.ComponentRow{},
	}
}

// EmptyMessage is a blank document.
func EmptyMessage() types.Message {
	return types.Message{
		Content:    "",
		TTS:        false,
		Embeds:     []types.Embed{},
		Components: []types.ComponentRow{},
	}
}
