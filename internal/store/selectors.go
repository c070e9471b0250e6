package store

import (
	"github.com/adamavenir/embedg/internal/types"
)

// FieldIDs selects the ordered field ids of embed i. It yields nil when the
// embed does not exist.
func FieldIDs(i int) func(types.Message) []int {
	return func(m types.Message) []int {
		if !inRange(m.Embeds, i) {
			return nil
		}
		ids := make([]int, len(m.Embeds[i].Fields))
		for j, field := range m.Embeds[i].Fields {
			ids[j] = field.ID
		}
		return ids
	}
}

// EmbedIDs selects the ordered embed ids.
func EmbedIDs(m types.Message) []int {
	ids := make([]int, len(m.Embeds))
	for i, embed := range m.Embeds {
		ids[i] = embed.ID
	}
	return ids
}

// GetEmbed returns a copy of embed i.
func (s *Store) GetEmbed(i int) (types.Embed, bool) {
	var embed types.Embed
	var ok bool
	s.read(func(m types.Message) {
		if inRange(m.Embeds, i) {
			embed, ok = m.Embeds[i].Clone(), true
		}
	})
	return embed, ok
}

// GetEmbedField returns a copy of field j of embed i.
func (s *Store) GetEmbedField(i, j int) (types.EmbedField, bool) {
	var field types.EmbedField
	var ok bool
	s.read(func(m types.Message) {
		if inRange(m.Embeds, i) && inRange(m.Embeds[i].Fields, j) {
			field, ok = m.Embeds[i].Fields[j].Clone(), true
		}
	})
	return field, ok
}

// GetButton returns a copy of component j of row i when it is a button.
func (s *Store) GetButton(i, j int) *types.Button {
	var button *types.Button
	s.read(func(m types.Message) {
		if !inRange(m.Components, i) || !inRange(m.Components[i].Components, j) {
			return
		}
		if b, ok := m.Components[i].Components[j].(*types.Button); ok {
			button = b.Clone()
		}
	})
	return button
}

// GetSelectMenu returns a copy of component j of row i when it is a select menu.
func (s *Store) GetSelectMenu(i, j int) *types.SelectMenu {
	var menu *types.SelectMenu
	s.read(func(m types.Message) {
		if !inRange(m.Components, i) || !inRange(m.Components[i].Components, j) {
			return
		}
		if sm, ok := m.Components[i].Components[j].(*types.SelectMenu); ok {
			menu = sm.Clone()
		}
	})
	return menu
}
