package store

import (
	"github.com/adamavenir/embedg/internal/types"
)

// updateField copies field j of embed i, lets fn edit it, and swaps it in.
func (s *Store) updateField(op string, i, j int, fn func(f *types.EmbedField) bool) {
	s.updateEmbed(op, i, func(e *types.Embed) bool {
		if !inRange(e.Fields, j) {
			return false
		}
		field := e.Fields[j]
		if !fn(&field) {
			return false
		}
		e.Fields = replaceItem(e.Fields, j, field)
		return true
	})
}

// AddEmbedField appends a field to embed i.
func (s *Store) AddEmbedField(i int, field types.EmbedField) {
	clone := field.Clone()
	s.updateEmbed("add_embed_field", i, func(e *types.Embed) bool {
		e.Fields = appendItem(e.Fields, clone)
		return true
	})
}

// ClearEmbedFields removes every field of embed i.
func (s *Store) ClearEmbedFields(i int) {
	s.updateEmbed("clear_embed_fields", i, func(e *types.Embed) bool {
		e.Fields = []types.EmbedField{}
		return true
	})
}

// MoveEmbedFieldUp swaps field j with its predecessor.
func (s *Store) MoveEmbedFieldUp(i, j int) {
	s.updateEmbed("move_embed_field_up", i, func(e *types.Embed) bool {
		var ok bool
		e.Fields, ok = moveItem(e.Fields, j, -1)
		return ok
	})
}

// MoveEmbedFieldDown swaps field j with its successor.
func (s *Store) MoveEmbedFieldDown(i, j int) {
	s.updateEmbed("move_embed_field_down", i, func(e *types.Embed) bool {
		var ok bool
		e.Fields, ok = moveItem(e.Fields, j, 1)
		return ok
	})
}

// DuplicateEmbedField inserts a copy of field j, with a fresh id, after it.
func (s *Store) DuplicateEmbedField(i, j int) {
	s.updateEmbed("duplicate_embed_field", i, func(e *types.Embed) bool {
		if !inRange(e.Fields, j) {
			return false
		}
		clone := e.Fields[j].Clone()
		clone.ID = s.ids.NextID()
		e.Fields, _ = insertAfter(e.Fields, j, clone)
		return true
	})
}

// DeleteEmbedField removes field j of embed i.
func (s *Store) DeleteEmbedField(i, j int) {
	s.updateEmbed("delete_embed_field", i, func(e *types.Embed) bool {
		var ok bool
		e.Fields, ok = removeItem(e.Fields, j)
		return ok
	})
}

// SetEmbedFieldName sets the field name.
func (s *Store) SetEmbedFieldName(i, j int, name string) {
	s.updateField("set_embed_field_name", i, j, func(f *types.EmbedField) bool {
		if f.Name == name {
			return false
		}
		f.Name = name
		return true
	})
}

// SetEmbedFieldValue sets the field value.
func (s *Store) SetEmbedFieldValue(i, j int, value string) {
	s.updateField("set_embed_field_value", i, j, func(f *types.EmbedField) bool {
		if f.Value == value {
			return false
		}
		f.Value = value
		return true
	})
}

// SetEmbedFieldInline sets the inline flag. nil clears it.
func (s *Store) SetEmbedFieldInline(i, j int, inline *bool) {
	s.updateField("set_embed_field_inline", i, j, func(f *types.EmbedField) bool {
		if inline == nil {
			if f.Inline == nil {
				return false
			}
			f.Inline = nil
			return true
		}
		if f.Inline != nil && *f.Inline == *inline {
			return false
		}
		value := *inline
		f.Inline = &value
		return true
	})
}
