package store

import (
	"github.com/adamavenir/embedg/internal/types"
)

// updateEmbed copies embed i, lets fn edit the copy, and swaps it into a new
// embed list. Out-of-range indices are ignored.
func (s *Store) updateEmbed(op string, i int, fn func(e *types.Embed) bool) {
	s.update(op, func(m *types.Message) bool {
		if !inRange(m.Embeds, i) {
			return false
		}
		embed := m.Embeds[i]
		if !fn(&embed) {
			return false
		}
		m.Embeds = replaceItem(m.Embeds, i, embed)
		return true
	})
}

// AddEmbed appends an embed.
func (s *Store) AddEmbed(embed types.Embed) {
	clone := embed.Clone()
	s.update("add_embed", func(m *types.Message) bool {
		m.Embeds = appendItem(m.Embeds, clone)
		return true
	})
}

// ClearEmbeds removes every embed.
func (s *Store) ClearEmbeds() {
	s.update("clear_embeds", func(m *types.Message) bool {
		m.Embeds = []types.Embed{}
		return true
	})
}

// MoveEmbedUp swaps embed i with its predecessor.
func (s *Store) MoveEmbedUp(i int) {
	s.update("move_embed_up", func(m *types.Message) bool {
		var ok bool
		m.Embeds, ok = moveItem(m.Embeds, i, -1)
		return ok
	})
}

// MoveEmbedDown swaps embed i with its successor.
func (s *Store) MoveEmbedDown(i int) {
	s.update("move_embed_down", func(m *types.Message) bool {
		var ok bool
		m.Embeds, ok = moveItem(m.Embeds, i, 1)
		return ok
	})
}

// DuplicateEmbed inserts a copy of embed i, with a fresh id, right after it.
func (s *Store) DuplicateEmbed(i int) {
	s.update("duplicate_embed", func(m *types.Message) bool {
		if !inRange(m.Embeds, i) {
			return false
		}
		clone := m.Embeds[i].Clone()
		clone.ID = s.ids.NextID()
		m.Embeds, _ = insertAfter(m.Embeds, i, clone)
		return true
	})
}

// DeleteEmbed removes embed i.
func (s *Store) DeleteEmbed(i int) {
	s.update("delete_embed", func(m *types.Message) bool {
		var ok bool
		m.Embeds, ok = removeItem(m.Embeds, i)
		return ok
	})
}

// SetEmbedTitle sets or clears the title.
func (s *Store) SetEmbedTitle(i int, title string) {
	s.updateEmbed("set_embed_title", i, func(e *types.Embed) bool {
		return setOptional(&e.Title, title)
	})
}

// SetEmbedDescription sets or clears the description.
func (s *Store) SetEmbedDescription(i int, description string) {
	s.updateEmbed("set_embed_description", i, func(e *types.Embed) bool {
		return setOptional(&e.Description, description)
	})
}

// SetEmbedURL sets or clears the title link.
func (s *Store) SetEmbedURL(i int, url string) {
	s.updateEmbed("set_embed_url", i, func(e *types.Embed) bool {
		return setOptional(&e.URL, url)
	})
}

// SetEmbedTimestamp sets or clears the timestamp.
func (s *Store) SetEmbedTimestamp(i int, timestamp string) {
	s.updateEmbed("set_embed_timestamp", i, func(e *types.Embed) bool {
		return setOptional(&e.Timestamp, timestamp)
	})
}

// SetEmbedColor sets the side color. nil clears it.
func (s *Store) SetEmbedColor(i int, color *int) {
	s.updateEmbed("set_embed_color", i, func(e *types.Embed) bool {
		if color == nil {
			if e.Color == nil {
				return false
			}
			e.Color = nil
			return true
		}
		value := *color
		e.Color = &value
		return true
	})
}

// SetEmbedAuthorName sets the author name. Clearing the last non-empty author
// property removes the author; setting a value creates one.
func (s *Store) SetEmbedAuthorName(i int, name string) {
	s.updateEmbed("set_embed_author_name", i, func(e *types.Embed) bool {
		return editAuthor(e, func(a *types.EmbedAuthor) { a.Name = name }, name != "")
	})
}

// SetEmbedAuthorURL sets or clears the author link.
func (s *Store) SetEmbedAuthorURL(i int, url string) {
	s.updateEmbed("set_embed_author_url", i, func(e *types.Embed) bool {
		return editAuthor(e, func(a *types.EmbedAuthor) { a.URL = types.StringPtr(url) }, url != "")
	})
}

// SetEmbedAuthorIconURL sets or clears the author icon.
func (s *Store) SetEmbedAuthorIconURL(i int, iconURL string) {
	s.updateEmbed("set_embed_author_icon_url", i, func(e *types.Embed) bool {
		return editAuthor(e, func(a *types.EmbedAuthor) { a.IconURL = types.StringPtr(iconURL) }, iconURL != "")
	})
}

// editAuthor applies set to a copy of the author. A missing author is only
// created when the new value is non-empty; an author whose properties are all
// empty afterwards is dropped.
func editAuthor(e *types.Embed, set func(a *types.EmbedAuthor), nonEmpty bool) bool {
	var author types.EmbedAuthor
	if e.Author == nil {
		if !nonEmpty {
			return false
		}
	} else {
		author = *e.Author
	}
	set(&author)
	if author.Name == "" && author.URL == nil && author.IconURL == nil {
		e.Author = nil
		return true
	}
	e.Author = &author
	return true
}

// SetEmbedFooterText sets or clears the footer text.
func (s *Store) SetEmbedFooterText(i int, text string) {
	s.updateEmbed("set_embed_footer_text", i, func(e *types.Embed) bool {
		return editFooter(e, func(f *types.EmbedFooter) { f.Text = types.StringPtr(text) }, text != "")
	})
}

// SetEmbedFooterIconURL sets or clears the footer icon.
func (s *Store) SetEmbedFooterIconURL(i int, iconURL string) {
	s.updateEmbed("set_embed_footer_icon_url", i, func(e *types.Embed) bool {
		return editFooter(e, func(f *types.EmbedFooter) { f.IconURL = types.StringPtr(iconURL) }, iconURL != "")
	})
}

func editFooter(e *types.Embed, set func(f *types.EmbedFooter), nonEmpty bool) bool {
	var footer types.EmbedFooter
	if e.Footer == nil {
		if !nonEmpty {
			return false
		}
	} else {
		footer = *e.Footer
	}
	set(&footer)
	if footer.Text == nil && footer.IconURL == nil {
		e.Footer = nil
		return true
	}
	e.Footer = &footer
	return true
}

// SetEmbedThumbnailURL sets or clears the thumbnail.
func (s *Store) SetEmbedThumbnailURL(i int, url string) {
	s.updateEmbed("set_embed_thumbnail_url", i, func(e *types.Embed) bool {
		return setMedia(&e.Thumbnail, url)
	})
}

// SetEmbedImageURL sets or clears the image.
func (s *Store) SetEmbedImageURL(i int, url string) {
	s.updateEmbed("set_embed_image_url", i, func(e *types.Embed) bool {
		return setMedia(&e.Image, url)
	})
}

func setMedia(target **types.EmbedMedia, url string) bool {
	if url == "" {
		if *target == nil {
			return false
		}
		*target = nil
		return true
	}
	*target = &types.EmbedMedia{URL: url}
	return true
}
