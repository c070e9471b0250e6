package store

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/types"
)

// EmbedProperties lists the names accepted by SetEmbedProperty.
var EmbedProperties = []string{
	"title", "description", "url", "color", "timestamp",
	"author-name", "author-url", "author-icon",
	"footer-text", "footer-icon",
	"thumbnail", "image",
}

// SetEmbedProperty routes a named property to its setter. An empty value
// clears the property. Unknown names and unparsable colors are errors; the
// embed index is not checked.
func (s *Store) SetEmbedProperty(i int, property, value string) error {
	switch strings.ToLower(property) {
	case "title":
		s.SetEmbedTitle(i, value)
	case "description":
		s.SetEmbedDescription(i, value)
	case "url":
		s.SetEmbedURL(i, value)
	case "color":
		color, err := types.ParseColor(value)
		if err != nil {
			return err
		}
		s.SetEmbedColor(i, color)
	case "timestamp":
		s.SetEmbedTimestamp(i, value)
	case "author-name", "author_name":
		s.SetEmbedAuthorName(i, value)
	case "author-url", "author_url":
		s.SetEmbedAuthorURL(i, value)
	case "author-icon", "author_icon":
		s.SetEmbedAuthorIconURL(i, value)
	case "footer-text", "footer_text":
		s.SetEmbedFooterText(i, value)
	case "footer-icon", "footer_icon":
		s.SetEmbedFooterIconURL(i, value)
	case "thumbnail":
		s.SetEmbedThumbnailURL(i, value)
	case "image":
		s.SetEmbedImageURL(i, value)
	default:
		return fmt.Errorf("unknown embed property: %s. Use one of: %s", property, strings.Join(EmbedProperties, ", "))
	}
	return nil
}
