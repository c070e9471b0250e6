package store

import (
	"strings"
	"testing"

	"github.com/adamavenir/embedg/internal/types"
)

func TestSetEmbedProperty(t *testing.T) {
	s, _ := newTestStore(t)

	cases := []struct {
		property string
		value    string
		check    func(e types.Embed) bool
	}{
		{"title", "T", func(e types.Embed) bool { return types.StringValue(e.Title) == "T" }},
		{"Description", "D", func(e types.Embed) bool { return types.StringValue(e.Description) == "D" }},
		{"url", "https://example.com", func(e types.Embed) bool { return types.StringValue(e.URL) == "https://example.com" }},
		{"color", "#010203", func(e types.Embed) bool { return e.Color != nil && *e.Color == 0x010203 }},
		{"timestamp", "2024-01-01T00:00:00Z", func(e types.Embed) bool { return types.StringValue(e.Timestamp) != "" }},
		{"author-name", "Ann", func(e types.Embed) bool { return e.Author != nil && e.Author.Name == "Ann" }},
		{"author_url", "https://a", func(e types.Embed) bool { return types.StringValue(e.Author.URL) == "https://a" }},
		{"author-icon", "https://i", func(e types.Embed) bool { return types.StringValue(e.Author.IconURL) == "https://i" }},
		{"footer-text", "bye", func(e types.Embed) bool { return e.Footer != nil && types.StringValue(e.Footer.Text) == "bye" }},
		{"footer-icon", "https://f", func(e types.Embed) bool { return types.StringValue(e.Footer.IconURL) == "https://f" }},
		{"thumbnail", "https://t", func(e types.Embed) bool { return e.Thumbnail != nil && e.Thumbnail.URL == "https://t" }},
		{"image", "https://m", func(e types.Embed) bool { return e.Image != nil && e.Image.URL == "https://m" }},
		{"color", "", func(e types.Embed) bool { return e.Color == nil }},
		{"title", "", func(e types.Embed) bool { return e.Title == nil }},
	}

	for _, tc := range cases {
		if err := s.SetEmbedProperty(0, tc.property, tc.value); err != nil {
			t.Fatalf("SetEmbedProperty(%s, %q): %v", tc.property, tc.value, err)
		}
		embed, _ := s.GetEmbed(0)
		if !tc.check(embed) {
			t.Fatalf("SetEmbedProperty(%s, %q) not applied: %+v", tc.property, tc.value, embed)
		}
	}
}

func TestSetEmbedPropertyErrors(t *testing.T) {
	s, slot := newTestStore(t)
	before := slot.saveCount()

	err := s.SetEmbedProperty(0, "colour", "red")
	if err == nil || !strings.Contains(err.Error(), "unknown embed property") {
		t.Fatalf("expected unknown property error, got %v", err)
	}
	if err := s.SetEmbedProperty(0, "color", "red"); err == nil {
		t.Fatal("expected invalid color error")
	}
	if err := s.SetEmbedProperty(9, "title", "x"); err != nil {
		t.Fatalf("out of range index should be a silent no-op, got %v", err)
	}
	if slot.saveCount() != before {
		t.Fatalf("expected no writes, got %d", slot.saveCount()-before)
	}
}
