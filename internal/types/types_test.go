package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func sampleMessage() Message {
	inline := true
	color := 0x58b9ff
	return Message{
		Username: StringPtr("bot"),
		Content:  "hello",
		Embeds: []Embed{{
			ID:          1,
			Title:       StringPtr("title"),
			Color:       &color,
			Author:      &EmbedAuthor{Name: "Ada", IconURL: StringPtr("https://example.com/a.png")},
			Footer:      &EmbedFooter{Text: StringPtr("foot")},
			Thumbnail:   &EmbedMedia{URL: "https://example.com/t.png"},
			Fields:      []EmbedField{{ID: 2, Name: "n", Value: "v", Inline: &inline}},
			Description: StringPtr("desc"),
		}},
		Components: []ComponentRow{{
			ID: 3,
			Components: []Component{
				&Button{ID: 4, Style: ButtonStyleLink, Label: "Open", URL: StringPtr("https://example.com")},
				&SelectMenu{ID: 5, Placeholder: StringPtr("pick"), Options: []SelectMenuOption{{ID: 6, Label: "one"}}},
			},
		}},
	}
}

func TestMessageJSONRoundTrip(t *testing.T) {
	original := sampleMessage()
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch\n%s", data)
	}
}

func TestComponentTypeTags(t *testing.T) {
	data, err := json.Marshal(sampleMessage().Components[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"type":1`, `"type":2`, `"type":3`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in %s", want, text)
		}
	}
}

func TestDecodeComponentRejectsUnknownTag(t *testing.T) {
	if _, err := DecodeComponent([]byte(`{"type":9,"id":1}`)); err == nil {
		t.Fatal("expected error for unknown tag")
	}
	var row ComponentRow
	if err := json.Unmarshal([]byte(`{"id":1,"components":[{"type":7}]}`), &row); err == nil {
		t.Fatal("expected row decode to fail")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleMessage()
	clone := original.Clone()

	*clone.Embeds[0].Title = "changed"
	clone.Embeds[0].Fields[0].Name = "changed"
	*clone.Embeds[0].Fields[0].Inline = false
	clone.Components[0].Components[0].(*Button).Label = "changed"
	clone.Components[0].Components[1].(*SelectMenu).Options[0].Label = "changed"

	if !reflect.DeepEqual(original, sampleMessage()) {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestMaxID(t *testing.T) {
	if got := sampleMessage().MaxID(); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestParseButtonStyle(t *testing.T) {
	tests := []struct {
		in   string
		want ButtonStyle
		ok   bool
	}{
		{"primary", ButtonStylePrimary, true},
		{" Danger ", ButtonStyleDanger, true},
		{"5", ButtonStyleLink, true},
		{"blurple", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseButtonStyle(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Fatalf("%q: got %v, %v", tt.in, got, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("%q: expected error", tt.in)
		}
	}
}

func TestNormalizeAndFillIDs(t *testing.T) {
	var msg Message
	data := `{"content":"x","embeds":[{"title":"t"}],"components":[{"components":[{"type":2,"label":"b"},{"type":3}]}]}`
	if err := json.Unmarshal([]byte(data), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	next := 100
	msg.Normalize()
	msg.FillIDs(func() int {
		next++
		return next
	})

	if msg.Embeds[0].Fields == nil {
		t.Fatal("expected fields normalized")
	}
	if msg.Embeds[0].ID == 0 || msg.Components[0].ID == 0 {
		t.Fatal("expected ids filled")
	}
	row := msg.Components[0]
	if row.Components[0].ComponentID() == 0 || row.Components[1].ComponentID() == 0 {
		t.Fatal("expected component ids filled")
	}
	if row.Components[1].(*SelectMenu).Options == nil {
		t.Fatal("expected options normalized")
	}
	if _, ok := row.Components[0].(*Button); !ok {
		t.Fatal("component kind changed")
	}
}
