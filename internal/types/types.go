package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ComponentType is the wire tag that distinguishes component kinds.
type ComponentType int

const (
	ComponentTypeActionRow  ComponentType = 1
	ComponentTypeButton     ComponentType = 2
	ComponentTypeSelectMenu ComponentType = 3
)

// ButtonStyle controls how a button is rendered.
type ButtonStyle int

const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	ButtonStyleLink      ButtonStyle = 5
)

var buttonStyleNames = map[ButtonStyle]string{
	ButtonStylePrimary:   "primary",
	ButtonStyleSecondary: "secondary",
	ButtonStyleSuccess:   "success",
	ButtonStyleDanger:    "danger",
	ButtonStyleLink:      "link",
}

func (s ButtonStyle) String() string {
	if name, ok := buttonStyleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Valid reports whether s is a known style.
func (s ButtonStyle) Valid() bool {
	_, ok := buttonStyleNames[s]
	return ok
}

// ParseButtonStyle accepts a style name ("primary") or its number ("1").
func ParseButtonStyle(value string) (ButtonStyle, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for style, name := range buttonStyleNames {
		if name == normalized || fmt.Sprint(int(style)) == normalized {
			return style, nil
		}
	}
	return 0, fmt.Errorf("invalid button style: %s. Use primary, secondary, success, danger, or link", value)
}

// Message is the editable message document.
type Message struct {
	Username   *string        `json:"username,omitempty"`
	AvatarURL  *string        `json:"avatar_url,omitempty"`
	Content    string         `json:"content"`
	TTS        bool           `json:"tts"`
	Embeds     []Embed        `json:"embeds"`
	Components []ComponentRow `json:"components"`
}

// Embed is a rich content block within a message.
type Embed struct {
	ID          int          `json:"id"`
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	URL         *string      `json:"url,omitempty"`
	Timestamp   *string      `json:"timestamp,omitempty"`
	Color       *int         `json:"color,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Thumbnail   *EmbedMedia  `json:"thumbnail,omitempty"`
	Image       *EmbedMedia  `json:"image,omitempty"`
	Fields      []EmbedField `json:"fields"`
}

// EmbedAuthor is shown above the embed title.
type EmbedAuthor struct {
	Name    string  `json:"name"`
	URL     *string `json:"url,omitempty"`
	IconURL *string `json:"icon_url,omitempty"`
}

// EmbedFooter is shown below the embed body.
type EmbedFooter struct {
	Text    *string `json:"text,omitempty"`
	IconURL *string `json:"icon_url,omitempty"`
}

// EmbedMedia references an image or thumbnail.
type EmbedMedia struct {
	URL string `json:"url"`
}

// EmbedField is a name/value pair rendered inside an embed.
type EmbedField struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline *bool  `json:"inline,omitempty"`
}

// ComponentRow is an ordered container of interactive components.
type ComponentRow struct {
	ID         int
	Components []Component
}

// Component is either a *Button or a *SelectMenu.
type Component interface {
	ComponentID() int
	Type() ComponentType
	CloneComponent() Component
	withID(id int) Component
}

// Button is a clickable component.
type Button struct {
	ID    int         `json:"id"`
	Style ButtonStyle `json:"style"`
	Label string      `json:"label"`
	URL   *string     `json:"url,omitempty"`
}

// SelectMenu is a dropdown component.
type SelectMenu struct {
	ID          int                `json:"id"`
	Placeholder *string            `json:"placeholder,omitempty"`
	Options     []SelectMenuOption `json:"options"`
}

// SelectMenuOption is a single dropdown entry.
type SelectMenuOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

func (b *Button) ComponentID() int    { return b.ID }
func (b *Button) Type() ComponentType { return ComponentTypeButton }

func (b *Button) CloneComponent() Component { return b.Clone() }

func (b *Button) withID(id int) Component {
	clone := b.Clone()
	clone.ID = id
	return clone
}

// Clone returns a deep copy of the button.
func (b *Button) Clone() *Button {
	if b == nil {
		return nil
	}
	clone := *b
	clone.URL = cloneString(b.URL)
	return &clone
}

func (m *SelectMenu) ComponentID() int    { return m.ID }
func (m *SelectMenu) Type() ComponentType { return ComponentTypeSelectMenu }

func (m *SelectMenu) CloneComponent() Component { return m.Clone() }

func (m *SelectMenu) withID(id int) Component {
	clone := m.Clone()
	clone.ID = id
	return clone
}

// Clone returns a deep copy of the select menu.
func (m *SelectMenu) Clone() *SelectMenu {
	if m == nil {
		return nil
	}
	clone := *m
	clone.Placeholder = cloneString(m.Placeholder)
	clone.Options = cloneSlice(m.Options)
	return &clone
}

// WithComponentID returns a copy of c carrying a new id.
func WithComponentID(c Component, id int) Component {
	return c.withID(id)
}

func (b Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		alias
	}{ComponentTypeButton, alias(b)})
}

func (m SelectMenu) MarshalJSON() ([]byte, error) {
	type alias SelectMenu
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		alias
	}{ComponentTypeSelectMenu, alias(m)})
}

type componentRowJSON struct {
	ID         int           `json:"id"`
	Type       ComponentType `json:"type"`
	Components []Component   `json:"components"`
}

func (r ComponentRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(componentRowJSON{
		ID:         r.ID,
		Type:       ComponentTypeActionRow,
		Components: r.Components,
	})
}

func (r *ComponentRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         int               `json:"id"`
		Components []json.RawMessage `json:"components"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = raw.ID
	r.Components = nil
	if raw.Components == nil {
		return nil
	}
	r.Components = make([]Component, 0, len(raw.Components))
	for _, item := range raw.Components {
		component, err := DecodeComponent(item)
		if err != nil {
			return err
		}
		r.Components = append(r.Components, component)
	}
	return nil
}

// DecodeComponent decodes a single component, dispatching on its type tag.
func DecodeComponent(data []byte) (Component, error) {
	var head struct {
		Type ComponentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case ComponentTypeButton:
		var button Button
		if err := json.Unmarshal(data, &button); err != nil {
			return nil, err
		}
		return &button, nil
	case ComponentTypeSelectMenu:
		var menu SelectMenu
		if err := json.Unmarshal(data, &menu); err != nil {
			return nil, err
		}
		return &menu, nil
	default:
		return nil, fmt.Errorf("unknown component type %d", head.Type)
	}
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	clone := m
	clone.Username = cloneString(m.Username)
	clone.AvatarURL = cloneString(m.AvatarURL)
	if m.Embeds != nil {
		clone.Embeds = make([]Embed, len(m.Embeds))
		for i, embed := range m.Embeds {
			clone.Embeds[i] = embed.Clone()
		}
	}
	if m.Components != nil {
		clone.Components = make([]ComponentRow, len(m.Components))
		for i, row := range m.Components {
			clone.Components[i] = row.Clone()
		}
	}
	return clone
}

// Clone returns a deep copy of the embed.
func (e Embed) Clone() Embed {
	clone := e
	clone.Title = cloneString(e.Title)
	clone.Description = cloneString(e.Description)
	clone.URL = cloneString(e.URL)
	clone.Timestamp = cloneString(e.Timestamp)
	if e.Color != nil {
		color := *e.Color
		clone.Color = &color
	}
	if e.Author != nil {
		author := *e.Author
		author.URL = cloneString(e.Author.URL)
		author.IconURL = cloneString(e.Author.IconURL)
		clone.Author = &author
	}
	if e.Footer != nil {
		footer := EmbedFooter{Text: cloneString(e.Footer.Text), IconURL: cloneString(e.Footer.IconURL)}
		clone.Footer = &footer
	}
	if e.Thumbnail != nil {
		thumbnail := *e.Thumbnail
		clone.Thumbnail = &thumbnail
	}
	if e.Image != nil {
		image := *e.Image
		clone.Image = &image
	}
	if e.Fields != nil {
		clone.Fields = make([]EmbedField, len(e.Fields))
		for i, field := range e.Fields {
			clone.Fields[i] = field.Clone()
		}
	}
	return clone
}

// Clone returns a deep copy of the field.
func (f EmbedField) Clone() EmbedField {
	clone := f
	if f.Inline != nil {
		inline := *f.Inline
		clone.Inline = &inline
	}
	return clone
}

// Clone returns a deep copy of the row.
func (r ComponentRow) Clone() ComponentRow {
	clone := r
	if r.Components != nil {
		clone.Components = make([]Component, len(r.Components))
		for i, component := range r.Components {
			clone.Components[i] = component.CloneComponent()
		}
	}
	return clone
}

// MaxID returns the largest synthetic id used anywhere in the message.
func (m Message) MaxID() int {
	highest := 0
	bump := func(id int) {
		if id > highest {
			highest = id
		}
	}
	for _, embed := range m.Embeds {
		bump(embed.ID)
		for _, field := range embed.Fields {
			bump(field.ID)
		}
	}
	for _, row := range m.Components {
		bump(row.ID)
		for _, component := range row.Components {
			bump(component.ComponentID())
			if menu, ok := component.(*SelectMenu); ok {
				for _, option := range menu.Options {
					bump(option.ID)
				}
			}
		}
	}
	return highest
}

// StringPtr returns nil for an empty value.
func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// StringValue dereferences an optional string.
func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	clone := make([]T, len(items))
	copy(clone, items)
	return clone
}
