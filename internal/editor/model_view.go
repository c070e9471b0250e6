package editor

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const helpText = "tab embed · ↑/↓ field · a add · x clear · K/J move · d dup · ⌫ del · n/v edit · i inline · c content · E embed · y copy · q quit"

// View implements tea.Model.
func (m *Model) View() string {
	msg := m.store.Message()

	lines := []string{titleStyle.Render("embedg")}
	lines = append(lines, m.renderContent(msg))
	for i, list := range m.lists {
		if i >= len(msg.Embeds) {
			break
		}
		lines = append(lines, m.renderEmbed(i, msg.Embeds[i], list))
	}
	if len(m.lists) == 0 {
		lines = append(lines, dimStyle.Render("no embeds · E to add one"))
	}

	if m.editing != editNone {
		lines = append(lines, m.editLabel()+" "+m.input.View())
	}
	status := m.status
	if status == "" {
		status = helpText
	}
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, "…")
	}
	lines = append(lines, statusStyle.Render(status))

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderContent(msg types.Message) string {
	var b strings.Builder
	if msg.Username != nil {
		b.WriteString(selectedStyle.Render(*msg.Username))
		b.WriteString(" ")
	}
	if msg.TTS {
		b.WriteString(dimStyle.Render("[tts] "))
	}
	content := msg.Content
	if content == "" {
		content = dimStyle.Render("(no content)")
	}
	b.WriteString(content)
	return b.String()
}

func (m *Model) renderEmbed(i int, embed types.Embed, list *FieldList) string {
	var body []string
	if embed.Author != nil && embed.Author.Name != "" {
		body = append(body, dimStyle.Render(embed.Author.Name))
	}
	if embed.Title != nil {
		body = append(body, lipgloss.NewStyle().Bold(true).Render(*embed.Title))
	}
	if embed.Description != nil {
		body = append(body, *embed.Description)
	}
	body = append(body, list.View())
	if embed.Footer != nil && embed.Footer.Text != nil {
		body = append(body, dimStyle.Render(*embed.Footer.Text))
	}

	label := m.zones.Mark(embedZoneID(embed.ID), dimStyle.Render(fmt.Sprintf("embed %d", i+1)))
	box := embedBar(embed.Color, i == m.embedIndex).Render(strings.Join(body, "\n"))
	return label + "\n" + box
}

func (m *Model) editLabel() string {
	switch m.editing {
	case editFieldName:
		return "name"
	case editFieldValue:
		return "value"
	case editContent:
		return "content"
	}
	return ""
}

func embedZoneID(id int) string {
	return fmt.Sprintf("embed-%d", id)
}
