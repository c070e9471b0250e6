package editor

import (
	"encoding/json"
	"fmt"

	"github.com/adamavenir/embedg/internal/types"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		for _, list := range m.lists {
			list.SetWidth(m.innerWidth())
		}
		return m, nil
	case tea.KeyMsg:
		model, cmd := m.handleKeyMsg(msg)
		m.syncLists()
		return model, cmd
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleClick(msg)
		}
		m.syncLists()
		return m, nil
	case storeChangedMsg, fieldsChangedMsg:
		m.syncLists()
		return m, nil
	}

	if m.editing != editNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleClick selects the embed whose label or field list was clicked and
// lets that list handle its own buttons.
func (m *Model) handleClick(msg tea.MouseMsg) {
	lists := m.lists
	for i := range lists {
		if m.zones.Get(embedZoneID(m.embedIDs[i])).InBounds(msg) {
			m.embedIndex = i
			m.focusCurrent()
			return
		}
	}
	for i, list := range lists {
		before := list.Cursor()
		list.Update(msg)
		if list.Cursor() != before || m.listClicked(list, msg) {
			m.embedIndex = i
			m.focusCurrent()
			return
		}
	}
}

func (m *Model) listClicked(list *FieldList, msg tea.MouseMsg) bool {
	for _, name := range []string{"add", "clear"} {
		if m.zones.Get(list.zoneID(name)).InBounds(msg) {
			return true
		}
	}
	return false
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing != editNone {
		return m.handleEditKey(msg)
	}

	list := m.currentList()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.cycleEmbed(1)
	case "shift+tab":
		m.cycleEmbed(-1)
	case "up", "k":
		if list != nil {
			list.SetCursor(list.Cursor() - 1)
		}
	case "down", "j":
		if list != nil {
			list.SetCursor(list.Cursor() + 1)
		}
	case "a", "x":
		if list != nil {
			list.Update(msg)
		}
	case "K":
		m.moveField(-1)
	case "J":
		m.moveField(1)
	case "d":
		if field, ok := m.currentField(); ok {
			m.store.DuplicateEmbedField(m.embedIndex, field)
			list.SetCursor(field + 1)
		}
	case "backspace", "delete":
		if field, ok := m.currentField(); ok {
			m.store.DeleteEmbedField(m.embedIndex, field)
		}
	case "enter", "n":
		return m, m.startEdit(editFieldName)
	case "v":
		return m, m.startEdit(editFieldValue)
	case "c":
		return m, m.startEdit(editContent)
	case "i":
		m.toggleInline()
	case "E":
		m.store.AddEmbed(types.Embed{ID: m.store.NewID(), Fields: []types.EmbedField{}})
		m.syncLists()
		m.embedIndex = len(m.lists) - 1
		m.focusCurrent()
	case "y":
		m.copyJSON()
	}
	return m, nil
}

func (m *Model) cycleEmbed(delta int) {
	if len(m.lists) == 0 {
		return
	}
	m.embedIndex = (m.embedIndex + delta + len(m.lists)) % len(m.lists)
	m.focusCurrent()
}

// currentField returns the focused field index of the selected embed.
func (m *Model) currentField() (int, bool) {
	list := m.currentList()
	if list == nil {
		return 0, false
	}
	cursor := list.Cursor()
	if _, ok := m.store.GetEmbedField(m.embedIndex, cursor); !ok {
		return 0, false
	}
	return cursor, true
}

func (m *Model) moveField(delta int) {
	field, ok := m.currentField()
	if !ok {
		return
	}
	if delta < 0 {
		m.store.MoveEmbedFieldUp(m.embedIndex, field)
	} else {
		m.store.MoveEmbedFieldDown(m.embedIndex, field)
	}
	m.currentList().SetCursor(field + delta)
}

func (m *Model) toggleInline() {
	field, ok := m.currentField()
	if !ok {
		return
	}
	current, _ := m.store.GetEmbedField(m.embedIndex, field)
	inline := current.Inline == nil || !*current.Inline
	m.store.SetEmbedFieldInline(m.embedIndex, field, &inline)
}

func (m *Model) startEdit(target editTarget) tea.Cmd {
	value := ""
	switch target {
	case editContent:
		value = m.store.Message().Content
	default:
		field, ok := m.currentField()
		if !ok {
			m.status = "no field selected"
			return nil
		}
		current, _ := m.store.GetEmbedField(m.embedIndex, field)
		value = current.Name
		if target == editFieldValue {
			value = current.Value
		}
	}
	m.editing = target
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEdit()
		return m, nil
	case tea.KeyEnter:
		m.commitEdit()
		m.stopEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() {
	value := m.input.Value()
	if m.editing == editContent {
		m.store.SetContent(value)
		return
	}
	field, ok := m.currentField()
	if !ok {
		return
	}
	switch m.editing {
	case editFieldName:
		m.store.SetEmbedFieldName(m.embedIndex, field, value)
	case editFieldValue:
		m.store.SetEmbedFieldValue(m.embedIndex, field, value)
	}
}

func (m *Model) stopEdit() {
	m.editing = editNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) copyJSON() {
	data, err := json.MarshalIndent(m.store.Message(), "", "  ")
	if err != nil {
		m.status = fmt.Sprintf("encode failed: %v", err)
		return
	}
	if err := copyToClipboard(string(data)); err != nil {
		m.logger.Warn("clipboard", zap.Error(err))
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %d bytes", len(data))
}
