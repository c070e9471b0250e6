package editor

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/adamavenir/embedg/internal/store"
	"github.com/adamavenir/embedg/internal/types"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// fieldsChangedMsg tells the host a field list re-rendered outside Update.
type fieldsChangedMsg struct {
	embedID int
}

// FieldListOption configures a FieldList.
type FieldListOption func(*FieldList)

// WithZones shares the host's click-zone manager.
func WithZones(zones *zone.Manager) FieldListOption {
	return func(l *FieldList) {
		if zones != nil {
			l.zones = zones
		}
	}
}

// WithNotify forwards re-renders to the running program.
func WithNotify(send func(tea.Msg)) FieldListOption {
	return func(l *FieldList) {
		l.send = send
	}
}

// FieldList shows the fields of one embed. It only rebuilds its frame when
// the embed's ordered field ids change; row contents are read on each View.
type FieldList struct {
	store      *store.Store
	embedIndex int
	embedID    int
	zones      *zone.Manager
	send       func(tea.Msg)

	mu      sync.Mutex
	ids     []int
	frame   string
	renders int
	cancel  func()

	cursor  int
	focused bool
	width   int
}

// NewFieldList subscribes to the field ids of the embed at embedIndex.
func NewFieldList(s *store.Store, embedIndex, embedID int, opts ...FieldListOption) *FieldList {
	l := &FieldList{
		store:      s,
		embedIndex: embedIndex,
		embedID:    embedID,
		zones:      zone.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	ids, cancel := store.Watch(s, store.FieldIDs(embedIndex), slices.Equal[[]int], l.onFieldIDs)
	l.mu.Lock()
	l.cancel = cancel
	l.rebuildLocked(ids)
	l.mu.Unlock()
	return l
}

func (l *FieldList) onFieldIDs(ids []int) {
	l.mu.Lock()
	l.rebuildLocked(ids)
	send := l.send
	l.mu.Unlock()

	if send != nil {
		// Send blocks until the event loop reads it, and the mutation may
		// have come from that loop.
		go send(fieldsChangedMsg{embedID: l.embedID})
	}
}

func (l *FieldList) rebuildLocked(ids []int) {
	l.ids = ids
	l.renders++
	if l.cursor >= len(ids) {
		l.cursor = max(len(ids)-1, 0)
	}

	header := titleStyle.Render(fmt.Sprintf("Fields (%d)", len(ids)))
	add := l.zones.Mark(l.zoneID("add"), addStyle.Render("[Add Field]"))
	clearBtn := l.zones.Mark(l.zoneID("clear"), clearStyle.Render("[Clear Fields]"))
	l.frame = header + "  " + add + " " + clearBtn
}

func (l *FieldList) zoneID(name string) string {
	return fmt.Sprintf("fields-%d-%s", l.embedID, name)
}

// EmbedID returns the id of the embed this list belongs to.
func (l *FieldList) EmbedID() int {
	return l.embedID
}

// IDs returns the field ids as of the last render.
func (l *FieldList) IDs() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.ids)
}

// Renders counts how many times the list frame was rebuilt.
func (l *FieldList) Renders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renders
}

// Cursor returns the focused field index.
func (l *FieldList) Cursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor
}

// SetCursor focuses field i, clamped to the list.
func (l *FieldList) SetCursor(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i >= len(l.ids) {
		i = len(l.ids) - 1
	}
	if i < 0 {
		i = 0
	}
	l.cursor = i
}

// Focus routes list keys to this list.
func (l *FieldList) Focus() { l.focused = true }

func (l *FieldList) Blur() { l.focused = false }

func (l *FieldList) Focused() bool { return l.focused }

func (l *FieldList) SetWidth(width int) { l.width = width }

func (l *FieldList) Init() tea.Cmd { return nil }

func (l *FieldList) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

// AddField appends an empty field with a fresh id.
func (l *FieldList) AddField() {
	l.store.AddEmbedField(l.embedIndex, types.EmbedField{
		ID:    l.store.NewID(),
		Name:  "",
		Value: "",
	})
	l.SetCursor(l.count() - 1)
}

// ClearFields removes every field of the embed.
func (l *FieldList) ClearFields() {
	l.store.ClearEmbedFields(l.embedIndex)
}

// Close cancels the subscription.
func (l *FieldList) Close() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Update handles the list's own keys and clicks.
func (l *FieldList) Update(msg tea.Msg) (*FieldList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !l.focused {
			return l, nil
		}
		switch msg.String() {
		case "a":
			l.AddField()
		case "x":
			l.ClearFields()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return l, nil
		}
		if l.zones.Get(l.zoneID("add")).InBounds(msg) {
			l.AddField()
		} else if l.zones.Get(l.zoneID("clear")).InBounds(msg) {
			l.ClearFields()
		} else {
			for i := range l.IDs() {
				if l.zones.Get(l.rowZoneID(i)).InBounds(msg) {
					l.SetCursor(i)
					break
				}
			}
		}
	}
	return l, nil
}

func (l *FieldList) rowZoneID(i int) string {
	return fmt.Sprintf("fields-%d-row-%d", l.embedID, i)
}

// View renders the cached frame followed by one row per field id.
func (l *FieldList) View() string {
	l.mu.Lock()
	frame := l.frame
	ids := slices.Clone(l.ids)
	cursor := l.cursor
	l.mu.Unlock()

	lines := []string{frame}
	if len(ids) == 0 {
		lines = append(lines, dimStyle.Render("  no fields"))
	}
	for i := range ids {
		field, ok := l.store.GetEmbedField(l.embedIndex, i)
		if !ok {
			continue
		}
		row := renderFieldRow(i, field, l.focused && i == cursor, l.width)
		lines = append(lines, l.zones.Mark(l.rowZoneID(i), row))
	}
	return strings.Join(lines, "\n")
}

func renderFieldRow(i int, field types.EmbedField, selected bool, width int) string {
	name := field.Name
	if name == "" {
		name = dimStyle.Render("(name)")
	}
	value := field.Value
	if value == "" {
		value = dimStyle.Render("(value)")
	}
	marker := "  "
	if selected {
		marker = selectedStyle.Render("> ")
	}
	row := fmt.Sprintf("%s%d. %s = %s", marker, i+1, name, strings.ReplaceAll(value, "\n", " "))
	if field.Inline != nil && *field.Inline {
		row += dimStyle.Render(" [inline]")
	}
	if width > 0 {
		row = ansi.Truncate(row, width, "…")
	}
	return row
}
