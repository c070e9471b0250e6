// Package editor is the terminal editor for the current message.
package editor

import (
	"fmt"
	"slices"
	"sync"

	"github.com/adamavenir/embedg/internal/store"
	"github.com/adamavenir/embedg/internal/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// Options configure the editor.
type Options struct {
	Store       *store.Store
	Logger      *zap.Logger
	ProjectName string
}

// Run starts the editor and blocks until it exits.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	title := "embedg"
	if opts.ProjectName != "" {
		title = "embedg · " + opts.ProjectName
	}
	fmt.Printf("\033]0;%s\007", title)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.setSend(program.Send)
	_, err := program.Run()
	return err
}

type editTarget int

const (
	editNone editTarget = iota
	editFieldName
	editFieldValue
	editContent
)

// storeChangedMsg redraws after a change made outside the event loop, such as
// an import watcher or another process sharing the slot.
type storeChangedMsg struct{}

// Model is the host editor: message content plus one field list per embed.
type Model struct {
	store  *store.Store
	logger *zap.Logger
	zones  *zone.Manager

	sendMu sync.Mutex
	send   func(tea.Msg)

	embedIDs   []int
	lists      []*FieldList
	embedIndex int

	editing editTarget
	input   textinput.Model

	status      string
	width       int
	height      int
	unsubscribe func()
}

// NewModel builds the editor around an existing store.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 4096

	m := &Model{
		store:  opts.Store,
		logger: logger,
		zones:  zone.New(),
		input:  input,
	}
	m.unsubscribe = opts.Store.Subscribe(func(types.Message) {
		m.notify(storeChangedMsg{})
	})
	m.syncLists()
	return m
}

func (m *Model) setSend(send func(tea.Msg)) {
	m.sendMu.Lock()
	m.send = send
	m.sendMu.Unlock()
}

func (m *Model) notify(msg tea.Msg) {
	m.sendMu.Lock()
	send := m.send
	m.sendMu.Unlock()
	if send != nil {
		go send(msg)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close releases every subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	for _, list := range m.lists {
		list.Close()
	}
	m.lists = nil
}

// syncLists rebuilds the field lists when embeds were added, removed or
// reordered. Lists are keyed by embed index, so any change in the id order
// invalidates them.
func (m *Model) syncLists() {
	ids := store.EmbedIDs(m.store.Message())
	if slices.Equal(ids, m.embedIDs) {
		return
	}

	selectedID := -1
	if list := m.currentList(); list != nil {
		selectedID = list.EmbedID()
	}

	for _, list := range m.lists {
		list.Close()
	}
	m.lists = make([]*FieldList, len(ids))
	for i, id := range ids {
		m.lists[i] = NewFieldList(m.store, i, id, WithZones(m.zones), WithNotify(m.notify))
		m.lists[i].SetWidth(m.innerWidth())
	}
	m.embedIDs = ids

	m.embedIndex = 0
	if i := slices.Index(ids, selectedID); i >= 0 {
		m.embedIndex = i
	}
	m.focusCurrent()
}

func (m *Model) currentList() *FieldList {
	if m.embedIndex < 0 || m.embedIndex >= len(m.lists) {
		return nil
	}
	return m.lists[m.embedIndex]
}

func (m *Model) focusCurrent() {
	for i, list := range m.lists {
		if i == m.embedIndex {
			list.Focus()
		} else {
			list.Blur()
		}
	}
}

func (m *Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-6, 10)
}

// Lists exposes the current field lists.
func (m *Model) Lists() []*FieldList {
	return m.lists
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}
