package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/adamavenir/embedg/internal/core"
	"github.com/adamavenir/embedg/internal/types"
)

type memSlot struct {
	mu      sync.Mutex
	records map[string][]byte
	saves   int
	failErr error
}

func newMemSlot() *memSlot {
	return &memSlot{records: make(map[string][]byte)}
}

func (m *memSlot) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[key]
	return data, ok, nil
}

func (m *memSlot) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.records[key] = append([]byte(nil), data...)
	return nil
}

func (m *memSlot) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var errSlotDown = errors.New("slot down")

func newTestStore(t *testing.T) (*Store, *memSlot) {
	t.Helper()
	slot := newMemSlot()
	s := New(slot, core.NewSequenceFrom(100))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, slot
}

func field(id int, name, value string) types.EmbedField {
	return types.EmbedField{ID: id, Name: name, Value: value}
}

func fieldIDs(t *testing.T, s *Store, embed int) []int {
	t.Helper()
	return FieldIDs(embed)(s.Message())
}
