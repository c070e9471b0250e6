// Package store holds the message document being edited and every named
// operation that mutates it.
//
// Mutations never write into the published document. Each one copies the
// path from the root down to the element it touches, swaps the new root in,
// persists it, and then notifies subscribers. Invalid indices and
// wrong-kind component targets are silent no-ops.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/adamavenir/embedg/internal/core"
	"github.com/adamavenir/embedg/internal/types"
	"go.uber.org/zap"
)

// SchemaVersion is written next to every persisted document. Records with
// any other version are discarded on load.
const SchemaVersion = 0

// Slot is durable storage for a single serialized document.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
}

// IDSource generates synthetic ids for new list elements.
type IDSource interface {
	NextID() int
}

type reserver interface {
	Reserve(used int)
}

type persistedState struct {
	State   types.Message `json:"state"`
	Version int           `json:"version"`
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithName sets the slot key. Defaults to "current-message".
func WithName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// Store owns the message document.
type Store struct {
	mu          sync.Mutex
	msg         types.Message
	slot        Slot
	ids         IDSource
	name        string
	logger      *zap.Logger
	subscribers map[int]func(types.Message)
	nextSubID   int
}

// New creates a store holding the default document. Call Load to restore a
// persisted one. slot may be nil for an in-memory store.
func New(slot Slot, ids IDSource, opts ...Option) *Store {
	if ids == nil {
		ids = core.NewSequence()
	}
	s := &Store{
		slot:        slot,
		ids:         ids,
		name:        core.DefaultStoreName,
		logger:      zap.NewNop(),
		subscribers: make(map[int]func(types.Message)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.msg = DefaultMessage(ids)
	return s
}

// Name returns the slot key.
func (s *Store) Name() string {
	return s.name
}

// NewID returns a fresh synthetic id.
func (s *Store) NewID() int {
	return s.ids.NextID()
}

// Load restores the persisted document. A missing record, an undecodable
// record, or a version mismatch keeps the default document.
func (s *Store) Load(ctx context.Context) error {
	if s.slot == nil {
		return nil
	}
	data, ok, err := s.slot.Load(ctx, s.name)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.name, err)
	}
	if !ok {
		return nil
	}

	msg, err := DecodeState(data)
	if err != nil {
		s.logger.Warn("discarding persisted message", zap.String("store", s.name), zap.Error(err))
		return nil
	}
	if r, ok := s.ids.(reserver); ok {
		r.Reserve(msg.MaxID())
	}

	s.mu.Lock()
	s.msg = msg
	subs := s.subscriberList()
	s.mu.Unlock()

	notify(subs, msg)
	return nil
}

// ErrVersionMismatch is returned by DecodeState for records written under a
// different schema version.
var ErrVersionMismatch = errors.New("schema version mismatch")

// EncodeState serializes a message with the current schema version.
func EncodeState(msg types.Message) ([]byte, error) {
	return json.Marshal(persistedState{State: msg, Version: SchemaVersion})
}

// DecodeState parses a persisted record.
func DecodeState(data []byte) (types.Message, error) {
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return types.Message{}, err
	}
	if state.Version != SchemaVersion {
		return types.Message{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, state.Version, SchemaVersion)
	}
	return state.State, nil
}

// Message returns a deep copy of the current document.
func (s *Store) Message() types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg.Clone()
}

// read runs fn against the published document. fn must not retain or modify it.
func (s *Store) read(fn func(m types.Message)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.msg)
}

// update applies fn to a shallow copy of the document. fn reports whether it
// changed anything; only then is the copy published, persisted and announced.
// fn must copy any slice or pointer it modifies.
func (s *Store) update(op string, fn func(m *types.Message) bool) {
	s.mu.Lock()
	draft := s.msg
	if !fn(&draft) {
		s.mu.Unlock()
		return
	}
	s.msg = draft
	s.persist(op, draft)
	subs := s.subscriberList()
	s.mu.Unlock()

	notify(subs, draft)
}

func (s *Store) persist(op string, msg types.Message) {
	if s.slot == nil {
		return
	}
	data, err := EncodeState(msg)
	if err != nil {
		s.logger.Error("encode message", zap.String("op", op), zap.Error(err))
		return
	}
	if err := s.slot.Save(context.Background(), s.name, data); err != nil {
		s.logger.Error("persist message", zap.String("op", op), zap.String("store", s.name), zap.Error(err))
		return
	}
	s.logger.Debug("persisted message", zap.String("op", op), zap.Int("bytes", len(data)))
}

// Subscribe registers fn to run after every change. The message passed to fn
// is shared and must be treated as read-only.
func (s *Store) Subscribe(fn func(types.Message)) (cancel func()) {
	return s.subscribe(fn, nil)
}

// subscribe registers fn. init, when set, sees the current document under the
// same lock so no change can slip between the two.
func (s *Store) subscribe(fn func(types.Message), init func(types.Message)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	if init != nil {
		init(s.msg)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) subscriberList() []func(types.Message) {
	if len(s.subscribers) == 0 {
		return nil
	}
	subs := make([]func(types.Message), 0, len(s.subscribers))
	for i := 0; i < s.nextSubID; i++ {
		if fn, ok := s.subscribers[i]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func notify(subs []func(types.Message), msg types.Message) {
	for _, fn := range subs {
		fn(msg)
	}
}

// Watch calls onChange whenever selector's output changes under equal. It
// returns the selector's current output and a cancel func.
func Watch[T any](s *Store, selector func(types.Message) T, equal func(a, b T) bool, onChange func(T)) (T, func()) {
	var mu sync.Mutex
	var current T
	cancel := s.subscribe(func(m types.Message) {
		next := selector(m)
		mu.Lock()
		if equal(current, next) {
			mu.Unlock()
			return
		}
		current = next
		mu.Unlock()
		onChange(next)
	}, func(m types.Message) {
		current = selector(m)
	})

	mu.Lock()
	defer mu.Unlock()
	return current, cancel
}
