package core

import "testing"

func TestSequenceMonotonic(t *testing.T) {
	seq := NewSequenceFrom(10)
	first := seq.NextID()
	second := seq.NextID()
	if first != 10 || second != 11 {
		t.Fatalf("expected 10, 11 got %d, %d", first, second)
	}
}

func TestSequenceReserve(t *testing.T) {
	seq := NewSequenceFrom(1)
	seq.Reserve(41)
	if id := seq.NextID(); id != 42 {
		t.Fatalf("expected 42 after reserve, got %d", id)
	}

	seq.Reserve(5)
	if id := seq.NextID(); id != 43 {
		t.Fatalf("reserve below cursor should not rewind, got %d", id)
	}
}

func TestNewSequenceUsesClock(t *testing.T) {
	seq := NewSequence()
	if id := seq.NextID(); id <= 0 {
		t.Fatalf("expected clock-seeded id, got %d", id)
	}
}
