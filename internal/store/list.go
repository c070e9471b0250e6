package store

// The helpers below never modify their input slice. Each returns a freshly
// allocated slice and whether anything changed.

func inRange[T any](items []T, i int) bool {
	return i >= 0 && i < len(items)
}

func appendItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func removeItem[T any](items []T, i int) ([]T, bool) {
	if !inRange(items, i) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

// moveItem moves the element at i by delta positions. Moves that would leave
// the list bounds are ignored.
func moveItem[T any](items []T, i, delta int) ([]T, bool) {
	j := i + delta
	if !inRange(items, i) || !inRange(items, j) || i == j {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i], out[j] = out[j], out[i]
	return out, true
}

// insertAfter inserts item directly after index i.
func insertAfter[T any](items []T, i int, item T) ([]T, bool) {
	if !inRange(items, i) {
		return items, false
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:i+1]...)
	out = append(out, item)
	return append(out, items[i+1:]...), true
}

// replaceItem returns a copy of items with index i set to item.
func replaceItem[T any](items []T, i int, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out
}
