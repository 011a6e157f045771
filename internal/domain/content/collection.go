package content

// Identifiable is a list entry with a numeric id unique within its collection
type Identifiable interface {
	ItemID() int
}

// NextID returns 1 + the largest id in items, or 1 for an empty collection.
// The maximum is recomputed on every call; there is no persisted counter, so
// deleting the highest entry lets its id be handed out again.
func NextID[T Identifiable](items []T) int {
	maxID := 0
	for _, item := range items {
		if id := item.ItemID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Append mints the next id, builds the record with it and appends it.
// The returned slice never aliases items.
func Append[T Identifiable](items []T, build func(id int) T) ([]T, T) {
	item := build(NextID(items))
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, item)
	return out, item
}

// Replace swaps in item for the entry with the same id.
// It reports false and returns items unchanged when no entry matches.
func Replace[T Identifiable](items []T, item T) ([]T, bool) {
	for i := range items {
		if items[i].ItemID() == item.ItemID() {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out, true
		}
	}
	return items, false
}

// Remove drops the entry with the given id
func Remove[T Identifiable](items []T, id int) ([]T, bool) {
	for i := range items {
		if items[i].ItemID() == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, true
		}
	}
	return items, false
}

// IndexOf returns the position of the entry with the given id, or -1
func IndexOf[T Identifiable](items []T, id int) int {
	for i := range items {
		if items[i].ItemID() == id {
			return i
		}
	}
	return -1
}

// Swap exchanges the elements at i and j. Out-of-range indexes leave items
// unchanged and report false.
func Swap[T any](items []T, i, j int) ([]T, bool) {
	if i < 0 || j < 0 || i >= len(items) || j >= len(items) || i == j {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i], out[j] = out[j], out[i]
	return out, true
}

// MoveUp swaps the element at index with its predecessor
func MoveUp[T any](items []T, index int) ([]T, bool) {
	return Swap(items, index, index-1)
}

// MoveDown swaps the element at index with its successor
func MoveDown[T any](items []T, index int) ([]T, bool) {
	return Swap(items, index, index+1)
}

// DuplicateID returns the first id that appears more than once, or 0
func DuplicateID[T Identifiable](items []T) int {
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		id := item.ItemID()
		if seen[id] {
			return id
		}
		seen[id] = true
	}
	return 0
}
