package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawList is a collection of JSON records kept as raw bytes. A change
// re-encodes only the record it touches, so members the Go types do not
// declare survive on every other record.
type RawList struct {
	items []json.RawMessage
	ids   []int
}

type recordID struct {
	ID int `json:"id"`
}

// ParseRawList splits a JSON array into records. Empty input and null are
// an empty list.
func ParseRawList(data []byte) (*RawList, error) {
	l := &RawList{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return l, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	for i, item := range items {
		var rid recordID
		if err := json.Unmarshal(item, &rid); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		l.items = append(l.items, item)
		l.ids = append(l.ids, rid.ID)
	}
	return l, nil
}

// Len returns the number of records
func (l *RawList) Len() int {
	return len(l.items)
}

// IDs returns the record ids in order
func (l *RawList) IDs() []int {
	return append([]int(nil), l.ids...)
}

// IndexOf returns the position of the record with the given id, or -1
func (l *RawList) IndexOf(id int) int {
	for i, itemID := range l.ids {
		if itemID == id {
			return i
		}
	}
	return -1
}

// NextID follows the same max+1 rule as NextID
func (l *RawList) NextID() int {
	maxID := 0
	for _, id := range l.ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// AppendRecord mints the next id, builds the record with it and appends it
func AppendRecord[T Identifiable](l *RawList, build func(id int) T) (T, error) {
	item := build(l.NextID())
	raw, err := json.Marshal(item)
	if err != nil {
		var zero T
		return zero, err
	}
	l.items = append(l.items, raw)
	l.ids = append(l.ids, item.ItemID())
	return item, nil
}

// Replace swaps in item for the record with the same id and reports
// whether one matched
func (l *RawList) Replace(item Identifiable) (bool, error) {
	i := l.IndexOf(item.ItemID())
	if i < 0 {
		return false, nil
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return false, err
	}
	l.items[i] = raw
	return true, nil
}

// Remove drops the record with the given id
func (l *RawList) Remove(id int) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	l.ids = append(l.ids[:i:i], l.ids[i+1:]...)
	return true
}

// Swap exchanges the records at i and j; out-of-range indexes report false
func (l *RawList) Swap(i, j int) bool {
	if i < 0 || j < 0 || i >= len(l.items) || j >= len(l.items) || i == j {
		return false
	}
	l.items[i], l.items[j] = l.items[j], l.items[i]
	l.ids[i], l.ids[j] = l.ids[j], l.ids[i]
	return true
}

// MoveUp swaps the record at index with its predecessor
func (l *RawList) MoveUp(index int) bool {
	return l.Swap(index, index-1)
}

// MoveDown swaps the record at index with its successor
func (l *RawList) MoveDown(index int) bool {
	return l.Swap(index, index+1)
}

// MarshalJSON writes the records back as an array
func (l *RawList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range l.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(item)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Bytes is MarshalJSON without the error
func (l *RawList) Bytes() []byte {
	out, _ := l.MarshalJSON()
	return out
}

// DecodeRecords decodes every record into T
func DecodeRecords[T any](l *RawList) ([]T, error) {
	out := make([]T, 0, len(l.items))
	for i, item := range l.items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
