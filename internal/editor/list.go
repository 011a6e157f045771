package editor

import (
	"encoding/json"
	"fmt"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
)

// NextID returns 1 + the largest id in items, or 1 when empty
func NextID[T content.Identifiable](items []T) int {
	return content.NextID(items)
}

// Add appends a record built with the next id
func Add[T content.Identifiable](items []T, build func(id int) T) ([]T, T) {
	return content.Append(items, build)
}

// Replace swaps in item for the entry with the same id
func Replace[T content.Identifiable](items []T, item T) ([]T, bool) {
	return content.Replace(items, item)
}

// Remove drops the entry with the given id
func Remove[T content.Identifiable](items []T, id int) ([]T, bool) {
	return content.Remove(items, id)
}

// MoveUp swaps the entry with the given id and its predecessor
func MoveUp[T content.Identifiable](items []T, id int) ([]T, bool) {
	return content.MoveUp(items, content.IndexOf(items, id))
}

// MoveDown swaps the entry with the given id and its successor
func MoveDown[T content.Identifiable](items []T, id int) ([]T, bool) {
	i := content.IndexOf(items, id)
	if i < 0 {
		return items, false
	}
	return content.MoveDown(items, i)
}

// Confirmer asks the user before a destructive change
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm approves every prompt
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

// List binds a collection inside an editor's document, e.g. "services" or
// "paymentPolicy.sections". Every change goes through the editor, so a
// locked editor rejects them all.
type List[T content.Identifiable] struct {
	editor  *Editor
	path    string
	confirm Confirmer
}

// NewList binds the list at path; a nil confirm approves every delete
func NewList[T content.Identifiable](e *Editor, path string, confirm Confirmer) *List[T] {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	return &List[T]{editor: e, path: path, confirm: confirm}
}

// Items decodes the current entries; a missing list is empty
func (l *List[T]) Items() ([]T, error) {
	raw, ok, err := getPath(l.editor.doc, l.path)
	if err != nil {
		return nil, err
	}
	if !ok || isNull(raw) {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return items, nil
}

// Add appends a new entry; build receives the minted id
func (l *List[T]) Add(build func(id int) T) (T, error) {
	var zero T
	records, err := l.records()
	if err != nil {
		return zero, err
	}
	item, err := content.AppendRecord(records, build)
	if err != nil {
		return zero, err
	}
	if err := l.store(records); err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the entry with item's id
func (l *List[T]) Update(item T) error {
	records, err := l.records()
	if err != nil {
		return err
	}
	ok, err := records.Replace(item)
	if err != nil {
		return err
	}
	if !ok {
		return ErrItemNotFound
	}
	return l.store(records)
}

// Delete removes the entry with id once confirmed. It reports false when
// the user declined.
func (l *List[T]) Delete(id int) (bool, error) {
	records, err := l.records()
	if err != nil {
		return false, err
	}
	if records.IndexOf(id) < 0 {
		return false, ErrItemNotFound
	}
	if !l.confirm.Confirm("Are you sure you want to delete this item?") {
		return false, nil
	}
	records.Remove(id)
	if err := l.store(records); err != nil {
		return false, err
	}
	return true, nil
}

// MoveUp swaps the entry with its predecessor
func (l *List[T]) MoveUp(id int) error {
	return l.move(id, (*content.RawList).MoveUp)
}

// MoveDown swaps the entry with its successor
func (l *List[T]) MoveDown(id int) error {
	return l.move(id, (*content.RawList).MoveDown)
}

func (l *List[T]) move(id int, fn func(*content.RawList, int) bool) error {
	records, err := l.records()
	if err != nil {
		return err
	}
	index := records.IndexOf(id)
	if index < 0 {
		return ErrItemNotFound
	}
	if !fn(records, index) {
		return ErrInvalidMove
	}
	return l.store(records)
}

// records loads the list as raw records so untouched entries keep members
// T does not declare
func (l *List[T]) records() (*content.RawList, error) {
	if l.editor.locked {
		return nil, ErrLocked
	}
	raw, _, err := getPath(l.editor.doc, l.path)
	if err != nil {
		return nil, err
	}
	records, err := content.ParseRawList(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return records, nil
}

func (l *List[T]) store(records *content.RawList) error {
	return l.editor.SetField(l.path, records)
}
