package editor

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
)

func ids[T content.Identifiable](items []T) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ItemID())
	}
	return out
}

func newService(title string) func(id int) content.Service {
	return func(id int) content.Service { return content.Service{ID: id, Title: title} }
}

func servicesList(t *testing.T) (*Editor, *List[content.Service]) {
	t.Helper()
	e := newEditor(t, content.DomainHome, Options{})
	return e, NewList[content.Service](e, "services", nil)
}

func mustItems[T content.Identifiable](t *testing.T, l *List[T]) []T {
	t.Helper()
	items, err := l.Items()
	require.NoError(t, err)
	return items
}

func TestList_ServiceIDs(t *testing.T) {
	_, services := servicesList(t)
	require.Equal(t, []int{1, 3}, ids(mustItems(t, services)))

	added, err := services.Add(newService("Mock Interviews"))
	require.NoError(t, err)
	assert.Equal(t, 4, added.ID)
	assert.Equal(t, []int{1, 3, 4}, ids(mustItems(t, services)))

	_, services = servicesList(t)
	deleted, err := services.Delete(3)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []int{1}, ids(mustItems(t, services)))

	added, err = services.Add(newService("Resume Review"))
	require.NoError(t, err)
	assert.Equal(t, 2, added.ID)
}

func TestList_CountAndUniqueness(t *testing.T) {
	_, services := servicesList(t)
	original := ids(mustItems(t, services))
	rng := rand.New(rand.NewSource(42))

	adds, deletes := 0, 0
	minted := map[int]bool{}
	for step := 0; step < 200; step++ {
		items := mustItems(t, services)
		if len(items) == 0 || rng.Intn(3) > 0 {
			before := 0
			for _, s := range items {
				if s.ID > before {
					before = s.ID
				}
			}
			added, err := services.Add(newService("Extra"))
			require.NoError(t, err)
			assert.Greater(t, added.ID, before)
			minted[added.ID] = true
			adds++
			continue
		}
		victim := items[rng.Intn(len(items))].ID
		ok, err := services.Delete(victim)
		require.NoError(t, err)
		require.True(t, ok)
		deletes++
	}

	final := mustItems(t, services)
	assert.Len(t, final, len(original)+adds-deletes)
	assert.Zero(t, content.DuplicateID(final))
	for _, id := range ids(final) {
		assert.True(t, minted[id] || id == 1 || id == 3, "id %d was neither original nor minted", id)
	}
}

func TestList_Update(t *testing.T) {
	e, services := servicesList(t)

	require.NoError(t, services.Update(content.Service{ID: 3, Title: "Referrals", Icon: "FaUsers"}))
	items := mustItems(t, services)
	assert.Equal(t, "Referrals", items[1].Title)
	assert.Equal(t, "FaUsers", items[1].Icon)
	assert.True(t, e.Dirty())

	assert.ErrorIs(t, services.Update(content.Service{ID: 99, Title: "x"}), ErrItemNotFound)
}

func TestList_DeleteNeedsConfirmation(t *testing.T) {
	e := newEditor(t, content.DomainHome, Options{})
	var prompts []string
	answer := false
	services := NewList[content.Service](e, "services", ConfirmFunc(func(prompt string) bool {
		prompts = append(prompts, prompt)
		return answer
	}))
	before := string(e.Data())

	deleted, err := services.Delete(1)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, before, string(e.Data()))
	require.Len(t, prompts, 1)

	_, err = services.Delete(42)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Len(t, prompts, 1, "missing items are not prompted for")

	answer = true
	deleted, err = services.Delete(1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []int{3}, ids(mustItems(t, services)))
}

func TestList_ReorderPolicySections(t *testing.T) {
	e := newEditor(t, content.DomainAbout, Options{})
	sections := NewList[content.PolicySection](e, "paymentPolicy.sections", nil)
	require.Equal(t, []int{1, 2}, ids(mustItems(t, sections)))
	header, _ := e.Field("paymentPolicy.header")

	require.NoError(t, sections.MoveUp(2))
	assert.Equal(t, []int{2, 1}, ids(mustItems(t, sections)))

	tests := []struct {
		name string
		move func() error
		want error
	}{
		{"first cannot move up", func() error { return sections.MoveUp(2) }, ErrInvalidMove},
		{"last cannot move down", func() error { return sections.MoveDown(1) }, ErrInvalidMove},
		{"missing up", func() error { return sections.MoveUp(9) }, ErrItemNotFound},
		{"missing down", func() error { return sections.MoveDown(9) }, ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.move(), tt.want)
			assert.Equal(t, []int{2, 1}, ids(mustItems(t, sections)))
		})
	}

	require.NoError(t, sections.MoveDown(2))
	assert.Equal(t, []int{1, 2}, ids(mustItems(t, sections)))

	after, _ := e.Field("paymentPolicy.header")
	assert.Equal(t, string(header), string(after))
}

func TestList_MissingListStartsEmpty(t *testing.T) {
	e := newEditor(t, content.DomainHome, Options{})
	require.NoError(t, e.SetField("services", nil))
	services := NewList[content.Service](e, "services", nil)

	assert.Empty(t, mustItems(t, services))
	added, err := services.Add(newService("First"))
	require.NoError(t, err)
	assert.Equal(t, 1, added.ID)

	members := NewList[content.Member](e, "team.members", nil)
	assert.Empty(t, mustItems(t, members))
}

func TestCollectionHelpers(t *testing.T) {
	items := []content.Service{{ID: 1}, {ID: 3}}

	assert.Equal(t, 4, NextID(items))
	assert.Equal(t, 1, NextID([]content.Service{}))

	grown, item := Add(items, newService("x"))
	assert.Equal(t, 4, item.ID)
	assert.Len(t, grown, 3)
	assert.Len(t, items, 2, "input is not modified")

	replaced, ok := Replace(items, content.Service{ID: 3, Title: "y"})
	assert.True(t, ok)
	assert.Equal(t, "y", replaced[1].Title)
	assert.Empty(t, items[1].Title)

	_, ok = Remove(items, 7)
	assert.False(t, ok)

	moved, ok := MoveUp(items, 3)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 1}, ids(moved))
	_, ok = MoveUp(items, 1)
	assert.False(t, ok)
	_, ok = MoveDown(items, 3)
	assert.False(t, ok)
	_, ok = MoveDown(items, 8)
	assert.False(t, ok)
}

func TestList_KeepsMembersOfOtherEntries(t *testing.T) {
	e := newEditor(t, content.DomainHome, Options{})
	require.NoError(t, e.SetField("services", json.RawMessage(`[{"color":"#f00","id":1,"title":"A"},{"id":2,"title":"B","badge":"hot"}]`)))
	services := NewList[content.Service](e, "services", nil)

	added, err := services.Add(newService("C"))
	require.NoError(t, err)
	assert.Equal(t, 3, added.ID)
	require.NoError(t, services.Update(content.Service{ID: 2, Title: "B2"}))
	require.NoError(t, services.MoveUp(3))

	raw, ok := e.Field("services")
	require.True(t, ok)
	assert.Equal(t,
		`[{"color":"#f00","id":1,"title":"A"},{"id":3,"title":"C","description":"","icon":""},{"id":2,"title":"B2","description":"","icon":""}]`,
		string(raw))

	deleted, err := services.Delete(3)
	require.NoError(t, err)
	assert.True(t, deleted)
	raw, _ = e.Field("services")
	assert.Contains(t, string(raw), `{"color":"#f00","id":1,"title":"A"}`)
}
