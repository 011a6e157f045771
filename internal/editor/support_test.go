package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/testutil/mocks"
)

func TestFilter_DemoContacts(t *testing.T) {
	seed, err := content.Seed()
	require.NoError(t, err)
	contacts := seed.Contacts
	require.Len(t, contacts, 3)
	snapshot := append([]content.Contact(nil), contacts...)

	matched := Filter(contacts, "priya", ContactFields)
	require.Len(t, matched, 1)
	assert.Equal(t, "Priya Patil", matched[0].Name)

	assert.Len(t, Filter(contacts, "PRIYA", ContactFields), 1)
	assert.Len(t, Filter(contacts, "", ContactFields), 3)
	assert.Len(t, Filter(contacts, "  ", ContactFields), 3)
	assert.Len(t, Filter(contacts, "example.com", ContactFields), 3)
	assert.Empty(t, Filter(contacts, "nobody", ContactFields))
	assert.Equal(t, snapshot, contacts)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		term   string
		values []string
		want   bool
	}{
		{"cpc", []string{"How to prepare for the CPC exam"}, true},
		{"Exam", []string{"", "final exam"}, true},
		{"xyz", []string{"abc"}, false},
		{"", nil, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.term, tt.values...), tt.term)
	}
}

func TestNotifier_Expiry(t *testing.T) {
	n := NewNotifier(0)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return now }

	n.Success("Saved successfully")
	now = now.Add(2 * time.Second)
	n.Error("Failed to save")

	active := n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, LevelSuccess, active[0].Level)
	assert.Equal(t, "Failed to save", active[1].Message)

	now = now.Add(1500 * time.Millisecond)
	active = n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, LevelError, active[0].Level)

	now = now.Add(DefaultNotificationTTL)
	assert.Empty(t, n.Active())
}

func TestRedisStore(t *testing.T) {
	client := mocks.NewMockRedisClient()
	store := NewRedisStore(client, "editor:")
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "homeData")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "homeData", `{"services":[]}`))
	value, ok, err := store.Get(ctx, "homeData")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"services":[]}`, value)
	assert.Zero(t, client.TTL("editor:homeData"), "stored copies do not expire")

	require.NoError(t, store.Delete(ctx, "homeData"))
	_, ok, _ = store.Get(ctx, "homeData")
	assert.False(t, ok)
	assert.Zero(t, client.Keys())
}

func TestStoredToken(t *testing.T) {
	store := NewMemoryStore()
	source := StoredToken(store)

	token, err := source(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Set(context.Background(), TokenKey, "abc"))
	token, err = source(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}
