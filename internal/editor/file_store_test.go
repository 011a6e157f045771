package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "referme", "editor.json")
	store := NewFileStore(path)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, store.Delete(ctx, TokenKey))
	assert.NoFileExists(t, path)

	require.NoError(t, store.Set(ctx, TokenKey, "tok"))
	require.NoError(t, store.Set(ctx, "homeData", `{"hero":{}}`))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened := NewFileStore(path)
	value, ok, err := reopened.Get(ctx, "homeData")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"hero":{}}`, value)

	require.NoError(t, reopened.Delete(ctx, TokenKey))
	_, ok, err = store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	tmps, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, tmps)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStore(path).Get(context.Background(), TokenKey)
	assert.Error(t, err)
	assert.Error(t, NewFileStore(path).Set(context.Background(), TokenKey, "tok"))
}

// Each editor command runs in a fresh process, so the login has to reach
// the next run through the state file.
func TestFileStore_LoginCarriesToNextRun(t *testing.T) {
	api := setupAPI(t)
	path := filepath.Join(t.TempDir(), "editor.json")
	ctx := context.Background()

	loginRun := NewFileStore(path)
	_, err := NewHTTPAuth(api.client(StoredToken(loginRun)), loginRun, zap.NewNop()).
		Login(ctx, Credentials{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	importRun := NewFileStore(path)
	e := newEditor(t, content.DomainHome, Options{Client: api.client(StoredToken(importRun)), Store: importRun})
	require.NoError(t, e.Hydrate(ctx))
	require.NoError(t, e.SetField("hero.title", "Imported hero"))
	require.NoError(t, e.Save(ctx))
	assert.Equal(t, int64(1), e.Version())
	assert.Equal(t, string(e.Data()), api.repo.Payload(content.DomainHome))

	// a run without the state file is signed out
	memoryRun := NewMemoryStore()
	other := newEditor(t, content.DomainHome, Options{Client: api.client(StoredToken(memoryRun)), Store: memoryRun})
	require.NoError(t, other.Hydrate(ctx))
	require.NoError(t, other.SetField("hero.title", "Lost"))
	assert.Error(t, other.Save(ctx))
	assert.Equal(t, string(e.Data()), api.repo.Payload(content.DomainHome))
}
