package impl

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/testutil"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/testutil/mocks"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

func setupAuthService(t *testing.T) (service.AuthService, *security.JWTProvider) {
	t.Helper()
	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:              "test-secret",
		AccessTokenDuration: time.Hour,
		Issuer:              "referme-test",
	})
	denylist := security.NewTokenDenylist(cache.NewMemoryCache())
	admin := config.AdminConfig{Username: "admin", PasswordHash: hash}
	return NewAuthService(admin, jwtProvider, hasher, denylist, zap.NewNop()), jwtProvider
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "admin", resp.Username)

	claims, err := svc.Authenticate(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := setupAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"unknown user", "root", "s3cret-pass"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &request.LoginRequest{Username: tt.username, Password: tt.password})
			assert.Equal(t, service.ErrInvalidCredentials, err)
		})
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	other, err := svc.Login(ctx, &request.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))

	_, err = svc.Authenticate(ctx, resp.AccessToken)
	assert.Equal(t, service.ErrInvalidToken, err)

	// Other sessions stay valid
	_, err = svc.Authenticate(ctx, other.AccessToken)
	assert.NoError(t, err)
}

func TestAuthService_InvalidTokens(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Logout(ctx, "garbage"))

	_, err := svc.Authenticate(ctx, "garbage")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))

	foreign := security.NewJWTProvider(&config.JWTConfig{Secret: "other", AccessTokenDuration: time.Hour, Issuer: "referme-test"})
	token, _, err := foreign.GenerateAccessToken("admin")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, token)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func snapshotFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "content-*.json"))
	require.NoError(t, err)
	sort.Strings(matches)
	return matches
}

func TestSnapshotService_Disabled(t *testing.T) {
	contentSvc, _, _ := setupContentService()

	svc := NewSnapshotService(contentSvc, config.SnapshotConfig{Enabled: false, Directory: t.TempDir()}, testutil.NewTestLogger(t))
	_, err := svc.Snapshot(context.Background())
	assert.Equal(t, service.ErrSnapshotDisabled, err)

	svc = NewSnapshotService(contentSvc, config.SnapshotConfig{Enabled: true}, testutil.NewTestLogger(t))
	_, err = svc.Snapshot(context.Background())
	assert.Equal(t, service.ErrSnapshotDisabled, err)
}

func TestSnapshotService_WritesAllDocuments(t *testing.T) {
	contentSvc, repo, _ := setupContentService()
	repo.Put(content.DomainNavbar, `{"theme":"dark"}`, 7)
	dir := t.TempDir()

	svc := NewSnapshotService(contentSvc, config.SnapshotConfig{Enabled: true, Directory: dir, Retain: 5}, testutil.NewTestLogger(t)).(*snapshotService)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC) }

	result, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "content-20261019T030000.000Z.json"), result.Path)
	assert.Equal(t, len(content.Domains()), result.Documents)

	raw, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	var snap service.Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, int64(7), snap.Documents[content.DomainNavbar].Version)
	assert.JSONEq(t, `{"theme":"dark"}`, string(snap.Documents[content.DomainNavbar].Data))
	assert.Equal(t, int64(0), snap.Documents[content.DomainAbout].Version)

	assert.Empty(t, mustGlob(t, filepath.Join(dir, "*.tmp")))
}

func mustGlob(t *testing.T, pattern string) []string {
	t.Helper()
	matches, err := filepath.Glob(pattern)
	require.NoError(t, err)
	return matches
}

func TestSnapshotService_PrunesToRetain(t *testing.T) {
	contentSvc, _, _ := setupContentService()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

	svc := NewSnapshotService(contentSvc, config.SnapshotConfig{Enabled: true, Directory: dir, Retain: 2}, testutil.NewTestLogger(t)).(*snapshotService)
	start := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return at }
		_, err := svc.Snapshot(context.Background())
		require.NoError(t, err)
	}

	files := snapshotFiles(t, dir)
	require.Len(t, files, 2)
	assert.Equal(t, "content-20261019T020000.000Z.json", filepath.Base(files[0]))
	assert.Equal(t, "content-20261019T030000.000Z.json", filepath.Base(files[1]))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSnapshotService_SameInstantGetsDistinctFiles(t *testing.T) {
	contentSvc, repo, _ := setupContentService()
	dir := t.TempDir()

	svc := NewSnapshotService(contentSvc, config.SnapshotConfig{Enabled: true, Directory: dir, Retain: 2}, testutil.NewTestLogger(t)).(*snapshotService)
	at := time.Date(2026, 10, 19, 3, 0, 0, 250*int(time.Millisecond), time.UTC)
	svc.now = func() time.Time { return at }

	var paths []string
	for version := int64(1); version <= 3; version++ {
		repo.Put(content.DomainNavbar, `{"theme":"dark"}`, version)
		result, err := svc.Snapshot(context.Background())
		require.NoError(t, err)
		paths = append(paths, result.Path)
	}
	assert.Equal(t, "content-20261019T030000.250Z.json", filepath.Base(paths[0]))
	assert.Equal(t, "content-20261019T030000.250Z_001.json", filepath.Base(paths[1]))
	assert.Equal(t, "content-20261019T030000.250Z_002.json", filepath.Base(paths[2]))

	// the oldest of the three is pruned, the two newest keep their data
	files := snapshotFiles(t, dir)
	require.Equal(t, paths[1:], files)
	for i, path := range files {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var snap service.Snapshot
		require.NoError(t, json.Unmarshal(raw, &snap))
		assert.Equal(t, int64(i+2), snap.Documents[content.DomainNavbar].Version)
	}
	assert.Empty(t, mustGlob(t, filepath.Join(dir, "*.tmp")))
}

func setupSeeder() (service.Seeder, *mocks.MockContentRepository, *mocks.MockBlogRepository, *mocks.MockEventRepository, *mocks.MockContactRepository) {
	docs := mocks.NewMockContentRepository()
	blogs := mocks.NewMockBlogRepository()
	events := mocks.NewMockEventRepository()
	contacts := mocks.NewMockContactRepository()
	logger := zap.NewNop()
	seeder := NewSeeder(docs, blogs, events, contacts,
		NewBlogService(blogs, nil, logger),
		NewEventService(events, nil, logger),
		logger)
	return seeder, docs, blogs, events, contacts
}

func TestSeeder_SeedsEmptyStore(t *testing.T) {
	seeder, docs, blogs, _, contacts := setupSeeder()
	ctx := context.Background()

	result, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"about", "courses", "footer", "home", "navbar"}, result.Documents)
	assert.Equal(t, 1, result.Blogs)
	assert.Equal(t, 2, result.Events)
	assert.Equal(t, 3, result.Contacts)

	stored, err := docs.Get(ctx, content.DomainHome)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)

	post, err := blogs.GetBySlug(ctx, "how-to-prepare-for-the-cpc-exam")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.NotEmpty(t, post.Excerpt)

	matched, err := contacts.List(ctx, "priya")
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestSeeder_IsIdempotent(t *testing.T) {
	seeder, docs, _, _, contacts := setupSeeder()
	ctx := context.Background()
	docs.Put(content.DomainAbout, `{"whatWeDo":{"title":"Ours"}}`, 4)

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.NotContains(t, first.Documents, content.DomainAbout)
	assert.Equal(t, `{"whatWeDo":{"title":"Ours"}}`, docs.Payload(content.DomainAbout))

	second, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Empty(t, second.Documents)
	assert.Zero(t, second.Blogs)
	assert.Zero(t, second.Events)
	assert.Zero(t, second.Contacts)

	n, err := contacts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSeeder_StorageFailure(t *testing.T) {
	seeder, docs, _, _, _ := setupSeeder()
	docs.SaveErr = errors.New("disk full")

	_, err := seeder.Seed(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.ErrInternalError))
}
