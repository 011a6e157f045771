//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	gormdao "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/gorm"
	mongodao "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/testutil"
)

type daoSet struct {
	documents dao.ContentDocumentDAO
	blogs     dao.BlogPostDAO
	events    dao.EventDAO
	contacts  dao.ContactDAO
}

func gormDAOs(t *testing.T, db *gorm.DB) daoSet {
	t.Helper()
	require.NoError(t, db.AutoMigrate(entity.Models()...))
	for _, model := range entity.Models() {
		require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error)
	}
	return daoSet{
		documents: gormdao.NewContentDocumentDAO(db),
		blogs:     gormdao.NewBlogPostDAO(db),
		events:    gormdao.NewEventDAO(db),
		contacts:  gormdao.NewContactDAO(db),
	}
}

func mongoDAOs(t *testing.T, db *mongo.Database) daoSet {
	t.Helper()
	require.NoError(t, db.Drop(context.Background()))
	idCounter := mongodao.NewIDCounter(db)
	return daoSet{
		documents: mongodao.NewContentDocumentDAO(db),
		blogs:     mongodao.NewBlogPostDAO(db),
		events:    mongodao.NewEventDAO(db),
		contacts:  mongodao.NewContactDAO(db, idCounter),
	}
}

// ========================================
// MySQL Integration Tests
// ========================================

func TestIntegration_MySQL_DAOs(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMySQL(t)

	db := testutil.NewTestMySQLDB(t, testutil.DefaultTestConfig())
	runDAOSuite(t, gormDAOs(t, db))
}

// ========================================
// PostgreSQL Integration Tests
// ========================================

func TestIntegration_Postgres_DAOs(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoPostgres(t)

	db := testutil.NewTestPostgresDB(t, testutil.DefaultTestConfig())
	runDAOSuite(t, gormDAOs(t, db))
}

// ========================================
// MongoDB Integration Tests
// ========================================

func TestIntegration_MongoDB_DAOs(t *testing.T) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	_, db := testutil.NewTestMongoDB(t, testutil.DefaultTestConfig())
	runDAOSuite(t, mongoDAOs(t, db))
}

func runDAOSuite(t *testing.T, daos daoSet) {
	t.Run("ContentDocuments", func(t *testing.T) { runContentDocumentDAOTests(t, daos.documents) })
	t.Run("BlogPosts", func(t *testing.T) { runBlogPostDAOTests(t, daos.blogs) })
	t.Run("Events", func(t *testing.T) { runEventDAOTests(t, daos.events) })
	t.Run("Contacts", func(t *testing.T) { runContactDAOTests(t, daos.contacts) })
}

func runContentDocumentDAOTests(t *testing.T, d dao.ContentDocumentDAO) {
	ctx := context.Background()

	missing, err := d.FindByKey(ctx, "navbar")
	require.NoError(t, err)
	assert.Nil(t, missing)

	doc := &entity.ContentDocument{Key: "about", Payload: `{"ourStory":{"title":"v1"}}`}
	require.NoError(t, d.Save(ctx, doc, 0))
	assert.Equal(t, int64(1), doc.Version)

	next := &entity.ContentDocument{Key: "about", Payload: `{"ourStory":{"title":"v2"}}`}
	require.NoError(t, d.Save(ctx, next, 1))
	assert.Equal(t, int64(2), next.Version)

	stale := &entity.ContentDocument{Key: "about", Payload: `{"ourStory":{"title":"lost"}}`}
	assert.ErrorIs(t, d.Save(ctx, stale, 1), dao.ErrVersionMismatch)

	stored, err := d.FindByKey(ctx, "about")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, `{"ourStory":{"title":"v2"}}`, stored.Payload)
	assert.Equal(t, int64(2), stored.Version)

	require.NoError(t, d.Save(ctx, &entity.ContentDocument{Key: "home", Payload: `{}`}, dao.AnyVersion))
	require.NoError(t, d.Save(ctx, &entity.ContentDocument{Key: "home", Payload: `{"services":[]}`}, dao.AnyVersion))

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "about", all[0].Key)
	assert.Equal(t, int64(2), all[1].Version)
}

func runBlogPostDAOTests(t *testing.T, d dao.BlogPostDAO) {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	posts := []*entity.BlogPost{
		{ID: testutil.GenerateTestID(), Title: "Coding basics", Slug: "coding-basics", Category: "Coding", Published: true, Tags: []string{"cpc"}, CreatedAt: base},
		{ID: testutil.GenerateTestID(), Title: "Billing guide", Slug: "billing-guide", Category: "Billing", Published: true, CreatedAt: base.Add(time.Minute)},
		{ID: testutil.GenerateTestID(), Title: "Draft coding", Slug: "draft-coding", Category: "Coding", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, p := range posts {
		require.NoError(t, d.Create(ctx, p))
	}

	found, err := d.FindByID(ctx, posts[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"cpc"}, found.Tags)

	bySlug, err := d.FindBySlug(ctx, "billing-guide")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, posts[1].ID, bySlug.ID)

	all, err := d.List(ctx, dao.BlogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, posts[2].ID, all[0].ID)

	published, err := d.List(ctx, dao.BlogFilter{Category: "Coding", PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, posts[0].ID, published[0].ID)

	search, err := d.List(ctx, dao.BlogFilter{Query: "CODING"})
	require.NoError(t, err)
	assert.Len(t, search, 2)

	found.Title = "Coding basics, revised"
	require.NoError(t, d.Update(ctx, found))
	updated, err := d.FindByID(ctx, found.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coding basics, revised", updated.Title)

	exists, err := d.ExistsBy(ctx, "slug", "coding-basics")
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := d.Delete(ctx, posts[2].ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = d.Delete(ctx, posts[2].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func runEventDAOTests(t *testing.T, d dao.EventDAO) {
	ctx := context.Background()

	events := []*entity.Event{
		{ID: testutil.GenerateTestID(), Kind: "webinar", Title: "Later", Date: "2026-12-01"},
		{ID: testutil.GenerateTestID(), Kind: "webinar", Title: "Sooner", Date: "2026-11-01"},
		{ID: testutil.GenerateTestID(), Kind: "manthan", Title: "Meetup", Date: "2026-10-01"},
	}
	for _, e := range events {
		require.NoError(t, d.Create(ctx, e))
	}

	webinars, err := d.List(ctx, "webinar")
	require.NoError(t, err)
	require.Len(t, webinars, 2)
	assert.Equal(t, "Sooner", webinars[0].Title)

	all, err := d.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deleted, err := d.Delete(ctx, events[2].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	manthan, err := d.List(ctx, "manthan")
	require.NoError(t, err)
	assert.Empty(t, manthan)
}

func runContactDAOTests(t *testing.T, d dao.ContactDAO) {
	ctx := context.Background()
	submitted := time.Date(2026, 9, 2, 10, 15, 0, 0, time.UTC)

	contacts := []*entity.Contact{
		{Name: "Priya Patil", Email: "priya.patil@example.com", Subject: "Course enquiry", Message: "Next CPC batch?", Date: submitted},
		{Name: "Arjun Mehta", Email: "arjun.mehta@example.com", Subject: "Referral", Message: "Openings?", Date: submitted.Add(time.Hour)},
		{Name: "Kavya Rao", Email: "kavya.rao@example.com", Subject: "Payment", Message: "Instalments?", Date: submitted.Add(2 * time.Hour)},
	}
	for _, c := range contacts {
		require.NoError(t, d.Create(ctx, c))
		assert.NotZero(t, c.ID)
	}
	assert.Less(t, contacts[0].ID, contacts[1].ID)

	matched, err := d.List(ctx, "priya")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Priya Patil", matched[0].Name)

	all, err := d.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := d.FindByID(ctx, contacts[1].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Arjun Mehta", found.Name)
	assert.False(t, found.Date.IsZero())

	deleted, err := d.Delete(ctx, contacts[1].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
