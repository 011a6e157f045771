package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo/document"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

func TestMappers_Nil(t *testing.T) {
	assert.Nil(t, NewContentDocumentMapper().ToEntity(nil))
	assert.Nil(t, NewBlogPostMapper().ToDocument(nil))
	assert.Nil(t, NewBlogPostMapper().ToEntity(nil))
	assert.Nil(t, NewEventMapper().ToDocument(nil))
	assert.Nil(t, NewEventMapper().ToEntity(nil))
	assert.Nil(t, NewContactMapper().ToDocument(nil))
	assert.Nil(t, NewContactMapper().ToEntity(nil))
}

func TestContentDocumentMapper_ToEntities(t *testing.T) {
	now := time.Now()
	docs := []*document.ContentDocumentDoc{
		{Key: "about", Payload: `{"x":1}`, Version: 2, UpdatedAt: now},
		{Key: "home", Payload: `{}`, Version: 1},
	}

	entities := NewContentDocumentMapper().ToEntities(docs)
	require.Len(t, entities, 2)
	assert.Equal(t, "about", entities[0].Key)
	assert.Equal(t, `{"x":1}`, entities[0].Payload)
	assert.Equal(t, int64(2), entities[0].Version)
	assert.Equal(t, now, entities[0].UpdatedAt)
}

func TestBlogPostMapper(t *testing.T) {
	m := NewBlogPostMapper()
	post := &entity.BlogPost{ID: "p1", Title: "Tips", Slug: "tips", Tags: []string{"cpc"}, Published: true}

	doc := m.ToDocument(post)
	assert.Equal(t, "p1", doc.ID)
	assert.Equal(t, []string{"cpc"}, doc.Tags)

	back := m.ToEntities([]*document.BlogPostDocument{doc})
	require.Len(t, back, 1)
	assert.Equal(t, post, back[0])
}

func TestEventMapper(t *testing.T) {
	m := NewEventMapper()
	e := &entity.Event{ID: "e1", Kind: "manthan", Title: "Meetup", Date: "2026-12-06", Link: "https://r.example", Timezone: "IST"}

	doc := m.ToDocument(e)
	assert.Equal(t, "https://r.example", doc.Link)
	assert.Equal(t, "IST", doc.Timezone)
	assert.Equal(t, e, m.ToEntity(doc))
}

func TestContactMapper(t *testing.T) {
	m := NewContactMapper()
	c := &entity.Contact{ID: 3, Name: "Priya", Email: "priya@example.com", Message: "hi"}

	doc := m.ToDocument(c)
	assert.Equal(t, uint(3), doc.NumericID)
	assert.True(t, doc.ID.IsZero())
	assert.Equal(t, c, m.ToEntity(doc))
	assert.Len(t, m.ToEntities([]*document.ContactDocument{doc, doc}), 2)
}
