// Package mapper converts between domain entities and MongoDB documents.
package mapper

import (
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo/document"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// ContentDocumentMapper converts between ContentDocument and ContentDocumentDoc.
type ContentDocumentMapper struct{}

// NewContentDocumentMapper creates a new ContentDocumentMapper.
func NewContentDocumentMapper() *ContentDocumentMapper {
	return &ContentDocumentMapper{}
}

// ToEntity converts a stored document to an entity.
func (m *ContentDocumentMapper) ToEntity(doc *document.ContentDocumentDoc) *entity.ContentDocument {
	if doc == nil {
		return nil
	}
	return &entity.ContentDocument{
		Key:       doc.Key,
		Payload:   doc.Payload,
		Version:   doc.Version,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToEntities converts a slice of stored documents.
func (m *ContentDocumentMapper) ToEntities(docs []*document.ContentDocumentDoc) []*entity.ContentDocument {
	out := make([]*entity.ContentDocument, 0, len(docs))
	for _, doc := range docs {
		out = append(out, m.ToEntity(doc))
	}
	return out
}

// BlogPostMapper converts between BlogPost and BlogPostDocument.
type BlogPostMapper struct{}

// NewBlogPostMapper creates a new BlogPostMapper.
func NewBlogPostMapper() *BlogPostMapper {
	return &BlogPostMapper{}
}

// ToDocument converts a BlogPost entity to a document.
func (m *BlogPostMapper) ToDocument(post *entity.BlogPost) *document.BlogPostDocument {
	if post == nil {
		return nil
	}
	return &document.BlogPostDocument{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Author:    post.Author,
		Category:  post.Category,
		Tags:      post.Tags,
		Image:     post.Image,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// ToEntity converts a document to a BlogPost entity.
func (m *BlogPostMapper) ToEntity(doc *document.BlogPostDocument) *entity.BlogPost {
	if doc == nil {
		return nil
	}
	return &entity.BlogPost{
		ID:        doc.ID,
		Title:     doc.Title,
		Slug:      doc.Slug,
		Excerpt:   doc.Excerpt,
		Content:   doc.Content,
		Author:    doc.Author,
		Category:  doc.Category,
		Tags:      doc.Tags,
		Image:     doc.Image,
		Published: doc.Published,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToEntities converts a slice of documents.
func (m *BlogPostMapper) ToEntities(docs []*document.BlogPostDocument) []*entity.BlogPost {
	out := make([]*entity.BlogPost, 0, len(docs))
	for _, doc := range docs {
		out = append(out, m.ToEntity(doc))
	}
	return out
}

// EventMapper converts between Event and EventDocument.
type EventMapper struct{}

// NewEventMapper creates a new EventMapper.
func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

// ToDocument converts an Event entity to a document.
func (m *EventMapper) ToDocument(e *entity.Event) *document.EventDocument {
	if e == nil {
		return nil
	}
	return &document.EventDocument{
		ID:          e.ID,
		Kind:        e.Kind,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Speaker:     e.Speaker,
		Link:        e.Link,
		Timezone:    e.Timezone,
		Duration:    e.Duration,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEntity converts a document to an Event entity.
func (m *EventMapper) ToEntity(doc *document.EventDocument) *entity.Event {
	if doc == nil {
		return nil
	}
	return &entity.Event{
		ID:          doc.ID,
		Kind:        doc.Kind,
		Title:       doc.Title,
		Description: doc.Description,
		Date:        doc.Date,
		Time:        doc.Time,
		Speaker:     doc.Speaker,
		Link:        doc.Link,
		Timezone:    doc.Timezone,
		Duration:    doc.Duration,
		Category:    doc.Category,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// ToEntities converts a slice of documents.
func (m *EventMapper) ToEntities(docs []*document.EventDocument) []*entity.Event {
	out := make([]*entity.Event, 0, len(docs))
	for _, doc := range docs {
		out = append(out, m.ToEntity(doc))
	}
	return out
}

// ContactMapper converts between Contact and ContactDocument.
type ContactMapper struct{}

// NewContactMapper creates a new ContactMapper.
func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

// ToDocument converts a Contact entity to a document.
func (m *ContactMapper) ToDocument(c *entity.Contact) *document.ContactDocument {
	if c == nil {
		return nil
	}
	return &document.ContactDocument{
		NumericID: c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		Date:      c.Date,
	}
}

// ToEntity converts a document to a Contact entity.
func (m *ContactMapper) ToEntity(doc *document.ContactDocument) *entity.Contact {
	if doc == nil {
		return nil
	}
	return &entity.Contact{
		ID:      doc.NumericID,
		Name:    doc.Name,
		Email:   doc.Email,
		Phone:   doc.Phone,
		Subject: doc.Subject,
		Message: doc.Message,
		Date:    doc.Date,
	}
}

// ToEntities converts a slice of documents.
func (m *ContactMapper) ToEntities(docs []*document.ContactDocument) []*entity.Contact {
	out := make([]*entity.Contact, 0, len(docs))
	for _, doc := range docs {
		out = append(out, m.ToEntity(doc))
	}
	return out
}
