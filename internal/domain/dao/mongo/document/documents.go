// Package document defines MongoDB document structs for persistence.
// They are kept apart from the entities so storage field names can evolve
// independently of the GORM schema.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentDocumentDoc stores one singleton content document.
// Payload is kept as JSON text so reads return exactly what was written.
type ContentDocumentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Key       string             `bson:"key"`
	Payload   string             `bson:"payload"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for content documents.
func (ContentDocumentDoc) CollectionName() string {
	return "content_documents"
}

// BlogPostDocument represents a blog post in MongoDB.
type BlogPostDocument struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Slug      string    `bson:"slug"`
	Excerpt   string    `bson:"excerpt,omitempty"`
	Content   string    `bson:"content"`
	Author    string    `bson:"author,omitempty"`
	Category  string    `bson:"category,omitempty"`
	Tags      []string  `bson:"tags,omitempty"`
	Image     string    `bson:"image,omitempty"`
	Published bool      `bson:"published"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for blog posts.
func (BlogPostDocument) CollectionName() string {
	return "blog_posts"
}

// EventDocument represents an event in MongoDB.
type EventDocument struct {
	ID          string    `bson:"_id"`
	Kind        string    `bson:"kind"`
	Title       string    `bson:"title"`
	Description string    `bson:"description,omitempty"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time,omitempty"`
	Speaker     string    `bson:"speaker,omitempty"`
	Link        string    `bson:"link,omitempty"`
	Timezone    string    `bson:"timezone,omitempty"`
	Duration    string    `bson:"duration,omitempty"`
	Category    string    `bson:"category,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for events.
func (EventDocument) CollectionName() string {
	return "events"
}

// ContactDocument represents a contact form submission in MongoDB.
type ContactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NumericID uint               `bson:"numeric_id"` // matches the SQL auto-increment ids
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Subject   string             `bson:"subject,omitempty"`
	Message   string             `bson:"message"`
	Date      time.Time          `bson:"date"`
}

// CollectionName returns the MongoDB collection name for contacts.
func (ContactDocument) CollectionName() string {
	return "contacts"
}
