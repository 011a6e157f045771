package entity

import (
	"time"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
)

// BlogPost represents a stored blog entry
type BlogPost struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;size:220;not null" json:"slug"`
	Excerpt   string    `gorm:"size:500" json:"excerpt"`
	Content   string    `gorm:"type:text" json:"content"`
	Author    string    `gorm:"size:100" json:"author"`
	Category  string    `gorm:"index;size:100" json:"category"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	Image     string    `gorm:"size:500" json:"image"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for BlogPost
func (BlogPost) TableName() string {
	return "blog_posts"
}

// ToContent converts the entity to its API shape
func (b *BlogPost) ToContent() content.BlogPost {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return content.BlogPost{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Excerpt:   b.Excerpt,
		Content:   b.Content,
		Author:    b.Author,
		Category:  b.Category,
		Tags:      tags,
		Image:     b.Image,
		Published: b.Published,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BlogPostFromContent builds an entity from the API shape
func BlogPostFromContent(p content.BlogPost) *BlogPost {
	return &BlogPost{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Author:    p.Author,
		Category:  p.Category,
		Tags:      p.Tags,
		Image:     p.Image,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Event represents a stored webinar or Manthan session
type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Kind        string    `gorm:"index;size:20;not null" json:"kind"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        string    `gorm:"column:event_date;index;size:20" json:"date"`
	Time        string    `gorm:"column:event_time;size:20" json:"time"`
	Speaker     string    `gorm:"size:100" json:"speaker"`
	Link        string    `gorm:"size:500" json:"link"`
	Timezone    string    `gorm:"size:50" json:"timezone"`
	Duration    string    `gorm:"size:50" json:"duration"`
	Category    string    `gorm:"index;size:100" json:"category"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// ToContent converts the entity to its API shape
func (e *Event) ToContent() content.Event {
	return content.Event{
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

// EventFromContent builds an entity from the API shape
func EventFromContent(e content.Event) *Event {
	return &Event{
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

// Contact represents a contact form submission
type Contact struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Email   string    `gorm:"index;size:200;not null" json:"email"`
	Phone   string    `gorm:"size:30" json:"phone"`
	Subject string    `gorm:"size:200" json:"subject"`
	Message string    `gorm:"type:text" json:"message"`
	Date    time.Time `gorm:"column:submitted_at;index" json:"date"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// ToContent converts the entity to its API shape
func (c *Contact) ToContent() content.Contact {
	return content.Contact{
		ID:      int(c.ID),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Date:    c.Date,
	}
}

// ContactFromContent builds an entity from the API shape
func ContactFromContent(c content.Contact) *Contact {
	return &Contact{
		ID:      uint(c.ID),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Date:    c.Date,
	}
}
