package content

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Event kinds
const (
	EventWebinar = "webinar"
	EventManthan = "manthan"
)

// BlogPost is a blog entry. IDs are assigned by the server.
type BlogPost struct {
	ID        string    `json:"_id,omitempty"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Image     string    `json:"image"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the fields an operator must fill in
func (p *BlogPost) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return errors.New("content is required")
	}
	return nil
}

// Event is a webinar or Manthan session. IDs are assigned by the server.
type Event struct {
	ID          string    `json:"_id,omitempty"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Speaker     string    `json:"speaker"`
	Link        string    `json:"link"`
	Timezone    string    `json:"timezone"`
	Duration    string    `json:"duration"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidEventKind reports whether kind names a known event kind
func ValidEventKind(kind string) bool {
	return kind == EventWebinar || kind == EventManthan
}

// Validate checks the fields an operator must fill in
func (e *Event) Validate() error {
	if !ValidEventKind(e.Kind) {
		return errors.New("kind must be webinar or manthan")
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(e.Date) == "" {
		return errors.New("date is required")
	}
	return nil
}

// Contact is a submission of the public contact form
type Contact struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func (c Contact) ItemID() int { return c.ID }

// Validate checks a form submission
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errors.New("a valid email is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}
