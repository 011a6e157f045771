package request

// BlogPostRequest creates or replaces a blog post
type BlogPostRequest struct {
	Title     string   `json:"title" binding:"required,max=200"`
	Slug      string   `json:"slug" binding:"max=200"`
	Excerpt   string   `json:"excerpt" binding:"max=500"`
	Content   string   `json:"content" binding:"required"`
	Category  string   `json:"category" binding:"max=100"`
	Author    string   `json:"author" binding:"max=100"`
	Image     string   `json:"image" binding:"max=500"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published,omitempty"`
}

// EventRequest creates or replaces a webinar or Manthan session
type EventRequest struct {
	Kind        string `json:"kind" binding:"required,max=20"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Speaker     string `json:"speaker" binding:"max=100"`
	Link        string `json:"link" binding:"omitempty,url"`
	Timezone    string `json:"timezone" binding:"max=50"`
	Duration    string `json:"duration" binding:"max=50"`
	Category    string `json:"category" binding:"max=100"`
}

// ContactRequest is a public contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=200"`
	Phone   string `json:"phone" binding:"max=30"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}
