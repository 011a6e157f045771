package request

import "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"

// Move directions for ordered collections
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// MemberRequest creates or replaces a core committee member
type MemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"max=100"`
	Image    string `json:"image" binding:"max=500"`
	Bio      string `json:"bio,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" binding:"omitempty,url"`
}

// PolicySectionRequest creates or replaces a payment policy section
type PolicySectionRequest struct {
	Title   string                 `json:"title" binding:"required,max=200"`
	Icon    string                 `json:"icon"`
	Color   string                 `json:"color"`
	Content []content.ContentBlock `json:"content"`
}

// MoveRequest moves an item one position within its collection
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// TextItemRequest creates or replaces a plain string list entry
type TextItemRequest struct {
	Text string `json:"text" binding:"required"`
}

// ServiceRequest creates or replaces a home page service card
type ServiceRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
