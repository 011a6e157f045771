package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
)

// AnyVersion disables the version check on a write
const AnyVersion int64 = -1

// Document is a content document as served to clients.
// Version 0 means the built-in default is being served.
type Document struct {
	Domain    string
	Version   int64
	Data      json.RawMessage
	UpdatedAt time.Time
}

// IsDefault reports whether nothing has been stored for the domain yet
func (d *Document) IsDefault() bool {
	return d.Version == 0
}

// ContentService manages the singleton content documents
type ContentService interface {
	// Get returns the stored document, or the built-in default
	Get(ctx context.Context, domain string) (*Document, error)

	// Replace stores a whole document. ifMatch is AnyVersion or the version
	// the caller last read.
	Replace(ctx context.Context, domain string, body []byte, ifMatch int64) (*Document, error)

	// GetSection returns one top-level member of a document
	GetSection(ctx context.Context, domain, section string) (*Document, error)

	// ReplaceSection stores one top-level member, leaving the others
	// byte-for-byte unchanged. The returned Data is the new section.
	ReplaceSection(ctx context.Context, domain, section string, body []byte, ifMatch int64) (*Document, error)

	// List returns every domain with its current version
	List(ctx context.Context) ([]*Document, error)
}

// AboutService manages the list-backed sections of the About document
type AboutService interface {
	AddMember(ctx context.Context, req *request.MemberRequest) (*content.Member, error)
	UpdateMember(ctx context.Context, id int, req *request.MemberRequest) (*content.Member, error)
	DeleteMember(ctx context.Context, id int) error

	AddPaymentSection(ctx context.Context, req *request.PolicySectionRequest) (*content.PolicySection, error)
	UpdatePaymentSection(ctx context.Context, id int, req *request.PolicySectionRequest) (*content.PolicySection, error)
	DeletePaymentSection(ctx context.Context, id int) error
	// MovePaymentSection swaps a section with its neighbour and returns the new order
	MovePaymentSection(ctx context.Context, id int, direction string) ([]content.PolicySection, error)

	AddWhatWeDoItem(ctx context.Context, text string) ([]string, error)
	UpdateWhatWeDoItem(ctx context.Context, index int, text string) ([]string, error)
	DeleteWhatWeDoItem(ctx context.Context, index int) ([]string, error)
}

// HomeService manages the services grid of the Home document
type HomeService interface {
	AddService(ctx context.Context, req *request.ServiceRequest) (*content.Service, error)
	UpdateService(ctx context.Context, id int, req *request.ServiceRequest) (*content.Service, error)
	DeleteService(ctx context.Context, id int) error
}

// Change actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent tells renderers that content changed
type ChangeEvent struct {
	Domain  string    `json:"domain"`
	Section string    `json:"section,omitempty"`
	Action  string    `json:"action"`
	ID      string    `json:"id,omitempty"`
	Version int64     `json:"version,omitempty"`
	At      time.Time `json:"at"`
}

// ChangePublisher fans change events out to subscribers
type ChangePublisher interface {
	Publish(event ChangeEvent)
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(ChangeEvent) {}

// Publishers fans an event out to every publisher in order
type Publishers []ChangePublisher

func (ps Publishers) Publish(event ChangeEvent) {
	for _, p := range ps {
		p.Publish(event)
	}
}
