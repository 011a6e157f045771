package mocks

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
)

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	GetFunc            func(ctx context.Context, domain string) (*service.Document, error)
	ReplaceFunc        func(ctx context.Context, domain string, body []byte, ifMatch int64) (*service.Document, error)
	GetSectionFunc     func(ctx context.Context, domain, section string) (*service.Document, error)
	ReplaceSectionFunc func(ctx context.Context, domain, section string, body []byte, ifMatch int64) (*service.Document, error)
	ListFunc           func(ctx context.Context) ([]*service.Document, error)
}

var _ service.ContentService = (*MockContentService)(nil)

func NewMockContentService() *MockContentService {
	return &MockContentService{}
}

func (m *MockContentService) Get(ctx context.Context, domain string) (*service.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, domain)
	}
	return &service.Document{Domain: domain, Version: 1, Data: json.RawMessage(`{}`), UpdatedAt: time.Now()}, nil
}

func (m *MockContentService) Replace(ctx context.Context, domain string, body []byte, ifMatch int64) (*service.Document, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, domain, body, ifMatch)
	}
	return &service.Document{Domain: domain, Version: 2, Data: body, UpdatedAt: time.Now()}, nil
}

func (m *MockContentService) GetSection(ctx context.Context, domain, section string) (*service.Document, error) {
	if m.GetSectionFunc != nil {
		return m.GetSectionFunc(ctx, domain, section)
	}
	return &service.Document{Domain: domain, Version: 1, Data: json.RawMessage(`{}`), UpdatedAt: time.Now()}, nil
}

func (m *MockContentService) ReplaceSection(ctx context.Context, domain, section string, body []byte, ifMatch int64) (*service.Document, error) {
	if m.ReplaceSectionFunc != nil {
		return m.ReplaceSectionFunc(ctx, domain, section, body, ifMatch)
	}
	return &service.Document{Domain: domain, Version: 2, Data: body, UpdatedAt: time.Now()}, nil
}

func (m *MockContentService) List(ctx context.Context) ([]*service.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*service.Document{}, nil
}

// MockAboutService is a mock implementation of AboutService
type MockAboutService struct {
	AddMemberFunc            func(ctx context.Context, req *request.MemberRequest) (*content.Member, error)
	UpdateMemberFunc         func(ctx context.Context, id int, req *request.MemberRequest) (*content.Member, error)
	DeleteMemberFunc         func(ctx context.Context, id int) error
	AddPaymentSectionFunc    func(ctx context.Context, req *request.PolicySectionRequest) (*content.PolicySection, error)
	UpdatePaymentSectionFunc func(ctx context.Context, id int, req *request.PolicySectionRequest) (*content.PolicySection, error)
	DeletePaymentSectionFunc func(ctx context.Context, id int) error
	MovePaymentSectionFunc   func(ctx context.Context, id int, direction string) ([]content.PolicySection, error)
	AddWhatWeDoItemFunc      func(ctx context.Context, text string) ([]string, error)
	UpdateWhatWeDoItemFunc   func(ctx context.Context, index int, text string) ([]string, error)
	DeleteWhatWeDoItemFunc   func(ctx context.Context, index int) ([]string, error)
}

var _ service.AboutService = (*MockAboutService)(nil)

func NewMockAboutService() *MockAboutService {
	return &MockAboutService{}
}

func (m *MockAboutService) AddMember(ctx context.Context, req *request.MemberRequest) (*content.Member, error) {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, req)
	}
	return &content.Member{ID: 1, Name: req.Name, Role: req.Role}, nil
}

func (m *MockAboutService) UpdateMember(ctx context.Context, id int, req *request.MemberRequest) (*content.Member, error) {
	if m.UpdateMemberFunc != nil {
		return m.UpdateMemberFunc(ctx, id, req)
	}
	return &content.Member{ID: id, Name: req.Name, Role: req.Role}, nil
}

func (m *MockAboutService) DeleteMember(ctx context.Context, id int) error {
	if m.DeleteMemberFunc != nil {
		return m.DeleteMemberFunc(ctx, id)
	}
	return nil
}

func (m *MockAboutService) AddPaymentSection(ctx context.Context, req *request.PolicySectionRequest) (*content.PolicySection, error) {
	if m.AddPaymentSectionFunc != nil {
		return m.AddPaymentSectionFunc(ctx, req)
	}
	return &content.PolicySection{ID: 1, Title: req.Title}, nil
}

func (m *MockAboutService) UpdatePaymentSection(ctx context.Context, id int, req *request.PolicySectionRequest) (*content.PolicySection, error) {
	if m.UpdatePaymentSectionFunc != nil {
		return m.UpdatePaymentSectionFunc(ctx, id, req)
	}
	return &content.PolicySection{ID: id, Title: req.Title}, nil
}

func (m *MockAboutService) DeletePaymentSection(ctx context.Context, id int) error {
	if m.DeletePaymentSectionFunc != nil {
		return m.DeletePaymentSectionFunc(ctx, id)
	}
	return nil
}

func (m *MockAboutService) MovePaymentSection(ctx context.Context, id int, direction string) ([]content.PolicySection, error) {
	if m.MovePaymentSectionFunc != nil {
		return m.MovePaymentSectionFunc(ctx, id, direction)
	}
	return []content.PolicySection{}, nil
}

func (m *MockAboutService) AddWhatWeDoItem(ctx context.Context, text string) ([]string, error) {
	if m.AddWhatWeDoItemFunc != nil {
		return m.AddWhatWeDoItemFunc(ctx, text)
	}
	return []string{text}, nil
}

func (m *MockAboutService) UpdateWhatWeDoItem(ctx context.Context, index int, text string) ([]string, error) {
	if m.UpdateWhatWeDoItemFunc != nil {
		return m.UpdateWhatWeDoItemFunc(ctx, index, text)
	}
	return []string{text}, nil
}

func (m *MockAboutService) DeleteWhatWeDoItem(ctx context.Context, index int) ([]string, error) {
	if m.DeleteWhatWeDoItemFunc != nil {
		return m.DeleteWhatWeDoItemFunc(ctx, index)
	}
	return []string{}, nil
}

// MockHomeService is a mock implementation of HomeService
type MockHomeService struct {
	AddServiceFunc    func(ctx context.Context, req *request.ServiceRequest) (*content.Service, error)
	UpdateServiceFunc func(ctx context.Context, id int, req *request.ServiceRequest) (*content.Service, error)
	DeleteServiceFunc func(ctx context.Context, id int) error
}

var _ service.HomeService = (*MockHomeService)(nil)

func NewMockHomeService() *MockHomeService {
	return &MockHomeService{}
}

func (m *MockHomeService) AddService(ctx context.Context, req *request.ServiceRequest) (*content.Service, error) {
	if m.AddServiceFunc != nil {
		return m.AddServiceFunc(ctx, req)
	}
	return &content.Service{ID: 1, Title: req.Title}, nil
}

func (m *MockHomeService) UpdateService(ctx context.Context, id int, req *request.ServiceRequest) (*content.Service, error) {
	if m.UpdateServiceFunc != nil {
		return m.UpdateServiceFunc(ctx, id, req)
	}
	return &content.Service{ID: id, Title: req.Title}, nil
}

func (m *MockHomeService) DeleteService(ctx context.Context, id int) error {
	if m.DeleteServiceFunc != nil {
		return m.DeleteServiceFunc(ctx, id)
	}
	return nil
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	ListFunc      func(ctx context.Context, query service.BlogQuery) ([]content.BlogPost, error)
	GetFunc       func(ctx context.Context, id string) (*content.BlogPost, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*content.BlogPost, error)
	CreateFunc    func(ctx context.Context, req *request.BlogPostRequest) (*content.BlogPost, error)
	UpdateFunc    func(ctx context.Context, id string, req *request.BlogPostRequest) (*content.BlogPost, error)
	DeleteFunc    func(ctx context.Context, id string) error
}

var _ service.BlogService = (*MockBlogService)(nil)

func NewMockBlogService() *MockBlogService {
	return &MockBlogService{}
}

func (m *MockBlogService) List(ctx context.Context, query service.BlogQuery) ([]content.BlogPost, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return []content.BlogPost{}, nil
}

func (m *MockBlogService) Get(ctx context.Context, id string) (*content.BlogPost, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &content.BlogPost{ID: id, Title: "Mock post", Slug: "mock-post", Tags: []string{}}, nil
}

func (m *MockBlogService) GetBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return &content.BlogPost{ID: "mock-id", Title: "Mock post", Slug: slug, Tags: []string{}}, nil
}

func (m *MockBlogService) Create(ctx context.Context, req *request.BlogPostRequest) (*content.BlogPost, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &content.BlogPost{ID: "mock-id", Title: req.Title, Content: req.Content, Tags: []string{}}, nil
}

func (m *MockBlogService) Update(ctx context.Context, id string, req *request.BlogPostRequest) (*content.BlogPost, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &content.BlogPost{ID: id, Title: req.Title, Content: req.Content, Tags: []string{}}, nil
}

func (m *MockBlogService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	ListFunc   func(ctx context.Context, kind string) ([]content.Event, error)
	GetFunc    func(ctx context.Context, id string) (*content.Event, error)
	CreateFunc func(ctx context.Context, req *request.EventRequest) (*content.Event, error)
	UpdateFunc func(ctx context.Context, id string, req *request.EventRequest) (*content.Event, error)
	DeleteFunc func(ctx context.Context, id string) error
}

var _ service.EventService = (*MockEventService)(nil)

func NewMockEventService() *MockEventService {
	return &MockEventService{}
}

func (m *MockEventService) List(ctx context.Context, kind string) ([]content.Event, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind)
	}
	return []content.Event{}, nil
}

func (m *MockEventService) Get(ctx context.Context, id string) (*content.Event, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &content.Event{ID: id, Kind: content.EventWebinar, Title: "Mock webinar"}, nil
}

func (m *MockEventService) Create(ctx context.Context, req *request.EventRequest) (*content.Event, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &content.Event{ID: "mock-id", Kind: req.Kind, Title: req.Title, Date: req.Date}, nil
}

func (m *MockEventService) Update(ctx context.Context, id string, req *request.EventRequest) (*content.Event, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &content.Event{ID: id, Kind: req.Kind, Title: req.Title, Date: req.Date}, nil
}

func (m *MockEventService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	SubmitFunc func(ctx context.Context, req *request.ContactRequest) (*content.Contact, error)
	ListFunc   func(ctx context.Context, query string) ([]content.Contact, error)
	DeleteFunc func(ctx context.Context, id int) error
	ExportFunc func(ctx context.Context, w io.Writer, query string) error
}

var _ service.ContactService = (*MockContactService)(nil)

func NewMockContactService() *MockContactService {
	return &MockContactService{}
}

func (m *MockContactService) Submit(ctx context.Context, req *request.ContactRequest) (*content.Contact, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	return &content.Contact{ID: 1, Name: req.Name, Email: req.Email, Message: req.Message, Date: time.Now().UTC()}, nil
}

func (m *MockContactService) List(ctx context.Context, query string) ([]content.Contact, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return []content.Contact{}, nil
}

func (m *MockContactService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockContactService) Export(ctx context.Context, w io.Writer, query string) error {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, w, query)
	}
	_, err := w.Write([]byte("xlsx"))
	return err
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	LogoutFunc       func(ctx context.Context, token string) error
	AuthenticateFunc func(ctx context.Context, token string) (*security.AdminClaims, error)
}

var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &response.AuthResponse{
		AccessToken: "mock-access-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   time.Now().Add(time.Hour),
		Username:    req.Username,
	}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*security.AdminClaims, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	if token == "" {
		return nil, service.ErrInvalidToken
	}
	return &security.AdminClaims{Username: "admin", Role: security.RoleAdmin}, nil
}

// MockSnapshotService is a mock implementation of SnapshotService
type MockSnapshotService struct {
	SnapshotFunc func(ctx context.Context) (*service.SnapshotResult, error)
	Calls        int
}

var _ service.SnapshotService = (*MockSnapshotService)(nil)

func (m *MockSnapshotService) Snapshot(ctx context.Context) (*service.SnapshotResult, error) {
	m.Calls++
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx)
	}
	return &service.SnapshotResult{Path: "snapshots/content.json", TakenAt: time.Now().UTC()}, nil
}

// MockSeeder is a mock implementation of Seeder
type MockSeeder struct {
	SeedFunc func(ctx context.Context) (*service.SeedResult, error)
}

var _ service.Seeder = (*MockSeeder)(nil)

func (m *MockSeeder) Seed(ctx context.Context) (*service.SeedResult, error) {
	if m.SeedFunc != nil {
		return m.SeedFunc(ctx)
	}
	return &service.SeedResult{Documents: []string{}}, nil
}
