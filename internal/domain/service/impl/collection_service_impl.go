package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
)

const (
	sectionCoreCommittee = "coreCommittee"
	sectionPaymentPolicy = "paymentPolicy"
	sectionWhatWeDo      = "whatWeDo"
	sectionServices      = "services"

	memberSections = "sections"
	memberItems    = "items"
)

// aboutService implements service.AboutService
type aboutService struct {
	*documentStore
}

// NewAboutService creates a new AboutService instance
func NewAboutService(
	repo repository.ContentRepository,
	publisher service.ChangePublisher,
	logger *zap.Logger,
) service.AboutService {
	return &aboutService{documentStore: newDocumentStore(repo, publisher, logger)}
}

func memberFromRequest(id int, req *request.MemberRequest) content.Member {
	return content.Member{
		ID:       id,
		Name:     req.Name,
		Role:     req.Role,
		Image:    req.Image,
		Bio:      req.Bio,
		LinkedIn: req.LinkedIn,
	}
}

func (s *aboutService) AddMember(ctx context.Context, req *request.MemberRequest) (*content.Member, error) {
	var added content.Member
	err := updateList(ctx, s.documentStore, content.DomainAbout, sectionCoreCommittee, "", func(members *content.RawList) error {
		var err error
		added, err = content.AppendRecord(members, func(id int) content.Member {
			return memberFromRequest(id, req)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *aboutService) UpdateMember(ctx context.Context, id int, req *request.MemberRequest) (*content.Member, error) {
	updated := memberFromRequest(id, req)
	err := updateList(ctx, s.documentStore, content.DomainAbout, sectionCoreCommittee, "", replaceRecord(updated))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *aboutService) DeleteMember(ctx context.Context, id int) error {
	return updateList(ctx, s.documentStore, content.DomainAbout, sectionCoreCommittee, "", removeRecord(id))
}

func policySectionFromRequest(id int, req *request.PolicySectionRequest) content.PolicySection {
	blocks := req.Content
	if blocks == nil {
		blocks = []content.ContentBlock{}
	}
	return content.PolicySection{
		ID:      id,
		Title:   req.Title,
		Icon:    req.Icon,
		Color:   req.Color,
		Content: blocks,
	}
}

func (s *aboutService) AddPaymentSection(ctx context.Context, req *request.PolicySectionRequest) (*content.PolicySection, error) {
	var added content.PolicySection
	err := updateList(ctx, s.documentStore, content.DomainAbout, sectionPaymentPolicy, memberSections, func(sections *content.RawList) error {
		var err error
		added, err = content.AppendRecord(sections, func(id int) content.PolicySection {
			return policySectionFromRequest(id, req)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *aboutService) UpdatePaymentSection(ctx context.Context, id int, req *request.PolicySectionRequest) (*content.PolicySection, error) {
	updated := policySectionFromRequest(id, req)
	err := updateList(ctx, s.documentStore, content.DomainAbout, sectionPaymentPolicy, memberSections, replaceRecord(updated))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *aboutService) DeletePaymentSection(ctx context.Context, id int) error {
	return updateList(ctx, s.documentStore, content.DomainAbout, sectionPaymentPolicy, memberSections, removeRecord(id))
}

func (s *aboutService) MovePaymentSection(ctx context.Context, id int, direction string) ([]content.PolicySection, error) {
	var order []content.PolicySection
	err := updateList(ctx, s.documentStore, content.DomainAbout, sectionPaymentPolicy, memberSections, func(sections *content.RawList) error {
		index := sections.IndexOf(id)
		if index < 0 {
			return service.ErrItemNotFound
		}
		var ok bool
		switch direction {
		case request.MoveUp:
			ok = sections.MoveUp(index)
		case request.MoveDown:
			ok = sections.MoveDown(index)
		}
		if !ok {
			return service.ErrInvalidMove
		}
		var err error
		order, err = content.DecodeRecords[content.PolicySection](sections)
		if err != nil {
			return invalidDocument(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *aboutService) AddWhatWeDoItem(ctx context.Context, text string) ([]string, error) {
	var items []string
	err := updateMember(ctx, s.documentStore, content.DomainAbout, sectionWhatWeDo, memberItems, func(current *[]string) error {
		items = append(append([]string(nil), *current...), text)
		*current = items
		return nil
	})
	return items, err
}

func (s *aboutService) UpdateWhatWeDoItem(ctx context.Context, index int, text string) ([]string, error) {
	var items []string
	err := updateMember(ctx, s.documentStore, content.DomainAbout, sectionWhatWeDo, memberItems, func(current *[]string) error {
		if index < 0 || index >= len(*current) {
			return service.ErrItemNotFound
		}
		items = append([]string(nil), *current...)
		items[index] = text
		*current = items
		return nil
	})
	return items, err
}

func (s *aboutService) DeleteWhatWeDoItem(ctx context.Context, index int) ([]string, error) {
	var items []string
	err := updateMember(ctx, s.documentStore, content.DomainAbout, sectionWhatWeDo, memberItems, func(current *[]string) error {
		if index < 0 || index >= len(*current) {
			return service.ErrItemNotFound
		}
		items = make([]string, 0, len(*current)-1)
		items = append(items, (*current)[:index]...)
		items = append(items, (*current)[index+1:]...)
		*current = items
		return nil
	})
	return items, err
}

func replaceRecord(item content.Identifiable) func(*content.RawList) error {
	return func(records *content.RawList) error {
		ok, err := records.Replace(item)
		if err != nil {
			return err
		}
		if !ok {
			return service.ErrItemNotFound
		}
		return nil
	}
}

func removeRecord(id int) func(*content.RawList) error {
	return func(records *content.RawList) error {
		if !records.Remove(id) {
			return service.ErrItemNotFound
		}
		return nil
	}
}

// homeService implements service.HomeService
type homeService struct {
	*documentStore
}

// NewHomeService creates a new HomeService instance
func NewHomeService(
	repo repository.ContentRepository,
	publisher service.ChangePublisher,
	logger *zap.Logger,
) service.HomeService {
	return &homeService{documentStore: newDocumentStore(repo, publisher, logger)}
}

func serviceFromRequest(id int, req *request.ServiceRequest) content.Service {
	return content.Service{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	}
}

func (s *homeService) AddService(ctx context.Context, req *request.ServiceRequest) (*content.Service, error) {
	var added content.Service
	err := updateList(ctx, s.documentStore, content.DomainHome, sectionServices, "", func(services *content.RawList) error {
		var err error
		added, err = content.AppendRecord(services, func(id int) content.Service {
			return serviceFromRequest(id, req)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *homeService) UpdateService(ctx context.Context, id int, req *request.ServiceRequest) (*content.Service, error) {
	updated := serviceFromRequest(id, req)
	err := updateList(ctx, s.documentStore, content.DomainHome, sectionServices, "", replaceRecord(updated))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *homeService) DeleteService(ctx context.Context, id int) error {
	return updateList(ctx, s.documentStore, content.DomainHome, sectionServices, "", removeRecord(id))
}
