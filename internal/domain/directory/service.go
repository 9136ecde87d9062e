package directory

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, doc *Doctor) (*Doctor, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if doc.Specialty == "" {
		doc.Specialty = defaultSpecialty
	}
	if doc.Status == "" {
		doc.Status = defaultStatus
	}
	if !validStatuses[doc.Status] {
		return nil, fmt.Errorf("invalid doctor status: %s", doc.Status)
	}
	return s.repo.Create(ctx, doc)
}

func (s *Service) Update(ctx context.Context, id string, doc *Doctor) (*Doctor, error) {
	if doc.Status != "" && !validStatuses[doc.Status] {
		return nil, fmt.Errorf("invalid doctor status: %s", doc.Status)
	}
	return s.repo.Update(ctx, id, doc)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
