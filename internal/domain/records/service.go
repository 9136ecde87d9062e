package records

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

func (s *Service) List(ctx context.Context) ([]*MedicalRecord, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*MedicalRecord, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, record *MedicalRecord) (*MedicalRecord, error) {
	if record.PatientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if record.Status == "" {
		record.Status = defaultStatus
	}
	if !validStatuses[record.Status] {
		return nil, fmt.Errorf("invalid record status: %s", record.Status)
	}
	if record.Category == "" {
		record.Category = defaultCategory
	}
	if !validCategories[record.Category] {
		return nil, fmt.Errorf("invalid record category: %s", record.Category)
	}
	return s.repo.Create(ctx, record)
}

func (s *Service) Update(ctx context.Context, id string, record *MedicalRecord) (*MedicalRecord, error) {
	if record.Status != "" && !validStatuses[record.Status] {
		return nil, fmt.Errorf("invalid record status: %s", record.Status)
	}
	if record.Category != "" && !validCategories[record.Category] {
		return nil, fmt.Errorf("invalid record category: %s", record.Category)
	}
	return s.repo.Update(ctx, id, record)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
