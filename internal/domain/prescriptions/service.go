package prescriptions

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

func (s *Service) List(ctx context.Context) ([]*Prescription, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Prescription, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, rx *Prescription) (*Prescription, error) {
	if rx.PatientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if rx.Medication == "" {
		return nil, fmt.Errorf("medication is required")
	}
	if rx.Status == "" {
		rx.Status = defaultStatus
	}
	if !validStatuses[rx.Status] {
		return nil, fmt.Errorf("invalid prescription status: %s", rx.Status)
	}
	return s.repo.Create(ctx, rx)
}

func (s *Service) Update(ctx context.Context, id string, rx *Prescription) (*Prescription, error) {
	if rx.Status != "" && !validStatuses[rx.Status] {
		return nil, fmt.Errorf("invalid prescription status: %s", rx.Status)
	}
	return s.repo.Update(ctx, id, rx)
}

// Complete marks a prescription as finished treatment.
func (s *Service) Complete(ctx context.Context, id string) (*Prescription, error) {
	rx, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rx.Status = "completed"
	return s.repo.Update(ctx, id, rx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
