package appointments

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

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, appt *Appointment) (*Appointment, error) {
	if appt.PatientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if appt.DoctorID == "" {
		return nil, fmt.Errorf("doctor_id is required")
	}
	if appt.Date == "" {
		return nil, fmt.Errorf("date is required")
	}
	if appt.Status == "" {
		appt.Status = defaultStatus
	}
	if !validStatuses[appt.Status] {
		return nil, fmt.Errorf("invalid appointment status: %s", appt.Status)
	}
	if appt.Type == "" {
		appt.Type = defaultType
	}
	if !validTypes[appt.Type] {
		return nil, fmt.Errorf("invalid appointment type: %s", appt.Type)
	}
	return s.repo.Create(ctx, appt)
}

func (s *Service) Update(ctx context.Context, id string, appt *Appointment) (*Appointment, error) {
	if appt.Status != "" && !validStatuses[appt.Status] {
		return nil, fmt.Errorf("invalid appointment status: %s", appt.Status)
	}
	if appt.Type != "" && !validTypes[appt.Type] {
		return nil, fmt.Errorf("invalid appointment type: %s", appt.Type)
	}
	return s.repo.Update(ctx, id, appt)
}

// Cancel marks an appointment cancelled without requiring the caller to
// resend the whole entity.
func (s *Service) Cancel(ctx context.Context, id string) (*Appointment, error) {
	appt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	appt.Status = "cancelled"
	return s.repo.Update(ctx, id, appt)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
