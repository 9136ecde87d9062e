package analytics

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/careview/portal/internal/domain/appointments"
	"github.com/careview/portal/internal/domain/prescriptions"
	"github.com/careview/portal/internal/domain/records"
)

// Service serves the dashboard summary. It prefers the upstream
// aggregate endpoint and falls back to counting the raw collections
// itself when that endpoint is down, so the dashboard degrades instead
// of erroring.
type Service struct {
	repo    Repository
	records records.Repository
	appts   appointments.Repository
	scripts prescriptions.Repository
	logger  zerolog.Logger
}

func NewService(repo Repository, rec records.Repository, appts appointments.Repository, scripts prescriptions.Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, records: rec, appts: appts, scripts: scripts, logger: logger}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	summary, err := s.repo.Summary(ctx)
	if err == nil {
		return summary, nil
	}
	s.logger.Warn().Err(err).Msg("upstream summary unavailable, computing locally")
	return s.localSummary(ctx)
}

func (s *Service) localSummary(ctx context.Context) (*Summary, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.appts.List(ctx)
	if err != nil {
		return nil, err
	}
	scripts, err := s.scripts.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalRecords:       len(recs),
		TotalAppointments:  len(appts),
		TotalPrescriptions: len(scripts),
		RecordsByStatus:    map[string]int{},
		RecordsByCategory:  map[string]int{},
		AppointmentsByType: map[string]int{},
		Source:             SourceLocal,
	}
	for _, r := range recs {
		summary.RecordsByStatus[r.Status]++
		summary.RecordsByCategory[r.Category]++
	}
	for _, a := range appts {
		summary.AppointmentsByType[a.Type]++
	}
	return summary, nil
}
