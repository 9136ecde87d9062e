package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careview/portal/internal/domain/appointments"
	"github.com/careview/portal/internal/domain/prescriptions"
	"github.com/careview/portal/internal/domain/records"
)

var errDown = fmt.Errorf("upstream down")

type mockSummaryRepo struct {
	summary *Summary
	fail    bool
}

func (m *mockSummaryRepo) Summary(_ context.Context) (*Summary, error) {
	if m.fail {
		return nil, errDown
	}
	return m.summary, nil
}

type mockRecordRepo struct{ items []*records.MedicalRecord }

func (m *mockRecordRepo) List(_ context.Context) ([]*records.MedicalRecord, error) {
	return m.items, nil
}
func (m *mockRecordRepo) Get(_ context.Context, _ string) (*records.MedicalRecord, error) {
	return nil, fmt.Errorf("not implemented")
}
func (m *mockRecordRepo) Create(_ context.Context, r *records.MedicalRecord) (*records.MedicalRecord, error) {
	return r, nil
}
func (m *mockRecordRepo) Update(_ context.Context, _ string, r *records.MedicalRecord) (*records.MedicalRecord, error) {
	return r, nil
}
func (m *mockRecordRepo) Delete(_ context.Context, _ string) error { return nil }

type mockApptRepo struct{ items []*appointments.Appointment }

func (m *mockApptRepo) List(_ context.Context) ([]*appointments.Appointment, error) {
	return m.items, nil
}
func (m *mockApptRepo) Get(_ context.Context, _ string) (*appointments.Appointment, error) {
	return nil, fmt.Errorf("not implemented")
}
func (m *mockApptRepo) Create(_ context.Context, a *appointments.Appointment) (*appointments.Appointment, error) {
	return a, nil
}
func (m *mockApptRepo) Update(_ context.Context, _ string, a *appointments.Appointment) (*appointments.Appointment, error) {
	return a, nil
}
func (m *mockApptRepo) Delete(_ context.Context, _ string) error { return nil }

type mockScriptRepo struct{ items []*prescriptions.Prescription }

func (m *mockScriptRepo) List(_ context.Context) ([]*prescriptions.Prescription, error) {
	return m.items, nil
}
func (m *mockScriptRepo) Get(_ context.Context, _ string) (*prescriptions.Prescription, error) {
	return nil, fmt.Errorf("not implemented")
}
func (m *mockScriptRepo) Create(_ context.Context, p *prescriptions.Prescription) (*prescriptions.Prescription, error) {
	return p, nil
}
func (m *mockScriptRepo) Update(_ context.Context, _ string, p *prescriptions.Prescription) (*prescriptions.Prescription, error) {
	return p, nil
}
func (m *mockScriptRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(summaryRepo *mockSummaryRepo) *Service {
	recs := &mockRecordRepo{items: []*records.MedicalRecord{
		{ID: "r1", Status: "active", Category: "consultation"},
		{ID: "r2", Status: "active", Category: "surgery"},
		{ID: "r3", Status: "archived", Category: "consultation"},
	}}
	appts := &mockApptRepo{items: []*appointments.Appointment{
		{ID: "a1", Type: "consultation"},
		{ID: "a2", Type: "follow-up"},
	}}
	scripts := &mockScriptRepo{items: []*prescriptions.Prescription{
		{ID: "p1", Status: "active"},
	}}
	return NewService(summaryRepo, recs, appts, scripts, zerolog.Nop())
}

func TestService_SummaryPrefersUpstream(t *testing.T) {
	svc := newTestService(&mockSummaryRepo{summary: &Summary{TotalRecords: 99, Source: SourceUpstream}})
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Source != SourceUpstream || summary.TotalRecords != 99 {
		t.Errorf("expected upstream summary, got source=%q total=%d", summary.Source, summary.TotalRecords)
	}
}

func TestService_SummaryFallsBackLocally(t *testing.T) {
	svc := newTestService(&mockSummaryRepo{fail: true})
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Source != SourceLocal {
		t.Fatalf("expected local source, got %q", summary.Source)
	}
	if summary.TotalRecords != 3 || summary.TotalAppointments != 2 || summary.TotalPrescriptions != 1 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if summary.RecordsByStatus["active"] != 2 || summary.RecordsByCategory["consultation"] != 2 {
		t.Errorf("unexpected breakdowns: %+v", summary)
	}
	if summary.AppointmentsByType["follow-up"] != 1 {
		t.Errorf("unexpected appointment breakdown: %+v", summary)
	}
}
