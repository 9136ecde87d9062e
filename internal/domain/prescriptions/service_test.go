package prescriptions

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	scripts []*Prescription
}

func (m *mockRepo) List(_ context.Context) ([]*Prescription, error) {
	return m.scripts, nil
}

func (m *mockRepo) Get(_ context.Context, id string) (*Prescription, error) {
	for _, rx := range m.scripts {
		if rx.ID == id {
			return rx, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Create(_ context.Context, rx *Prescription) (*Prescription, error) {
	rx.ID = uuid.New().String()
	rx.Normalize()
	m.scripts = append(m.scripts, rx)
	return rx, nil
}

func (m *mockRepo) Update(_ context.Context, id string, rx *Prescription) (*Prescription, error) {
	for i, existing := range m.scripts {
		if existing.ID == id {
			rx.ID = id
			m.scripts[i] = rx
			return rx, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	for i, existing := range m.scripts {
		if existing.ID == id {
			m.scripts = append(m.scripts[:i], m.scripts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}

func validScript() *Prescription {
	return &Prescription{PatientID: "p1", DoctorID: "d1", Medication: "Amoxicillin", Dosage: "500mg"}
}

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	cases := []struct {
		name  string
		rx    *Prescription
		valid bool
	}{
		{"complete", validScript(), true},
		{"missing patient", &Prescription{Medication: "Amoxicillin"}, false},
		{"missing medication", &Prescription{PatientID: "p1"}, false},
		{"bad status", &Prescription{PatientID: "p1", Medication: "Amoxicillin", Status: "paused"}, false},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.rx)
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestService_CreateDefaultsStatus(t *testing.T) {
	svc := NewService(&mockRepo{})
	created, err := svc.Create(context.Background(), validScript())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != "active" {
		t.Errorf("expected active status, got %q", created.Status)
	}
}

func TestService_Complete(t *testing.T) {
	svc := NewService(&mockRepo{})
	created, err := svc.Create(context.Background(), validScript())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done, err := svc.Complete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != "completed" {
		t.Errorf("expected completed status, got %q", done.Status)
	}
}

func TestService_UpdateRejectsBadStatus(t *testing.T) {
	svc := NewService(&mockRepo{})
	created, err := svc.Create(context.Background(), validScript())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Update(context.Background(), created.ID, &Prescription{Status: "paused"}); err == nil {
		t.Error("expected validation error for unknown status")
	}
}

func TestNormalize_Placeholders(t *testing.T) {
	rx := &Prescription{}
	rx.Normalize()
	if rx.Medication != "Unspecified Medication" {
		t.Errorf("expected medication placeholder, got %q", rx.Medication)
	}
	if rx.DoctorName != "Dr. Unknown" {
		t.Errorf("expected doctor placeholder, got %q", rx.DoctorName)
	}
	if rx.Status != "active" {
		t.Errorf("expected active default, got %q", rx.Status)
	}
	if rx.Date == "" {
		t.Error("expected date backfill")
	}
}
