package appointments

import "time"

// Appointment is a booking as returned by the upstream backend.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
	Date        string `json:"date"`
}

var validTypes = map[string]bool{
	"consultation": true, "follow-up": true, "emergency": true, "routine-checkup": true,
}

var validStatuses = map[string]bool{
	"pending": true, "confirmed": true, "completed": true, "cancelled": true,
}

const (
	defaultType   = "consultation"
	defaultStatus = "pending"
)

// Normalize applies display fallbacks and safe enum defaults.
func (a *Appointment) Normalize() {
	if a.DoctorName == "" {
		a.DoctorName = "Dr. Unknown"
	}
	if a.PatientName == "" {
		a.PatientName = "Unknown Patient"
	}
	if !validTypes[a.Type] {
		a.Type = defaultType
	}
	if !validStatuses[a.Status] {
		a.Status = defaultStatus
	}
	if a.Date == "" {
		a.Date = time.Now().Format("2006-01-02")
	}
}

func (a *Appointment) RecordID() string      { return a.ID }
func (a *Appointment) SearchText() []string  { return []string{a.Reason, a.DoctorName, a.PatientName, a.Notes} }
func (a *Appointment) StatusValue() string   { return a.Status }
func (a *Appointment) CategoryValue() string { return a.Type }
func (a *Appointment) OccurredAt() string    { return a.Date }
func (a *Appointment) Labels() []string      { return nil }
