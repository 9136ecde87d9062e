package prescriptions

import "time"

// Prescription is a medication order as returned by the upstream
// backend. Prescriptions carry no category; the category filter of the
// shared list engine stays disabled for them.
type Prescription struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	DoctorID     string `json:"doctor_id"`
	DoctorName   string `json:"doctor_name"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
	Status       string `json:"status"`
	Date         string `json:"date"`
}

var validStatuses = map[string]bool{
	"active": true, "completed": true, "cancelled": true,
}

const defaultStatus = "active"

func (p *Prescription) Normalize() {
	if p.Medication == "" {
		p.Medication = "Unspecified Medication"
	}
	if p.DoctorName == "" {
		p.DoctorName = "Dr. Unknown"
	}
	if !validStatuses[p.Status] {
		p.Status = defaultStatus
	}
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}
}

func (p *Prescription) RecordID() string     { return p.ID }
func (p *Prescription) SearchText() []string {
	return []string{p.Medication, p.Dosage, p.Instructions, p.DoctorName}
}
func (p *Prescription) StatusValue() string   { return p.Status }
func (p *Prescription) CategoryValue() string { return "" }
func (p *Prescription) OccurredAt() string    { return p.Date }
func (p *Prescription) Labels() []string      { return nil }
