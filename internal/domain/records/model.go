package records

import "time"

// MedicalRecord is a patient chart entry as the upstream backend
// returns it. Dates stay as the backend's ISO-8601 strings; they are
// only parsed when a date filter needs them.
type MedicalRecord struct {
	ID         string   `json:"id"`
	PatientID  string   `json:"patient_id"`
	DoctorID   string   `json:"doctor_id"`
	DoctorName string   `json:"doctor_name"`
	Title      string   `json:"title"`
	Diagnosis  string   `json:"diagnosis"`
	Notes      string   `json:"notes"`
	Category   string   `json:"category"`
	Status     string   `json:"status"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
}

var validCategories = map[string]bool{
	"consultation": true, "surgery": true, "emergency": true, "lab-test": true,
}

var validStatuses = map[string]bool{
	"active": true, "pending": true, "archived": true,
}

const (
	defaultCategory = "consultation"
	defaultStatus   = "active"
)

// Normalize fills missing or unrecognized fields with safe defaults so
// a sparse backend response still renders. This is normalization, not
// validation: nothing is rejected here.
func (r *MedicalRecord) Normalize() {
	if r.Title == "" {
		r.Title = "Untitled Record"
	}
	if r.DoctorName == "" {
		r.DoctorName = "Dr. Unknown"
	}
	if !validCategories[r.Category] {
		r.Category = defaultCategory
	}
	if !validStatuses[r.Status] {
		r.Status = defaultStatus
	}
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
}

// -- listview accessors --

func (r *MedicalRecord) RecordID() string      { return r.ID }
func (r *MedicalRecord) SearchText() []string  { return []string{r.Title, r.Diagnosis, r.Notes} }
func (r *MedicalRecord) StatusValue() string   { return r.Status }
func (r *MedicalRecord) CategoryValue() string { return r.Category }
func (r *MedicalRecord) OccurredAt() string    { return r.Date }
func (r *MedicalRecord) Labels() []string      { return r.Tags }
