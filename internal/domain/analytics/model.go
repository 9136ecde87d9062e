package analytics

// Summary is the dashboard headline view. Source reports whether the
// numbers came from the upstream aggregate endpoint or were computed
// locally from the raw collections after an upstream failure.
type Summary struct {
	TotalRecords       int            `json:"total_records"`
	TotalAppointments  int            `json:"total_appointments"`
	TotalPrescriptions int            `json:"total_prescriptions"`
	RecordsByStatus    map[string]int `json:"records_by_status"`
	RecordsByCategory  map[string]int `json:"records_by_category"`
	AppointmentsByType map[string]int `json:"appointments_by_type"`
	Source             string         `json:"source"`
}

const (
	SourceUpstream = "upstream"
	SourceLocal    = "local"
)
