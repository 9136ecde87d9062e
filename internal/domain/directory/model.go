package directory

import "time"

// Doctor is a provider directory entry. Specialty doubles as the
// category facet of the shared list engine so callers can narrow the
// directory by discipline.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	JoinedAt  string `json:"joined_at"`
}

var validStatuses = map[string]bool{
	"active": true, "on-leave": true, "inactive": true,
}

const (
	defaultStatus    = "active"
	defaultSpecialty = "general-practice"
)

func (d *Doctor) Normalize() {
	if d.Name == "" {
		d.Name = "Dr. Unknown"
	}
	if d.Specialty == "" {
		d.Specialty = defaultSpecialty
	}
	if !validStatuses[d.Status] {
		d.Status = defaultStatus
	}
	if d.JoinedAt == "" {
		d.JoinedAt = time.Now().Format("2006-01-02")
	}
}

func (d *Doctor) RecordID() string { return d.ID }
func (d *Doctor) SearchText() []string {
	return []string{d.Name, d.Specialty, d.Email}
}
func (d *Doctor) StatusValue() string   { return d.Status }
func (d *Doctor) CategoryValue() string { return d.Specialty }
func (d *Doctor) OccurredAt() string    { return d.JoinedAt }
func (d *Doctor) Labels() []string      { return nil }
