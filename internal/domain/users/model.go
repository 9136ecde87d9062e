package users

import "time"

// User is a portal account. Role doubles as the category facet so
// admins can narrow the account list to doctors or patients.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

var validRoles = map[string]bool{
	"admin": true, "doctor": true, "patient": true,
}

var validStatuses = map[string]bool{
	"active": true, "suspended": true,
}

const (
	defaultRole   = "patient"
	defaultStatus = "active"
)

func (u *User) Normalize() {
	if u.Name == "" {
		u.Name = "Unknown User"
	}
	if !validRoles[u.Role] {
		u.Role = defaultRole
	}
	if !validStatuses[u.Status] {
		u.Status = defaultStatus
	}
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().Format("2006-01-02")
	}
}

func (u *User) RecordID() string { return u.ID }
func (u *User) SearchText() []string {
	return []string{u.Name, u.Email}
}
func (u *User) StatusValue() string   { return u.Status }
func (u *User) CategoryValue() string { return u.Role }
func (u *User) OccurredAt() string    { return u.CreatedAt }
func (u *User) Labels() []string      { return nil }
