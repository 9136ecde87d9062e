package appointments

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Appointment, error)
	Get(ctx context.Context, id string) (*Appointment, error)
	Create(ctx context.Context, appt *Appointment) (*Appointment, error)
	Update(ctx context.Context, id string, appt *Appointment) (*Appointment, error)
	Delete(ctx context.Context, id string) error
}
