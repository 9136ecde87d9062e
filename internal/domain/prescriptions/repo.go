package prescriptions

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Prescription, error)
	Get(ctx context.Context, id string) (*Prescription, error)
	Create(ctx context.Context, rx *Prescription) (*Prescription, error)
	Update(ctx context.Context, id string, rx *Prescription) (*Prescription, error)
	Delete(ctx context.Context, id string) error
}
