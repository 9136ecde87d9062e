package records

import "context"

// Repository is the fetch/mutate boundary for medical records.
type Repository interface {
	List(ctx context.Context) ([]*MedicalRecord, error)
	Get(ctx context.Context, id string) (*MedicalRecord, error)
	Create(ctx context.Context, record *MedicalRecord) (*MedicalRecord, error)
	Update(ctx context.Context, id string, record *MedicalRecord) (*MedicalRecord, error)
	Delete(ctx context.Context, id string) error
}
