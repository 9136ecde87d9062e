package records

import (
	"context"

	"github.com/google/uuid"

	"github.com/careview/portal/internal/platform/upstream"
)

const basePath = "/medical-records"

// HTTPRepository fetches medical records from the upstream backend.
type HTTPRepository struct {
	client *upstream.Client
}

func NewHTTPRepository(client *upstream.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) List(ctx context.Context) ([]*MedicalRecord, error) {
	items, err := upstream.GetList[*MedicalRecord](ctx, r.client, basePath)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Normalize()
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id string) (*MedicalRecord, error) {
	record, err := upstream.Get[*MedicalRecord](ctx, r.client, basePath+"/"+id)
	if err != nil {
		return nil, err
	}
	record.Normalize()
	return record, nil
}

func (r *HTTPRepository) Create(ctx context.Context, record *MedicalRecord) (*MedicalRecord, error) {
	created, err := upstream.Post[*MedicalRecord](ctx, r.client, basePath, record)
	if err != nil {
		return nil, err
	}
	if created == nil {
		// Ambiguous response shape: keep the submitted record under a
		// temporary client id until the next full fetch resynchronizes.
		created = record
	}
	if created.ID == "" {
		created.ID = "tmp-" + uuid.New().String()
	}
	created.Normalize()
	return created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, id string, record *MedicalRecord) (*MedicalRecord, error) {
	updated, err := upstream.Put[*MedicalRecord](ctx, r.client, basePath+"/"+id, record)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = record
		updated.ID = id
	}
	updated.Normalize()
	return updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	return upstream.Delete(ctx, r.client, basePath+"/"+id)
}
