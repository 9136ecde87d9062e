package prescriptions

import (
	"context"

	"github.com/google/uuid"

	"github.com/careview/portal/internal/platform/upstream"
)

const basePath = "/prescriptions"

type HTTPRepository struct {
	client *upstream.Client
}

func NewHTTPRepository(client *upstream.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) List(ctx context.Context) ([]*Prescription, error) {
	items, err := upstream.GetList[*Prescription](ctx, r.client, basePath)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Normalize()
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id string) (*Prescription, error) {
	rx, err := upstream.Get[*Prescription](ctx, r.client, basePath+"/"+id)
	if err != nil {
		return nil, err
	}
	rx.Normalize()
	return rx, nil
}

func (r *HTTPRepository) Create(ctx context.Context, rx *Prescription) (*Prescription, error) {
	created, err := upstream.Post[*Prescription](ctx, r.client, basePath, rx)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = rx
	}
	if created.ID == "" {
		created.ID = "tmp-" + uuid.New().String()
	}
	created.Normalize()
	return created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, id string, rx *Prescription) (*Prescription, error) {
	updated, err := upstream.Put[*Prescription](ctx, r.client, basePath+"/"+id, rx)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = rx
		updated.ID = id
	}
	updated.Normalize()
	return updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	return upstream.Delete(ctx, r.client, basePath+"/"+id)
}
