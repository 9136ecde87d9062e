package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/careview/portal/internal/platform/upstream"
)

const basePath = "/appointments"

type HTTPRepository struct {
	client *upstream.Client
}

func NewHTTPRepository(client *upstream.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) List(ctx context.Context) ([]*Appointment, error) {
	items, err := upstream.GetList[*Appointment](ctx, r.client, basePath)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Normalize()
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id string) (*Appointment, error) {
	appt, err := upstream.Get[*Appointment](ctx, r.client, basePath+"/"+id)
	if err != nil {
		return nil, err
	}
	appt.Normalize()
	return appt, nil
}

func (r *HTTPRepository) Create(ctx context.Context, appt *Appointment) (*Appointment, error) {
	created, err := upstream.Post[*Appointment](ctx, r.client, basePath, appt)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = appt
	}
	if created.ID == "" {
		created.ID = "tmp-" + uuid.New().String()
	}
	created.Normalize()
	return created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, id string, appt *Appointment) (*Appointment, error) {
	updated, err := upstream.Put[*Appointment](ctx, r.client, basePath+"/"+id, appt)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = appt
		updated.ID = id
	}
	updated.Normalize()
	return updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	return upstream.Delete(ctx, r.client, basePath+"/"+id)
}
