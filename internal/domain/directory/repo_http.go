package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/careview/portal/internal/platform/upstream"
)

const basePath = "/doctors"

type HTTPRepository struct {
	client *upstream.Client
}

func NewHTTPRepository(client *upstream.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) List(ctx context.Context) ([]*Doctor, error) {
	items, err := upstream.GetList[*Doctor](ctx, r.client, basePath)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Normalize()
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id string) (*Doctor, error) {
	doc, err := upstream.Get[*Doctor](ctx, r.client, basePath+"/"+id)
	if err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

func (r *HTTPRepository) Create(ctx context.Context, doc *Doctor) (*Doctor, error) {
	created, err := upstream.Post[*Doctor](ctx, r.client, basePath, doc)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = doc
	}
	if created.ID == "" {
		created.ID = "tmp-" + uuid.New().String()
	}
	created.Normalize()
	return created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, id string, doc *Doctor) (*Doctor, error) {
	updated, err := upstream.Put[*Doctor](ctx, r.client, basePath+"/"+id, doc)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = doc
		updated.ID = id
	}
	updated.Normalize()
	return updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	return upstream.Delete(ctx, r.client, basePath+"/"+id)
}
