package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/careview/portal/internal/platform/upstream"
)

const basePath = "/users"

type HTTPRepository struct {
	client *upstream.Client
}

func NewHTTPRepository(client *upstream.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) List(ctx context.Context) ([]*User, error) {
	items, err := upstream.GetList[*User](ctx, r.client, basePath)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Normalize()
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id string) (*User, error) {
	u, err := upstream.Get[*User](ctx, r.client, basePath+"/"+id)
	if err != nil {
		return nil, err
	}
	u.Normalize()
	return u, nil
}

func (r *HTTPRepository) Create(ctx context.Context, u *User) (*User, error) {
	created, err := upstream.Post[*User](ctx, r.client, basePath, u)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = u
	}
	if created.ID == "" {
		created.ID = "tmp-" + uuid.New().String()
	}
	created.Normalize()
	return created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, id string, u *User) (*User, error) {
	updated, err := upstream.Put[*User](ctx, r.client, basePath+"/"+id, u)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = u
		updated.ID = id
	}
	updated.Normalize()
	return updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	return upstream.Delete(ctx, r.client, basePath+"/"+id)
}
