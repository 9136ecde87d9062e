package directory

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	Get(ctx context.Context, id string) (*Doctor, error)
	Create(ctx context.Context, doc *Doctor) (*Doctor, error)
	Update(ctx context.Context, id string, doc *Doctor) (*Doctor, error)
	Delete(ctx context.Context, id string) error
}
