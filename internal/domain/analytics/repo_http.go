package analytics

import (
	"context"

	"github.com/careview/portal/internal/platform/upstream"
)

type HTTPRepository struct {
	client *upstream.Client
}

func NewHTTPRepository(client *upstream.Client) *HTTPRepository {
	return &HTTPRepository{client: client}
}

func (r *HTTPRepository) Summary(ctx context.Context) (*Summary, error) {
	summary, err := upstream.Get[*Summary](ctx, r.client, "/analytics/summary")
	if err != nil {
		return nil, err
	}
	summary.Source = SourceUpstream
	return summary, nil
}
