// Package upstream is the portal's boundary to the platform REST
// backend. All list endpoints fetch full collections; filtering and
// pagination happen locally in the listview engine.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/careview/portal/internal/platform/auth"
)

// Client wraps the shared resty client for the upstream backend.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// Options configures the upstream client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// New creates a client for the upstream backend. Transport-level
// failures are retried with a short backoff; HTTP error statuses are
// not retried, they surface as APIError.
func New(opts Options, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, logger: logger}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := auth.TokenFromContext(ctx); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
		c.logger.Warn().Int("status", resp.StatusCode()).Str("method", method).Str("path", path).
			Str("message", apiErr.Message).Msg("upstream returned error")
		return nil, apiErr
	}
	return resp.Body(), nil
}

// GetList fetches a full collection. The backend is loose about the
// response shape: some endpoints return a bare array, others wrap it in
// a data envelope, and an empty body or JSON null means no records.
func GetList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.do(ctx, resty.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](path, body)
}

// Get fetches a single entity. A 200 with an empty or JSON null body
// means the backend has nothing under that id; that surfaces as a 404
// APIError instead of a nil entity the caller would trip over.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	body, err := c.do(ctx, resty.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, &APIError{Status: http.StatusNotFound, Message: "resource not found"}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode GET %s: %w", path, err)
	}
	return out, nil
}

// Post creates an entity and returns the server's echo of it.
func Post[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var out T
	body, err := c.do(ctx, resty.MethodPost, path, payload)
	if err != nil {
		return out, err
	}
	if len(body) == 0 {
		// Some create endpoints answer 201 with no body; the caller
		// falls back to its optimistic copy.
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode POST %s: %w", path, err)
	}
	return out, nil
}

// Put updates an entity and returns the server's version.
func Put[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var out T
	body, err := c.do(ctx, resty.MethodPut, path, payload)
	if err != nil {
		return out, err
	}
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode PUT %s: %w", path, err)
	}
	return out, nil
}

// Delete removes an entity.
func Delete(ctx context.Context, c *Client, path string) error {
	_, err := c.do(ctx, resty.MethodDelete, path, nil)
	return err
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

func decodeList[T any](path string, body []byte) ([]T, error) {
	if len(body) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var envelope listEnvelope[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode list %s: %w", path, err)
	}
	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}
