package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const genericFailureMessage = "the server could not complete the request"

// APIError is a non-2xx answer from the upstream backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

// errorMessage assembles a human-readable message from an error body.
// Backends answer with {"message": ...} or {"error": ...}; anything
// else falls back to a generic string.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
	}
	return genericFailureMessage
}

// ToHTTPError maps an upstream failure onto the response the handler
// returns: backend error statuses pass through with their message,
// transport failures become 502.
func ToHTTPError(err error) *echo.HTTPError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return echo.NewHTTPError(apiErr.Status, apiErr.Message)
	}
	return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")
}
