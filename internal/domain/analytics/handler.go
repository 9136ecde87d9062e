package analytics

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careview/portal/internal/platform/auth"
	"github.com/careview/portal/internal/platform/upstream"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	group.GET("/analytics/summary", h.Summary)
}

func (h *Handler) Summary(c echo.Context) error {
	summary, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return upstream.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
