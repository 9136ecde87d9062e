package records

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careview/portal/internal/platform/auth"
	"github.com/careview/portal/internal/platform/listview"
	"github.com/careview/portal/internal/platform/upstream"
	"github.com/careview/portal/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RolePatient))
	readGroup.GET("/medical-records", h.List)
	readGroup.GET("/medical-records/:id", h.Get)

	writeGroup := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	writeGroup.POST("/medical-records", h.Create)
	writeGroup.PUT("/medical-records/:id", h.Update)
	writeGroup.DELETE("/medical-records/:id", h.Delete)
}

// List fetches the full collection from upstream and runs it through
// the shared filter/pagination engine. The requested page is clamped to
// the filtered result.
func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	crit := listview.CriteriaFromRequest(c)
	crit.PageSize = pg.PageSize

	ctrl := listview.NewController[*MedicalRecord](crit)
	seq := ctrl.Begin()
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return upstream.ToHTTPError(err)
	}
	ctrl.Commit(seq, items)
	ctrl.SetPage(pg.Page)

	return c.JSON(http.StatusOK, pagination.NewResponse(
		ctrl.PageItems(), ctrl.VisibleCount(), ctrl.Page(), ctrl.PageCount(), pg.PageSize))
}

func (h *Handler) Get(c echo.Context) error {
	record, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstream.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) Create(c echo.Context) error {
	var record MedicalRecord
	if err := c.Bind(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &record)
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c echo.Context) error {
	var record MedicalRecord
	if err := c.Bind(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), &record)
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return upstream.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// mutationError distinguishes upstream rejections, which pass through
// with their status and message, from local validation failures (400).
func mutationError(err error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return upstream.ToHTTPError(err)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
