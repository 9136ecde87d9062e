package appointments

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
	// Patients book and cancel their own appointments, so every portal
	// role can read and write here.
	group := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RolePatient))
	group.GET("/appointments", h.List)
	group.GET("/appointments/:id", h.Get)
	group.POST("/appointments", h.Create)
	group.PUT("/appointments/:id", h.Update)
	group.POST("/appointments/:id/cancel", h.Cancel)
	group.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	crit := listview.CriteriaFromRequest(c)
	crit.PageSize = pg.PageSize

	ctrl := listview.NewController[*Appointment](crit)
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
	appt, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstream.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) Create(c echo.Context) error {
	var appt Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &appt)
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c echo.Context) error {
	var appt Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), &appt)
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Cancel(c echo.Context) error {
	cancelled, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, cancelled)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return upstream.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mutationError(err error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return upstream.ToHTTPError(err)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
