package users

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
	// Account management is an admin console surface.
	group := api.Group("", auth.RequireRole(auth.RoleAdmin))
	group.GET("/users", h.List)
	group.GET("/users/:id", h.Get)
	group.POST("/users", h.Create)
	group.PUT("/users/:id", h.Update)
	group.POST("/users/:id/suspend", h.Suspend)
	group.DELETE("/users/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	crit := listview.CriteriaFromRequest(c)
	crit.PageSize = pg.PageSize

	ctrl := listview.NewController[*User](crit)
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
	u, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstream.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Create(c echo.Context) error {
	var u User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &u)
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c echo.Context) error {
	var u User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.Update(c.Request().Context(), c.Param("id"), &u)
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Suspend(c echo.Context) error {
	suspended, err := h.svc.Suspend(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mutationError(err)
	}
	return c.JSON(http.StatusOK, suspended)
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
