package handler

import (
	"log/slog"
	"strconv"

	"petcare/config"
	"petcare/internal/delivery/http/query"
	"petcare/internal/delivery/http/response"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscoveryHandler holds dependencies for discovery-related handlers.
type DiscoveryHandler struct {
	uc         usecase.DiscoveryUsecase
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler, injected by
// Fx.
func NewDiscoveryHandler(uc usecase.DiscoveryUsecase, cfg *config.Config, logger *slog.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		uc:         uc,
		pagination: cfg.Pagination,
		logger:     logger,
	}
}

// Create handles POST /api/discoveries.
func (h *DiscoveryHandler) Create(c echo.Context) error {
	var dto usecase.DiscoveryDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("discovery", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("discovery", err.Error())
	}

	created, err := h.uc.Save(c.Request().Context(), &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/api/discoveries/"+strconv.FormatInt(*created.ID, 10), created)
}

// Update handles PUT /api/discoveries/:id.
func (h *DiscoveryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "discovery")
	if err != nil {
		return err
	}

	var dto usecase.DiscoveryDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("discovery", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("discovery", err.Error())
	}

	updated, err := h.uc.Update(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// PartialUpdate handles PATCH /api/discoveries/:id.
func (h *DiscoveryHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, "discovery")
	if err != nil {
		return err
	}

	var dto usecase.DiscoveryDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("discovery", "invalid request body")
	}

	updated, err := h.uc.PartialUpdate(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// GetOne handles GET /api/discoveries/:id.
func (h *DiscoveryHandler) GetOne(c echo.Context) error {
	id, err := pathID(c, "discovery")
	if err != nil {
		return err
	}

	dto, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto)
}

// List handles GET /api/discoveries with optional filters and paging.
func (h *DiscoveryHandler) List(c echo.Context) error {
	values := c.QueryParams()

	criteria, err := query.BindDiscoveryCriteria(values)
	if err != nil {
		return errors.WithStack(err)
	}
	pageable, err := query.ParsePageable(values, h.pagination, "discovery")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.FindByCriteria(c.Request().Context(), criteria, pageable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page)
}

// Count handles GET /api/discoveries/count.
func (h *DiscoveryHandler) Count(c echo.Context) error {
	criteria, err := query.BindDiscoveryCriteria(c.QueryParams())
	if err != nil {
		return errors.WithStack(err)
	}

	count, err := h.uc.CountByCriteria(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, count)
}

// Delete handles DELETE /api/discoveries/:id.
func (h *DiscoveryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "discovery")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
