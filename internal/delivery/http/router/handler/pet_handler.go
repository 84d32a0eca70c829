// Package handler contains the HTTP handlers for the application.
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

// PetHandler holds dependencies for pet-related handlers.
type PetHandler struct {
	uc         usecase.PetUsecase
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase, cfg *config.Config, logger *slog.Logger) *PetHandler {
	return &PetHandler{
		uc:         uc,
		pagination: cfg.Pagination,
		logger:     logger,
	}
}

// Create handles POST /api/pets.
func (h *PetHandler) Create(c echo.Context) error {
	var dto usecase.PetDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("pet", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("pet", err.Error())
	}

	created, err := h.uc.Save(c.Request().Context(), &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/api/pets/"+strconv.FormatInt(*created.ID, 10), created)
}

// Update handles PUT /api/pets/:id, a full replacement.
func (h *PetHandler) Update(c echo.Context) error {
	id, err := pathID(c, "pet")
	if err != nil {
		return err
	}

	var dto usecase.PetDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("pet", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("pet", err.Error())
	}

	updated, err := h.uc.Update(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// PartialUpdate handles PATCH /api/pets/:id. Absent fields keep their stored
// values, so required-field validation does not apply here.
func (h *PetHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, "pet")
	if err != nil {
		return err
	}

	var dto usecase.PetDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("pet", "invalid request body")
	}

	updated, err := h.uc.PartialUpdate(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// GetOne handles GET /api/pets/:id.
func (h *PetHandler) GetOne(c echo.Context) error {
	id, err := pathID(c, "pet")
	if err != nil {
		return err
	}

	dto, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto)
}

// List handles GET /api/pets with optional filters and paging.
func (h *PetHandler) List(c echo.Context) error {
	values := c.QueryParams()

	criteria, err := query.BindPetCriteria(values)
	if err != nil {
		return errors.WithStack(err)
	}
	pageable, err := query.ParsePageable(values, h.pagination, "pet")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.FindByCriteria(c.Request().Context(), criteria, pageable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page)
}

// Count handles GET /api/pets/count with the same filters as List.
func (h *PetHandler) Count(c echo.Context) error {
	criteria, err := query.BindPetCriteria(c.QueryParams())
	if err != nil {
		return errors.WithStack(err)
	}

	count, err := h.uc.CountByCriteria(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, count)
}

// Delete handles DELETE /api/pets/:id.
func (h *PetHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "pet")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// pathID parses the :id path parameter shared by every resource.
func pathID(c echo.Context, entityName string) (int64, error) {
	return pathInt64(c, "id", entityName)
}

func pathInt64(c echo.Context, name, entityName string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ValidationFailed(entityName, "invalid value for path parameter "+name)
	}

	return id, nil
}
