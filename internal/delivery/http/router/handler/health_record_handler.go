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

// HealthRecordHandler holds dependencies for health-record-related handlers.
type HealthRecordHandler struct {
	uc         usecase.HealthRecordUsecase
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// NewHealthRecordHandler is the constructor for HealthRecordHandler,
// injected by Fx.
func NewHealthRecordHandler(uc usecase.HealthRecordUsecase, cfg *config.Config, logger *slog.Logger) *HealthRecordHandler {
	return &HealthRecordHandler{
		uc:         uc,
		pagination: cfg.Pagination,
		logger:     logger,
	}
}

// Create handles POST /api/health-records.
func (h *HealthRecordHandler) Create(c echo.Context) error {
	var dto usecase.HealthRecordDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("healthRecord", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("healthRecord", err.Error())
	}

	created, err := h.uc.Save(c.Request().Context(), &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/api/health-records/"+strconv.FormatInt(*created.ID, 10), created)
}

// Update handles PUT /api/health-records/:id.
func (h *HealthRecordHandler) Update(c echo.Context) error {
	id, err := pathID(c, "healthRecord")
	if err != nil {
		return err
	}

	var dto usecase.HealthRecordDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("healthRecord", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("healthRecord", err.Error())
	}

	updated, err := h.uc.Update(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// PartialUpdate handles PATCH /api/health-records/:id.
func (h *HealthRecordHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, "healthRecord")
	if err != nil {
		return err
	}

	var dto usecase.HealthRecordDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("healthRecord", "invalid request body")
	}

	updated, err := h.uc.PartialUpdate(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// GetOne handles GET /api/health-records/:id.
func (h *HealthRecordHandler) GetOne(c echo.Context) error {
	id, err := pathID(c, "healthRecord")
	if err != nil {
		return err
	}

	dto, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto)
}

// List handles GET /api/health-records with optional filters and paging.
func (h *HealthRecordHandler) List(c echo.Context) error {
	values := c.QueryParams()

	criteria, err := query.BindHealthRecordCriteria(values)
	if err != nil {
		return errors.WithStack(err)
	}
	pageable, err := query.ParsePageable(values, h.pagination, "healthRecord")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.FindByCriteria(c.Request().Context(), criteria, pageable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page)
}

// Count handles GET /api/health-records/count.
func (h *HealthRecordHandler) Count(c echo.Context) error {
	criteria, err := query.BindHealthRecordCriteria(c.QueryParams())
	if err != nil {
		return errors.WithStack(err)
	}

	count, err := h.uc.CountByCriteria(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, count)
}

// ListByPet handles GET /api/health-records/pet/:petId.
func (h *HealthRecordHandler) ListByPet(c echo.Context) error {
	petID, err := pathInt64(c, "petId", "healthRecord")
	if err != nil {
		return err
	}

	dtos, err := h.uc.FindByPetID(c.Request().Context(), petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dtos)
}

// CountByOwner handles GET /api/health-records/count/owner/:ownerId, the
// number of records across all of the owner's pets.
func (h *HealthRecordHandler) CountByOwner(c echo.Context) error {
	ownerID, err := pathInt64(c, "ownerId", "healthRecord")
	if err != nil {
		return err
	}

	count, err := h.uc.CountByOwnerID(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, count)
}

// Delete handles DELETE /api/health-records/:id.
func (h *HealthRecordHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "healthRecord")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
