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

// AppointmentHandler holds dependencies for appointment-related handlers.
type AppointmentHandler struct {
	uc         usecase.AppointmentUsecase
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected
// by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, cfg *config.Config, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		uc:         uc,
		pagination: cfg.Pagination,
		logger:     logger,
	}
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var dto usecase.AppointmentDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("appointment", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("appointment", err.Error())
	}

	created, err := h.uc.Save(c.Request().Context(), &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/api/appointments/"+strconv.FormatInt(*created.ID, 10), created)
}

// Update handles PUT /api/appointments/:id.
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	var dto usecase.AppointmentDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("appointment", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("appointment", err.Error())
	}

	updated, err := h.uc.Update(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// PartialUpdate handles PATCH /api/appointments/:id. Status changes arrive
// through here and overwrite whatever status is stored.
func (h *AppointmentHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	var dto usecase.AppointmentDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("appointment", "invalid request body")
	}

	updated, err := h.uc.PartialUpdate(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// GetOne handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetOne(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	dto, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto)
}

// List handles GET /api/appointments with optional filters and paging.
func (h *AppointmentHandler) List(c echo.Context) error {
	values := c.QueryParams()

	criteria, err := query.BindAppointmentCriteria(values)
	if err != nil {
		return errors.WithStack(err)
	}
	pageable, err := query.ParsePageable(values, h.pagination, "appointment")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.FindByCriteria(c.Request().Context(), criteria, pageable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page)
}

// Count handles GET /api/appointments/count.
func (h *AppointmentHandler) Count(c echo.Context) error {
	criteria, err := query.BindAppointmentCriteria(c.QueryParams())
	if err != nil {
		return errors.WithStack(err)
	}

	count, err := h.uc.CountByCriteria(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, count)
}

// ListByOwner handles GET /api/appointments/owner/:ownerId.
func (h *AppointmentHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathInt64(c, "ownerId", "appointment")
	if err != nil {
		return err
	}

	dtos, err := h.uc.FindByOwnerID(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dtos)
}

// ListByPet handles GET /api/appointments/pet/:petId.
func (h *AppointmentHandler) ListByPet(c echo.Context) error {
	petID, err := pathInt64(c, "petId", "appointment")
	if err != nil {
		return err
	}

	dtos, err := h.uc.FindByPetID(c.Request().Context(), petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dtos)
}

// NextByOwner handles GET /api/appointments/next/:ownerId, the owner's next
// upcoming appointments.
func (h *AppointmentHandler) NextByOwner(c echo.Context) error {
	ownerID, err := pathInt64(c, "ownerId", "appointment")
	if err != nil {
		return err
	}

	dtos, err := h.uc.FindNextByOwnerID(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dtos)
}

// Delete handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "appointment")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
