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

// UserPetHandler holds dependencies for account-related handlers.
type UserPetHandler struct {
	uc         usecase.UserPetUsecase
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// NewUserPetHandler is the constructor for UserPetHandler, injected by Fx.
func NewUserPetHandler(uc usecase.UserPetUsecase, cfg *config.Config, logger *slog.Logger) *UserPetHandler {
	return &UserPetHandler{
		uc:         uc,
		pagination: cfg.Pagination,
		logger:     logger,
	}
}

// Register handles POST /api/user-pets/register: account creation from a
// plaintext password.
func (h *UserPetHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ValidationFailed("userPet", "invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ValidationFailed("userPet", err.Error())
	}

	created, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/api/user-pets/"+strconv.FormatInt(*created.ID, 10), created)
}

// Login handles POST /api/user-pets/login.
func (h *UserPetHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ValidationFailed("userPet", "invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ValidationFailed("userPet", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// Create handles POST /api/user-pets, the admin-style create that accepts a
// prehashed password.
func (h *UserPetHandler) Create(c echo.Context) error {
	var dto usecase.UserPetDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("userPet", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("userPet", err.Error())
	}

	created, err := h.uc.Save(c.Request().Context(), &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/api/user-pets/"+strconv.FormatInt(*created.ID, 10), created)
}

// Update handles PUT /api/user-pets/:id.
func (h *UserPetHandler) Update(c echo.Context) error {
	id, err := pathID(c, "userPet")
	if err != nil {
		return err
	}

	var dto usecase.UserPetDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("userPet", "invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return domainerrors.ValidationFailed("userPet", err.Error())
	}

	updated, err := h.uc.Update(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// PartialUpdate handles PATCH /api/user-pets/:id.
func (h *UserPetHandler) PartialUpdate(c echo.Context) error {
	id, err := pathID(c, "userPet")
	if err != nil {
		return err
	}

	var dto usecase.UserPetDTO
	if err := c.Bind(&dto); err != nil {
		return domainerrors.ValidationFailed("userPet", "invalid request body")
	}

	updated, err := h.uc.PartialUpdate(c.Request().Context(), id, &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, updated)
}

// GetOne handles GET /api/user-pets/:id.
func (h *UserPetHandler) GetOne(c echo.Context) error {
	id, err := pathID(c, "userPet")
	if err != nil {
		return err
	}

	dto, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto)
}

// List handles GET /api/user-pets with optional filters and paging.
func (h *UserPetHandler) List(c echo.Context) error {
	values := c.QueryParams()

	criteria, err := query.BindUserPetCriteria(values)
	if err != nil {
		return errors.WithStack(err)
	}
	pageable, err := query.ParsePageable(values, h.pagination, "userPet")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.FindByCriteria(c.Request().Context(), criteria, pageable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, page)
}

// Count handles GET /api/user-pets/count.
func (h *UserPetHandler) Count(c echo.Context) error {
	criteria, err := query.BindUserPetCriteria(c.QueryParams())
	if err != nil {
		return errors.WithStack(err)
	}

	count, err := h.uc.CountByCriteria(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, count)
}

// Delete handles DELETE /api/user-pets/:id.
func (h *UserPetHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "userPet")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
