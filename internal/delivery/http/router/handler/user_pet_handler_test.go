package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"petcare/config"
	httpmiddleware "petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/validator"
	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserPetUsecase struct {
	save           func(ctx context.Context, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error)
	update         func(ctx context.Context, id int64, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error)
	partialUpdate  func(ctx context.Context, id int64, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error)
	findOne        func(ctx context.Context, id int64) (*usecase.UserPetDTO, error)
	delete         func(ctx context.Context, id int64) error
	findByCriteria func(ctx context.Context, c *criteria.UserPetCriteria, pageable repository.Pageable) (repository.Page[*usecase.UserPetDTO], error)
	count          func(ctx context.Context, c *criteria.UserPetCriteria) (int64, error)
	register       func(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserPetDTO, error)
	login          func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubUserPetUsecase) Save(ctx context.Context, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error) {
	return s.save(ctx, dto)
}

func (s *stubUserPetUsecase) Update(ctx context.Context, id int64, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error) {
	return s.update(ctx, id, dto)
}

func (s *stubUserPetUsecase) PartialUpdate(ctx context.Context, id int64, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error) {
	return s.partialUpdate(ctx, id, dto)
}

func (s *stubUserPetUsecase) FindOne(ctx context.Context, id int64) (*usecase.UserPetDTO, error) {
	return s.findOne(ctx, id)
}

func (s *stubUserPetUsecase) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func (s *stubUserPetUsecase) FindByCriteria(ctx context.Context, c *criteria.UserPetCriteria, pageable repository.Pageable) (repository.Page[*usecase.UserPetDTO], error) {
	return s.findByCriteria(ctx, c, pageable)
}

func (s *stubUserPetUsecase) CountByCriteria(ctx context.Context, c *criteria.UserPetCriteria) (int64, error) {
	return s.count(ctx, c)
}

func (s *stubUserPetUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserPetDTO, error) {
	return s.register(ctx, input)
}

func (s *stubUserPetUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.login(ctx, input)
}

func newUserPetTestServer(t *testing.T, uc usecase.UserPetUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Pagination = config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewUserPetHandler(uc, cfg, logger)
	e.POST("/api/user-pets/register", h.Register)
	e.POST("/api/user-pets/login", h.Login)
	e.POST("/api/user-pets", h.Create)
	e.GET("/api/user-pets/:id", h.GetOne)

	return e
}

func TestUserPetHandler_Register_Success(t *testing.T) {
	uc := &stubUserPetUsecase{
		register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserPetDTO, error) {
			assert.Equal(t, "alice@example.com", input.Email)
			assert.Equal(t, entity.RoleOwner, input.Role)

			id := int64(11)
			name := input.Name
			email := input.Email
			role := input.Role
			return &usecase.UserPetDTO{ID: &id, Name: &name, Email: &email, Role: &role}, nil
		},
	}
	e := newUserPetTestServer(t, uc)

	rec := doJSON(e, http.MethodPost, "/api/user-pets/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123","role":"OWNER"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/user-pets/11", rec.Header().Get(echo.HeaderLocation))
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUserPetHandler_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing password", body: `{"name":"Alice","email":"alice@example.com","role":"OWNER"}`},
		{name: "short password", body: `{"name":"Alice","email":"alice@example.com","password":"abc","role":"OWNER"}`},
		{name: "bad email", body: `{"name":"Alice","email":"notanemail","password":"secret123","role":"OWNER"}`},
		{name: "bad role", body: `{"name":"Alice","email":"alice@example.com","password":"secret123","role":"WIZARD"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newUserPetTestServer(t, &stubUserPetUsecase{})

			rec := doJSON(e, http.MethodPost, "/api/user-pets/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), domainerrors.KeyValidationFailed)
		})
	}
}

func TestUserPetHandler_Register_DuplicateEmail(t *testing.T) {
	uc := &stubUserPetUsecase{
		register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserPetDTO, error) {
			return nil, domainerrors.ErrEmailExists
		},
	}
	e := newUserPetTestServer(t, uc)

	rec := doJSON(e, http.MethodPost, "/api/user-pets/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123","role":"OWNER"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyEmailExists)
	assert.Contains(t, rec.Body.String(), `"entity":"userPet"`)
}

func TestUserPetHandler_Login_Success(t *testing.T) {
	uc := &stubUserPetUsecase{
		login: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			require.Equal(t, "alice@example.com", input.Email)
			return &usecase.LoginOutput{
				ID:      11,
				Email:   input.Email,
				Name:    "Alice",
				Message: "Login successful",
			}, nil
		},
	}
	e := newUserPetTestServer(t, uc)

	rec := doJSON(e, http.MethodPost, "/api/user-pets/login",
		`{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Login successful"`)
	assert.Contains(t, rec.Body.String(), `"id":11`)
}

func TestUserPetHandler_Login_WrongPassword(t *testing.T) {
	uc := &stubUserPetUsecase{
		login: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrWrongPassword
		},
	}
	e := newUserPetTestServer(t, uc)

	rec := doJSON(e, http.MethodPost, "/api/user-pets/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyWrongPassword)
}

func TestUserPetHandler_GetOne_NeverExposesPasswordHash(t *testing.T) {
	uc := &stubUserPetUsecase{
		findOne: func(ctx context.Context, id int64) (*usecase.UserPetDTO, error) {
			name := "Alice"
			email := "alice@example.com"
			role := entity.RoleOwner
			return &usecase.UserPetDTO{ID: &id, Name: &name, Email: &email, Role: &role}, nil
		},
	}
	e := newUserPetTestServer(t, uc)

	rec := doJSON(e, http.MethodGet, "/api/user-pets/11", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}
