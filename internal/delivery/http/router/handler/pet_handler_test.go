package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petcare/config"
	httpmiddleware "petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/validator"
	"petcare/internal/domain/criteria"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPetUsecase lets each test plug in just the operation it exercises.
type stubPetUsecase struct {
	save           func(ctx context.Context, dto *usecase.PetDTO) (*usecase.PetDTO, error)
	update         func(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error)
	partialUpdate  func(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error)
	findOne        func(ctx context.Context, id int64) (*usecase.PetDTO, error)
	delete         func(ctx context.Context, id int64) error
	findByCriteria func(ctx context.Context, c *criteria.PetCriteria, pageable repository.Pageable) (repository.Page[*usecase.PetDTO], error)
	count          func(ctx context.Context, c *criteria.PetCriteria) (int64, error)
}

func (s *stubPetUsecase) Save(ctx context.Context, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
	return s.save(ctx, dto)
}

func (s *stubPetUsecase) Update(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
	return s.update(ctx, id, dto)
}

func (s *stubPetUsecase) PartialUpdate(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
	return s.partialUpdate(ctx, id, dto)
}

func (s *stubPetUsecase) FindOne(ctx context.Context, id int64) (*usecase.PetDTO, error) {
	return s.findOne(ctx, id)
}

func (s *stubPetUsecase) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func (s *stubPetUsecase) FindByCriteria(ctx context.Context, c *criteria.PetCriteria, pageable repository.Pageable) (repository.Page[*usecase.PetDTO], error) {
	return s.findByCriteria(ctx, c, pageable)
}

func (s *stubPetUsecase) CountByCriteria(ctx context.Context, c *criteria.PetCriteria) (int64, error) {
	return s.count(ctx, c)
}

func newTestServer(t *testing.T, uc usecase.PetUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Pagination = config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewPetHandler(uc, cfg, logger)
	e.POST("/api/pets", h.Create)
	e.GET("/api/pets", h.List)
	e.GET("/api/pets/count", h.Count)
	e.GET("/api/pets/:id", h.GetOne)
	e.PUT("/api/pets/:id", h.Update)
	e.PATCH("/api/pets/:id", h.PartialUpdate)
	e.DELETE("/api/pets/:id", h.Delete)

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPetHandler_Create_Success(t *testing.T) {
	uc := &stubPetUsecase{
		save: func(ctx context.Context, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
			id := int64(42)
			dto.ID = &id
			return dto, nil
		},
	}
	e := newTestServer(t, uc)

	rec := doJSON(e, http.MethodPost, "/api/pets", `{"ownerId":7,"name":"Rex","species":"dog"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/pets/42", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestPetHandler_Create_MissingRequiredFields(t *testing.T) {
	e := newTestServer(t, &stubPetUsecase{})

	rec := doJSON(e, http.MethodPost, "/api/pets", `{"species":"dog"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyValidationFailed)
}

func TestPetHandler_Create_RejectsClientID(t *testing.T) {
	uc := &stubPetUsecase{
		save: func(ctx context.Context, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
			return nil, domainerrors.IDExists("pet")
		},
	}
	e := newTestServer(t, uc)

	rec := doJSON(e, http.MethodPost, "/api/pets", `{"id":1,"ownerId":7,"name":"Rex"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyIDExists)
	assert.Contains(t, rec.Body.String(), `"entity":"pet"`)
}

func TestPetHandler_GetOne_NotFound(t *testing.T) {
	uc := &stubPetUsecase{
		findOne: func(ctx context.Context, id int64) (*usecase.PetDTO, error) {
			return nil, domainerrors.NotFoundAlert("pet")
		},
	}
	e := newTestServer(t, uc)

	rec := doJSON(e, http.MethodGet, "/api/pets/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyNotFound)
}

func TestPetHandler_GetOne_BadPathID(t *testing.T) {
	e := newTestServer(t, &stubPetUsecase{})

	rec := doJSON(e, http.MethodGet, "/api/pets/notanumber", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyValidationFailed)
}

func TestPetHandler_List_PagingHeaders(t *testing.T) {
	uc := &stubPetUsecase{
		findByCriteria: func(ctx context.Context, c *criteria.PetCriteria, pageable repository.Pageable) (repository.Page[*usecase.PetDTO], error) {
			require.NotNil(t, c.OwnerID)
			assert.Equal(t, int64(7), *c.OwnerID.Equals)
			assert.Equal(t, 0, pageable.Page)
			assert.Equal(t, 20, pageable.Size)

			name := "Rex"
			id := int64(1)
			return repository.Page[*usecase.PetDTO]{
				Content:       []*usecase.PetDTO{{ID: &id, Name: &name}},
				TotalElements: 1,
				Number:        0,
				Size:          20,
			}, nil
		},
	}
	e := newTestServer(t, uc)

	rec := doJSON(e, http.MethodGet, "/api/pets?ownerId.equals=7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))
	assert.NotEmpty(t, rec.Header().Get("Link"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "["))
}

func TestPetHandler_List_BadFilterValue(t *testing.T) {
	e := newTestServer(t, &stubPetUsecase{})

	rec := doJSON(e, http.MethodGet, "/api/pets?ownerId.equals=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.KeyValidationFailed)
}

func TestPetHandler_Count(t *testing.T) {
	uc := &stubPetUsecase{
		count: func(ctx context.Context, c *criteria.PetCriteria) (int64, error) {
			return 5, nil
		},
	}
	e := newTestServer(t, uc)

	rec := doJSON(e, http.MethodGet, "/api/pets/count", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5\n", rec.Body.String())
}

func TestPetHandler_PartialUpdate_SkipsRequiredValidation(t *testing.T) {
	uc := &stubPetUsecase{
		partialUpdate: func(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
			assert.Equal(t, int64(5), id)
			require.NotNil(t, dto.Name)
			assert.Nil(t, dto.OwnerID)
			return dto, nil
		},
	}
	e := newTestServer(t, uc)

	// No ownerId in the body; a full update would reject this.
	rec := doJSON(e, http.MethodPatch, "/api/pets/5", `{"id":5,"name":"Buddy"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPetHandler_Delete_NoContent(t *testing.T) {
	uc := &stubPetUsecase{
		delete: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(5), id)
			return nil
		},
	}
	e := newTestServer(t, uc)

	rec := doJSON(e, http.MethodDelete, "/api/pets/5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
