package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	mockRepo "petcare/internal/mocks/repository"
	"petcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// petServiceFixtures holds all test dependencies for pet service tests.
type petServiceFixtures struct {
	service usecase.PetUsecase
	petRepo *mockRepo.MockPetRepository
}

func createTestPetService(t *testing.T) petServiceFixtures {
	petRepo := mockRepo.NewMockPetRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return petServiceFixtures{
		service: NewPetService(petRepo, logger),
		petRepo: petRepo,
	}
}

func int64Ptr(v int64) *int64          { return &v }
func int32Ptr(v int32) *int32          { return &v }
func strPtr(v string) *string          { return &v }
func boolPtr(v bool) *bool             { return &v }
func timePtrOf(v time.Time) *time.Time { return &v }

func assertErrorKey(t *testing.T, err error, key string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, key, appErr.ErrorKey())
}

func TestPetService_Save_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	fx.petRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Pet")).
		Run(func(ctx context.Context, pet *entity.Pet) {
			pet.ID = 42
			pet.CreatedAt = timePtrOf(created)
		}).
		Return(nil)

	out, err := fx.service.Save(ctx, &usecase.PetDTO{
		OwnerID: int64Ptr(7),
		Name:    strPtr("Rex"),
		Species: strPtr("dog"),
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(42), *out.ID)
	assert.Equal(t, "Rex", *out.Name)
	assert.Equal(t, created, *out.CreatedAt)
}

func TestPetService_Save_RejectsClientID(t *testing.T) {
	fx := createTestPetService(t)

	out, err := fx.service.Save(context.Background(), &usecase.PetDTO{
		ID:      int64Ptr(1),
		OwnerID: int64Ptr(7),
		Name:    strPtr("Rex"),
	})

	assert.Nil(t, out)
	assertErrorKey(t, err, domainerrors.KeyIDExists)
}

func TestPetService_Update_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	fx.petRepo.EXPECT().ExistsByID(ctx, int64(5)).Return(true, nil)
	fx.petRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

	out, err := fx.service.Update(ctx, 5, &usecase.PetDTO{
		ID:      int64Ptr(5),
		OwnerID: int64Ptr(7),
		Name:    strPtr("Rex"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), *out.ID)
}

func TestPetService_Update_IDValidation(t *testing.T) {
	tests := []struct {
		name    string
		dto     *usecase.PetDTO
		exists  *bool
		wantKey string
	}{
		{
			name:    "missing body id",
			dto:     &usecase.PetDTO{Name: strPtr("Rex")},
			wantKey: domainerrors.KeyIDNull,
		},
		{
			name:    "mismatched body id",
			dto:     &usecase.PetDTO{ID: int64Ptr(6), Name: strPtr("Rex")},
			wantKey: domainerrors.KeyIDInvalid,
		},
		{
			name:    "unknown id",
			dto:     &usecase.PetDTO{ID: int64Ptr(5), Name: strPtr("Rex")},
			exists:  boolPtr(false),
			wantKey: domainerrors.KeyIDNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPetService(t)
			ctx := context.Background()

			if tt.exists != nil {
				fx.petRepo.EXPECT().ExistsByID(ctx, int64(5)).Return(*tt.exists, nil)
			}

			out, err := fx.service.Update(ctx, 5, tt.dto)

			assert.Nil(t, out)
			assertErrorKey(t, err, tt.wantKey)
		})
	}
}

func TestPetService_PartialUpdate_MergesOnlyProvidedFields(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	existing := &entity.Pet{
		ID:      5,
		OwnerID: 7,
		Name:    "Rex",
		Species: strPtr("dog"),
		Breed:   strPtr("beagle"),
		Age:     int32Ptr(3),
	}

	fx.petRepo.EXPECT().ExistsByID(ctx, int64(5)).Return(true, nil)
	fx.petRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	fx.petRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Pet")).
		Run(func(ctx context.Context, pet *entity.Pet) {
			assert.Equal(t, "Buddy", pet.Name)
			assert.Equal(t, "dog", *pet.Species)
			assert.Equal(t, int32(4), *pet.Age)
		}).
		Return(nil)

	out, err := fx.service.PartialUpdate(ctx, 5, &usecase.PetDTO{
		ID:   int64Ptr(5),
		Name: strPtr("Buddy"),
		Age:  int32Ptr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, "Buddy", *out.Name)
	assert.Equal(t, "beagle", *out.Breed)
}

func TestPetService_PartialUpdate_RowGoneAfterCheck(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	fx.petRepo.EXPECT().ExistsByID(ctx, int64(5)).Return(true, nil)
	fx.petRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrNotFound)

	out, err := fx.service.PartialUpdate(ctx, 5, &usecase.PetDTO{ID: int64Ptr(5)})

	assert.Nil(t, out)
	assertErrorKey(t, err, domainerrors.KeyIDNotFound)
}

func TestPetService_FindOne_NotFound(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	fx.petRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrNotFound)

	out, err := fx.service.FindOne(ctx, 99)

	assert.Nil(t, out)
	assertErrorKey(t, err, domainerrors.KeyNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestPetService_Delete_PassesThrough(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	fx.petRepo.EXPECT().DeleteByID(ctx, int64(5)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 5))
}

func TestPetService_FindByCriteria_MapsPage(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	c := &criteria.PetCriteria{}
	pageable := repository.Pageable{Page: 0, Size: 20}

	fx.petRepo.EXPECT().
		FindByCriteria(ctx, c, pageable).
		Return(repository.Page[*entity.Pet]{
			Content:       []*entity.Pet{{ID: 1, OwnerID: 7, Name: "Rex"}},
			TotalElements: 1,
			Number:        0,
			Size:          20,
		}, nil)

	page, err := fx.service.FindByCriteria(ctx, c, pageable)

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(1), *page.Content[0].ID)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestPetService_CountByCriteria_WrapsRepoError(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	c := &criteria.PetCriteria{}

	fx.petRepo.EXPECT().CountByCriteria(ctx, c).Return(int64(0), errors.New("boom"))

	_, err := fx.service.CountByCriteria(ctx, c)

	assert.Error(t, err)
}
