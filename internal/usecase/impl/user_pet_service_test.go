package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	mockRepo "petcare/internal/mocks/repository"
	mockSvc "petcare/internal/mocks/service"
	"petcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userPetServiceFixtures holds all test dependencies for account service
// tests.
type userPetServiceFixtures struct {
	service     usecase.UserPetUsecase
	userPetRepo *mockRepo.MockUserPetRepository
	txManager   *mockRepo.MockTransactionManager
	hasher      *mockSvc.MockPasswordHasher
}

func createTestUserPetService(t *testing.T) userPetServiceFixtures {
	userPetRepo := mockRepo.NewMockUserPetRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return userPetServiceFixtures{
		service:     NewUserPetService(userPetRepo, txManager, hasher, logger),
		userPetRepo: userPetRepo,
		txManager:   txManager,
		hasher:      hasher,
	}
}

func TestUserPetService_Register_Success(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     entity.RoleOwner,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserPetRepo := mockRepo.NewMockUserPetRepository(t)

			mockFactory.EXPECT().UserPetRepo().Return(txUserPetRepo)

			txUserPetRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(false, nil)

			txUserPetRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.UserPet")).
				Run(func(ctx context.Context, userPet *entity.UserPet) {
					assert.Equal(t, "hashed_password", userPet.PasswordHash)
					userPet.ID = 11
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(11), *out.ID)
	assert.Equal(t, input.Email, *out.Email)
	assert.Nil(t, out.PasswordHash)
}

func TestUserPetService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     entity.RoleOwner,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserPetRepo := mockRepo.NewMockUserPetRepository(t)

			mockFactory.EXPECT().UserPetRepo().Return(txUserPetRepo)

			txUserPetRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEmailExists)

	out, err := fx.service.Register(ctx, input)

	assert.Nil(t, out)
	assertErrorKey(t, err, domainerrors.KeyEmailExists)
}

func TestUserPetService_Login_Success(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	stored := &entity.UserPet{
		ID:           11,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleOwner,
	}

	fx.userPetRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123", stored.PasswordHash).Return(true)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
	assert.Equal(t, "Alice", out.Name)
	assert.Equal(t, "Login successful", out.Message)
}

func TestUserPetService_Login_EmailNotRegistered(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	fx.userPetRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, out)
	assertErrorKey(t, err, domainerrors.KeyEmailNotFound)
}

func TestUserPetService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	stored := &entity.UserPet{
		ID:           11,
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userPetRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("bad", stored.PasswordHash).Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "bad",
	})

	assert.Nil(t, out)
	assertErrorKey(t, err, domainerrors.KeyWrongPassword)
}

func TestUserPetService_FindOne_NeverExposesPasswordHash(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	stored := &entity.UserPet{
		ID:           11,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleOwner,
	}

	fx.userPetRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)

	out, err := fx.service.FindOne(ctx, 11)

	require.NoError(t, err)
	assert.Nil(t, out.PasswordHash)
	assert.Equal(t, entity.RoleOwner, *out.Role)
}

func TestUserPetService_PartialUpdate_KeepsStoredHashWhenAbsent(t *testing.T) {
	fx := createTestUserPetService(t)

	ctx := context.Background()
	stored := &entity.UserPet{
		ID:           11,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleOwner,
	}

	fx.userPetRepo.EXPECT().ExistsByID(ctx, int64(11)).Return(true, nil)
	fx.userPetRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)
	fx.userPetRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.UserPet")).
		Run(func(ctx context.Context, userPet *entity.UserPet) {
			assert.Equal(t, "Alicia", userPet.Name)
			assert.Equal(t, "hashed_password", userPet.PasswordHash)
		}).
		Return(nil)

	out, err := fx.service.PartialUpdate(ctx, 11, &usecase.UserPetDTO{
		ID:   int64Ptr(11),
		Name: strPtr("Alicia"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", *out.Name)
	assert.Nil(t, out.PasswordHash)
}
