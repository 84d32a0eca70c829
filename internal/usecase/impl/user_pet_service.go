package impl

import (
	"context"
	"log/slog"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/usecase"

	"petcare/internal/errors"
)

const userPetEntityName = "userPet"

// userPetService implements the UserPetUsecase interface.
type userPetService struct {
	userPetRepo repository.UserPetRepository
	txManager   repository.TransactionManager
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewUserPetService is the constructor for userPetService.
func NewUserPetService(
	userPetRepo repository.UserPetRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserPetUsecase {
	return &userPetService{
		userPetRepo: userPetRepo,
		txManager:   txManager,
		hasher:      hasher,
		logger:      logger,
	}
}

func (srv *userPetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userPetService) Save(ctx context.Context, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error) {
	srv.log(ctx).Debug("Saving userPet")

	if dto.ID != nil {
		return nil, domainerrors.IDExists(userPetEntityName)
	}

	userPet := fromUserPetDTO(dto)
	if err := srv.userPetRepo.Save(ctx, userPet); err != nil {
		return nil, errors.Wrap(err, "failed to save userPet")
	}

	return toUserPetDTO(userPet), nil
}

func (srv *userPetService) Update(ctx context.Context, id int64, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error) {
	srv.log(ctx).Debug("Updating userPet", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	userPet := fromUserPetDTO(dto)
	userPet.ID = id
	if err := srv.userPetRepo.Update(ctx, userPet); err != nil {
		return nil, errors.Wrap(err, "failed to update userPet")
	}

	return toUserPetDTO(userPet), nil
}

func (srv *userPetService) PartialUpdate(ctx context.Context, id int64, dto *usecase.UserPetDTO) (*usecase.UserPetDTO, error) {
	srv.log(ctx).Debug("Partially updating userPet", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	existing, err := srv.userPetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.IDNotFound(userPetEntityName)
		}

		return nil, errors.Wrap(err, "failed to load userPet for partial update")
	}

	mergeUserPetDTO(existing, dto)
	if err := srv.userPetRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update userPet")
	}

	return toUserPetDTO(existing), nil
}

func (srv *userPetService) FindOne(ctx context.Context, id int64) (*usecase.UserPetDTO, error) {
	userPet, err := srv.userPetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.NotFoundAlert(userPetEntityName)
		}

		return nil, errors.Wrap(err, "failed to find userPet")
	}

	return toUserPetDTO(userPet), nil
}

func (srv *userPetService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting userPet", slog.Int64("id", id))

	return errors.WithStack(srv.userPetRepo.DeleteByID(ctx, id))
}

func (srv *userPetService) FindByCriteria(ctx context.Context, c *criteria.UserPetCriteria, pageable repository.Pageable) (repository.Page[*usecase.UserPetDTO], error) {
	page, err := srv.userPetRepo.FindByCriteria(ctx, c, pageable)
	if err != nil {
		return repository.Page[*usecase.UserPetDTO]{}, errors.Wrap(err, "failed to find userPets by criteria")
	}

	return repository.MapPage(page, toUserPetDTO), nil
}

func (srv *userPetService) CountByCriteria(ctx context.Context, c *criteria.UserPetCriteria) (int64, error) {
	count, err := srv.userPetRepo.CountByCriteria(ctx, c)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count userPets by criteria")
	}

	return count, nil
}

func (srv *userPetService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserPetDTO, error) {
	srv.log(ctx).Info("Registering account", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	userPet := &entity.UserPet{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		Avatar:       input.Avatar,
		Role:         input.Role,
	}

	// The existence check and the insert run in one transaction so two
	// concurrent registrations for the same email cannot both succeed.
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.UserPetRepo()

		exists, err := repo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if exists {
			return domainerrors.ErrEmailExists
		}

		return errors.WithStack(repo.Save(ctx, userPet))
	})
	if err != nil {
		return nil, err
	}

	return toUserPetDTO(userPet), nil
}

func (srv *userPetService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	userPet, err := srv.userPetRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrEmailNotRegistered
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, userPet.PasswordHash) {
		return nil, domainerrors.ErrWrongPassword
	}

	return &usecase.LoginOutput{
		ID:      userPet.ID,
		Email:   userPet.Email,
		Name:    userPet.Name,
		Message: "Login successful",
	}, nil
}

func (srv *userPetService) checkUpdateID(ctx context.Context, pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domainerrors.IDNull(userPetEntityName)
	}
	if *bodyID != pathID {
		return domainerrors.IDInvalid(userPetEntityName)
	}

	exists, err := srv.userPetRepo.ExistsByID(ctx, pathID)
	if err != nil {
		return errors.Wrap(err, "failed to check userPet existence")
	}
	if !exists {
		return domainerrors.IDNotFound(userPetEntityName)
	}

	return nil
}

// toUserPetDTO maps an account entity to its DTO. The stored hash never
// leaves the service layer.
func toUserPetDTO(userPet *entity.UserPet) *usecase.UserPetDTO {
	if userPet == nil {
		return nil
	}

	id := userPet.ID
	name := userPet.Name
	email := userPet.Email
	role := userPet.Role

	return &usecase.UserPetDTO{
		ID:        &id,
		Name:      &name,
		Email:     &email,
		Phone:     userPet.Phone,
		Address:   userPet.Address,
		Role:      &role,
		Avatar:    userPet.Avatar,
		CreatedAt: userPet.CreatedAt,
	}
}

func fromUserPetDTO(dto *usecase.UserPetDTO) *entity.UserPet {
	userPet := &entity.UserPet{
		Phone:     dto.Phone,
		Address:   dto.Address,
		Avatar:    dto.Avatar,
		CreatedAt: dto.CreatedAt,
	}
	if dto.ID != nil {
		userPet.ID = *dto.ID
	}
	if dto.Name != nil {
		userPet.Name = *dto.Name
	}
	if dto.Email != nil {
		userPet.Email = *dto.Email
	}
	if dto.PasswordHash != nil {
		userPet.PasswordHash = *dto.PasswordHash
	}
	if dto.Role != nil {
		userPet.Role = *dto.Role
	}

	return userPet
}

func mergeUserPetDTO(userPet *entity.UserPet, dto *usecase.UserPetDTO) {
	if dto.Name != nil {
		userPet.Name = *dto.Name
	}
	if dto.Email != nil {
		userPet.Email = *dto.Email
	}
	if dto.PasswordHash != nil {
		userPet.PasswordHash = *dto.PasswordHash
	}
	if dto.Phone != nil {
		userPet.Phone = dto.Phone
	}
	if dto.Address != nil {
		userPet.Address = dto.Address
	}
	if dto.Role != nil {
		userPet.Role = *dto.Role
	}
	if dto.Avatar != nil {
		userPet.Avatar = dto.Avatar
	}
	if dto.CreatedAt != nil {
		userPet.CreatedAt = dto.CreatedAt
	}
}
