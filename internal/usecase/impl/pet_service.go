// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/usecase"

	"petcare/internal/errors"
)

const petEntityName = "pet"

// petService implements the PetUsecase interface.
type petService struct {
	petRepo repository.PetRepository
	logger  *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(petRepo repository.PetRepository, logger *slog.Logger) usecase.PetUsecase {
	return &petService{
		petRepo: petRepo,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *petService) Save(ctx context.Context, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
	srv.log(ctx).Debug("Saving pet", slog.Any("ownerID", dto.OwnerID))

	if dto.ID != nil {
		return nil, domainerrors.IDExists(petEntityName)
	}

	pet := fromPetDTO(dto)
	if err := srv.petRepo.Save(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to save pet")
	}

	return toPetDTO(pet), nil
}

func (srv *petService) Update(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
	srv.log(ctx).Debug("Updating pet", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	pet := fromPetDTO(dto)
	pet.ID = id
	if err := srv.petRepo.Update(ctx, pet); err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	return toPetDTO(pet), nil
}

func (srv *petService) PartialUpdate(ctx context.Context, id int64, dto *usecase.PetDTO) (*usecase.PetDTO, error) {
	srv.log(ctx).Debug("Partially updating pet", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	existing, err := srv.petRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.IDNotFound(petEntityName)
		}

		return nil, errors.Wrap(err, "failed to load pet for partial update")
	}

	mergePetDTO(existing, dto)
	if err := srv.petRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	return toPetDTO(existing), nil
}

func (srv *petService) FindOne(ctx context.Context, id int64) (*usecase.PetDTO, error) {
	pet, err := srv.petRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.NotFoundAlert(petEntityName)
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return toPetDTO(pet), nil
}

func (srv *petService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting pet", slog.Int64("id", id))

	return errors.WithStack(srv.petRepo.DeleteByID(ctx, id))
}

func (srv *petService) FindByCriteria(ctx context.Context, c *criteria.PetCriteria, pageable repository.Pageable) (repository.Page[*usecase.PetDTO], error) {
	page, err := srv.petRepo.FindByCriteria(ctx, c, pageable)
	if err != nil {
		return repository.Page[*usecase.PetDTO]{}, errors.Wrap(err, "failed to find pets by criteria")
	}

	return repository.MapPage(page, toPetDTO), nil
}

func (srv *petService) CountByCriteria(ctx context.Context, c *criteria.PetCriteria) (int64, error) {
	count, err := srv.petRepo.CountByCriteria(ctx, c)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pets by criteria")
	}

	return count, nil
}

// checkUpdateID enforces the shared id rules for full and partial updates.
func (srv *petService) checkUpdateID(ctx context.Context, pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domainerrors.IDNull(petEntityName)
	}
	if *bodyID != pathID {
		return domainerrors.IDInvalid(petEntityName)
	}

	exists, err := srv.petRepo.ExistsByID(ctx, pathID)
	if err != nil {
		return errors.Wrap(err, "failed to check pet existence")
	}
	if !exists {
		return domainerrors.IDNotFound(petEntityName)
	}

	return nil
}

// --- Mapping helpers ---

func toPetDTO(pet *entity.Pet) *usecase.PetDTO {
	if pet == nil {
		return nil
	}

	id := pet.ID
	ownerID := pet.OwnerID
	name := pet.Name

	return &usecase.PetDTO{
		ID:        &id,
		OwnerID:   &ownerID,
		Name:      &name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		Age:       pet.Age,
		Gender:    pet.Gender,
		PhotoURL:  pet.PhotoURL,
		CreatedAt: pet.CreatedAt,
	}
}

func fromPetDTO(dto *usecase.PetDTO) *entity.Pet {
	pet := &entity.Pet{
		Species:   dto.Species,
		Breed:     dto.Breed,
		Age:       dto.Age,
		Gender:    dto.Gender,
		PhotoURL:  dto.PhotoURL,
		CreatedAt: dto.CreatedAt,
	}
	if dto.ID != nil {
		pet.ID = *dto.ID
	}
	if dto.OwnerID != nil {
		pet.OwnerID = *dto.OwnerID
	}
	if dto.Name != nil {
		pet.Name = *dto.Name
	}

	return pet
}

// mergePetDTO copies only the non-nil DTO fields onto the stored pet,
// leaving everything else untouched.
func mergePetDTO(pet *entity.Pet, dto *usecase.PetDTO) {
	if dto.OwnerID != nil {
		pet.OwnerID = *dto.OwnerID
	}
	if dto.Name != nil {
		pet.Name = *dto.Name
	}
	if dto.Species != nil {
		pet.Species = dto.Species
	}
	if dto.Breed != nil {
		pet.Breed = dto.Breed
	}
	if dto.Age != nil {
		pet.Age = dto.Age
	}
	if dto.Gender != nil {
		pet.Gender = dto.Gender
	}
	if dto.PhotoURL != nil {
		pet.PhotoURL = dto.PhotoURL
	}
	if dto.CreatedAt != nil {
		pet.CreatedAt = dto.CreatedAt
	}
}
