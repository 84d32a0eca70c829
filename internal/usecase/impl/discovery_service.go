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

const discoveryEntityName = "discovery"

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	discoveryRepo repository.DiscoveryRepository
	logger        *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(discoveryRepo repository.DiscoveryRepository, logger *slog.Logger) usecase.DiscoveryUsecase {
	return &discoveryService{
		discoveryRepo: discoveryRepo,
		logger:        logger,
	}
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *discoveryService) Save(ctx context.Context, dto *usecase.DiscoveryDTO) (*usecase.DiscoveryDTO, error) {
	srv.log(ctx).Debug("Saving discovery")

	if dto.ID != nil {
		return nil, domainerrors.IDExists(discoveryEntityName)
	}

	discovery := fromDiscoveryDTO(dto)
	if err := srv.discoveryRepo.Save(ctx, discovery); err != nil {
		return nil, errors.Wrap(err, "failed to save discovery")
	}

	return toDiscoveryDTO(discovery), nil
}

func (srv *discoveryService) Update(ctx context.Context, id int64, dto *usecase.DiscoveryDTO) (*usecase.DiscoveryDTO, error) {
	srv.log(ctx).Debug("Updating discovery", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	discovery := fromDiscoveryDTO(dto)
	discovery.ID = id
	if err := srv.discoveryRepo.Update(ctx, discovery); err != nil {
		return nil, errors.Wrap(err, "failed to update discovery")
	}

	return toDiscoveryDTO(discovery), nil
}

func (srv *discoveryService) PartialUpdate(ctx context.Context, id int64, dto *usecase.DiscoveryDTO) (*usecase.DiscoveryDTO, error) {
	srv.log(ctx).Debug("Partially updating discovery", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	existing, err := srv.discoveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.IDNotFound(discoveryEntityName)
		}

		return nil, errors.Wrap(err, "failed to load discovery for partial update")
	}

	mergeDiscoveryDTO(existing, dto)
	if err := srv.discoveryRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update discovery")
	}

	return toDiscoveryDTO(existing), nil
}

func (srv *discoveryService) FindOne(ctx context.Context, id int64) (*usecase.DiscoveryDTO, error) {
	discovery, err := srv.discoveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.NotFoundAlert(discoveryEntityName)
		}

		return nil, errors.Wrap(err, "failed to find discovery")
	}

	return toDiscoveryDTO(discovery), nil
}

func (srv *discoveryService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting discovery", slog.Int64("id", id))

	return errors.WithStack(srv.discoveryRepo.DeleteByID(ctx, id))
}

func (srv *discoveryService) FindByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria, pageable repository.Pageable) (repository.Page[*usecase.DiscoveryDTO], error) {
	page, err := srv.discoveryRepo.FindByCriteria(ctx, c, pageable)
	if err != nil {
		return repository.Page[*usecase.DiscoveryDTO]{}, errors.Wrap(err, "failed to find discoveries by criteria")
	}

	return repository.MapPage(page, toDiscoveryDTO), nil
}

func (srv *discoveryService) CountByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria) (int64, error) {
	count, err := srv.discoveryRepo.CountByCriteria(ctx, c)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count discoveries by criteria")
	}

	return count, nil
}

func (srv *discoveryService) checkUpdateID(ctx context.Context, pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domainerrors.IDNull(discoveryEntityName)
	}
	if *bodyID != pathID {
		return domainerrors.IDInvalid(discoveryEntityName)
	}

	exists, err := srv.discoveryRepo.ExistsByID(ctx, pathID)
	if err != nil {
		return errors.Wrap(err, "failed to check discovery existence")
	}
	if !exists {
		return domainerrors.IDNotFound(discoveryEntityName)
	}

	return nil
}

func toDiscoveryDTO(discovery *entity.Discovery) *usecase.DiscoveryDTO {
	if discovery == nil {
		return nil
	}

	id := discovery.ID
	name := discovery.Name

	return &usecase.DiscoveryDTO{
		ID:           &id,
		Name:         &name,
		Description:  discovery.Description,
		Category:     discovery.Category,
		Requirements: discovery.Requirements,
		Location:     discovery.Location,
		CreatedAt:    discovery.CreatedAt,
	}
}

func fromDiscoveryDTO(dto *usecase.DiscoveryDTO) *entity.Discovery {
	discovery := &entity.Discovery{
		Description:  dto.Description,
		Category:     dto.Category,
		Requirements: dto.Requirements,
		Location:     dto.Location,
		CreatedAt:    dto.CreatedAt,
	}
	if dto.ID != nil {
		discovery.ID = *dto.ID
	}
	if dto.Name != nil {
		discovery.Name = *dto.Name
	}

	return discovery
}

func mergeDiscoveryDTO(discovery *entity.Discovery, dto *usecase.DiscoveryDTO) {
	if dto.Name != nil {
		discovery.Name = *dto.Name
	}
	if dto.Description != nil {
		discovery.Description = dto.Description
	}
	if dto.Category != nil {
		discovery.Category = dto.Category
	}
	if dto.Requirements != nil {
		discovery.Requirements = dto.Requirements
	}
	if dto.Location != nil {
		discovery.Location = dto.Location
	}
	if dto.CreatedAt != nil {
		discovery.CreatedAt = dto.CreatedAt
	}
}
