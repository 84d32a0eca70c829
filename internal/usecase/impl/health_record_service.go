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

const healthRecordEntityName = "healthRecord"

// healthRecordService implements the HealthRecordUsecase interface.
type healthRecordService struct {
	recordRepo repository.HealthRecordRepository
	logger     *slog.Logger
}

// NewHealthRecordService is the constructor for healthRecordService.
func NewHealthRecordService(recordRepo repository.HealthRecordRepository, logger *slog.Logger) usecase.HealthRecordUsecase {
	return &healthRecordService{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

func (srv *healthRecordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *healthRecordService) Save(ctx context.Context, dto *usecase.HealthRecordDTO) (*usecase.HealthRecordDTO, error) {
	srv.log(ctx).Debug("Saving healthRecord")

	if dto.ID != nil {
		return nil, domainerrors.IDExists(healthRecordEntityName)
	}

	record := fromHealthRecordDTO(dto)
	if err := srv.recordRepo.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to save healthRecord")
	}

	return toHealthRecordDTO(record), nil
}

func (srv *healthRecordService) Update(ctx context.Context, id int64, dto *usecase.HealthRecordDTO) (*usecase.HealthRecordDTO, error) {
	srv.log(ctx).Debug("Updating healthRecord", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	record := fromHealthRecordDTO(dto)
	record.ID = id
	if err := srv.recordRepo.Update(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to update healthRecord")
	}

	return toHealthRecordDTO(record), nil
}

func (srv *healthRecordService) PartialUpdate(ctx context.Context, id int64, dto *usecase.HealthRecordDTO) (*usecase.HealthRecordDTO, error) {
	srv.log(ctx).Debug("Partially updating healthRecord", slog.Int64("id", id))

	if err := srv.checkUpdateID(ctx, id, dto.ID); err != nil {
		return nil, err
	}

	existing, err := srv.recordRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.IDNotFound(healthRecordEntityName)
		}

		return nil, errors.Wrap(err, "failed to load healthRecord for partial update")
	}

	mergeHealthRecordDTO(existing, dto)
	if err := srv.recordRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update healthRecord")
	}

	return toHealthRecordDTO(existing), nil
}

func (srv *healthRecordService) FindOne(ctx context.Context, id int64) (*usecase.HealthRecordDTO, error) {
	record, err := srv.recordRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.NotFoundAlert(healthRecordEntityName)
		}

		return nil, errors.Wrap(err, "failed to find healthRecord")
	}

	return toHealthRecordDTO(record), nil
}

func (srv *healthRecordService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting healthRecord", slog.Int64("id", id))

	return errors.WithStack(srv.recordRepo.DeleteByID(ctx, id))
}

func (srv *healthRecordService) FindByPetID(ctx context.Context, petID int64) ([]*usecase.HealthRecordDTO, error) {
	records, err := srv.recordRepo.FindByPetID(ctx, petID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find healthRecords by pet")
	}

	dtos := make([]*usecase.HealthRecordDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toHealthRecordDTO(record))
	}

	return dtos, nil
}

func (srv *healthRecordService) CountByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	count, err := srv.recordRepo.CountByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count healthRecords by owner")
	}

	return count, nil
}

func (srv *healthRecordService) FindByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria, pageable repository.Pageable) (repository.Page[*usecase.HealthRecordDTO], error) {
	page, err := srv.recordRepo.FindByCriteria(ctx, c, pageable)
	if err != nil {
		return repository.Page[*usecase.HealthRecordDTO]{}, errors.Wrap(err, "failed to find healthRecords by criteria")
	}

	return repository.MapPage(page, toHealthRecordDTO), nil
}

func (srv *healthRecordService) CountByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria) (int64, error) {
	count, err := srv.recordRepo.CountByCriteria(ctx, c)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count healthRecords by criteria")
	}

	return count, nil
}

func (srv *healthRecordService) checkUpdateID(ctx context.Context, pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return domainerrors.IDNull(healthRecordEntityName)
	}
	if *bodyID != pathID {
		return domainerrors.IDInvalid(healthRecordEntityName)
	}

	exists, err := srv.recordRepo.ExistsByID(ctx, pathID)
	if err != nil {
		return errors.Wrap(err, "failed to check healthRecord existence")
	}
	if !exists {
		return domainerrors.IDNotFound(healthRecordEntityName)
	}

	return nil
}

func toHealthRecordDTO(record *entity.HealthRecord) *usecase.HealthRecordDTO {
	if record == nil {
		return nil
	}

	id := record.ID
	petID := record.PetID
	vetID := record.VetID
	apptID := record.ApptID

	return &usecase.HealthRecordDTO{
		ID:        &id,
		PetID:     &petID,
		VetID:     &vetID,
		ApptID:    &apptID,
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
	}
}

func fromHealthRecordDTO(dto *usecase.HealthRecordDTO) *entity.HealthRecord {
	record := &entity.HealthRecord{
		Diagnosis: dto.Diagnosis,
		Treatment: dto.Treatment,
		Notes:     dto.Notes,
		CreatedAt: dto.CreatedAt,
	}
	if dto.ID != nil {
		record.ID = *dto.ID
	}
	if dto.PetID != nil {
		record.PetID = *dto.PetID
	}
	if dto.VetID != nil {
		record.VetID = *dto.VetID
	}
	if dto.ApptID != nil {
		record.ApptID = *dto.ApptID
	}

	return record
}

func mergeHealthRecordDTO(record *entity.HealthRecord, dto *usecase.HealthRecordDTO) {
	if dto.PetID != nil {
		record.PetID = *dto.PetID
	}
	if dto.VetID != nil {
		record.VetID = *dto.VetID
	}
	if dto.ApptID != nil {
		record.ApptID = *dto.ApptID
	}
	if dto.Diagnosis != nil {
		record.Diagnosis = dto.Diagnosis
	}
	if dto.Treatment != nil {
		record.Treatment = dto.Treatment
	}
	if dto.Notes != nil {
		record.Notes = dto.Notes
	}
	if dto.CreatedAt != nil {
		record.CreatedAt = dto.CreatedAt
	}
}
