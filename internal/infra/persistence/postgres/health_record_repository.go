package postgres

import (
	"context"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// healthRecordRepository implements the repository.HealthRecordRepository
// interface.
type healthRecordRepository struct {
	db *gorm.DB
}

// NewHealthRecordRepository is the constructor for healthRecordRepository.
func NewHealthRecordRepository(db *gorm.DB) repository.HealthRecordRepository {
	return &healthRecordRepository{
		db: db,
	}
}

var healthRecordSortColumns = map[string]string{
	"id":        "id",
	"petId":     "pet_id",
	"vetId":     "vet_id",
	"apptId":    "appt_id",
	"diagnosis": "diagnosis",
	"treatment": "treatment",
	"notes":     "notes",
	"createdAt": "created_at",
}

func healthRecordCriteriaExprs(c *criteria.HealthRecordCriteria) ([]clause.Expression, bool) {
	if c == nil {
		return nil, false
	}

	var exprs []clause.Expression
	exprs = append(exprs, rangeExprs("id", c.ID)...)
	exprs = append(exprs, rangeExprs("pet_id", c.PetID)...)
	exprs = append(exprs, rangeExprs("vet_id", c.VetID)...)
	exprs = append(exprs, rangeExprs("appt_id", c.ApptID)...)
	exprs = append(exprs, stringExprs("diagnosis", c.Diagnosis)...)
	exprs = append(exprs, stringExprs("treatment", c.Treatment)...)
	exprs = append(exprs, stringExprs("notes", c.Notes)...)
	exprs = append(exprs, rangeExprs("created_at", c.CreatedAt)...)

	return exprs, c.Distinct != nil && *c.Distinct
}

// FindByID retrieves a single health record by its unique ID.
func (repo *healthRecordRepository) FindByID(ctx context.Context, id int64) (*entity.HealthRecord, error) {
	var recordM model.HealthRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find healthRecord by ID")
	}

	return toHealthRecordDomain(&recordM), nil
}

// Save persists a new health record and backfills the generated values.
func (repo *healthRecordRepository) Save(ctx context.Context, record *entity.HealthRecord) error {
	recordM := fromHealthRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ValidationFailed("healthRecord", "missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create healthRecord")
	}

	record.ID = recordM.ID
	record.CreatedAt = timePtr(recordM.CreatedAt)

	return nil
}

// Update replaces every mutable column of an existing health record row.
func (repo *healthRecordRepository) Update(ctx context.Context, record *entity.HealthRecord) error {
	recordM := fromHealthRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Model(&model.HealthRecordModel{ID: record.ID}).
		Select("*").Omit("id", "created_at").
		Updates(recordM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update healthRecord")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByID removes a health record by its ID. Deleting a nonexistent ID is
// a no-op.
func (repo *healthRecordRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HealthRecordModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete healthRecord")
	}

	return nil
}

// ExistsByID reports whether a health record with the given ID exists.
func (repo *healthRecordRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HealthRecordModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check healthRecord existence")
	}

	return count > 0, nil
}

// FindByPetID returns all health records for the given pet, newest first.
func (repo *healthRecordRepository) FindByPetID(ctx context.Context, petID int64) ([]*entity.HealthRecord, error) {
	var recordModels []*model.HealthRecordModel

	if err := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find healthRecords by pet")
	}

	records := make([]*entity.HealthRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toHealthRecordDomain(recordM))
	}

	return records, nil
}

// CountByOwnerID counts health records across every pet the owner owns,
// joining through the pets table.
func (repo *healthRecordRepository) CountByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HealthRecordModel{}).
		Joins("JOIN pets ON pets.id = health_records.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count healthRecords by owner")
	}

	return count, nil
}

// FindByCriteria returns one page of health records matching the criteria.
func (repo *healthRecordRepository) FindByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria, pageable repository.Pageable) (repository.Page[*entity.HealthRecord], error) {
	exprs, distinct := healthRecordCriteriaExprs(c)

	return findPage(ctx, repo.db, "healthRecord", exprs, distinct, pageable, healthRecordSortColumns, toHealthRecordDomain)
}

// CountByCriteria counts the health records matching the criteria.
func (repo *healthRecordRepository) CountByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria) (int64, error) {
	exprs, distinct := healthRecordCriteriaExprs(c)

	return countRows[model.HealthRecordModel](ctx, repo.db, exprs, distinct)
}

// --- Mapper Functions ---

// toHealthRecordDomain converts a GORM HealthRecordModel to a domain
// HealthRecord entity.
func toHealthRecordDomain(data *model.HealthRecordModel) *entity.HealthRecord {
	if data == nil {
		return nil
	}

	return &entity.HealthRecord{
		ID:        data.ID,
		PetID:     data.PetID,
		VetID:     data.VetID,
		ApptID:    data.ApptID,
		Diagnosis: data.Diagnosis,
		Treatment: data.Treatment,
		Notes:     data.Notes,
		CreatedAt: timePtr(data.CreatedAt),
	}
}

// fromHealthRecordDomain converts a domain HealthRecord entity to a GORM
// HealthRecordModel.
func fromHealthRecordDomain(data *entity.HealthRecord) *model.HealthRecordModel {
	if data == nil {
		return nil
	}

	return &model.HealthRecordModel{
		ID:        data.ID,
		PetID:     data.PetID,
		VetID:     data.VetID,
		ApptID:    data.ApptID,
		Diagnosis: data.Diagnosis,
		Treatment: data.Treatment,
		Notes:     data.Notes,
		CreatedAt: timeValue(data.CreatedAt),
	}
}
