package postgres

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// appointmentRepository implements the repository.AppointmentRepository
// interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

var appointmentSortColumns = map[string]string{
	"id":        "id",
	"petId":     "pet_id",
	"ownerId":   "owner_id",
	"vetId":     "vet_id",
	"apptTime":  "appt_time",
	"status":    "status",
	"createdAt": "created_at",
}

func appointmentCriteriaExprs(c *criteria.AppointmentCriteria) ([]clause.Expression, bool) {
	if c == nil {
		return nil, false
	}

	var exprs []clause.Expression
	exprs = append(exprs, rangeExprs("id", c.ID)...)
	exprs = append(exprs, rangeExprs("pet_id", c.PetID)...)
	exprs = append(exprs, rangeExprs("owner_id", c.OwnerID)...)
	exprs = append(exprs, rangeExprs("vet_id", c.VetID)...)
	exprs = append(exprs, rangeExprs("appt_time", c.ApptTime)...)
	exprs = append(exprs, filterExprs("status", c.Status)...)
	exprs = append(exprs, rangeExprs("created_at", c.CreatedAt)...)

	return exprs, c.Distinct != nil && *c.Distinct
}

// FindByID retrieves a single appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	var apptM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&apptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by ID")
	}

	return toAppointmentDomain(&apptM), nil
}

// Save persists a new appointment and backfills the generated values.
func (repo *appointmentRepository) Save(ctx context.Context, appt *entity.Appointment) error {
	apptM := fromAppointmentDomain(appt)

	if err := repo.db.WithContext(ctx).Create(apptM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ValidationFailed("appointment", "missing required appointment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appt.ID = apptM.ID
	appt.CreatedAt = timePtr(apptM.CreatedAt)

	return nil
}

// Update replaces every mutable column of an existing appointment row.
func (repo *appointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	apptM := fromAppointmentDomain(appt)

	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{ID: appt.ID}).
		Select("*").Omit("id", "created_at").
		Updates(apptM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update appointment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByID removes an appointment by its ID. Deleting a nonexistent ID is
// a no-op.
func (repo *appointmentRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppointmentModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete appointment")
	}

	return nil
}

// ExistsByID reports whether an appointment with the given ID exists.
func (repo *appointmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check appointment existence")
	}

	return count > 0, nil
}

// FindByOwnerID returns all appointments booked by the given owner, newest
// first.
func (repo *appointmentRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Appointment, error) {
	var apptModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("appt_time DESC").
		Find(&apptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by owner")
	}

	return mapAppointmentDomains(apptModels), nil
}

// FindByPetID returns all appointments for the given pet, newest first.
func (repo *appointmentRepository) FindByPetID(ctx context.Context, petID int64) ([]*entity.Appointment, error) {
	var apptModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("appt_time DESC").
		Find(&apptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by pet")
	}

	return mapAppointmentDomains(apptModels), nil
}

// FindUpcomingByOwnerID returns the owner's appointments strictly after the
// given instant, soonest first, capped at limit.
func (repo *appointmentRepository) FindUpcomingByOwnerID(ctx context.Context, ownerID int64, after time.Time, statuses []entity.AppointmentStatus, limit int) ([]*entity.Appointment, error) {
	query := repo.db.WithContext(ctx).
		Where("owner_id = ? AND appt_time > ?", ownerID, after)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var apptModels []*model.AppointmentModel
	if err := query.Order("appt_time ASC").Find(&apptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming appointments")
	}

	return mapAppointmentDomains(apptModels), nil
}

// FindByCriteria returns one page of appointments matching the criteria.
func (repo *appointmentRepository) FindByCriteria(ctx context.Context, c *criteria.AppointmentCriteria, pageable repository.Pageable) (repository.Page[*entity.Appointment], error) {
	exprs, distinct := appointmentCriteriaExprs(c)

	return findPage(ctx, repo.db, "appointment", exprs, distinct, pageable, appointmentSortColumns, toAppointmentDomain)
}

// CountByCriteria counts the appointments matching the criteria.
func (repo *appointmentRepository) CountByCriteria(ctx context.Context, c *criteria.AppointmentCriteria) (int64, error) {
	exprs, distinct := appointmentCriteriaExprs(c)

	return countRows[model.AppointmentModel](ctx, repo.db, exprs, distinct)
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain
// Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:        data.ID,
		PetID:     data.PetID,
		OwnerID:   data.OwnerID,
		VetID:     data.VetID,
		ApptTime:  data.ApptTime,
		Status:    fromStringPtr[entity.AppointmentStatus](data.Status),
		CreatedAt: timePtr(data.CreatedAt),
	}
}

func mapAppointmentDomains(models []*model.AppointmentModel) []*entity.Appointment {
	appts := make([]*entity.Appointment, 0, len(models))
	for _, apptM := range models {
		appts = append(appts, toAppointmentDomain(apptM))
	}

	return appts
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM
// AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:        data.ID,
		PetID:     data.PetID,
		OwnerID:   data.OwnerID,
		VetID:     data.VetID,
		ApptTime:  data.ApptTime,
		Status:    toStringPtr(data.Status),
		CreatedAt: timeValue(data.CreatedAt),
	}
}
