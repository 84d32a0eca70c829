package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/repository"
)

// HealthRecordDTO is the wire-level representation of a health record.
type HealthRecordDTO struct {
	ID        *int64     `json:"id,omitempty"`
	PetID     *int64     `json:"petId" validate:"required"`
	VetID     *int64     `json:"vetId" validate:"required"`
	ApptID    *int64     `json:"apptId" validate:"required"`
	Diagnosis *string    `json:"diagnosis,omitempty" validate:"omitempty,max=1000"`
	Treatment *string    `json:"treatment,omitempty" validate:"omitempty,max=1000"`
	Notes     *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// HealthRecordUsecase defines the health-record-related business operations.
type HealthRecordUsecase interface {
	// Save creates a new health record. A DTO that already carries an id is
	// rejected.
	Save(ctx context.Context, dto *HealthRecordDTO) (*HealthRecordDTO, error)

	// Update fully replaces the health record identified by the path id.
	Update(ctx context.Context, id int64, dto *HealthRecordDTO) (*HealthRecordDTO, error)

	// PartialUpdate merges the non-nil DTO fields onto the stored record.
	PartialUpdate(ctx context.Context, id int64, dto *HealthRecordDTO) (*HealthRecordDTO, error)

	// FindOne returns the health record with the given id.
	FindOne(ctx context.Context, id int64) (*HealthRecordDTO, error)

	// Delete removes the health record with the given id.
	Delete(ctx context.Context, id int64) error

	// FindByPetID returns all health records for the given pet.
	FindByPetID(ctx context.Context, petID int64) ([]*HealthRecordDTO, error)

	// CountByOwnerID counts the health records of every pet the given owner
	// owns.
	CountByOwnerID(ctx context.Context, ownerID int64) (int64, error)

	// FindByCriteria returns one page of health records matching the
	// criteria.
	FindByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria, pageable repository.Pageable) (repository.Page[*HealthRecordDTO], error)

	// CountByCriteria counts the health records matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria) (int64, error)
}
