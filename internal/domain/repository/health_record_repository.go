package repository

import (
	"context"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
)

// HealthRecordRepository defines the standard operations for health record
// persistence.
type HealthRecordRepository interface {
	// FindByID retrieves a single health record by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.HealthRecord, error)

	// Save persists a new health record and fills in the generated ID and
	// timestamps.
	Save(ctx context.Context, record *entity.HealthRecord) error

	// Update overwrites an existing health record row with the given entity.
	Update(ctx context.Context, record *entity.HealthRecord) error

	// DeleteByID removes a health record by ID. Deleting a nonexistent ID is
	// a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether a health record with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByPetID returns all health records for the given pet.
	FindByPetID(ctx context.Context, petID int64) ([]*entity.HealthRecord, error)

	// CountByOwnerID counts health records for every pet owned by the given
	// account, joining through pet ownership.
	CountByOwnerID(ctx context.Context, ownerID int64) (int64, error)

	// FindByCriteria returns one page of health records matching the
	// criteria.
	FindByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria, pageable Pageable) (Page[*entity.HealthRecord], error)

	// CountByCriteria counts the health records matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.HealthRecordCriteria) (int64, error)
}
