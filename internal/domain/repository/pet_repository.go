package repository

import (
	"context"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
)

// PetRepository defines the standard operations for pet persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type PetRepository interface {
	// FindByID retrieves a single pet by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Pet, error)

	// Save persists a new pet and fills in the generated ID and timestamps.
	Save(ctx context.Context, pet *entity.Pet) error

	// Update overwrites an existing pet row with the given entity.
	Update(ctx context.Context, pet *entity.Pet) error

	// DeleteByID removes a pet by ID. Deleting a nonexistent ID is a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether a pet with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByCriteria returns one page of pets matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.PetCriteria, pageable Pageable) (Page[*entity.Pet], error)

	// CountByCriteria counts the pets matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.PetCriteria) (int64, error)
}
