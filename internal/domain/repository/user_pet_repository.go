package repository

import (
	"context"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
)

// UserPetRepository defines the standard operations for account persistence.
type UserPetRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.UserPet, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.UserPet, error)

	// ExistsByEmail reports whether an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a new account and fills in the generated ID and
	// timestamps.
	Save(ctx context.Context, userPet *entity.UserPet) error

	// Update overwrites an existing account row with the given entity.
	Update(ctx context.Context, userPet *entity.UserPet) error

	// DeleteByID removes an account by ID. Deleting a nonexistent ID is a
	// no-op.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether an account with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByCriteria returns one page of accounts matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.UserPetCriteria, pageable Pageable) (Page[*entity.UserPet], error)

	// CountByCriteria counts the accounts matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.UserPetCriteria) (int64, error)
}
