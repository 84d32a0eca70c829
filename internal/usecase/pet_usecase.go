// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
)

// PetDTO is the wire-level representation of a pet. Optional fields are
// pointers so a partial update can tell "absent" from "zero".
type PetDTO struct {
	ID        *int64         `json:"id,omitempty"`
	OwnerID   *int64         `json:"ownerId" validate:"required"`
	Name      *string        `json:"name" validate:"required,max=100"`
	Species   *string        `json:"species,omitempty" validate:"omitempty,max=50"`
	Breed     *string        `json:"breed,omitempty" validate:"omitempty,max=50"`
	Age       *int32         `json:"age,omitempty" validate:"omitempty,min=0"`
	Gender    *entity.Gender `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE"`
	PhotoURL  *string        `json:"photoUrl,omitempty" validate:"omitempty,max=255"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
}

// PetUsecase defines the pet-related business operations the delivery layer
// depends on.
type PetUsecase interface {
	// Save creates a new pet. A DTO that already carries an id is rejected.
	Save(ctx context.Context, dto *PetDTO) (*PetDTO, error)

	// Update fully replaces the pet identified by the path id. The body id
	// must be present, match the path id and exist.
	Update(ctx context.Context, id int64, dto *PetDTO) (*PetDTO, error)

	// PartialUpdate merges the non-nil DTO fields onto the stored pet under
	// the same id rules as Update.
	PartialUpdate(ctx context.Context, id int64, dto *PetDTO) (*PetDTO, error)

	// FindOne returns the pet with the given id.
	FindOne(ctx context.Context, id int64) (*PetDTO, error)

	// Delete removes the pet with the given id, succeeding even when no such
	// pet exists.
	Delete(ctx context.Context, id int64) error

	// FindByCriteria returns one page of pets matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.PetCriteria, pageable repository.Pageable) (repository.Page[*PetDTO], error)

	// CountByCriteria counts the pets matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.PetCriteria) (int64, error)
}
