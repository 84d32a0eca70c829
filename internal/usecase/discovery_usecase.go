package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/repository"
)

// DiscoveryDTO is the wire-level representation of a discovery listing.
type DiscoveryDTO struct {
	ID           *int64     `json:"id,omitempty"`
	Name         *string    `json:"name" validate:"required,max=100"`
	Description  *string    `json:"description,omitempty"`
	Category     *string    `json:"category,omitempty" validate:"omitempty,max=50"`
	Requirements *string    `json:"requirements,omitempty"`
	Location     *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// DiscoveryUsecase defines the discovery-related business operations.
type DiscoveryUsecase interface {
	// Save creates a new discovery. A DTO that already carries an id is
	// rejected.
	Save(ctx context.Context, dto *DiscoveryDTO) (*DiscoveryDTO, error)

	// Update fully replaces the discovery identified by the path id.
	Update(ctx context.Context, id int64, dto *DiscoveryDTO) (*DiscoveryDTO, error)

	// PartialUpdate merges the non-nil DTO fields onto the stored discovery.
	PartialUpdate(ctx context.Context, id int64, dto *DiscoveryDTO) (*DiscoveryDTO, error)

	// FindOne returns the discovery with the given id.
	FindOne(ctx context.Context, id int64) (*DiscoveryDTO, error)

	// Delete removes the discovery with the given id.
	Delete(ctx context.Context, id int64) error

	// FindByCriteria returns one page of discoveries matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria, pageable repository.Pageable) (repository.Page[*DiscoveryDTO], error)

	// CountByCriteria counts the discoveries matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria) (int64, error)
}
