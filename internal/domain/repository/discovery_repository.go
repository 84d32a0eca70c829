package repository

import (
	"context"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
)

// DiscoveryRepository defines the standard operations for discovery listing
// persistence.
type DiscoveryRepository interface {
	// FindByID retrieves a single discovery by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Discovery, error)

	// Save persists a new discovery and fills in the generated ID and
	// timestamps.
	Save(ctx context.Context, discovery *entity.Discovery) error

	// Update overwrites an existing discovery row with the given entity.
	Update(ctx context.Context, discovery *entity.Discovery) error

	// DeleteByID removes a discovery by ID. Deleting a nonexistent ID is a
	// no-op.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether a discovery with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByCriteria returns one page of discoveries matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria, pageable Pageable) (Page[*entity.Discovery], error)

	// CountByCriteria counts the discoveries matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria) (int64, error)
}
