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

// discoveryRepository implements the repository.DiscoveryRepository
// interface.
type discoveryRepository struct {
	db *gorm.DB
}

// NewDiscoveryRepository is the constructor for discoveryRepository.
func NewDiscoveryRepository(db *gorm.DB) repository.DiscoveryRepository {
	return &discoveryRepository{
		db: db,
	}
}

var discoverySortColumns = map[string]string{
	"id":           "id",
	"name":         "name",
	"description":  "description",
	"category":     "category",
	"requirements": "requirements",
	"location":     "location",
	"createdAt":    "created_at",
}

func discoveryCriteriaExprs(c *criteria.DiscoveryCriteria) ([]clause.Expression, bool) {
	if c == nil {
		return nil, false
	}

	var exprs []clause.Expression
	exprs = append(exprs, rangeExprs("id", c.ID)...)
	exprs = append(exprs, stringExprs("name", c.Name)...)
	exprs = append(exprs, stringExprs("description", c.Description)...)
	exprs = append(exprs, stringExprs("category", c.Category)...)
	exprs = append(exprs, stringExprs("requirements", c.Requirements)...)
	exprs = append(exprs, stringExprs("location", c.Location)...)
	exprs = append(exprs, rangeExprs("created_at", c.CreatedAt)...)

	return exprs, c.Distinct != nil && *c.Distinct
}

// FindByID retrieves a single discovery by its unique ID.
func (repo *discoveryRepository) FindByID(ctx context.Context, id int64) (*entity.Discovery, error) {
	var discoveryM model.DiscoveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&discoveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find discovery by ID")
	}

	return toDiscoveryDomain(&discoveryM), nil
}

// Save persists a new discovery and backfills the generated values.
func (repo *discoveryRepository) Save(ctx context.Context, discovery *entity.Discovery) error {
	discoveryM := fromDiscoveryDomain(discovery)

	if err := repo.db.WithContext(ctx).Create(discoveryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ValidationFailed("discovery", "missing required discovery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discovery")
	}

	discovery.ID = discoveryM.ID
	discovery.CreatedAt = timePtr(discoveryM.CreatedAt)

	return nil
}

// Update replaces every mutable column of an existing discovery row.
func (repo *discoveryRepository) Update(ctx context.Context, discovery *entity.Discovery) error {
	discoveryM := fromDiscoveryDomain(discovery)

	result := repo.db.WithContext(ctx).
		Model(&model.DiscoveryModel{ID: discovery.ID}).
		Select("*").Omit("id", "created_at").
		Updates(discoveryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update discovery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByID removes a discovery by its ID. Deleting a nonexistent ID is a
// no-op.
func (repo *discoveryRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DiscoveryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete discovery")
	}

	return nil
}

// ExistsByID reports whether a discovery with the given ID exists.
func (repo *discoveryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DiscoveryModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check discovery existence")
	}

	return count > 0, nil
}

// FindByCriteria returns one page of discoveries matching the criteria.
func (repo *discoveryRepository) FindByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria, pageable repository.Pageable) (repository.Page[*entity.Discovery], error) {
	exprs, distinct := discoveryCriteriaExprs(c)

	return findPage(ctx, repo.db, "discovery", exprs, distinct, pageable, discoverySortColumns, toDiscoveryDomain)
}

// CountByCriteria counts the discoveries matching the criteria.
func (repo *discoveryRepository) CountByCriteria(ctx context.Context, c *criteria.DiscoveryCriteria) (int64, error) {
	exprs, distinct := discoveryCriteriaExprs(c)

	return countRows[model.DiscoveryModel](ctx, repo.db, exprs, distinct)
}

// --- Mapper Functions ---

// toDiscoveryDomain converts a GORM DiscoveryModel to a domain Discovery
// entity.
func toDiscoveryDomain(data *model.DiscoveryModel) *entity.Discovery {
	if data == nil {
		return nil
	}

	return &entity.Discovery{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Requirements: data.Requirements,
		Location:     data.Location,
		CreatedAt:    timePtr(data.CreatedAt),
	}
}

// fromDiscoveryDomain converts a domain Discovery entity to a GORM
// DiscoveryModel.
func fromDiscoveryDomain(data *entity.Discovery) *model.DiscoveryModel {
	if data == nil {
		return nil
	}

	return &model.DiscoveryModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		Requirements: data.Requirements,
		Location:     data.Location,
		CreatedAt:    timeValue(data.CreatedAt),
	}
}
