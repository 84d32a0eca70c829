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

// petRepository implements the repository.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{
		db: db,
	}
}

// petSortColumns whitelists the sortable properties and maps them to column
// names.
var petSortColumns = map[string]string{
	"id":        "id",
	"ownerId":   "owner_id",
	"name":      "name",
	"species":   "species",
	"breed":     "breed",
	"age":       "age",
	"gender":    "gender",
	"photoUrl":  "photo_url",
	"createdAt": "created_at",
}

// petCriteriaExprs translates a pet criteria into WHERE conditions plus the
// distinct flag.
func petCriteriaExprs(c *criteria.PetCriteria) ([]clause.Expression, bool) {
	if c == nil {
		return nil, false
	}

	var exprs []clause.Expression
	exprs = append(exprs, rangeExprs("id", c.ID)...)
	exprs = append(exprs, rangeExprs("owner_id", c.OwnerID)...)
	exprs = append(exprs, stringExprs("name", c.Name)...)
	exprs = append(exprs, stringExprs("species", c.Species)...)
	exprs = append(exprs, stringExprs("breed", c.Breed)...)
	exprs = append(exprs, rangeExprs("age", c.Age)...)
	exprs = append(exprs, filterExprs("gender", c.Gender)...)
	exprs = append(exprs, stringExprs("photo_url", c.PhotoURL)...)
	exprs = append(exprs, rangeExprs("created_at", c.CreatedAt)...)

	return exprs, c.Distinct != nil && *c.Distinct
}

// FindByID retrieves a single pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id int64) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by ID")
	}

	return toPetDomain(&petM), nil
}

// Save persists a new pet and backfills the generated values.
func (repo *petRepository) Save(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ValidationFailed("pet", "missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = timePtr(petM.CreatedAt)

	return nil
}

// Update replaces every mutable column of an existing pet row.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{ID: pet.ID}).
		Select("*").Omit("id", "created_at").
		Updates(petM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByID removes a pet by its ID. Deleting a nonexistent ID is a no-op.
func (repo *petRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete pet")
	}

	return nil
}

// ExistsByID reports whether a pet with the given ID exists.
func (repo *petRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check pet existence")
	}

	return count > 0, nil
}

// FindByCriteria returns one page of pets matching the criteria.
func (repo *petRepository) FindByCriteria(ctx context.Context, c *criteria.PetCriteria, pageable repository.Pageable) (repository.Page[*entity.Pet], error) {
	exprs, distinct := petCriteriaExprs(c)

	return findPage(ctx, repo.db, "pet", exprs, distinct, pageable, petSortColumns, toPetDomain)
}

// CountByCriteria counts the pets matching the criteria.
func (repo *petRepository) CountByCriteria(ctx context.Context, c *criteria.PetCriteria) (int64, error) {
	exprs, distinct := petCriteriaExprs(c)

	return countRows[model.PetModel](ctx, repo.db, exprs, distinct)
}

// --- Mapper Functions ---

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Species:   data.Species,
		Breed:     data.Breed,
		Age:       data.Age,
		Gender:    fromStringPtr[entity.Gender](data.Gender),
		PhotoURL:  data.PhotoURL,
		CreatedAt: timePtr(data.CreatedAt),
	}
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Species:   data.Species,
		Breed:     data.Breed,
		Age:       data.Age,
		Gender:    toStringPtr(data.Gender),
		PhotoURL:  data.PhotoURL,
		CreatedAt: timeValue(data.CreatedAt),
	}
}
