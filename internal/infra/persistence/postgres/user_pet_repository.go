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

// userPetRepository implements the repository.UserPetRepository interface.
type userPetRepository struct {
	db *gorm.DB
}

// NewUserPetRepository is the constructor for userPetRepository.
func NewUserPetRepository(db *gorm.DB) repository.UserPetRepository {
	return &userPetRepository{
		db: db,
	}
}

var userPetSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"phone":     "phone",
	"address":   "address",
	"role":      "role",
	"avatar":    "avatar",
	"createdAt": "created_at",
}

func userPetCriteriaExprs(c *criteria.UserPetCriteria) ([]clause.Expression, bool) {
	if c == nil {
		return nil, false
	}

	var exprs []clause.Expression
	exprs = append(exprs, rangeExprs("id", c.ID)...)
	exprs = append(exprs, stringExprs("name", c.Name)...)
	exprs = append(exprs, stringExprs("email", c.Email)...)
	exprs = append(exprs, stringExprs("phone", c.Phone)...)
	exprs = append(exprs, stringExprs("address", c.Address)...)
	exprs = append(exprs, filterExprs("role", c.Role)...)
	exprs = append(exprs, stringExprs("avatar", c.Avatar)...)
	exprs = append(exprs, rangeExprs("created_at", c.CreatedAt)...)

	return exprs, c.Distinct != nil && *c.Distinct
}

// FindByID retrieves a single account by its unique ID.
func (repo *userPetRepository) FindByID(ctx context.Context, id int64) (*entity.UserPet, error) {
	var userM model.UserPetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find userPet by ID")
	}

	return toUserPetDomain(&userM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *userPetRepository) FindByEmail(ctx context.Context, email string) (*entity.UserPet, error) {
	var userM model.UserPetModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find userPet by email")
	}

	return toUserPetDomain(&userM), nil
}

// ExistsByEmail reports whether an account with the given email exists.
func (repo *userPetRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserPetModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// Save persists a new account and backfills the generated values. The unique
// index on email is the last line of defense against duplicate registrations.
func (repo *userPetRepository) Save(ctx context.Context, userPet *entity.UserPet) error {
	userM := fromUserPetDomain(userPet)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ValidationFailed("userPet", "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create userPet")
	}

	userPet.ID = userM.ID
	userPet.CreatedAt = timePtr(userM.CreatedAt)

	return nil
}

// Update replaces every mutable column of an existing account row.
func (repo *userPetRepository) Update(ctx context.Context, userPet *entity.UserPet) error {
	userM := fromUserPetDomain(userPet)

	result := repo.db.WithContext(ctx).
		Model(&model.UserPetModel{ID: userPet.ID}).
		Select("*").Omit("id", "created_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update userPet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteByID removes an account by its ID. Deleting a nonexistent ID is a
// no-op.
func (repo *userPetRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserPetModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete userPet")
	}

	return nil
}

// ExistsByID reports whether an account with the given ID exists.
func (repo *userPetRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserPetModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check userPet existence")
	}

	return count > 0, nil
}

// FindByCriteria returns one page of accounts matching the criteria.
func (repo *userPetRepository) FindByCriteria(ctx context.Context, c *criteria.UserPetCriteria, pageable repository.Pageable) (repository.Page[*entity.UserPet], error) {
	exprs, distinct := userPetCriteriaExprs(c)

	return findPage(ctx, repo.db, "userPet", exprs, distinct, pageable, userPetSortColumns, toUserPetDomain)
}

// CountByCriteria counts the accounts matching the criteria.
func (repo *userPetRepository) CountByCriteria(ctx context.Context, c *criteria.UserPetCriteria) (int64, error) {
	exprs, distinct := userPetCriteriaExprs(c)

	return countRows[model.UserPetModel](ctx, repo.db, exprs, distinct)
}

// --- Mapper Functions ---

// toUserPetDomain converts a GORM UserPetModel to a domain UserPet entity.
func toUserPetDomain(data *model.UserPetModel) *entity.UserPet {
	if data == nil {
		return nil
	}

	return &entity.UserPet{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      data.Address,
		Role:         entity.UserRole(data.Role),
		Avatar:       data.Avatar,
		CreatedAt:    timePtr(data.CreatedAt),
	}
}

// fromUserPetDomain converts a domain UserPet entity to a GORM UserPetModel.
func fromUserPetDomain(data *entity.UserPet) *model.UserPetModel {
	if data == nil {
		return nil
	}

	return &model.UserPetModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      data.Address,
		Role:         data.Role.String(),
		Avatar:       data.Avatar,
		CreatedAt:    timeValue(data.CreatedAt),
	}
}
