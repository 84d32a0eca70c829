package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
)

// UserPetDTO is the wire-level representation of an account. PasswordHash is
// accepted on input for the admin-style CRUD endpoints but is always cleared
// before a DTO leaves the service layer.
type UserPetDTO struct {
	ID           *int64           `json:"id,omitempty"`
	Name         *string          `json:"name" validate:"required,max=100"`
	Email        *string          `json:"email" validate:"required,email,max=100"`
	PasswordHash *string          `json:"passwordHash,omitempty" validate:"omitempty,max=255"`
	Phone        *string          `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address      *string          `json:"address,omitempty" validate:"omitempty,max=255"`
	Role         *entity.UserRole `json:"role" validate:"required,oneof=OWNER VET ADMIN"`
	Avatar       *string          `json:"avatar,omitempty" validate:"omitempty,max=255"`
	CreatedAt    *time.Time       `json:"createdAt,omitempty"`
}

// RegisterInput defines the data required to register a new account. The
// password arrives in plaintext and is hashed before it is stored.
type RegisterInput struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email,max=100"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	Phone    *string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address  *string         `json:"address,omitempty" validate:"omitempty,max=255"`
	Role     entity.UserRole `json:"role" validate:"required,oneof=OWNER VET ADMIN"`
	Avatar   *string         `json:"avatar,omitempty" validate:"omitempty,max=255"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the successful login response: the account's identity and a
// human-readable message. No tokens are issued by this system.
type LoginOutput struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// UserPetUsecase defines the account-related business operations.
type UserPetUsecase interface {
	// Save creates a new account. A DTO that already carries an id is
	// rejected.
	Save(ctx context.Context, dto *UserPetDTO) (*UserPetDTO, error)

	// Update fully replaces the account identified by the path id.
	Update(ctx context.Context, id int64, dto *UserPetDTO) (*UserPetDTO, error)

	// PartialUpdate merges the non-nil DTO fields onto the stored account.
	PartialUpdate(ctx context.Context, id int64, dto *UserPetDTO) (*UserPetDTO, error)

	// FindOne returns the account with the given id.
	FindOne(ctx context.Context, id int64) (*UserPetDTO, error)

	// Delete removes the account with the given id.
	Delete(ctx context.Context, id int64) error

	// FindByCriteria returns one page of accounts matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.UserPetCriteria, pageable repository.Pageable) (repository.Page[*UserPetDTO], error)

	// CountByCriteria counts the accounts matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.UserPetCriteria) (int64, error)

	// Register creates an account from a plaintext password, rejecting
	// duplicate emails atomically.
	Register(ctx context.Context, input *RegisterInput) (*UserPetDTO, error)

	// Login verifies an email/password pair and returns the account's
	// identity.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
