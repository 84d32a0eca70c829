package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
)

// AppointmentDTO is the wire-level representation of an appointment.
type AppointmentDTO struct {
	ID        *int64                    `json:"id,omitempty"`
	PetID     *int64                    `json:"petId" validate:"required"`
	OwnerID   *int64                    `json:"ownerId" validate:"required"`
	VetID     *int64                    `json:"vetId" validate:"required"`
	ApptTime  *time.Time                `json:"apptTime" validate:"required"`
	Status    *entity.AppointmentStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED DONE"`
	CreatedAt *time.Time                `json:"createdAt,omitempty"`
}

// AppointmentUsecase defines the appointment-related business operations.
type AppointmentUsecase interface {
	// Save creates a new appointment. A DTO that already carries an id is
	// rejected.
	Save(ctx context.Context, dto *AppointmentDTO) (*AppointmentDTO, error)

	// Update fully replaces the appointment identified by the path id.
	Update(ctx context.Context, id int64, dto *AppointmentDTO) (*AppointmentDTO, error)

	// PartialUpdate merges the non-nil DTO fields onto the stored
	// appointment. Status is a free-form overwrite; no transition graph is
	// enforced.
	PartialUpdate(ctx context.Context, id int64, dto *AppointmentDTO) (*AppointmentDTO, error)

	// FindOne returns the appointment with the given id.
	FindOne(ctx context.Context, id int64) (*AppointmentDTO, error)

	// Delete removes the appointment with the given id.
	Delete(ctx context.Context, id int64) error

	// FindByOwnerID returns all appointments booked by the given owner.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*AppointmentDTO, error)

	// FindByPetID returns all appointments for the given pet.
	FindByPetID(ctx context.Context, petID int64) ([]*AppointmentDTO, error)

	// FindNextByOwnerID returns the owner's next upcoming appointments,
	// soonest first, capped at two.
	FindNextByOwnerID(ctx context.Context, ownerID int64) ([]*AppointmentDTO, error)

	// FindByCriteria returns one page of appointments matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.AppointmentCriteria, pageable repository.Pageable) (repository.Page[*AppointmentDTO], error)

	// CountByCriteria counts the appointments matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.AppointmentCriteria) (int64, error)
}
