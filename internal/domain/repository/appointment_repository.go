package repository

import (
	"context"
	"time"

	"petcare/internal/domain/criteria"
	"petcare/internal/domain/entity"
)

// AppointmentRepository defines the standard operations for appointment
// persistence plus the hand-written finders the booking screens need.
type AppointmentRepository interface {
	// FindByID retrieves a single appointment by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)

	// Save persists a new appointment and fills in the generated ID and
	// timestamps.
	Save(ctx context.Context, appt *entity.Appointment) error

	// Update overwrites an existing appointment row with the given entity.
	Update(ctx context.Context, appt *entity.Appointment) error

	// DeleteByID removes an appointment by ID. Deleting a nonexistent ID is
	// a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether an appointment with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByOwnerID returns all appointments booked by the given owner.
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Appointment, error)

	// FindByPetID returns all appointments for the given pet.
	FindByPetID(ctx context.Context, petID int64) ([]*entity.Appointment, error)

	// FindUpcomingByOwnerID returns at most limit appointments for the owner
	// with ApptTime strictly after the given instant, ordered by ApptTime
	// ascending. A non-empty statuses set restricts the result to those
	// statuses; an empty set means any status.
	FindUpcomingByOwnerID(ctx context.Context, ownerID int64, after time.Time, statuses []entity.AppointmentStatus, limit int) ([]*entity.Appointment, error)

	// FindByCriteria returns one page of appointments matching the criteria.
	FindByCriteria(ctx context.Context, c *criteria.AppointmentCriteria, pageable Pageable) (Page[*entity.Appointment], error)

	// CountByCriteria counts the appointments matching the criteria.
	CountByCriteria(ctx context.Context, c *criteria.AppointmentCriteria) (int64, error)
}
