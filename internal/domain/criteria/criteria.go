package criteria

import (
	"time"

	"petcare/internal/domain/entity"
)

// PetCriteria collects the optional filters accepted by the pet list and
// count endpoints.
type PetCriteria struct {
	ID        *RangeFilter[int64]
	OwnerID   *RangeFilter[int64]
	Name      *StringFilter
	Species   *StringFilter
	Breed     *StringFilter
	Age       *RangeFilter[int32]
	Gender    *Filter[entity.Gender]
	PhotoURL  *StringFilter
	CreatedAt *RangeFilter[time.Time]
	Distinct  *bool
}

// UserPetCriteria collects the optional filters for account queries. The
// password hash is deliberately not filterable.
type UserPetCriteria struct {
	ID        *RangeFilter[int64]
	Name      *StringFilter
	Email     *StringFilter
	Phone     *StringFilter
	Address   *StringFilter
	Role      *Filter[entity.UserRole]
	Avatar    *StringFilter
	CreatedAt *RangeFilter[time.Time]
	Distinct  *bool
}

// AppointmentCriteria collects the optional filters for appointment queries.
type AppointmentCriteria struct {
	ID        *RangeFilter[int64]
	PetID     *RangeFilter[int64]
	OwnerID   *RangeFilter[int64]
	VetID     *RangeFilter[int64]
	ApptTime  *RangeFilter[time.Time]
	Status    *Filter[entity.AppointmentStatus]
	CreatedAt *RangeFilter[time.Time]
	Distinct  *bool
}

// HealthRecordCriteria collects the optional filters for health record
// queries.
type HealthRecordCriteria struct {
	ID        *RangeFilter[int64]
	PetID     *RangeFilter[int64]
	VetID     *RangeFilter[int64]
	ApptID    *RangeFilter[int64]
	Diagnosis *StringFilter
	Treatment *StringFilter
	Notes     *StringFilter
	CreatedAt *RangeFilter[time.Time]
	Distinct  *bool
}

// DiscoveryCriteria collects the optional filters for discovery listings.
type DiscoveryCriteria struct {
	ID           *RangeFilter[int64]
	Name         *StringFilter
	Description  *StringFilter
	Category     *StringFilter
	Requirements *StringFilter
	Location     *StringFilter
	CreatedAt    *RangeFilter[time.Time]
	Distinct     *bool
}
