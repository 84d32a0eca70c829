package entity

import "time"

// Appointment is a booking between a pet owner and a vet for a specific pet.
// The pet, owner, vet and time are all required. Status carries no enforced
// transition rules: any value may be overwritten with any other.
type Appointment struct {
	ID        int64              // Surrogate identifier assigned by the datastore on insert.
	PetID     int64              // The pet the appointment is for, required.
	OwnerID   int64              // The owner account booking the appointment, required.
	VetID     int64              // The vet account handling the appointment, required.
	ApptTime  time.Time          // Scheduled time of the appointment, required.
	Status    *AppointmentStatus // Optional appointment status.
	CreatedAt *time.Time         // Set by the datastore when the row is inserted.
}
