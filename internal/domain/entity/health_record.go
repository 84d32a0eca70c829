package entity

import "time"

// HealthRecord is the clinical outcome of an appointment: what the vet found
// and what was prescribed. It references a pet, a vet and an appointment but
// the references are not validated by the application layer.
type HealthRecord struct {
	ID        int64      // Surrogate identifier assigned by the datastore on insert.
	PetID     int64      // The examined pet, required.
	VetID     int64      // The vet that produced the record, required.
	ApptID    int64      // The appointment this record belongs to, required.
	Diagnosis *string    // At most 1000 characters.
	Treatment *string    // At most 1000 characters.
	Notes     *string    // At most 1000 characters.
	CreatedAt *time.Time // Set by the datastore when the row is inserted.
}
