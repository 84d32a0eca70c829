package entity

import "time"

// Discovery is a standalone listing of a pet-related service or place
// (grooming, parks, clinics). It has no foreign keys to other entities.
type Discovery struct {
	ID           int64      // Surrogate identifier assigned by the datastore on insert.
	Name         string     // Required, at most 100 characters.
	Description  *string    // Free-form description.
	Category     *string    // e.g. "park", "grooming".
	Requirements *string    // Entry requirements, vaccination rules and the like.
	Location     *string    // Human-readable location.
	CreatedAt    *time.Time // Set by the datastore when the row is inserted.
}
