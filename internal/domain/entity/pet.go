package entity

import "time"

// Pet belongs to exactly one UserPet identified by OwnerID. Apart from name
// and owner, every attribute is optional.
type Pet struct {
	ID        int64      // Surrogate identifier assigned by the datastore on insert.
	OwnerID   int64      // The owning UserPet account, required.
	Name      string     // Required, at most 100 characters.
	Species   *string    // e.g. "dog", "cat"; at most 50 characters.
	Breed     *string    // At most 50 characters.
	Age       *int32     // Age in years.
	Gender    *Gender    // Optional gender enum.
	PhotoURL  *string    // Optional photo location.
	CreatedAt *time.Time // Set by the datastore when the row is inserted.
}
