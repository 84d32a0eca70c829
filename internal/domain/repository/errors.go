package repository

import "errors"

// ErrNotFound is the domain-specific error returned when a lookup by id
// matches no record. The service layer translates it to the proper AppError
// for its entity.
var ErrNotFound = errors.New("entity not found")
