// Package errors defines the application error taxonomy. Every error that
// reaches the HTTP layer implements AppError so the error middleware can map
// it to a structured response carrying the entity name and a stable error key.
package errors

import (
	"net/http"

	"petcare/internal/errors"
)

// Stable error keys shared with API clients.
const (
	KeyIDExists         = "idexists"
	KeyIDNull           = "idnull"
	KeyIDInvalid        = "idinvalid"
	KeyIDNotFound       = "idnotfound"
	KeyNotFound         = "notfound"
	KeyEmailExists      = "emailexists"
	KeyEmailNotFound    = "emailnotfound"
	KeyWrongPassword    = "wrongpassword"
	KeyValidationFailed = "validationfailed"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int      // HTTP status code
	ErrorKey() string   // Stable error key, e.g. "idexists"
	EntityName() string // The resource the error relates to, e.g. "pet"
	Message() string    // User-friendly error message
	Details() string    // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode   int
	errorKey   string
	entityName string
	message    string
	details    string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, entityName, errorKey, message string) *BaseError {
	return &BaseError{
		httpCode:   httpCode,
		errorKey:   errorKey,
		entityName: entityName,
		message:    message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorKey returns the stable error key.
func (e *BaseError) ErrorKey() string {
	return e.errorKey
}

// EntityName returns the resource name the error relates to.
func (e *BaseError) EntityName() string {
	return e.entityName
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:   e.httpCode,
		errorKey:   e.errorKey,
		entityName: e.entityName,
		message:    e.message,
		details:    details,
	}
}

// BadRequestAlert builds a 400 error carrying an entity name and error key,
// the shape used for every identity and validation failure.
func BadRequestAlert(entityName, errorKey, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, entityName, errorKey, message)
}

// NotFoundAlert builds the 404 error returned when a lookup by id matches
// nothing.
func NotFoundAlert(entityName string) *BaseError {
	return NewBaseError(http.StatusNotFound, entityName, KeyNotFound, "Entity not found")
}

// IDExists rejects a create request that carries a client-supplied id.
func IDExists(entityName string) *BaseError {
	return BadRequestAlert(entityName, KeyIDExists, "A new "+entityName+" cannot already have an ID")
}

// IDNull rejects an update request whose body has no id.
func IDNull(entityName string) *BaseError {
	return BadRequestAlert(entityName, KeyIDNull, "Invalid id")
}

// IDInvalid rejects an update request whose body id differs from the path id.
func IDInvalid(entityName string) *BaseError {
	return BadRequestAlert(entityName, KeyIDInvalid, "Invalid ID")
}

// IDNotFound rejects an update request that targets a row that does not
// exist.
func IDNotFound(entityName string) *BaseError {
	return BadRequestAlert(entityName, KeyIDNotFound, "Entity not found")
}

// ValidationFailed reports a request body or query parameter that failed
// validation.
func ValidationFailed(entityName, details string) *BaseError {
	return BadRequestAlert(entityName, KeyValidationFailed, "Validation failed").WithDetails(details)
}

// Login and registration errors. Wrong-email and wrong-password stay
// distinguishable on purpose.
var (
	ErrEmailNotRegistered = BadRequestAlert("userPet", KeyEmailNotFound, "Email is not registered")
	ErrWrongPassword      = BadRequestAlert("userPet", KeyWrongPassword, "Wrong password")
	ErrEmailExists        = BadRequestAlert("userPet", KeyEmailExists, "Email is already registered")
)

// DatabaseExecuteError represents a datastore failure, implementing the
// AppError interface so it still renders as a structured response.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying datastore error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorKey returns the stable error key.
func (e *DatabaseExecuteError) ErrorKey() string {
	return "databasefailure"
}

// EntityName returns the resource name the error relates to.
func (e *DatabaseExecuteError) EntityName() string {
	return ""
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
