// Package apperrors defines the sentinel error kinds shared across the
// application. Repositories wrap storage errors, services classify them into
// one of these kinds, and the HTTP layer maps each kind to a status code with
// errors.Is checks.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the entity or relationship already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates invalid input rejected before any storage call.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates the operation violates a referential rule, such
	// as deleting a city that persons still reference.
	ErrConflict = errors.New("conflict")

	// ErrStorage indicates an underlying database failure.
	ErrStorage = errors.New("storage error")
)

// Error carries a stable localization key alongside its error kind. The key
// is what the core emits; rendering it to display text is the localization
// provider's job.
type Error struct {
	Key    string
	kind   error
	detail string
}

func (e *Error) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("%s: %s", e.Key, e.detail)
	}
	return e.Key
}

func (e *Error) Unwrap() error { return e.kind }

// NotFound returns an ErrNotFound-kind error carrying key.
func NotFound(key string) *Error {
	return &Error{Key: key, kind: ErrNotFound}
}

// AlreadyExists returns an ErrAlreadyExists-kind error carrying key.
func AlreadyExists(key string) *Error {
	return &Error{Key: key, kind: ErrAlreadyExists}
}

// Validation returns an ErrValidation-kind error carrying key.
func Validation(key string) *Error {
	return &Error{Key: key, kind: ErrValidation}
}

// Conflict returns an ErrConflict-kind error carrying key.
func Conflict(key string) *Error {
	return &Error{Key: key, kind: ErrConflict}
}

// Storage returns an ErrStorage-kind error carrying key and the underlying
// failure detail.
func Storage(key string, cause error) *Error {
	e := &Error{Key: key, kind: ErrStorage}
	if cause != nil {
		e.detail = cause.Error()
	}
	return e
}

// KeyOf extracts the localization key from err, or falls back to
// InternalServerError for errors that never got classified.
func KeyOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Key
	}
	return InternalServerError
}

// IsNotFound reports whether any error in err's chain is ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAlreadyExists reports whether any error in err's chain is ErrAlreadyExists.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsValidation reports whether any error in err's chain is ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsConflict reports whether any error in err's chain is ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsStorage reports whether any error in err's chain is ErrStorage.
func IsStorage(err error) bool { return errors.Is(err, ErrStorage) }
