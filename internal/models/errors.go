package models

import (
	"errors"
	"fmt"
)

// Error constants for store, lookup and session operations
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrDuplicate          = errors.New("duplicate record")
	ErrStorageWrite       = errors.New("could not save data, check available space")
	ErrStorageRead        = errors.New("could not read stored data")
	ErrCEPInvalid         = errors.New("CEP must have 8 digits")
	ErrCEPNotFound        = errors.New("CEP not found")
	ErrLookupFailed       = errors.New("CEP lookup failed")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrUnknownState       = errors.New("state name not recognized")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidInput       = errors.New("invalid input")
)

// DuplicateError reports a uniqueness violation on a specific field.
type DuplicateError struct {
	Field   string
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrDuplicate).
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// NewDuplicateError builds a DuplicateError for field.
func NewDuplicateError(field, message string) *DuplicateError {
	return &DuplicateError{Field: field, Message: message}
}

// Standard device position failure codes.
const (
	GeolocationUnsupported         = 0
	GeolocationPermissionDenied    = 1
	GeolocationPositionUnavailable = 2
	GeolocationTimeout             = 3
)

// GeolocationError is a translated device position failure.
type GeolocationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *GeolocationError) Error() string {
	return fmt.Sprintf("geolocation error %d: %s", e.Code, e.Message)
}
