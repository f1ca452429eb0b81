package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserErrors
var (
	ErrIdentifierRequired = errors.New("email or phone number is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrPhoneTaken         = errors.New("phone number is already registered")
)

// CheckInErrors
var (
	ErrGuestFieldsMissing = errors.New("name, contact, and room number are required")
	ErrRoomNotFound       = errors.New("room not found")
)

// ReportErrors
var (
	ErrInvalidPeriod = errors.New("invalid report period specified")
	ErrNoReportData  = errors.New("no check-in data found for the selected period")
)

// RoomUnavailableError is returned when a check-in targets a room that is
// not Available. It carries the room's current status so the caller can
// report it.
type RoomUnavailableError struct {
	RoomID string
	Status RoomStatus
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %s is currently %s", e.RoomID, e.Status)
}
