package models

import "errors"

// Error kinds shared by the lifecycle, chat log and service layers.
// Callers wrap them with context and match with errors.Is.
var (
	// ErrValidation is returned for malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when the actor lacks authority for a
	// lifecycle or roster change (only the creator may make those).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for actions no one may take, such as the
	// creator leaving their own ride.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState is returned when the ride's status does not allow the
	// operation.
	ErrInvalidState = errors.New("invalid ride state")

	// ErrNotFound is returned when a ride or user does not exist.
	ErrNotFound = errors.New("not found")
)
