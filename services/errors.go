package services

import "errors"

var (
	// ErrNotFound: the addressed record does not exist or does not belong
	// to the caller (e.g. plan is not the caller's active plan).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput: the request names something outside the model, like
	// an unknown meal type. Rejected before any side effect.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable: an event-store read failed. Derived values must
	// not be cached from a failed read.
	ErrDataUnavailable = errors.New("data unavailable")

	ErrUnauthorized = errors.New("unauthorized")
)
