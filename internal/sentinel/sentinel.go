package sentinel

import "errors"

// Sentinel dependency errors. Stores and models should return these (optionally
// wrapped) so services can translate them into domain errors exactly once.
var (
	ErrNotFound            = errors.New("not found")
	ErrUnavailable         = errors.New("unavailable")
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrInvalidState        = errors.New("invalid state")
)
