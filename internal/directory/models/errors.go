package models

import (
	"fmt"

	person "pcdir/internal/person/models"
)

// Typed directory failures. They carry the data a caller needs to react and
// are matched with errors.As; the service layer categorizes them with domain
// error codes exactly once.

// DuplicateEmailError reports that an entry with the same owner email but a
// different owner identity already exists.
type DuplicateEmailError struct {
	Email person.EmailAddress
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("a PC with a different owner but the same email address (%s) already exists", e.Email)
}

// EmailNotFoundError reports that no entry has an owner with the given email.
type EmailNotFoundError struct {
	Email person.EmailAddress
}

func (e *EmailNotFoundError) Error() string {
	return fmt.Sprintf("none of the registered PCs has an owner with email address %s", e.Email)
}

// InMaintenanceError reports that a maintenance lock is already held. Reason
// is the holder's reason, not the rejected caller's.
type InMaintenanceError struct {
	Reason string
}

func (e *InMaintenanceError) Error() string {
	return fmt.Sprintf("the PC is already in maintenance: %s", e.Reason)
}
