package models

import (
	"fmt"
	"regexp"

	"pcdir/internal/sentinel"
)

// emailPattern is the fixed syntax every directory email address must match.
const emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

var emailRegex = regexp.MustCompile(emailPattern)

// EmailAddress is a syntactically valid email address. The zero value is not
// valid; obtain one through ParseEmailAddress. Equality and ordering follow
// the underlying string.
type EmailAddress string

// ParseEmailAddress validates raw against the email syntax pattern.
// It fails with sentinel.ErrInvalidEmailAddress for malformed input.
func ParseEmailAddress(raw string) (EmailAddress, error) {
	if !emailRegex.MatchString(raw) {
		return "", fmt.Errorf("%q: %w", raw, sentinel.ErrInvalidEmailAddress)
	}
	return EmailAddress(raw), nil
}

func (e EmailAddress) String() string {
	return string(e)
}

// IsZero reports whether the address is unset.
func (e EmailAddress) IsZero() bool {
	return e == ""
}
