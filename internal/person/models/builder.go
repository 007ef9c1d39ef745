package models

import "errors"

// Builder validation errors. Build fails with the first one that applies.
var (
	ErrFirstNameUnset   = errors.New("first name not set")
	ErrLastNameUnset    = errors.New("last name not set")
	ErrEmailUnset       = errors.New("email not set")
	ErrAffiliationUnset = errors.New("affiliation not set")
)

// PersonBuilder accumulates the fields of a Person. First name, last name,
// email, and affiliation are mandatory; the preferred language defaults to
// DefaultLanguage.
type PersonBuilder struct {
	first       string
	last        string
	email       EmailAddress
	emailErr    error
	lang        Language
	affiliation *Affiliation
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{}
}

func (b *PersonBuilder) WithFirstName(first string) *PersonBuilder {
	b.first = first
	return b
}

func (b *PersonBuilder) WithLastName(last string) *PersonBuilder {
	b.last = last
	return b
}

// WithEmail sets a pre-validated email address.
func (b *PersonBuilder) WithEmail(email EmailAddress) *PersonBuilder {
	b.email = email
	b.emailErr = nil
	return b
}

// WithEmailAddress parses raw and records the outcome. A parse failure is not
// fatal here; it surfaces as a recoverable error from Build. Malformed input
// must never abort the process.
func (b *PersonBuilder) WithEmailAddress(raw string) *PersonBuilder {
	b.email, b.emailErr = ParseEmailAddress(raw)
	return b
}

func (b *PersonBuilder) WithPreferredLanguage(lang Language) *PersonBuilder {
	b.lang = lang
	return b
}

func (b *PersonBuilder) WithAffiliation(a Affiliation) *PersonBuilder {
	b.affiliation = &a
	return b
}

// Build validates the accumulated fields and returns the immutable Person.
func (b *PersonBuilder) Build() (*Person, error) {
	if b.emailErr != nil {
		return nil, b.emailErr
	}
	if b.first == "" {
		return nil, ErrFirstNameUnset
	}
	if b.last == "" {
		return nil, ErrLastNameUnset
	}
	if b.email.IsZero() {
		return nil, ErrEmailUnset
	}
	if b.affiliation == nil {
		return nil, ErrAffiliationUnset
	}
	lang := b.lang
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Person{
		First:             b.first,
		Last:              b.last,
		Email:             b.email,
		PreferredLanguage: lang,
		Affiliation:       *b.affiliation,
	}, nil
}
