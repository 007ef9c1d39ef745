package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcdir/internal/sentinel"
)

func validBuilder() *PersonBuilder {
	return NewPersonBuilder().
		WithFirstName("Manuel").
		WithLastName("Gorbatchov").
		WithEmailAddress("manuel@udssr.com").
		WithAffiliation(InternAffiliation())
}

func TestBuild_Success(t *testing.T) {
	p, err := validBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, "Manuel", p.First)
	assert.Equal(t, "Gorbatchov", p.Last)
	assert.Equal(t, EmailAddress("manuel@udssr.com"), p.Email)
	assert.Equal(t, AffiliationIntern, p.Affiliation.Kind)
}

func TestBuild_LanguageDefaultsToEnglish(t *testing.T) {
	p, err := validBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, p.PreferredLanguage)
}

func TestBuild_ExplicitLanguageKept(t *testing.T) {
	p, err := validBuilder().WithPreferredLanguage(LanguageSwissGerman).Build()
	require.NoError(t, err)
	assert.Equal(t, LanguageSwissGerman, p.PreferredLanguage)
}

func TestBuild_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		builder *PersonBuilder
		want    error
	}{
		{
			name: "first name unset",
			builder: NewPersonBuilder().
				WithLastName("Doe").
				WithEmailAddress("john@doe.com").
				WithAffiliation(InternAffiliation()),
			want: ErrFirstNameUnset,
		},
		{
			name: "last name unset",
			builder: NewPersonBuilder().
				WithFirstName("John").
				WithEmailAddress("john@doe.com").
				WithAffiliation(InternAffiliation()),
			want: ErrLastNameUnset,
		},
		{
			name: "email unset",
			builder: NewPersonBuilder().
				WithFirstName("John").
				WithLastName("Doe").
				WithAffiliation(InternAffiliation()),
			want: ErrEmailUnset,
		},
		{
			name: "affiliation unset",
			builder: NewPersonBuilder().
				WithFirstName("John").
				WithLastName("Doe").
				WithEmailAddress("john@doe.com"),
			want: ErrAffiliationUnset,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_MalformedEmailIsRecoverable(t *testing.T) {
	_, err := validBuilder().
		WithEmailAddress("teufel test@example.com").
		Build()
	require.ErrorIs(t, err, sentinel.ErrInvalidEmailAddress)
}

func TestBuild_ValidEmailAfterMalformedClearsError(t *testing.T) {
	email, err := ParseEmailAddress("fixed@example.com")
	require.NoError(t, err)

	p, err := validBuilder().
		WithEmailAddress("not-an-email").
		WithEmail(email).
		Build()
	require.NoError(t, err)
	assert.Equal(t, email, p.Email)
}
