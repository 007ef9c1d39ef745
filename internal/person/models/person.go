package models

// Language is a person's preferred language for company communication.
type Language string

const (
	LanguageEnglish     Language = "english"
	LanguageGerman      Language = "german"
	LanguageSpanish     Language = "spanish"
	LanguageSwissGerman Language = "schwyzerduetsch"
)

// DefaultLanguage is used when a person never stated a preference.
const DefaultLanguage = LanguageEnglish

func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageGerman, LanguageSpanish, LanguageSwissGerman:
		return true
	}
	return false
}

// AffiliationKind categorizes the relationship a person has with the company.
type AffiliationKind string

const (
	AffiliationEmployee   AffiliationKind = "employee"
	AffiliationContractor AffiliationKind = "contractor"
	AffiliationIntern     AffiliationKind = "intern"
)

// Affiliation describes how a person relates to the company. Employees carry
// an annual income in CHF, contractors the name of their company.
type Affiliation struct {
	Kind            AffiliationKind
	AnnualIncomeCHF uint64
	CompanyName     string
}

func EmployeeAffiliation(annualIncomeCHF uint64) Affiliation {
	return Affiliation{Kind: AffiliationEmployee, AnnualIncomeCHF: annualIncomeCHF}
}

func ContractorAffiliation(companyName string) Affiliation {
	return Affiliation{Kind: AffiliationContractor, CompanyName: companyName}
}

func InternAffiliation() Affiliation {
	return Affiliation{Kind: AffiliationIntern}
}

// Person is an identity value. It is immutable after Build and may be shared
// read-only by every directory entry whose owner has the same email address;
// only the directory store is allowed to establish that sharing.
type Person struct {
	First             string
	Last              string
	Email             EmailAddress
	PreferredLanguage Language
	Affiliation       Affiliation
}

// Equal reports whether two persons are the same identity value.
// All fields participate; two persons with the same email but any other
// mismatch are different identities.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// FullName returns "First Last" for display purposes.
func (p *Person) FullName() string {
	return p.First + " " + p.Last
}
