package models

import person "pcdir/internal/person/models"

// PCBuilder carries the optional pieces of a new directory entry. Missing
// hardware and OS are filled with the fixed defaults before any other add
// logic runs; the owner stays optional.
type PCBuilder struct {
	Hardware *Hardware
	OS       *OperatingSystem
	Owner    *person.Person
}

func NewPCBuilder() *PCBuilder {
	return &PCBuilder{}
}

func (b *PCBuilder) WithHardware(h Hardware) *PCBuilder {
	b.Hardware = &h
	return b
}

func (b *PCBuilder) WithOS(os OperatingSystem) *PCBuilder {
	b.OS = &os
	return b
}

func (b *PCBuilder) WithOwner(p *person.Person) *PCBuilder {
	b.Owner = p
	return b
}

// FillDefaults sets the default hardware profile and OS where unset.
func (b *PCBuilder) FillDefaults() {
	if b.Hardware == nil {
		hw := BeefyWorkstation()
		b.Hardware = &hw
	}
	if b.OS == nil {
		os := DefaultOS()
		b.OS = &os
	}
}
