package models

import "errors"

const (
	DonorTypeIndividual   = "Individual"
	DonorTypeOrganization = "Organization"
)

type Donor struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=Individual Organization"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
}

// CheckContactPerson enforces the one conditional rule the validator tags
// cannot express: an organization must name a contact person.
func (d *Donor) CheckContactPerson() error {
	if d.Type == DonorTypeOrganization && d.ContactPerson == "" {
		return errors.New("contact person is required for organization donors")
	}
	return nil
}
