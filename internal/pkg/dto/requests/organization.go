package requests

import "mime/multipart"

type OrganizationAddress struct {
	Street  string `json:"street" validate:"required,min=5"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,min=2"`
	Country string `json:"country" validate:"required,min=2"`
	ZipCode string `json:"zipCode" validate:"required,min=3"`
}

// CreateOrganization is the body of POST /superadmin/organizations.
type CreateOrganization struct {
	OrganizationID string              `json:"organizationId"`
	Name           string              `json:"name"`
	Logo           string              `json:"logo,omitempty"`
	Email          string              `json:"email"`
	Password       string              `json:"password"`
	PhoneNumber    string              `json:"phoneNumber"`
	Address        OrganizationAddress `json:"address"`
	MaxUsers       int                 `json:"maxUsers"`
	MaxDoctors     int                 `json:"maxDoctors"`
}

type UpdateOrganization struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Logo        *string              `json:"logo,omitempty" validate:"omitempty,logo"`
	PhoneNumber *string              `json:"phoneNumber,omitempty" validate:"omitempty,min=10,max=20"`
	Address     *OrganizationAddress `json:"address,omitempty" validate:"omitempty"`
	MaxUsers    *int                 `json:"maxUsers,omitempty" validate:"omitempty,min=1"`
	MaxDoctors  *int                 `json:"maxDoctors,omitempty" validate:"omitempty,min=1"`
}

type ListOrganizations struct {
	Page   int    `validate:"min=1"`
	Limit  int    `validate:"min=1,max=100"`
	Search string `validate:"omitempty,max=100"`
	Status string `validate:"omitempty,max=50"`
}

// UploadLogo is a logo file taken from a multipart form.
type UploadLogo struct {
	File   multipart.File
	Header *multipart.FileHeader
}
