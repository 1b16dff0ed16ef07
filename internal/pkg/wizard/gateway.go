package wizard

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
)

type CreatedOrganization struct {
	ID string `json:"id"`
}

// Gateway performs the single create call a completed wizard makes.
type Gateway interface {
	CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*CreatedOrganization, error)
}

type GatewayFunc func(ctx context.Context, request requests.CreateOrganization) (*CreatedOrganization, error)

func (f GatewayFunc) CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*CreatedOrganization, error) {
	return f(ctx, request)
}

// BuildCreateOrganizationRequest maps a complete draft into the create body,
// grouping the address fields under one object.
func BuildCreateOrganizationRequest(draft Draft) (requests.CreateOrganization, error) {
	if !draft.Complete() {
		return requests.CreateOrganization{}, ErrIncompleteDraft
	}

	basic := draft.BasicInformation
	contact := draft.ContactDetails
	address := draft.Address
	capacity := draft.Capacity
	security := draft.Security

	return requests.CreateOrganization{
		OrganizationID: basic.OrganizationID,
		Name:           basic.Name,
		Logo:           basic.Logo,
		Email:          contact.Email,
		Password:       security.Password,
		PhoneNumber:    contact.PhoneNumber,
		Address: requests.OrganizationAddress{
			Street:  address.Street,
			City:    address.City,
			State:   address.State,
			Country: address.Country,
			ZipCode: address.ZipCode,
		},
		MaxUsers:   capacity.MaxUsers,
		MaxDoctors: capacity.MaxDoctors,
	}, nil
}
