package organization_wizard

import (
	"context"
	"errors"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/wizard"
)

// organizationGateway submits a finished wizard through the superadmin API.
type organizationGateway struct {
	client contracts.SuperadminOrganizationClient
}

// NewOrganizationGateway is the gateway used by wizards that submit straight
// to the superadmin API.
func NewOrganizationGateway(client contracts.SuperadminOrganizationClient) wizard.Gateway {
	return organizationGateway{client: client}
}

func (g organizationGateway) CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*wizard.CreatedOrganization, error) {
	organization, err := g.client.CreateOrganization(ctx, request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			message := customErr.ServerMessage
			if customErr.StatusCode == constvars.StatusUnauthorized {
				message = customErr.ClientMessage
			}
			if message != "" {
				return nil, &wizard.RejectedError{Message: message, Err: err}
			}
		}
		return nil, err
	}
	return &wizard.CreatedOrganization{ID: organization.Identifier()}, nil
}
