package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type OrganizationUsecase interface {
	ListOrganizations(ctx context.Context, request *requests.ListOrganizations) (*responses.OrganizationList, error)
	GetOrganizationStats(ctx context.Context) (json.RawMessage, error)
	GetOrganization(ctx context.Context, id string) (*responses.Organization, error)
	UpdateOrganization(ctx context.Context, id string, request *requests.UpdateOrganization) (*responses.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
	ToggleOrganizationStatus(ctx context.Context, id string) (*responses.Organization, error)
	UploadLogo(ctx context.Context, request *requests.UploadLogo) (*responses.UploadedLogo, error)
}
