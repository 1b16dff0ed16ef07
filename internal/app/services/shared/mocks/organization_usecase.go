package mocks

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
)

type OrganizationUsecase struct {
	mock.Mock
}

func organizationResult(args mock.Arguments) (*responses.Organization, error) {
	organization, _ := args.Get(0).(*responses.Organization)
	return organization, args.Error(1)
}

func (m *OrganizationUsecase) ListOrganizations(ctx context.Context, request *requests.ListOrganizations) (*responses.OrganizationList, error) {
	args := m.Called(ctx, request)
	list, _ := args.Get(0).(*responses.OrganizationList)
	return list, args.Error(1)
}

func (m *OrganizationUsecase) GetOrganizationStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *OrganizationUsecase) GetOrganization(ctx context.Context, id string) (*responses.Organization, error) {
	return organizationResult(m.Called(ctx, id))
}

func (m *OrganizationUsecase) UpdateOrganization(ctx context.Context, id string, request *requests.UpdateOrganization) (*responses.Organization, error) {
	return organizationResult(m.Called(ctx, id, request))
}

func (m *OrganizationUsecase) DeleteOrganization(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OrganizationUsecase) ToggleOrganizationStatus(ctx context.Context, id string) (*responses.Organization, error) {
	return organizationResult(m.Called(ctx, id))
}

func (m *OrganizationUsecase) UploadLogo(ctx context.Context, request *requests.UploadLogo) (*responses.UploadedLogo, error) {
	args := m.Called(ctx, request)
	logo, _ := args.Get(0).(*responses.UploadedLogo)
	return logo, args.Error(1)
}
