package mocks

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
)

// SuperadminClient is a testify mock of contracts.SuperadminClient.
type SuperadminClient struct {
	mock.Mock
}

func rawResult(args mock.Arguments) (json.RawMessage, error) {
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *SuperadminClient) Login(ctx context.Context, request requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Login)
	return result, args.Error(1)
}

func (m *SuperadminClient) GetProfile(ctx context.Context) (*responses.Profile, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Profile)
	return result, args.Error(1)
}

func (m *SuperadminClient) GetOverview(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) GetStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*responses.Organization, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Organization)
	return result, args.Error(1)
}

func (m *SuperadminClient) ListOrganizations(ctx context.Context, request requests.ListOrganizations) (*responses.OrganizationList, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.OrganizationList)
	return result, args.Error(1)
}

func (m *SuperadminClient) GetOrganizationStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) GetOrganization(ctx context.Context, id string) (*responses.Organization, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*responses.Organization)
	return result, args.Error(1)
}

func (m *SuperadminClient) UpdateOrganization(ctx context.Context, id string, request requests.UpdateOrganization) (*responses.Organization, error) {
	args := m.Called(ctx, id, request)
	result, _ := args.Get(0).(*responses.Organization)
	return result, args.Error(1)
}

func (m *SuperadminClient) DeleteOrganization(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SuperadminClient) ToggleOrganizationStatus(ctx context.Context, id string) (*responses.Organization, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*responses.Organization)
	return result, args.Error(1)
}

func (m *SuperadminClient) ListUsers(ctx context.Context, request requests.ListUsers) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) SearchUsers(ctx context.Context, request requests.SearchUsers) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) GetUserStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) GetUser(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) ToggleUserStatus(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) ListDoctors(ctx context.Context, request requests.ListDoctors) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) SearchDoctors(ctx context.Context, request requests.SearchDoctors) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) GetDoctorStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) GetDoctorSpecializations(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) GetDoctor(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) ToggleDoctorStatus(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) ListBookings(ctx context.Context, request requests.ListBookings) (*responses.BookingList, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.BookingList)
	return result, args.Error(1)
}

func (m *SuperadminClient) GetBookingStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *SuperadminClient) GetBooking(ctx context.Context, id string) (*responses.Booking, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*responses.Booking)
	return result, args.Error(1)
}

func (m *SuperadminClient) UpdateBookingStatus(ctx context.Context, id string, request requests.UpdateBookingStatus) (*responses.Booking, error) {
	args := m.Called(ctx, id, request)
	result, _ := args.Get(0).(*responses.Booking)
	return result, args.Error(1)
}

func (m *SuperadminClient) CancelBooking(ctx context.Context, id string, request requests.CancelBooking) (*responses.Booking, error) {
	args := m.Called(ctx, id, request)
	result, _ := args.Get(0).(*responses.Booking)
	return result, args.Error(1)
}

func (m *SuperadminClient) DeleteBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SuperadminClient) ListCMSContents(ctx context.Context, request requests.ListCMSContents) ([]responses.CMSContent, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.CMSContent)
	return result, args.Error(1)
}

func (m *SuperadminClient) GetCMSContent(ctx context.Context, id string) (*responses.CMSContent, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*responses.CMSContent)
	return result, args.Error(1)
}

func (m *SuperadminClient) CreateCMSContent(ctx context.Context, request requests.CreateCMSContent) (*responses.CMSContent, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CMSContent)
	return result, args.Error(1)
}

func (m *SuperadminClient) UpdateCMSContent(ctx context.Context, id string, request requests.UpdateCMSContent) (*responses.CMSContent, error) {
	args := m.Called(ctx, id, request)
	result, _ := args.Get(0).(*responses.CMSContent)
	return result, args.Error(1)
}

func (m *SuperadminClient) DeleteCMSContent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SuperadminClient) ListServicePackages(ctx context.Context, request requests.ListCatalog) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) GetServicePackage(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) CreateServicePackage(ctx context.Context, request requests.CreateServicePackage) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) UpdateServicePackage(ctx context.Context, id string, request requests.UpdateServicePackage) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id, request))
}

func (m *SuperadminClient) DeleteServicePackage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SuperadminClient) ToggleServicePackageStatus(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) ListServices(ctx context.Context, request requests.ListCatalog) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) GetService(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}

func (m *SuperadminClient) CreateService(ctx context.Context, request requests.CreateService) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) UpdateService(ctx context.Context, id string, request requests.UpdateService) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id, request))
}

func (m *SuperadminClient) BulkUpdateServices(ctx context.Context, request requests.BulkUpdateServices) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, request))
}

func (m *SuperadminClient) DeleteService(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SuperadminClient) ToggleServiceStatus(ctx context.Context, id string) (json.RawMessage, error) {
	return rawResult(m.Called(ctx, id))
}
