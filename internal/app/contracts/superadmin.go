package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type SuperadminAuthClient interface {
	Login(ctx context.Context, request requests.Login) (*responses.Login, error)
	GetProfile(ctx context.Context) (*responses.Profile, error)
}

type SuperadminDashboardClient interface {
	GetOverview(ctx context.Context) (json.RawMessage, error)
	GetStats(ctx context.Context) (json.RawMessage, error)
}

type SuperadminOrganizationClient interface {
	CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*responses.Organization, error)
	ListOrganizations(ctx context.Context, request requests.ListOrganizations) (*responses.OrganizationList, error)
	GetOrganizationStats(ctx context.Context) (json.RawMessage, error)
	GetOrganization(ctx context.Context, id string) (*responses.Organization, error)
	UpdateOrganization(ctx context.Context, id string, request requests.UpdateOrganization) (*responses.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
	ToggleOrganizationStatus(ctx context.Context, id string) (*responses.Organization, error)
}

type SuperadminMemberClient interface {
	ListUsers(ctx context.Context, request requests.ListUsers) (json.RawMessage, error)
	SearchUsers(ctx context.Context, request requests.SearchUsers) (json.RawMessage, error)
	GetUserStats(ctx context.Context) (json.RawMessage, error)
	GetUser(ctx context.Context, id string) (json.RawMessage, error)
	ToggleUserStatus(ctx context.Context, id string) (json.RawMessage, error)
	ListDoctors(ctx context.Context, request requests.ListDoctors) (json.RawMessage, error)
	SearchDoctors(ctx context.Context, request requests.SearchDoctors) (json.RawMessage, error)
	GetDoctorStats(ctx context.Context) (json.RawMessage, error)
	GetDoctorSpecializations(ctx context.Context) (json.RawMessage, error)
	GetDoctor(ctx context.Context, id string) (json.RawMessage, error)
	ToggleDoctorStatus(ctx context.Context, id string) (json.RawMessage, error)
}

type SuperadminBookingClient interface {
	ListBookings(ctx context.Context, request requests.ListBookings) (*responses.BookingList, error)
	GetBookingStats(ctx context.Context) (json.RawMessage, error)
	GetBooking(ctx context.Context, id string) (*responses.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, request requests.UpdateBookingStatus) (*responses.Booking, error)
	CancelBooking(ctx context.Context, id string, request requests.CancelBooking) (*responses.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type SuperadminCMSClient interface {
	ListCMSContents(ctx context.Context, request requests.ListCMSContents) ([]responses.CMSContent, error)
	GetCMSContent(ctx context.Context, id string) (*responses.CMSContent, error)
	CreateCMSContent(ctx context.Context, request requests.CreateCMSContent) (*responses.CMSContent, error)
	UpdateCMSContent(ctx context.Context, id string, request requests.UpdateCMSContent) (*responses.CMSContent, error)
	DeleteCMSContent(ctx context.Context, id string) error
}

type SuperadminCatalogClient interface {
	ListServicePackages(ctx context.Context, request requests.ListCatalog) (json.RawMessage, error)
	GetServicePackage(ctx context.Context, id string) (json.RawMessage, error)
	CreateServicePackage(ctx context.Context, request requests.CreateServicePackage) (json.RawMessage, error)
	UpdateServicePackage(ctx context.Context, id string, request requests.UpdateServicePackage) (json.RawMessage, error)
	DeleteServicePackage(ctx context.Context, id string) error
	ToggleServicePackageStatus(ctx context.Context, id string) (json.RawMessage, error)
	ListServices(ctx context.Context, request requests.ListCatalog) (json.RawMessage, error)
	GetService(ctx context.Context, id string) (json.RawMessage, error)
	CreateService(ctx context.Context, request requests.CreateService) (json.RawMessage, error)
	UpdateService(ctx context.Context, id string, request requests.UpdateService) (json.RawMessage, error)
	BulkUpdateServices(ctx context.Context, request requests.BulkUpdateServices) (json.RawMessage, error)
	DeleteService(ctx context.Context, id string) error
	ToggleServiceStatus(ctx context.Context, id string) (json.RawMessage, error)
}

// SuperadminClient is the full surface of the external superadmin API.
type SuperadminClient interface {
	SuperadminAuthClient
	SuperadminDashboardClient
	SuperadminOrganizationClient
	SuperadminMemberClient
	SuperadminBookingClient
	SuperadminCMSClient
	SuperadminCatalogClient
}
