package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
)

// MemberUsecase covers the platform users and doctors listings.
type MemberUsecase interface {
	ListUsers(ctx context.Context, request *requests.ListUsers) (json.RawMessage, error)
	SearchUsers(ctx context.Context, request *requests.SearchUsers) (json.RawMessage, error)
	GetUserStats(ctx context.Context) (json.RawMessage, error)
	GetUser(ctx context.Context, id string) (json.RawMessage, error)
	ToggleUserStatus(ctx context.Context, id string) (json.RawMessage, error)
	ListDoctors(ctx context.Context, request *requests.ListDoctors) (json.RawMessage, error)
	SearchDoctors(ctx context.Context, request *requests.SearchDoctors) (json.RawMessage, error)
	GetDoctorStats(ctx context.Context) (json.RawMessage, error)
	GetDoctorSpecializations(ctx context.Context) (json.RawMessage, error)
	GetDoctor(ctx context.Context, id string) (json.RawMessage, error)
	ToggleDoctorStatus(ctx context.Context, id string) (json.RawMessage, error)
}
