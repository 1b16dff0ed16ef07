package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetProfile(ctx context.Context) (*responses.Profile, error)
}
