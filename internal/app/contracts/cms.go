package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
)

type CMSUsecase interface {
	ListCMSContents(ctx context.Context, request *requests.ListCMSContents) ([]responses.CMSContent, error)
	GetCMSContent(ctx context.Context, id string) (*responses.CMSContent, error)
	CreateCMSContent(ctx context.Context, request *requests.CreateCMSContent) (*responses.CMSContent, error)
	UpdateCMSContent(ctx context.Context, id string, request *requests.UpdateCMSContent) (*responses.CMSContent, error)
	DeleteCMSContent(ctx context.Context, id string) error
}
