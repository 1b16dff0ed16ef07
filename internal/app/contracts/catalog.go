package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
)

// CatalogUsecase manages service packages and the individual services they
// are sold as.
type CatalogUsecase interface {
	ListServicePackages(ctx context.Context, request *requests.ListCatalog) (json.RawMessage, error)
	GetServicePackage(ctx context.Context, id string) (json.RawMessage, error)
	CreateServicePackage(ctx context.Context, request *requests.CreateServicePackage) (json.RawMessage, error)
	UpdateServicePackage(ctx context.Context, id string, request *requests.UpdateServicePackage) (json.RawMessage, error)
	DeleteServicePackage(ctx context.Context, id string) error
	ToggleServicePackageStatus(ctx context.Context, id string) (json.RawMessage, error)
	ListServices(ctx context.Context, request *requests.ListCatalog) (json.RawMessage, error)
	GetService(ctx context.Context, id string) (json.RawMessage, error)
	CreateService(ctx context.Context, request *requests.CreateService) (json.RawMessage, error)
	UpdateService(ctx context.Context, id string, request *requests.UpdateService) (json.RawMessage, error)
	BulkUpdateServices(ctx context.Context, request *requests.BulkUpdateServices) (json.RawMessage, error)
	DeleteService(ctx context.Context, id string) error
	ToggleServiceStatus(ctx context.Context, id string) (json.RawMessage, error)
}
