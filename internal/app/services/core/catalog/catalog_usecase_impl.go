package catalog

import (
	"context"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type catalogUsecase struct {
	CatalogClient  contracts.SuperadminCatalogClient
	AuditPublisher contracts.AuditPublisher
	Log            *zap.Logger
}

func NewCatalogUsecase(catalogClient contracts.SuperadminCatalogClient, auditPublisher contracts.AuditPublisher, logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{
		CatalogClient:  catalogClient,
		AuditPublisher: auditPublisher,
		Log:            logger,
	}
}

func (uc *catalogUsecase) ListServicePackages(ctx context.Context, request *requests.ListCatalog) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.CatalogClient.ListServicePackages(ctx, *request)
}

func (uc *catalogUsecase) GetServicePackage(ctx context.Context, id string) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.CatalogClient.GetServicePackage(ctx, id)
}

func (uc *catalogUsecase) CreateServicePackage(ctx context.Context, request *requests.CreateServicePackage) (json.RawMessage, error) {
	utils.SanitizeCreateServicePackageRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	created, err := uc.CatalogClient.CreateServicePackage(ctx, *request)
	if err != nil {
		return nil, uc.upstreamError(ctx, "CreateServicePackage", err)
	}
	uc.publish(ctx, constvars.AuditEventServicePackageCreated, utils.ExtractRecordID(created), map[string]any{
		"packageId": request.PackageID,
	})
	return created, nil
}

func (uc *catalogUsecase) UpdateServicePackage(ctx context.Context, id string, request *requests.UpdateServicePackage) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	updated, err := uc.CatalogClient.UpdateServicePackage(ctx, id, *request)
	if err != nil {
		return nil, uc.upstreamError(ctx, "UpdateServicePackage", err)
	}
	uc.publish(ctx, constvars.AuditEventServicePackageUpdated, id, nil)
	return updated, nil
}

func (uc *catalogUsecase) DeleteServicePackage(ctx context.Context, id string) error {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if err := uc.CatalogClient.DeleteServicePackage(ctx, id); err != nil {
		return uc.upstreamError(ctx, "DeleteServicePackage", err)
	}
	uc.publish(ctx, constvars.AuditEventServicePackageDeleted, id, nil)
	return nil
}

func (uc *catalogUsecase) ToggleServicePackageStatus(ctx context.Context, id string) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	toggled, err := uc.CatalogClient.ToggleServicePackageStatus(ctx, id)
	if err != nil {
		return nil, uc.upstreamError(ctx, "ToggleServicePackageStatus", err)
	}
	uc.publish(ctx, constvars.AuditEventServicePackageToggled, id, nil)
	return toggled, nil
}

func (uc *catalogUsecase) ListServices(ctx context.Context, request *requests.ListCatalog) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.CatalogClient.ListServices(ctx, *request)
}

func (uc *catalogUsecase) GetService(ctx context.Context, id string) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.CatalogClient.GetService(ctx, id)
}

func (uc *catalogUsecase) CreateService(ctx context.Context, request *requests.CreateService) (json.RawMessage, error) {
	utils.SanitizeCreateServiceRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	created, err := uc.CatalogClient.CreateService(ctx, *request)
	if err != nil {
		return nil, uc.upstreamError(ctx, "CreateService", err)
	}
	uc.publish(ctx, constvars.AuditEventServiceCreated, utils.ExtractRecordID(created), map[string]any{
		"serviceId": request.ServiceID,
	})
	return created, nil
}

func (uc *catalogUsecase) UpdateService(ctx context.Context, id string, request *requests.UpdateService) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	updated, err := uc.CatalogClient.UpdateService(ctx, id, *request)
	if err != nil {
		return nil, uc.upstreamError(ctx, "UpdateService", err)
	}
	uc.publish(ctx, constvars.AuditEventServiceUpdated, id, nil)
	return updated, nil
}

// BulkUpdateServices changes prices of several services in one call.
func (uc *catalogUsecase) BulkUpdateServices(ctx context.Context, request *requests.BulkUpdateServices) (json.RawMessage, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	updated, err := uc.CatalogClient.BulkUpdateServices(ctx, *request)
	if err != nil {
		return nil, uc.upstreamError(ctx, "BulkUpdateServices", err)
	}

	serviceIDs := make([]string, 0, len(request.Updates))
	for _, update := range request.Updates {
		serviceIDs = append(serviceIDs, update.ServiceID)
	}
	uc.publish(ctx, constvars.AuditEventServiceBulkUpdated, "", map[string]any{
		"serviceIds": serviceIDs,
	})
	return updated, nil
}

func (uc *catalogUsecase) DeleteService(ctx context.Context, id string) error {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	if err := uc.CatalogClient.DeleteService(ctx, id); err != nil {
		return uc.upstreamError(ctx, "DeleteService", err)
	}
	uc.publish(ctx, constvars.AuditEventServiceDeleted, id, nil)
	return nil
}

func (uc *catalogUsecase) ToggleServiceStatus(ctx context.Context, id string) (json.RawMessage, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	toggled, err := uc.CatalogClient.ToggleServiceStatus(ctx, id)
	if err != nil {
		return nil, uc.upstreamError(ctx, "ToggleServiceStatus", err)
	}
	uc.publish(ctx, constvars.AuditEventServiceToggled, id, nil)
	return toggled, nil
}

func (uc *catalogUsecase) publish(ctx context.Context, event, resourceID string, attributes map[string]any) {
	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, event, resourceID, attributes))
	uc.Log.Info("catalogUsecase mutation succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAuditEventKey, event),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)
}

func (uc *catalogUsecase) upstreamError(ctx context.Context, method string, err error) error {
	uc.Log.Error("catalogUsecase."+method+" error from superadmin API",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Error(err),
	)
	return err
}
