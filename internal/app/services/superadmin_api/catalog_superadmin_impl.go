package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func catalogQuery(request requests.ListCatalog) *utils.QueryBuilder {
	return utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamServiceType, request.ServiceType).
		String(constvars.QueryParamCategory, request.Category).
		OptionalBool(constvars.QueryParamIsActive, request.IsActive)
}

func (c *Client) ListServicePackages(ctx context.Context, request requests.ListCatalog) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ListServicePackages called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathServicePackages, catalogQuery(request).Values())
}

func (c *Client) GetServicePackage(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetServicePackage called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.getData(ctx, recordPath(constvars.SuperadminPathServicePackages, id), nil)
}

func (c *Client) CreateServicePackage(ctx context.Context, request requests.CreateServicePackage) (json.RawMessage, error) {
	c.Log.Info("superadminClient.CreateServicePackage called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, request.PackageID),
	)
	return c.sendData(ctx, constvars.MethodPost, constvars.SuperadminPathServicePackages, nil, request)
}

func (c *Client) UpdateServicePackage(ctx context.Context, id string, request requests.UpdateServicePackage) (json.RawMessage, error) {
	c.Log.Info("superadminClient.UpdateServicePackage called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.sendData(ctx, constvars.MethodPut, recordPath(constvars.SuperadminPathServicePackages, id), nil, request)
}

func (c *Client) DeleteServicePackage(ctx context.Context, id string) error {
	c.Log.Info("superadminClient.DeleteServicePackage called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	_, err := c.do(ctx, constvars.MethodDelete, recordPath(constvars.SuperadminPathServicePackages, id), nil, nil)
	return err
}

func (c *Client) ToggleServicePackageStatus(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ToggleServicePackageStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.sendData(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathServicePackages, id, constvars.SuperadminSegmentToggleStatus), nil, nil)
}

func (c *Client) ListServices(ctx context.Context, request requests.ListCatalog) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathServices, catalogQuery(request).Values())
}

func (c *Client) GetService(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetService called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.getData(ctx, recordPath(constvars.SuperadminPathServices, id), nil)
}

func (c *Client) CreateService(ctx context.Context, request requests.CreateService) (json.RawMessage, error) {
	c.Log.Info("superadminClient.CreateService called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, request.ServiceID),
	)
	return c.sendData(ctx, constvars.MethodPost, constvars.SuperadminPathServices, nil, request)
}

func (c *Client) UpdateService(ctx context.Context, id string, request requests.UpdateService) (json.RawMessage, error) {
	c.Log.Info("superadminClient.UpdateService called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.sendData(ctx, constvars.MethodPut, recordPath(constvars.SuperadminPathServices, id), nil, request)
}

func (c *Client) BulkUpdateServices(ctx context.Context, request requests.BulkUpdateServices) (json.RawMessage, error) {
	c.Log.Info("superadminClient.BulkUpdateServices called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int("updates", len(request.Updates)),
	)
	return c.sendData(ctx, constvars.MethodPost, constvars.SuperadminPathServices+constvars.SuperadminSegmentBulkUpdate, nil, request)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	c.Log.Info("superadminClient.DeleteService called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	_, err := c.do(ctx, constvars.MethodDelete, recordPath(constvars.SuperadminPathServices, id), nil, nil)
	return err
}

func (c *Client) ToggleServiceStatus(ctx context.Context, id string) (json.RawMessage, error) {
	c.Log.Info("superadminClient.ToggleServiceStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.sendData(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathServices, id, constvars.SuperadminSegmentToggleStatus), nil, nil)
}
