package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const organizationRecordKey = "organization"

func (c *Client) CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*responses.Organization, error) {
	c.Log.Info("superadminClient.CreateOrganization called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOrganizationIDKey, request.OrganizationID),
	)

	envelope, err := c.do(ctx, constvars.MethodPost, constvars.SuperadminPathOrganizations, nil, request)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Organization](envelope.Data, organizationRecordKey, constvars.ResourceOrganization)
}

func (c *Client) ListOrganizations(ctx context.Context, request requests.ListOrganizations) (*responses.OrganizationList, error) {
	c.Log.Info("superadminClient.ListOrganizations called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	query := utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamStatus, request.Status).
		Values()

	envelope, err := c.do(ctx, constvars.MethodGet, constvars.SuperadminPathOrganizations, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.OrganizationList](envelope.Data, "", constvars.ResourceOrganization)
}

func (c *Client) GetOrganizationStats(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetOrganizationStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathOrganizations+constvars.SuperadminSegmentStats, nil)
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*responses.Organization, error) {
	c.Log.Info("superadminClient.GetOrganization called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodGet, recordPath(constvars.SuperadminPathOrganizations, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Organization](envelope.Data, organizationRecordKey, constvars.ResourceOrganization)
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, request requests.UpdateOrganization) (*responses.Organization, error) {
	c.Log.Info("superadminClient.UpdateOrganization called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodPut, recordPath(constvars.SuperadminPathOrganizations, id), nil, request)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Organization](envelope.Data, organizationRecordKey, constvars.ResourceOrganization)
}

func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	c.Log.Info("superadminClient.DeleteOrganization called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	_, err := c.do(ctx, constvars.MethodDelete, recordPath(constvars.SuperadminPathOrganizations, id), nil, nil)
	return err
}

func (c *Client) ToggleOrganizationStatus(ctx context.Context, id string) (*responses.Organization, error) {
	c.Log.Info("superadminClient.ToggleOrganizationStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathOrganizations, id, constvars.SuperadminSegmentToggleStatus), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Organization](envelope.Data, organizationRecordKey, constvars.ResourceOrganization)
}
