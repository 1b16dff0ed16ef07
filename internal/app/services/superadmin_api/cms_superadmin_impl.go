package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const cmsRecordKey = "content"

func (c *Client) ListCMSContents(ctx context.Context, request requests.ListCMSContents) ([]responses.CMSContent, error) {
	c.Log.Info("superadminClient.ListCMSContents called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingContentTypeKey, request.ContentType),
	)

	query := utils.NewQueryBuilder().
		String(constvars.QueryParamContentType, request.ContentType).
		OptionalBool(constvars.QueryParamIsActive, request.IsActive).
		Values()

	envelope, err := c.do(ctx, constvars.MethodGet, constvars.SuperadminPathCMS, query, nil)
	if err != nil {
		return nil, err
	}

	contents, err := decodeRecord[[]responses.CMSContent](envelope.Data, "", constvars.ResourceCMSContent)
	if err != nil {
		return nil, err
	}
	if *contents == nil {
		return []responses.CMSContent{}, nil
	}
	return *contents, nil
}

func (c *Client) GetCMSContent(ctx context.Context, id string) (*responses.CMSContent, error) {
	c.Log.Info("superadminClient.GetCMSContent called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodGet, recordPath(constvars.SuperadminPathCMS, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCMSContent(envelope.Data)
}

func (c *Client) CreateCMSContent(ctx context.Context, request requests.CreateCMSContent) (*responses.CMSContent, error) {
	c.Log.Info("superadminClient.CreateCMSContent called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingContentTypeKey, request.ContentType),
	)

	envelope, err := c.do(ctx, constvars.MethodPost, constvars.SuperadminPathCMS, nil, request)
	if err != nil {
		return nil, err
	}
	return decodeCMSContent(envelope.Data)
}

func (c *Client) UpdateCMSContent(ctx context.Context, id string, request requests.UpdateCMSContent) (*responses.CMSContent, error) {
	c.Log.Info("superadminClient.UpdateCMSContent called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathCMS, id), nil, request)
	if err != nil {
		return nil, err
	}
	return decodeCMSContent(envelope.Data)
}

func (c *Client) DeleteCMSContent(ctx context.Context, id string) error {
	c.Log.Info("superadminClient.DeleteCMSContent called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	_, err := c.do(ctx, constvars.MethodDelete, recordPath(constvars.SuperadminPathCMS, id), nil, nil)
	return err
}

// decodeCMSContent decodes a CMS record as is. Its own "content" field is an
// array, so it is never mistaken for a wrapper.
func decodeCMSContent(data []byte) (*responses.CMSContent, error) {
	return decodeRecord[responses.CMSContent](data, cmsRecordKey, constvars.ResourceCMSContent)
}
