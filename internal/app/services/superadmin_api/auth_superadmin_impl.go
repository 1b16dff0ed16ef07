package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *Client) Login(ctx context.Context, request requests.Login) (*responses.Login, error) {
	c.Log.Info("superadminClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	envelope, err := c.do(ctx, constvars.MethodPost, constvars.SuperadminPathLogin, nil, request)
	if err != nil {
		return nil, err
	}

	login := &responses.Login{Token: envelope.Token, User: envelope.User}
	if login.Token == "" && len(envelope.Data) > 0 {
		nested, err := decodeRecord[responses.Login](envelope.Data, "", constvars.ResourceAuth)
		if err != nil {
			return nil, err
		}
		login = nested
	}
	return login, nil
}

func (c *Client) GetProfile(ctx context.Context) (*responses.Profile, error) {
	c.Log.Info("superadminClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	envelope, err := c.do(ctx, constvars.MethodGet, constvars.SuperadminPathProfile, nil, nil)
	if err != nil {
		return nil, err
	}

	if len(envelope.User) > 0 {
		return &responses.Profile{User: envelope.User}, nil
	}
	return decodeRecord[responses.Profile](envelope.Data, "", constvars.ResourceAuth)
}
