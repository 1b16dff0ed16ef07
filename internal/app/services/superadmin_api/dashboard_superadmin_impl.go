package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func (c *Client) GetOverview(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetOverview called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathOverview, nil)
}

func (c *Client) GetStats(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathDashboardStats, nil)
}
