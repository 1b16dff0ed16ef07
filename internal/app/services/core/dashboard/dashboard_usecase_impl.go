package dashboard

import (
	"context"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type dashboardUsecase struct {
	DashboardClient contracts.SuperadminDashboardClient
	Log             *zap.Logger
}

func NewDashboardUsecase(dashboardClient contracts.SuperadminDashboardClient, logger *zap.Logger) contracts.DashboardUsecase {
	return &dashboardUsecase{
		DashboardClient: dashboardClient,
		Log:             logger,
	}
}

func (uc *dashboardUsecase) GetOverview(ctx context.Context) (json.RawMessage, error) {
	overview, err := uc.DashboardClient.GetOverview(ctx)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetOverview error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return overview, nil
}

func (uc *dashboardUsecase) GetStats(ctx context.Context) (json.RawMessage, error) {
	stats, err := uc.DashboardClient.GetStats(ctx)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetStats error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return stats, nil
}
