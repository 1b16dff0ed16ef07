package controllers

import (
	"net/http"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetOverview(w http.ResponseWriter, r *http.Request) {
	const method = "DashboardController.GetOverview"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	overview, err := ctrl.DashboardUsecase.GetOverview(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccess, overview)
}

func (ctrl *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	const method = "DashboardController.GetStats"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	stats, err := ctrl.DashboardUsecase.GetStats(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccess, stats)
}
