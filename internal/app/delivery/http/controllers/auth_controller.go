package controllers

import (
	"net/http"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	const method = "AuthController.Login"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.Login)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	response, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	const method = "AuthController.GetProfile"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	response, err := ctrl.AuthUsecase.GetProfile(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccess, response)
}
