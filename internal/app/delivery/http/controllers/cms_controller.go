package controllers

import (
	"fmt"
	"net/http"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CMSController struct {
	Log        *zap.Logger
	CMSUsecase contracts.CMSUsecase
}

func NewCMSController(logger *zap.Logger, cmsUsecase contracts.CMSUsecase) *CMSController {
	return &CMSController{
		Log:        logger,
		CMSUsecase: cmsUsecase,
	}
}

func (ctrl *CMSController) ListCMSContents(w http.ResponseWriter, r *http.Request) {
	const method = "CMSController.ListCMSContents"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	isActive, err := utils.ParseOptionalBool(r.URL.Query(), constvars.QueryParamIsActive)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	contents, err := ctrl.CMSUsecase.ListCMSContents(r.Context(), &requests.ListCMSContents{
		ContentType: utils.QueryString(r, constvars.QueryParamContentType),
		IsActive:    isActive,
	})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceCMSContent), contents)
}

func (ctrl *CMSController) GetCMSContent(w http.ResponseWriter, r *http.Request) {
	const method = "CMSController.GetCMSContent"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	content, err := ctrl.CMSUsecase.GetCMSContent(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceCMSContent), content)
}

func (ctrl *CMSController) CreateCMSContent(w http.ResponseWriter, r *http.Request) {
	const method = "CMSController.CreateCMSContent"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.CreateCMSContent)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	content, err := ctrl.CMSUsecase.CreateCMSContent(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateResourceSuccess, constvars.ResourceCMSContent), content)
}

func (ctrl *CMSController) UpdateCMSContent(w http.ResponseWriter, r *http.Request) {
	const method = "CMSController.UpdateCMSContent"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.UpdateCMSContent)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	content, err := ctrl.CMSUsecase.UpdateCMSContent(r.Context(), urlParamID(r), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceCMSContent), content)
}

func (ctrl *CMSController) DeleteCMSContent(w http.ResponseWriter, r *http.Request) {
	const method = "CMSController.DeleteCMSContent"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := ctrl.CMSUsecase.DeleteCMSContent(r.Context(), urlParamID(r)); err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteResourceSuccess, constvars.ResourceCMSContent), nil)
}
