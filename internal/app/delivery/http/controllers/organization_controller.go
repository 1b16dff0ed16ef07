package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// logoFormMemory is the part of a multipart logo upload kept in memory.
const logoFormMemory = 4 << 20

type OrganizationController struct {
	Log                 *zap.Logger
	OrganizationUsecase contracts.OrganizationUsecase
}

func NewOrganizationController(logger *zap.Logger, organizationUsecase contracts.OrganizationUsecase) *OrganizationController {
	return &OrganizationController{
		Log:                 logger,
		OrganizationUsecase: organizationUsecase,
	}
}

func (ctrl *OrganizationController) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.ListOrganizations"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, err := utils.ParsePageParams(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListOrganizations{
		Page:   page.Page,
		Limit:  page.Limit,
		Search: utils.QueryString(r, constvars.QueryParamSearch),
		Status: utils.ParseStatusFilter(query),
	}
	list, err := ctrl.OrganizationUsecase.ListOrganizations(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceOrganization), list)
}

func (ctrl *OrganizationController) GetOrganizationStats(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.GetOrganizationStats"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	stats, err := ctrl.OrganizationUsecase.GetOrganizationStats(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceOrganization), stats)
}

func (ctrl *OrganizationController) GetOrganization(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.GetOrganization"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	organization, err := ctrl.OrganizationUsecase.GetOrganization(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceOrganization), organization)
}

func (ctrl *OrganizationController) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.UpdateOrganization"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.UpdateOrganization)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	organization, err := ctrl.OrganizationUsecase.UpdateOrganization(r.Context(), urlParamID(r), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceOrganization), organization)
}

func (ctrl *OrganizationController) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.DeleteOrganization"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := ctrl.OrganizationUsecase.DeleteOrganization(r.Context(), urlParamID(r)); err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteResourceSuccess, constvars.ResourceOrganization), nil)
}

func (ctrl *OrganizationController) ToggleOrganizationStatus(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.ToggleOrganizationStatus"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	organization, err := ctrl.OrganizationUsecase.ToggleOrganizationStatus(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ToggleResourceSuccess, constvars.ResourceOrganization), organization)
}

func (ctrl *OrganizationController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationController.UploadLogo"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(logoFormMemory); err != nil {
		ctrl.Log.Error(method+" error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFieldLogo)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	logo, err := ctrl.OrganizationUsecase.UploadLogo(r.Context(), &requests.UploadLogo{File: file, Header: header})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, logo.ObjectName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LogoUploadedSuccess, logo)
}
