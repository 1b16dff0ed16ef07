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

// CatalogController serves service packages and services.
type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) parseListCatalog(w http.ResponseWriter, r *http.Request) (*requests.ListCatalog, bool) {
	query := r.URL.Query()
	page, err := utils.ParsePageParams(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return nil, false
	}
	isActive, err := utils.ParseOptionalBool(query, constvars.QueryParamIsActive)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return nil, false
	}
	return &requests.ListCatalog{
		Page:        page.Page,
		Limit:       page.Limit,
		Search:      utils.QueryString(r, constvars.QueryParamSearch),
		ServiceType: utils.QueryString(r, constvars.QueryParamServiceType),
		Category:    utils.QueryString(r, constvars.QueryParamCategory),
		IsActive:    isActive,
	}, true
}

func (ctrl *CatalogController) ListServicePackages(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.ListServicePackages"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	request, ok := ctrl.parseListCatalog(w, r)
	if !ok {
		return
	}

	packages, err := ctrl.CatalogUsecase.ListServicePackages(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceServicePackage), packages)
}

func (ctrl *CatalogController) GetServicePackage(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.GetServicePackage"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	servicePackage, err := ctrl.CatalogUsecase.GetServicePackage(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceServicePackage), servicePackage)
}

func (ctrl *CatalogController) CreateServicePackage(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.CreateServicePackage"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.CreateServicePackage)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	servicePackage, err := ctrl.CatalogUsecase.CreateServicePackage(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateResourceSuccess, constvars.ResourceServicePackage), servicePackage)
}

func (ctrl *CatalogController) UpdateServicePackage(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.UpdateServicePackage"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.UpdateServicePackage)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	servicePackage, err := ctrl.CatalogUsecase.UpdateServicePackage(r.Context(), urlParamID(r), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceServicePackage), servicePackage)
}

func (ctrl *CatalogController) DeleteServicePackage(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.DeleteServicePackage"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := ctrl.CatalogUsecase.DeleteServicePackage(r.Context(), urlParamID(r)); err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteResourceSuccess, constvars.ResourceServicePackage), nil)
}

func (ctrl *CatalogController) ToggleServicePackageStatus(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.ToggleServicePackageStatus"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	servicePackage, err := ctrl.CatalogUsecase.ToggleServicePackageStatus(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ToggleResourceSuccess, constvars.ResourceServicePackage), servicePackage)
}

func (ctrl *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.ListServices"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	request, ok := ctrl.parseListCatalog(w, r)
	if !ok {
		return
	}

	services, err := ctrl.CatalogUsecase.ListServices(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceService), services)
}

func (ctrl *CatalogController) GetService(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.GetService"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	service, err := ctrl.CatalogUsecase.GetService(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceService), service)
}

func (ctrl *CatalogController) CreateService(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.CreateService"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.CreateService)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	service, err := ctrl.CatalogUsecase.CreateService(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateResourceSuccess, constvars.ResourceService), service)
}

func (ctrl *CatalogController) UpdateService(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.UpdateService"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.UpdateService)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	service, err := ctrl.CatalogUsecase.UpdateService(r.Context(), urlParamID(r), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceService), service)
}

func (ctrl *CatalogController) BulkUpdateServices(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.BulkUpdateServices"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.BulkUpdateServices)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	services, err := ctrl.CatalogUsecase.BulkUpdateServices(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceService), services)
}

func (ctrl *CatalogController) DeleteService(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.DeleteService"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := ctrl.CatalogUsecase.DeleteService(r.Context(), urlParamID(r)); err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteResourceSuccess, constvars.ResourceService), nil)
}

func (ctrl *CatalogController) ToggleServiceStatus(w http.ResponseWriter, r *http.Request) {
	const method = "CatalogController.ToggleServiceStatus"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	service, err := ctrl.CatalogUsecase.ToggleServiceStatus(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ToggleResourceSuccess, constvars.ResourceService), service)
}
