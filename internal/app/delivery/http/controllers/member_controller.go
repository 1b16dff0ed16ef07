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

// MemberController serves the users and doctors sections of the dashboard.
type MemberController struct {
	Log           *zap.Logger
	MemberUsecase contracts.MemberUsecase
}

func NewMemberController(logger *zap.Logger, memberUsecase contracts.MemberUsecase) *MemberController {
	return &MemberController{
		Log:           logger,
		MemberUsecase: memberUsecase,
	}
}

func (ctrl *MemberController) ListUsers(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.ListUsers"
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

	users, err := ctrl.MemberUsecase.ListUsers(r.Context(), &requests.ListUsers{
		Page:   page.Page,
		Limit:  page.Limit,
		Search: utils.QueryString(r, constvars.QueryParamSearch),
		Status: utils.ParseStatusFilter(query),
	})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceUser), users)
}

func (ctrl *MemberController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.SearchUsers"
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

	users, err := ctrl.MemberUsecase.SearchUsers(r.Context(), &requests.SearchUsers{
		Page:          page.Page,
		Limit:         page.Limit,
		Search:        utils.QueryString(r, constvars.QueryParamSearch),
		Status:        utils.ParseStatusFilter(query),
		EmailVerified: utils.QueryString(r, constvars.QueryParamEmailVerified),
		DateFrom:      utils.QueryString(r, constvars.QueryParamDateFrom),
		DateTo:        utils.QueryString(r, constvars.QueryParamDateTo),
	})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceUser), users)
}

func (ctrl *MemberController) GetUserStats(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.GetUserStats"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	stats, err := ctrl.MemberUsecase.GetUserStats(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceUser), stats)
}

func (ctrl *MemberController) GetUser(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.GetUser"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	user, err := ctrl.MemberUsecase.GetUser(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceUser), user)
}

func (ctrl *MemberController) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.ToggleUserStatus"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	user, err := ctrl.MemberUsecase.ToggleUserStatus(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ToggleResourceSuccess, constvars.ResourceUser), user)
}

func (ctrl *MemberController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.ListDoctors"
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

	doctors, err := ctrl.MemberUsecase.ListDoctors(r.Context(), &requests.ListDoctors{
		Page:           page.Page,
		Limit:          page.Limit,
		Search:         utils.QueryString(r, constvars.QueryParamSearch),
		Status:         utils.ParseStatusFilter(query),
		Specialization: utils.QueryString(r, constvars.QueryParamSpecialization),
	})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceDoctor), doctors)
}

func (ctrl *MemberController) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.SearchDoctors"
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
	experienceMin, err := utils.ParseOptionalInt(query, constvars.QueryParamExperienceMin)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	experienceMax, err := utils.ParseOptionalInt(query, constvars.QueryParamExperienceMax)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctors, err := ctrl.MemberUsecase.SearchDoctors(r.Context(), &requests.SearchDoctors{
		Page:           page.Page,
		Limit:          page.Limit,
		Search:         utils.QueryString(r, constvars.QueryParamSearch),
		Status:         utils.ParseStatusFilter(query),
		EmailVerified:  utils.QueryString(r, constvars.QueryParamEmailVerified),
		Specialization: utils.QueryString(r, constvars.QueryParamSpecialization),
		ExperienceMin:  experienceMin,
		ExperienceMax:  experienceMax,
		DateFrom:       utils.QueryString(r, constvars.QueryParamDateFrom),
		DateTo:         utils.QueryString(r, constvars.QueryParamDateTo),
	})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceDoctor), doctors)
}

func (ctrl *MemberController) GetDoctorStats(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.GetDoctorStats"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	stats, err := ctrl.MemberUsecase.GetDoctorStats(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceDoctor), stats)
}

func (ctrl *MemberController) GetDoctorSpecializations(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.GetDoctorSpecializations"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	specializations, err := ctrl.MemberUsecase.GetDoctorSpecializations(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceSpecializations), specializations)
}

func (ctrl *MemberController) GetDoctor(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.GetDoctor"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	doctor, err := ctrl.MemberUsecase.GetDoctor(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceDoctor), doctor)
}

func (ctrl *MemberController) ToggleDoctorStatus(w http.ResponseWriter, r *http.Request) {
	const method = "MemberController.ToggleDoctorStatus"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	doctor, err := ctrl.MemberUsecase.ToggleDoctorStatus(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ToggleResourceSuccess, constvars.ResourceDoctor), doctor)
}
