package controllers

import (
	"net/http"
	"strings"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"
	"superadmin-service/internal/pkg/wizard"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrganizationWizardController struct {
	Log                       *zap.Logger
	OrganizationWizardUsecase contracts.OrganizationWizardUsecase
}

func NewOrganizationWizardController(logger *zap.Logger, organizationWizardUsecase contracts.OrganizationWizardUsecase) *OrganizationWizardController {
	return &OrganizationWizardController{
		Log:                       logger,
		OrganizationWizardUsecase: organizationWizardUsecase,
	}
}

func wizardID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, constvars.URLParamWizardID))
}

// respondSession writes the session next to the error when the usecase
// returned both, so the dashboard can show field messages or the
// submission error.
func (ctrl *OrganizationWizardController) respondSession(w http.ResponseWriter, method, requestID string, session *responses.WizardSession, err error, code int, message string) {
	if err != nil {
		if session != nil {
			ctrl.Log.Info(method+" returned session with error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingWizardIDKey, session.ID),
				zap.String(constvars.LoggingWizardStateKey, string(session.State)),
				zap.Error(err),
			)
			utils.BuildValidationErrorResponse(ctrl.Log, w, err, session)
			return
		}
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, code, message, session)
}

func (ctrl *OrganizationWizardController) CreateWizard(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.CreateWizard"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	session, err := ctrl.OrganizationWizardUsecase.CreateWizard(r.Context())
	ctrl.respondSession(w, method, requestID, session, err, constvars.StatusCreated, constvars.WizardCreatedSuccess)
}

func (ctrl *OrganizationWizardController) GetWizard(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.GetWizard"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	session, err := ctrl.OrganizationWizardUsecase.GetWizard(r.Context(), wizardID(r))
	ctrl.respondSession(w, method, requestID, session, err, constvars.StatusOK, constvars.WizardFetchedSuccess)
}

func (ctrl *OrganizationWizardController) SetValues(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.SetValues"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.WizardValues)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, err := ctrl.OrganizationWizardUsecase.SetValues(r.Context(), wizardID(r), *request)
	ctrl.respondSession(w, method, requestID, session, err, constvars.StatusOK, constvars.WizardUpdatedSuccess)
}

func (ctrl *OrganizationWizardController) ValidateStep(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.ValidateStep"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	session, err := ctrl.OrganizationWizardUsecase.ValidateStep(r.Context(), wizardID(r))
	ctrl.respondSession(w, method, requestID, session, err, constvars.StatusOK, constvars.WizardValidatedSuccess)
}

func (ctrl *OrganizationWizardController) Advance(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.Advance"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.AdvanceWizard)
	if r.ContentLength != 0 {
		if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
			return
		}
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, err := ctrl.OrganizationWizardUsecase.Advance(r.Context(), wizardID(r), *request)
	if err == nil && session.State == wizard.StateSubmitted {
		ctrl.Log.Info(method+" organization created",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrganizationIDKey, session.CreatedOrganizationID),
		)
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardSubmittedSuccess, session)
		return
	}
	ctrl.respondSession(w, method, requestID, session, err, constvars.StatusOK, constvars.WizardAdvancedSuccess)
}

func (ctrl *OrganizationWizardController) Retreat(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.Retreat"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	session, err := ctrl.OrganizationWizardUsecase.Retreat(r.Context(), wizardID(r))
	ctrl.respondSession(w, method, requestID, session, err, constvars.StatusOK, constvars.WizardRetreatedSuccess)
}

func (ctrl *OrganizationWizardController) DiscardWizard(w http.ResponseWriter, r *http.Request) {
	const method = "OrganizationWizardController.DiscardWizard"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := ctrl.OrganizationWizardUsecase.DiscardWizard(r.Context(), wizardID(r)); err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardDiscardedSuccess, nil)
}
