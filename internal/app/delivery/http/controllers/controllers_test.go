package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"superadmin-service/internal/app/services/shared/mocks"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/wizard"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const wizardUUID = "5f0c6f38-8c43-4cf1-9a4e-1f4a6d2b9a10"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, method, pattern, target string, body io.Reader, handler http.HandlerFunc, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func editingSession() *responses.WizardSession {
	return &responses.WizardSession{
		ID:              wizardUUID,
		Step:            wizard.StepBasicInformation,
		TotalSteps:      wizard.TotalSteps,
		State:           wizard.StateEditing,
		CompletedFields: []string{},
	}
}

func TestRequestIDRequired(t *testing.T) {
	ctrl := NewDashboardController(zap.NewNop(), nil)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/overview", nil)
	rec := httptest.NewRecorder()

	ctrl.GetOverview(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOrganizationWizardController(t *testing.T) {
	t.Run("Create answers 201 with the new session", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		usecase.On("CreateWizard", mock.Anything).Return(editingSession(), nil).Once()
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodPost, "/wizards", "/wizards", nil, ctrl.CreateWizard)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, constvars.WizardCreatedSuccess, env.Message)
		assert.Contains(t, string(env.Data), wizardUUID)
		usecase.AssertExpectations(t)
	})

	t.Run("SetValues requires a step", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodPut, "/wizards/{wizardId}/values", "/wizards/"+wizardUUID+"/values",
			strings.NewReader(`{"values":{"name":"Acme"}}`), ctrl.SetValues)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		usecase.AssertNotCalled(t, "SetValues", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SetValues forwards the wizard id and raw values", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		usecase.On("SetValues", mock.Anything, wizardUUID, mock.MatchedBy(func(request requests.WizardValues) bool {
			return request.Step == 1 && strings.Contains(string(request.Values), "Acme")
		})).Return(editingSession(), nil).Once()
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodPut, "/wizards/{wizardId}/values", "/wizards/"+wizardUUID+"/values",
			strings.NewReader(`{"step":1,"values":{"name":"Acme"}}`), ctrl.SetValues)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.WizardUpdatedSuccess, env.Message)
		usecase.AssertExpectations(t)
	})

	t.Run("Advance with invalid fields returns the session next to the error", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		session := editingSession()
		session.Validation = &wizard.ValidationResult{
			Step:   wizard.StepBasicInformation,
			Fields: []wizard.FieldResult{{Field: "name", Valid: false, Message: "Organization name is required"}},
		}
		usecase.On("Advance", mock.Anything, wizardUUID, requests.AdvanceWizard{}).
			Return(session, exceptions.ErrWizardStepInvalid(nil)).Once()
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodPost, "/wizards/{wizardId}/next", "/wizards/"+wizardUUID+"/next", nil, ctrl.Advance)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, constvars.ErrClientWizardStepInvalid, env.Message)
		assert.Contains(t, string(env.Data), "Organization name is required")
	})

	t.Run("Advance that submits answers 201", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		session := editingSession()
		session.State = wizard.StateSubmitted
		session.CreatedOrganizationID = "org-42"
		usecase.On("Advance", mock.Anything, wizardUUID, mock.Anything).Return(session, nil).Once()
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodPost, "/wizards/{wizardId}/next", "/wizards/"+wizardUUID+"/next",
			strings.NewReader(`{"step":5,"values":{"confirmPassword":"x"}}`), ctrl.Advance)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, constvars.WizardSubmittedSuccess, env.Message)
		assert.Contains(t, string(env.Data), "org-42")
	})

	t.Run("Get of an unknown wizard is 404", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		usecase.On("GetWizard", mock.Anything, wizardUUID).
			Return(nil, exceptions.ErrWizardNotFound(nil, wizardUUID)).Once()
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodGet, "/wizards/{wizardId}", "/wizards/"+wizardUUID, nil, ctrl.GetWizard)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, constvars.ErrClientWizardNotFound, env.Message)
	})

	t.Run("Discard", func(t *testing.T) {
		usecase := new(mocks.OrganizationWizardUsecase)
		usecase.On("DiscardWizard", mock.Anything, wizardUUID).Return(nil).Once()
		ctrl := NewOrganizationWizardController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodDelete, "/wizards/{wizardId}", "/wizards/"+wizardUUID, nil, ctrl.DiscardWizard)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.WizardDiscardedSuccess, env.Message)
	})
}

func TestOrganizationController_ListOrganizations(t *testing.T) {
	t.Run("Reads paging and drops the all filter", func(t *testing.T) {
		usecase := new(mocks.OrganizationUsecase)
		expected := &requests.ListOrganizations{Page: 2, Limit: 5, Search: "acme"}
		usecase.On("ListOrganizations", mock.Anything, expected).
			Return(&responses.OrganizationList{Organizations: []responses.Organization{}}, nil).Once()
		ctrl := NewOrganizationController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodGet, "/organizations", "/organizations?page=2&limit=5&search=%20acme%20&status=all", nil, ctrl.ListOrganizations)

		assert.Equal(t, http.StatusOK, rec.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Rejects a page that is not a number", func(t *testing.T) {
		usecase := new(mocks.OrganizationUsecase)
		ctrl := NewOrganizationController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodGet, "/organizations", "/organizations?page=two", nil, ctrl.ListOrganizations)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "ListOrganizations", mock.Anything, mock.Anything)
	})
}

func TestOrganizationController_UploadLogo(t *testing.T) {
	t.Run("Passes the multipart file to the usecase", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile(constvars.FormFieldLogo, "logo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nrest"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		usecase := new(mocks.OrganizationUsecase)
		usecase.On("UploadLogo", mock.Anything, mock.MatchedBy(func(request *requests.UploadLogo) bool {
			return request.Header != nil && request.Header.Filename == "logo.png" && request.File != nil
		})).Return(&responses.UploadedLogo{ObjectName: "logos/abc.png", URL: "http://minio/logos/abc.png"}, nil).Once()
		ctrl := NewOrganizationController(zap.NewNop(), usecase)

		rec, env := serve(t, http.MethodPost, "/organizations/logo", "/organizations/logo", &body, ctrl.UploadLogo,
			constvars.HeaderContentType, writer.FormDataContentType())

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, constvars.LogoUploadedSuccess, env.Message)
		assert.Contains(t, string(env.Data), "logos/abc.png")
		usecase.AssertExpectations(t)
	})

	t.Run("Rejects a form without the logo field", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("name", "Acme"))
		require.NoError(t, writer.Close())

		usecase := new(mocks.OrganizationUsecase)
		ctrl := NewOrganizationController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodPost, "/organizations/logo", "/organizations/logo", &body, ctrl.UploadLogo,
			constvars.HeaderContentType, writer.FormDataContentType())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "UploadLogo", mock.Anything, mock.Anything)
	})

	t.Run("Rejects a body that is not multipart", func(t *testing.T) {
		usecase := new(mocks.OrganizationUsecase)
		ctrl := NewOrganizationController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodPost, "/organizations/logo", "/organizations/logo", strings.NewReader(`{}`), ctrl.UploadLogo,
			constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingController(t *testing.T) {
	t.Run("Cancel accepts an empty body", func(t *testing.T) {
		usecase := new(mocks.BookingUsecase)
		usecase.On("CancelBooking", mock.Anything, "booking-1", &requests.CancelBooking{}).
			Return(&responses.Booking{ID: "booking-1", Status: constvars.BookingStatusCancelled}, nil).Once()
		ctrl := NewBookingController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodPatch, "/bookings/{id}/cancel", "/bookings/booking-1/cancel", nil, ctrl.CancelBooking)

		assert.Equal(t, http.StatusOK, rec.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Status update with malformed JSON is 400", func(t *testing.T) {
		usecase := new(mocks.BookingUsecase)
		ctrl := NewBookingController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodPatch, "/bookings/{id}/status", "/bookings/booking-1/status",
			strings.NewReader(`{"status":`), ctrl.UpdateBookingStatus)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("A plain deadline error becomes 504", func(t *testing.T) {
		usecase := new(mocks.BookingUsecase)
		usecase.On("DeleteBooking", mock.Anything, "booking-1").Return(context.DeadlineExceeded).Once()
		ctrl := NewBookingController(zap.NewNop(), usecase)

		rec, _ := serve(t, http.MethodDelete, "/bookings/{id}", "/bookings/booking-1", nil, ctrl.DeleteBooking)

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}
