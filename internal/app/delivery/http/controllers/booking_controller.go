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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.ListBookings"
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

	bookings, err := ctrl.BookingUsecase.ListBookings(r.Context(), &requests.ListBookings{
		Page:        page.Page,
		Limit:       page.Limit,
		Search:      utils.QueryString(r, constvars.QueryParamSearch),
		Status:      utils.ParseStatusFilter(query),
		ServiceType: utils.QueryString(r, constvars.QueryParamServiceType),
		DateFrom:    utils.QueryString(r, constvars.QueryParamDateFrom),
		DateTo:      utils.QueryString(r, constvars.QueryParamDateTo),
	})
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceBooking), bookings)
}

func (ctrl *BookingController) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.GetBookingStats"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	stats, err := ctrl.BookingUsecase.GetBookingStats(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceBooking), stats)
}

func (ctrl *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.GetBooking"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	booking, err := ctrl.BookingUsecase.GetBooking(r.Context(), urlParamID(r))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetResourceSuccess, constvars.ResourceBooking), booking)
}

func (ctrl *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.UpdateBookingStatus"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.UpdateBookingStatus)
	if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
		return
	}

	booking, err := ctrl.BookingUsecase.UpdateBookingStatus(r.Context(), urlParamID(r), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceBooking), booking)
}

// CancelBooking accepts an empty body; the reason is optional.
func (ctrl *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.CancelBooking"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	request := new(requests.CancelBooking)
	if r.ContentLength != 0 {
		if !decodeJSONBody(ctrl.Log, w, r, method, requestID, request) {
			return
		}
	}

	booking, err := ctrl.BookingUsecase.CancelBooking(r.Context(), urlParamID(r), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateResourceSuccess, constvars.ResourceBooking), booking)
}

func (ctrl *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.DeleteBooking"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, method)
	if !ok {
		return
	}

	if err := ctrl.BookingUsecase.DeleteBooking(r.Context(), urlParamID(r)); err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteResourceSuccess, constvars.ResourceBooking), nil)
}
