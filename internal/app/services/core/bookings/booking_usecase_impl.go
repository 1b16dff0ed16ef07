package bookings

import (
	"context"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingClient  contracts.SuperadminBookingClient
	AuditPublisher contracts.AuditPublisher
	Log            *zap.Logger
}

func NewBookingUsecase(bookingClient contracts.SuperadminBookingClient, auditPublisher contracts.AuditPublisher, logger *zap.Logger) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingClient:  bookingClient,
		AuditPublisher: auditPublisher,
		Log:            logger,
	}
}

func (uc *bookingUsecase) ListBookings(ctx context.Context, request *requests.ListBookings) (*responses.BookingList, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	list, err := uc.BookingClient.ListBookings(ctx, *request)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBookings error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if list.Bookings == nil {
		list.Bookings = []responses.Booking{}
	}
	return list, nil
}

func (uc *bookingUsecase) GetBookingStats(ctx context.Context) (json.RawMessage, error) {
	return uc.BookingClient.GetBookingStats(ctx)
}

func (uc *bookingUsecase) GetBooking(ctx context.Context, id string) (*responses.Booking, error) {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return uc.BookingClient.GetBooking(ctx, id)
}

func (uc *bookingUsecase) UpdateBookingStatus(ctx context.Context, id string, request *requests.UpdateBookingStatus) (*responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	utils.SanitizeUpdateBookingStatusRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("bookingUsecase.UpdateBookingStatus error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	booking, err := uc.BookingClient.UpdateBookingStatus(ctx, id, *request)
	if err != nil {
		uc.Log.Error("bookingUsecase.UpdateBookingStatus error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventBookingStatusUpdated, id, map[string]any{
		"status": request.Status,
	}))
	uc.Log.Info("bookingUsecase.UpdateBookingStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return booking, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, id string, request *requests.CancelBooking) (*responses.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := utils.ValidateUrlParamID(id); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	utils.SanitizeCancelBookingRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	booking, err := uc.BookingClient.CancelBooking(ctx, id, *request)
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventBookingCancelled, id, map[string]any{
		"reason": request.Reason,
	}))
	return booking, nil
}

func (uc *bookingUsecase) DeleteBooking(ctx context.Context, id string) error {
	if err := utils.ValidateUrlParamID(id); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}

	if err := uc.BookingClient.DeleteBooking(ctx, id); err != nil {
		uc.Log.Error("bookingUsecase.DeleteBooking error from superadmin API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}

	uc.AuditPublisher.Publish(ctx, utils.NewAuditEvent(ctx, constvars.AuditEventBookingDeleted, id, nil))
	return nil
}
