package superadmin_api

import (
	"context"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const bookingRecordKey = "booking"

func (c *Client) ListBookings(ctx context.Context, request requests.ListBookings) (*responses.BookingList, error) {
	c.Log.Info("superadminClient.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	query := utils.NewQueryBuilder().
		Int(constvars.QueryParamPage, request.Page).
		Int(constvars.QueryParamLimit, request.Limit).
		String(constvars.QueryParamSearch, request.Search).
		String(constvars.QueryParamStatus, request.Status).
		String(constvars.QueryParamServiceType, request.ServiceType).
		String(constvars.QueryParamDateFrom, request.DateFrom).
		String(constvars.QueryParamDateTo, request.DateTo).
		Values()

	envelope, err := c.do(ctx, constvars.MethodGet, constvars.SuperadminPathBookings, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.BookingList](envelope.Data, "", constvars.ResourceBooking)
}

func (c *Client) GetBookingStats(ctx context.Context) (json.RawMessage, error) {
	c.Log.Info("superadminClient.GetBookingStats called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.getData(ctx, constvars.SuperadminPathBookings+constvars.SuperadminSegmentStats, nil)
}

func (c *Client) GetBooking(ctx context.Context, id string) (*responses.Booking, error) {
	c.Log.Info("superadminClient.GetBooking called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodGet, recordPath(constvars.SuperadminPathBookings, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Booking](envelope.Data, bookingRecordKey, constvars.ResourceBooking)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id string, request requests.UpdateBookingStatus) (*responses.Booking, error) {
	c.Log.Info("superadminClient.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathBookings, id, constvars.SuperadminSegmentStatus), nil, request)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Booking](envelope.Data, bookingRecordKey, constvars.ResourceBooking)
}

func (c *Client) CancelBooking(ctx context.Context, id string, request requests.CancelBooking) (*responses.Booking, error) {
	c.Log.Info("superadminClient.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	envelope, err := c.do(ctx, constvars.MethodPatch, recordPath(constvars.SuperadminPathBookings, id, constvars.SuperadminSegmentCancel), nil, request)
	if err != nil {
		return nil, err
	}
	return decodeRecord[responses.Booking](envelope.Data, bookingRecordKey, constvars.ResourceBooking)
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	c.Log.Info("superadminClient.DeleteBooking called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	_, err := c.do(ctx, constvars.MethodDelete, recordPath(constvars.SuperadminPathBookings, id), nil, nil)
	return err
}
