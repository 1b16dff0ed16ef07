package mocks

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
)

type BookingUsecase struct {
	mock.Mock
}

func bookingResult(args mock.Arguments) (*responses.Booking, error) {
	booking, _ := args.Get(0).(*responses.Booking)
	return booking, args.Error(1)
}

func (m *BookingUsecase) ListBookings(ctx context.Context, request *requests.ListBookings) (*responses.BookingList, error) {
	args := m.Called(ctx, request)
	list, _ := args.Get(0).(*responses.BookingList)
	return list, args.Error(1)
}

func (m *BookingUsecase) GetBookingStats(ctx context.Context) (json.RawMessage, error) {
	return rawResult(m.Called(ctx))
}

func (m *BookingUsecase) GetBooking(ctx context.Context, id string) (*responses.Booking, error) {
	return bookingResult(m.Called(ctx, id))
}

func (m *BookingUsecase) UpdateBookingStatus(ctx context.Context, id string, request *requests.UpdateBookingStatus) (*responses.Booking, error) {
	return bookingResult(m.Called(ctx, id, request))
}

func (m *BookingUsecase) CancelBooking(ctx context.Context, id string, request *requests.CancelBooking) (*responses.Booking, error) {
	return bookingResult(m.Called(ctx, id, request))
}

func (m *BookingUsecase) DeleteBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
