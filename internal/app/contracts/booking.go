package contracts

import (
	"context"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type BookingUsecase interface {
	ListBookings(ctx context.Context, request *requests.ListBookings) (*responses.BookingList, error)
	GetBookingStats(ctx context.Context) (json.RawMessage, error)
	GetBooking(ctx context.Context, id string) (*responses.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, request *requests.UpdateBookingStatus) (*responses.Booking, error)
	CancelBooking(ctx context.Context, id string, request *requests.CancelBooking) (*responses.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}
