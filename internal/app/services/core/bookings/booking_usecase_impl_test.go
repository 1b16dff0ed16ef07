package bookings

import (
	"context"
	"strings"
	"superadmin-service/internal/app/services/shared/mocks"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestBookingUsecase_UpdateBookingStatus(t *testing.T) {
	tests := []struct {
		name       string
		request    requests.UpdateBookingStatus
		wantStatus string
		wantErr    bool
	}{
		{name: "normalized status", request: requests.UpdateBookingStatus{Status: " Confirmed "}, wantStatus: "confirmed"},
		{name: "unknown status", request: requests.UpdateBookingStatus{Status: "archived"}, wantErr: true},
		{name: "missing status", request: requests.UpdateBookingStatus{}, wantErr: true},
		{name: "reason too long", request: requests.UpdateBookingStatus{Status: "cancelled", Reason: strings.Repeat("r", 501)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.SuperadminClient)
			audit := new(mocks.AuditPublisher)
			uc := NewBookingUsecase(client, audit, zap.NewNop())

			if !tt.wantErr {
				client.On("UpdateBookingStatus", mock.Anything, "b-1", requests.UpdateBookingStatus{Status: tt.wantStatus}).
					Return(&responses.Booking{ID: "b-1", Status: tt.wantStatus}, nil).Once()
				audit.On("Publish", mock.Anything, mock.MatchedBy(func(event requests.AuditEvent) bool {
					return event.Event == constvars.AuditEventBookingStatusUpdated && event.Attributes["status"] == tt.wantStatus
				})).Once()
			}

			request := tt.request
			booking, err := uc.UpdateBookingStatus(context.Background(), "b-1", &request)

			if tt.wantErr {
				assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
				client.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, booking.Status)
			client.AssertExpectations(t)
			audit.AssertExpectations(t)
		})
	}
}

func TestBookingUsecase_CancelBooking(t *testing.T) {
	client := new(mocks.SuperadminClient)
	audit := new(mocks.AuditPublisher)
	client.On("CancelBooking", mock.Anything, "b-2", requests.CancelBooking{Reason: "duplicate"}).
		Return(&responses.Booking{ID: "b-2", Status: constvars.BookingStatusCancelled}, nil).Once()
	audit.On("Publish", mock.Anything, mock.Anything).Once()

	uc := NewBookingUsecase(client, audit, zap.NewNop())
	booking, err := uc.CancelBooking(context.Background(), "b-2", &requests.CancelBooking{Reason: "  duplicate "})

	require.NoError(t, err)
	assert.Equal(t, constvars.BookingStatusCancelled, booking.Status)
	audit.AssertExpectations(t)
}

func TestBookingUsecase_ListBookings(t *testing.T) {
	t.Run("Rejects an unknown service type", func(t *testing.T) {
		client := new(mocks.SuperadminClient)
		uc := NewBookingUsecase(client, new(mocks.AuditPublisher), zap.NewNop())

		_, err := uc.ListBookings(context.Background(), &requests.ListBookings{Page: 1, Limit: 10, ServiceType: "spa"})

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Forwards a valid filter", func(t *testing.T) {
		client := new(mocks.SuperadminClient)
		request := requests.ListBookings{Page: 2, Limit: 20, Status: constvars.BookingStatusPending, ServiceType: constvars.ServiceTypeLabTest, DateFrom: "2026-01-01"}
		client.On("ListBookings", mock.Anything, request).Return(&responses.BookingList{}, nil).Once()
		uc := NewBookingUsecase(client, new(mocks.AuditPublisher), zap.NewNop())

		list, err := uc.ListBookings(context.Background(), &request)

		require.NoError(t, err)
		assert.NotNil(t, list.Bookings)
	})
}
