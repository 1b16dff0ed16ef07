package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, c *controllers.BookingController) {
	router.Get("/", c.ListBookings)
	router.Get("/stats", c.GetBookingStats)
	router.Get("/{id}", c.GetBooking)
	router.Patch("/{id}/status", c.UpdateBookingStatus)
	router.Patch("/{id}/cancel", c.CancelBooking)
	router.Delete("/{id}", c.DeleteBooking)
}
