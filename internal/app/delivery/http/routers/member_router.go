package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, c *controllers.MemberController) {
	router.Get("/", c.ListUsers)
	router.Get("/search", c.SearchUsers)
	router.Get("/stats", c.GetUserStats)
	router.Get("/{id}", c.GetUser)
	router.Patch("/{id}/toggle-status", c.ToggleUserStatus)
}

func attachDoctorRoutes(router chi.Router, c *controllers.MemberController) {
	router.Get("/", c.ListDoctors)
	router.Get("/search", c.SearchDoctors)
	router.Get("/stats", c.GetDoctorStats)
	router.Get("/specializations", c.GetDoctorSpecializations)
	router.Get("/{id}", c.GetDoctor)
	router.Patch("/{id}/toggle-status", c.ToggleDoctorStatus)
}
