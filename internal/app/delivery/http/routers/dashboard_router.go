package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, c *controllers.DashboardController) {
	router.Get("/overview", c.GetOverview)
	router.Get("/stats", c.GetStats)
}
