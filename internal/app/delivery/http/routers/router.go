package routers

import (
	"fmt"
	"strings"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/delivery/http/controllers"
	"superadmin-service/internal/app/delivery/http/middlewares"
	"superadmin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Controllers groups every controller mounted by SetupRoutes.
type Controllers struct {
	Auth               *controllers.AuthController
	Dashboard          *controllers.DashboardController
	Organization       *controllers.OrganizationController
	OrganizationWizard *controllers.OrganizationWizardController
	Member             *controllers.MemberController
	Booking            *controllers.BookingController
	CMS                *controllers.CMSController
	Catalog            *controllers.CatalogController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	c Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.AccessLog)
	router.Use(middlewares.Recoverer)
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, c.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/dashboard", func(r chi.Router) {
					attachDashboardRoutes(r, c.Dashboard)
				})
				r.Route("/organizations", func(r chi.Router) {
					attachOrganizationRoutes(r, c.Organization, c.OrganizationWizard)
				})
				r.Route("/users", func(r chi.Router) {
					attachUserRoutes(r, c.Member)
				})
				r.Route("/doctors", func(r chi.Router) {
					attachDoctorRoutes(r, c.Member)
				})
				r.Route("/bookings", func(r chi.Router) {
					attachBookingRoutes(r, c.Booking)
				})
				r.Route("/cms", func(r chi.Router) {
					attachCMSRoutes(r, c.CMS)
				})
				r.Route("/service-packages", func(r chi.Router) {
					attachServicePackageRoutes(r, c.Catalog)
				})
				r.Route("/services", func(r chi.Router) {
					attachServiceRoutes(r, c.Catalog)
				})
			})
		})
	})
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
