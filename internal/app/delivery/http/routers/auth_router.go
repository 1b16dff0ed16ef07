package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"
	"superadmin-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/profile", authController.GetProfile)
}
