package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCMSRoutes(router chi.Router, c *controllers.CMSController) {
	router.Get("/", c.ListCMSContents)
	router.Post("/", c.CreateCMSContent)
	router.Get("/{id}", c.GetCMSContent)
	router.Patch("/{id}", c.UpdateCMSContent)
	router.Delete("/{id}", c.DeleteCMSContent)
}
