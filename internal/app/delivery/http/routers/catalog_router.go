package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachServicePackageRoutes(router chi.Router, c *controllers.CatalogController) {
	router.Get("/", c.ListServicePackages)
	router.Post("/", c.CreateServicePackage)
	router.Get("/{id}", c.GetServicePackage)
	router.Put("/{id}", c.UpdateServicePackage)
	router.Delete("/{id}", c.DeleteServicePackage)
	router.Patch("/{id}/toggle-status", c.ToggleServicePackageStatus)
}

func attachServiceRoutes(router chi.Router, c *controllers.CatalogController) {
	router.Get("/", c.ListServices)
	router.Post("/", c.CreateService)
	router.Post("/bulk-update", c.BulkUpdateServices)
	router.Get("/{id}", c.GetService)
	router.Put("/{id}", c.UpdateService)
	router.Delete("/{id}", c.DeleteService)
	router.Patch("/{id}/toggle-status", c.ToggleServiceStatus)
}
