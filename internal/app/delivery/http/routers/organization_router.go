package routers

import (
	"superadmin-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachOrganizationRoutes(router chi.Router, c *controllers.OrganizationController, wizard *controllers.OrganizationWizardController) {
	router.Get("/", c.ListOrganizations)
	router.Get("/stats", c.GetOrganizationStats)
	router.Post("/logo", c.UploadLogo)

	router.Route("/wizards", func(r chi.Router) {
		r.Post("/", wizard.CreateWizard)
		r.Route("/{wizardId}", func(r chi.Router) {
			r.Get("/", wizard.GetWizard)
			r.Put("/values", wizard.SetValues)
			r.Post("/validate", wizard.ValidateStep)
			r.Post("/next", wizard.Advance)
			r.Post("/back", wizard.Retreat)
			r.Delete("/", wizard.DiscardWizard)
		})
	})

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", c.GetOrganization)
		r.Put("/", c.UpdateOrganization)
		r.Delete("/", c.DeleteOrganization)
		r.Patch("/toggle-status", c.ToggleOrganizationStatus)
	})
}
