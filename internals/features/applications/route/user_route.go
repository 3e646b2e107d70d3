package route

import (
	"lagos_eoi_backend/internals/features/applications/controller"
	middlewares "lagos_eoi_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ApplicationPublicRoutes mounts the public intake endpoint.
func ApplicationPublicRoutes(api fiber.Router, db *gorm.DB) {
	applicationCtrl := controller.NewApplicationController(db)

	public := api.Group("/applications")
	public.Post("/", middlewares.SubmissionRateLimiter(), applicationCtrl.CreateApplication)
}
