package route

import (
	"lagos_eoi_backend/internals/features/contact/controller"
	middlewares "lagos_eoi_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactPublicRoutes mounts the public enquiry endpoint.
func ContactPublicRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := controller.NewContactController(db)

	public := api.Group("/contact")
	public.Post("/", middlewares.SubmissionRateLimiter(), contactCtrl.CreateMessage)
}
