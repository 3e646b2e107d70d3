package route

import (
	"lagos_eoi_backend/internals/features/applications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ApplicationAdminRoutes mounts the back-office table/detail/status endpoints.
func ApplicationAdminRoutes(api fiber.Router, db *gorm.DB) {
	applicationCtrl := controller.NewApplicationController(db)

	admin := api.Group("/applications")
	admin.Get("/", applicationCtrl.GetAllApplications)
	admin.Get("/:id", applicationCtrl.GetApplication)
	admin.Patch("/:id", applicationCtrl.UpdateApplicationStatus)
}
