package route

import (
	"lagos_eoi_backend/internals/features/contact/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactAdminRoutes mounts the back-office inbox endpoints.
func ContactAdminRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := controller.NewContactController(db)

	admin := api.Group("/contact")
	admin.Get("/", contactCtrl.GetAllMessages)
	admin.Patch("/:id", contactCtrl.UpdateResolved)
	admin.Delete("/:id", contactCtrl.DeleteMessage)
}
