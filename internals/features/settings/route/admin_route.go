package route

import (
	"lagos_eoi_backend/internals/features/settings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SettingAdminRoutes mounts the bulk upsert endpoint.
func SettingAdminRoutes(api fiber.Router, db *gorm.DB) {
	settingCtrl := controller.NewSettingController(db)

	admin := api.Group("/settings")
	admin.Post("/", settingCtrl.UpsertSettings)
}
