package route

import (
	"lagos_eoi_backend/internals/features/settings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SettingPublicRoutes exposes the configurable page copy.
func SettingPublicRoutes(api fiber.Router, db *gorm.DB) {
	settingCtrl := controller.NewSettingController(db)

	public := api.Group("/settings")
	public.Get("/", settingCtrl.GetSettings)
}
