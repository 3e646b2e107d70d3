// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionRoute "lagos_eoi_backend/internals/features/admissions/route"
	applicationRoute "lagos_eoi_backend/internals/features/applications/route"
	contactRoute "lagos_eoi_backend/internals/features/contact/route"
	posterRoute "lagos_eoi_backend/internals/features/posters/route"
	settingRoute "lagos_eoi_backend/internals/features/settings/route"
	userRoute "lagos_eoi_backend/internals/features/users/route"
	authMiddleware "lagos_eoi_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the portal surface: an open /api group for the
// public pages and a JWT-guarded group for the back office.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	userRoute.AuthRoutes(public, db)
	applicationRoute.ApplicationPublicRoutes(public, db)
	contactRoute.ContactPublicRoutes(public, db)
	settingRoute.SettingPublicRoutes(public, db)
	admissionRoute.AdmissionPublicRoutes(public, db)
	posterRoute.PosterPublicRoutes(public, db)

	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api", authMiddleware.AdminAuthMiddleware())

	applicationRoute.ApplicationAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)
	posterRoute.PosterAdminRoutes(admin, db)
}
