package route

import (
	"lagos_eoi_backend/internals/features/users/controller"
	middlewares "lagos_eoi_backend/internals/middlewares"
	authMiddleware "lagos_eoi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts the admin sign-in surface.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), authCtrl.GoogleLogin)
	auth.Get("/me", authMiddleware.AdminAuthMiddleware(), authCtrl.Me)
}
