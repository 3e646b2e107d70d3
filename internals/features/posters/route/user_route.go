package route

import (
	"lagos_eoi_backend/internals/features/posters/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PosterPublicRoutes mounts the carousel feed.
func PosterPublicRoutes(api fiber.Router, db *gorm.DB) {
	posterCtrl := controller.NewPosterController(db)

	public := api.Group("/posters")
	public.Get("/", posterCtrl.GetActivePosters)
}
