package route

import (
	"lagos_eoi_backend/internals/features/posters/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PosterAdminRoutes mounts poster management.
func PosterAdminRoutes(api fiber.Router, db *gorm.DB) {
	posterCtrl := controller.NewPosterController(db)

	admin := api.Group("/posters")
	admin.Get("/all", posterCtrl.GetAllPosters)
	admin.Post("/", posterCtrl.CreatePoster)
	admin.Post("/upload-image", posterCtrl.UploadPosterImage)
	admin.Patch("/:id", posterCtrl.UpdatePoster)
	admin.Delete("/:id", posterCtrl.DeletePoster)
}
