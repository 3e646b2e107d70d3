package route

import (
	"lagos_eoi_backend/internals/features/admissions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdmissionPublicRoutes mounts the read-only roster lookup.
func AdmissionPublicRoutes(api fiber.Router, db *gorm.DB) {
	admissionCtrl := controller.NewAdmissionController(db)

	public := api.Group("/army-admissions")
	public.Get("/", admissionCtrl.GetAdmissions)
}
