package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagos_eoi_backend/internals/constants"
	"lagos_eoi_backend/internals/features/applications/dto"
	"lagos_eoi_backend/internals/features/applications/model"
	helper "lagos_eoi_backend/internals/helpers"
)

var validateApplication = helper.NewValidator()

// referenceRetries bounds the regenerate loop when a generated reference
// collides with an existing row.
const referenceRetries = 3

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

// =======================
// ➕ Submit application (public)
// =======================
func (ctrl *ApplicationController) CreateApplication(c *fiber.Ctx) error {
	var body dto.CreateApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// 1) presence
	if field := body.MissingField(); field != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required field: "+field)
	}

	// 2) format
	if msg := body.FormatError(); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}
	if err := validateApplication.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// 3) duplicate phone — friendly recoverable error before the write
	var existing model.ApplicationModel
	err := ctrl.DB.Where("application_phone = ?", body.Phone).First(&existing).Error
	if err == nil {
		return helper.JsonErrorWithData(c, fiber.StatusConflict,
			"An application with this phone number already exists",
			fiber.Map{"referenceId": existing.ApplicationReferenceID})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonInternalError(c, "Failed to submit application. Please try again.", err)
	}

	// 4) persist
	application, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dateOfBirth value")
	}

	for attempt := 0; ; attempt++ {
		application.ApplicationReferenceID = helper.GenerateReferenceID()
		err = ctrl.DB.Create(&application).Error
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// the unique constraint is the authoritative guard: a racing
			// submission with the same phone wins, a reference collision
			// just gets a fresh reference
			if refErr := ctrl.DB.Where("application_phone = ?", body.Phone).First(&existing).Error; refErr == nil {
				return helper.JsonErrorWithData(c, fiber.StatusConflict,
					"An application with this phone number already exists",
					fiber.Map{"referenceId": existing.ApplicationReferenceID})
			}
			if attempt < referenceRetries {
				application.ApplicationID = uuid.Nil
				continue
			}
		}
		return helper.JsonInternalError(c, "Failed to submit application. Please try again.", err)
	}

	return helper.JsonSuccess(c, "Application submitted successfully", fiber.Map{
		"referenceId": application.ApplicationReferenceID,
	})
}

// =======================
// 📄 List applications (admin)
// =======================
func (ctrl *ApplicationController) GetAllApplications(c *fiber.Ctx) error {
	var applications []model.ApplicationModel
	if err := ctrl.DB.
		Order("application_created_at DESC").
		Find(&applications).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch applications", err)
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp = append(resp, dto.ToApplicationResponse(a))
	}
	return c.JSON(resp)
}

// =======================
// 🔍 Get single application (admin)
// =======================
func (ctrl *ApplicationController) GetApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}

	var application model.ApplicationModel
	if err := ctrl.DB.First(&application, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonInternalError(c, "Failed to fetch application", err)
	}

	return c.JSON(dto.ToApplicationResponse(application))
}

// =======================
// ✏️ Update application status (admin)
// =======================
func (ctrl *ApplicationController) UpdateApplicationStatus(c *fiber.Ctx) error {
	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !constants.ValidStatus(body.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status value")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}

	var application model.ApplicationModel
	if err := ctrl.DB.First(&application, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonInternalError(c, "Failed to update application status", err)
	}

	if err := ctrl.DB.Model(&application).
		Update("application_status", body.Status).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to update application status", err)
	}

	return helper.JsonSuccess(c, "Application status updated successfully", fiber.Map{
		"application": dto.ToApplicationResponse(application),
	})
}
