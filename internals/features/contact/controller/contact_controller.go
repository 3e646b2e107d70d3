package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagos_eoi_backend/internals/features/contact/dto"
	"lagos_eoi_backend/internals/features/contact/model"
	helper "lagos_eoi_backend/internals/helpers"
)

var validateContact = helper.NewValidator()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =======================
// ➕ Submit enquiry (public)
// =======================
func (ctrl *ContactController) CreateMessage(c *fiber.Ctx) error {
	var body dto.CreateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	message := body.ToModel()
	if err := ctrl.DB.Create(&message).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to send message", err)
	}

	return helper.JsonSuccess(c, "Message sent successfully", nil)
}

// =======================
// 📄 List enquiries, newest first (admin)
// =======================
func (ctrl *ContactController) GetAllMessages(c *fiber.Ctx) error {
	var messages []model.ContactMessageModel
	if err := ctrl.DB.
		Order("contact_message_created_at DESC").
		Find(&messages).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch messages", err)
	}
	return c.JSON(messages)
}

// =======================
// ✏️ Mark resolved / unresolved (admin)
// =======================
func (ctrl *ContactController) UpdateResolved(c *fiber.Ctx) error {
	var body dto.UpdateResolvedRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.IsResolved == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid isResolved value")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	var message model.ContactMessageModel
	if err := ctrl.DB.First(&message, "contact_message_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonInternalError(c, "Failed to update message", err)
	}

	if err := ctrl.DB.Model(&message).
		Update("contact_message_is_resolved", *body.IsResolved).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to update message", err)
	}

	return helper.JsonSuccess(c, "", fiber.Map{"message": message})
}

// =======================
// 🗑️ Delete enquiry (admin, hard delete)
// =======================
func (ctrl *ContactController) DeleteMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	res := ctrl.DB.Delete(&model.ContactMessageModel{}, "contact_message_id = ?", id)
	if res.Error != nil {
		return helper.JsonInternalError(c, "Failed to delete message", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	return helper.JsonSuccess(c, "Message deleted successfully", nil)
}
