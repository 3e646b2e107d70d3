package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagos_eoi_backend/internals/features/posters/dto"
	"lagos_eoi_backend/internals/features/posters/model"
	helper "lagos_eoi_backend/internals/helpers"
	ossHelper "lagos_eoi_backend/internals/helpers/oss"
)

var validatePoster = helper.NewValidator()

type PosterController struct {
	DB *gorm.DB
}

func NewPosterController(db *gorm.DB) *PosterController {
	return &PosterController{DB: db}
}

// =======================
// 📄 Active posters for the carousel (public)
// =======================
func (ctrl *PosterController) GetActivePosters(c *fiber.Ctx) error {
	var posters []model.PosterModel
	if err := ctrl.DB.
		Where("poster_active = ?", true).
		Order("poster_sort_order ASC").
		Find(&posters).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch posters", err)
	}
	return c.JSON(posters)
}

// =======================
// 📄 All posters (admin)
// =======================
func (ctrl *PosterController) GetAllPosters(c *fiber.Ctx) error {
	var posters []model.PosterModel
	if err := ctrl.DB.
		Order("poster_sort_order ASC").
		Find(&posters).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch posters", err)
	}
	return c.JSON(posters)
}

// =======================
// ➕ Create poster (admin)
// =======================
func (ctrl *PosterController) CreatePoster(c *fiber.Ctx) error {
	var body dto.CreatePosterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePoster.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	poster := body.ToModel()
	if err := ctrl.DB.Create(&poster).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to create poster", err)
	}
	return helper.JsonSuccess(c, "Poster created", fiber.Map{"poster": poster})
}

// =======================
// ✏️ Update poster (admin, partial)
// =======================
func (ctrl *PosterController) UpdatePoster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Poster not found")
	}

	var body dto.UpdatePosterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePoster.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	updates := body.Updates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var poster model.PosterModel
	if err := ctrl.DB.First(&poster, "poster_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Poster not found")
		}
		return helper.JsonInternalError(c, "Failed to update poster", err)
	}

	if err := ctrl.DB.Model(&poster).Updates(updates).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to update poster", err)
	}
	return helper.JsonSuccess(c, "Poster updated", fiber.Map{"poster": poster})
}

// =======================
// 🗑️ Delete poster (admin)
// =======================
func (ctrl *PosterController) DeletePoster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Poster not found")
	}

	res := ctrl.DB.Delete(&model.PosterModel{}, "poster_id = ?", id)
	if res.Error != nil {
		return helper.JsonInternalError(c, "Failed to delete poster", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Poster not found")
	}
	return helper.JsonSuccess(c, "Poster deleted", nil)
}

// =======================
// 🖼️ Upload poster image (admin, multipart)
// =======================
func (ctrl *PosterController) UploadPosterImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing image file")
	}

	url, err := ossHelper.UploadPosterImage(fileHeader)
	if err != nil {
		return helper.JsonInternalError(c, "Failed to upload poster image", err)
	}
	return helper.JsonSuccess(c, "Image uploaded", fiber.Map{"imageUrl": url})
}
