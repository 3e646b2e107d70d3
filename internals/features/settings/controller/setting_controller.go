package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lagos_eoi_backend/internals/features/settings/model"
	helper "lagos_eoi_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// =======================
// 📄 Read all settings as a flat key/value object (public)
// =======================
func (ctrl *SettingController) GetSettings(c *fiber.Ctx) error {
	var settings []model.SiteSettingModel
	if err := ctrl.DB.Find(&settings).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch settings", err)
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.SiteSettingKey] = s.SiteSettingValue
	}
	return c.JSON(out)
}

// =======================
// ✏️ Bulk upsert (admin)
// =======================
// Each key is an independent upsert, not one transaction: a mid-loop
// failure leaves earlier keys applied.
func (ctrl *SettingController) UpsertSettings(c *fiber.Ctx) error {
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(body) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No settings provided")
	}

	for key, value := range body {
		setting := model.SiteSettingModel{
			SiteSettingKey:   key,
			SiteSettingValue: value,
		}
		if err := ctrl.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_setting_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"site_setting_value": value}),
		}).Create(&setting).Error; err != nil {
			return helper.JsonInternalError(c, "Failed to update settings", err)
		}
	}

	return helper.JsonSuccess(c, "Settings updated successfully", nil)
}
