package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lagos_eoi_backend/internals/constants"
	"lagos_eoi_backend/internals/features/admissions/model"
	helper "lagos_eoi_backend/internals/helpers"
)

const defaultAdmissionLimit = 50

type AdmissionController struct {
	DB *gorm.DB
}

func NewAdmissionController(db *gorm.DB) *AdmissionController {
	return &AdmissionController{DB: db}
}

// =======================
// 🔍 Lookup admissions (public)
// Query: ?listType=MAIN|SUPPLEMENTARY&search=&limit=50
// =======================
func (ctrl *AdmissionController) GetAdmissions(c *fiber.Ctx) error {
	listType := c.Query("listType")
	search := c.Query("search")
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultAdmissionLimit)))
	if err != nil || limit <= 0 {
		limit = defaultAdmissionLimit
	}

	if listType != "" && listType != constants.ListTypeMain && listType != constants.ListTypeSupplementary {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid listType value")
	}

	query := ctrl.DB.Model(&model.ArmyAdmissionModel{})
	if listType != "" {
		query = query.Where("army_admission_list_type = ?", listType)
	}
	if search != "" {
		// case-sensitive substring match, OR-combined across the name columns
		like := "%" + search + "%"
		query = query.Where(
			ctrl.DB.Where("army_admission_application_no LIKE ?", like).
				Or("army_admission_surname LIKE ?", like).
				Or("army_admission_first_name LIKE ?", like).
				Or("army_admission_other_name LIKE ?", like),
		)
	}

	var admissions []model.ArmyAdmissionModel
	if err := query.
		Order("army_admission_application_no ASC").
		Limit(limit).
		Find(&admissions).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch army admissions", err)
	}

	// counts are global per-listType totals, independent of any filter:
	// the lookup pages show the full roster sizes next to a filtered view
	type listCount struct {
		ListType string `gorm:"column:army_admission_list_type"`
		Count    int64  `gorm:"column:count"`
	}
	var grouped []listCount
	if err := ctrl.DB.Model(&model.ArmyAdmissionModel{}).
		Select("army_admission_list_type, COUNT(*) AS count").
		Group("army_admission_list_type").
		Find(&grouped).Error; err != nil {
		return helper.JsonInternalError(c, "Failed to fetch army admissions", err)
	}

	counts := make(map[string]int64, len(grouped))
	for _, g := range grouped {
		counts[g.ListType] = g.Count
	}

	return c.JSON(fiber.Map{
		"admissions": admissions,
		"counts":     counts,
		"total":      len(admissions),
	})
}
