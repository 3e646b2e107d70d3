package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArmyAdmissionModel represents the army_admissions table: a read-only
// roster seeded once from the official MAIN / SUPPLEMENTARY lists and
// never mutated through the exposed API.
type ArmyAdmissionModel struct {
	ArmyAdmissionID            uuid.UUID `gorm:"column:army_admission_id;type:uuid;primaryKey" json:"id"`
	ArmyAdmissionApplicationNo string    `gorm:"column:army_admission_application_no;type:varchar(30);not null;index" json:"applicationNo"`
	ArmyAdmissionSurname       string    `gorm:"column:army_admission_surname;type:text;not null" json:"surname"`
	ArmyAdmissionFirstName     string    `gorm:"column:army_admission_first_name;type:text;not null" json:"firstName"`
	ArmyAdmissionOtherName     *string   `gorm:"column:army_admission_other_name;type:text" json:"otherName"`
	ArmyAdmissionListType      string    `gorm:"column:army_admission_list_type;type:varchar(20);not null;index" json:"listType"`
	ArmyAdmissionCreatedAt     time.Time `gorm:"column:army_admission_created_at;autoCreateTime" json:"createdAt"`
}

func (ArmyAdmissionModel) TableName() string {
	return "army_admissions"
}

func (m *ArmyAdmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArmyAdmissionID == uuid.Nil {
		m.ArmyAdmissionID = uuid.New()
	}
	return nil
}
