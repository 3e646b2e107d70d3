package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lagos_eoi_backend/internals/constants"
)

// ApplicationModel represents the applications table. Branches and skills
// are stored as ordered JSON arrays; phone and reference_id carry unique
// indexes as the authoritative duplicate guard.
type ApplicationModel struct {
	ApplicationID          uuid.UUID `gorm:"column:application_id;type:uuid;primaryKey" json:"application_id"`
	ApplicationReferenceID string    `gorm:"column:application_reference_id;type:varchar(32);not null;uniqueIndex" json:"application_reference_id"`

	ApplicationFirstName  string  `gorm:"column:application_first_name;type:text;not null" json:"application_first_name"`
	ApplicationLastName   string  `gorm:"column:application_last_name;type:text;not null" json:"application_last_name"`
	ApplicationMiddleName *string `gorm:"column:application_middle_name;type:text" json:"application_middle_name,omitempty"`

	ApplicationPhone       string    `gorm:"column:application_phone;type:varchar(20);not null;uniqueIndex" json:"application_phone"`
	ApplicationEmail       *string   `gorm:"column:application_email;type:text" json:"application_email,omitempty"`
	ApplicationGender      string    `gorm:"column:application_gender;type:varchar(10);not null" json:"application_gender"`
	ApplicationDateOfBirth time.Time `gorm:"column:application_date_of_birth;not null" json:"application_date_of_birth"`

	ApplicationLGA            string `gorm:"column:application_lga;type:text;not null" json:"application_lga"`
	ApplicationPlaceOfOrigin  string `gorm:"column:application_place_of_origin;type:text;not null" json:"application_place_of_origin"`
	ApplicationHomeAddress    string `gorm:"column:application_home_address;type:text;not null" json:"application_home_address"`
	ApplicationCurrentAddress string `gorm:"column:application_current_address;type:text;not null" json:"application_current_address"`

	ApplicationQualification    string  `gorm:"column:application_qualification;type:text;not null" json:"application_qualification"`
	ApplicationNumberOfPasses   *int    `gorm:"column:application_number_of_passes" json:"application_number_of_passes,omitempty"`
	ApplicationNumberOfSittings *int    `gorm:"column:application_number_of_sittings" json:"application_number_of_sittings,omitempty"`
	ApplicationYearOfExam       *string `gorm:"column:application_year_of_exam;type:varchar(10)" json:"application_year_of_exam,omitempty"`

	ApplicationBranches datatypes.JSON `gorm:"column:application_branches;not null" json:"application_branches"`
	ApplicationSkills   datatypes.JSON `gorm:"column:application_skills" json:"application_skills"`

	ApplicationStatus    string    `gorm:"column:application_status;type:varchar(20);not null;default:'NEW'" json:"application_status"`
	ApplicationCreatedAt time.Time `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}

// BeforeCreate fills the id and the initial status.
func (m *ApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ApplicationID == uuid.Nil {
		m.ApplicationID = uuid.New()
	}
	if m.ApplicationStatus == "" {
		m.ApplicationStatus = constants.StatusNew
	}
	return nil
}
