package dto

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"

	"lagos_eoi_backend/internals/constants"
	"lagos_eoi_backend/internals/features/applications/model"
)

// ============================
// Create Request DTO
// ============================

type CreateApplicationRequest struct {
	FirstName  string `json:"firstName" validate:"required,min=2"`
	LastName   string `json:"lastName" validate:"required,min=2"`
	MiddleName string `json:"middleName"`

	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`

	LGA            string `json:"lga" validate:"required"`
	PlaceOfOrigin  string `json:"placeOfOrigin" validate:"required,min=2"`
	HomeAddress    string `json:"homeAddress" validate:"required,min=10"`
	CurrentAddress string `json:"currentAddress" validate:"required,min=10"`

	Qualification    string   `json:"qualification" validate:"required"`
	NumberOfPasses   *int     `json:"numberOfPasses" validate:"omitempty,min=0"`
	NumberOfSittings *int     `json:"numberOfSittings" validate:"omitempty,min=1,max=2"`
	YearOfExam       string   `json:"yearOfExam"`
	Branches         []string `json:"branches"`
	Skills           []string `json:"skills"`
}

// requiredFields lists every field the intake contract demands, in the
// order missing-field errors are reported.
var requiredFields = []struct {
	name  string
	empty func(r *CreateApplicationRequest) bool
}{
	{"firstName", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.FirstName) == "" }},
	{"lastName", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.LastName) == "" }},
	{"phone", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.Phone) == "" }},
	{"gender", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.Gender) == "" }},
	{"dateOfBirth", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.DateOfBirth) == "" }},
	{"lga", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.LGA) == "" }},
	{"placeOfOrigin", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.PlaceOfOrigin) == "" }},
	{"homeAddress", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.HomeAddress) == "" }},
	{"currentAddress", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.CurrentAddress) == "" }},
	{"qualification", func(r *CreateApplicationRequest) bool { return strings.TrimSpace(r.Qualification) == "" }},
	{"branches", func(r *CreateApplicationRequest) bool { return len(r.Branches) == 0 }},
}

// MissingField returns the name of the first absent required field, or "".
func (r *CreateApplicationRequest) MissingField() string {
	for _, f := range requiredFields {
		if f.empty(r) {
			return f.name
		}
	}
	return ""
}

var (
	phoneRegex = regexp.MustCompile(constants.PhonePattern)
	emailRegex = regexp.MustCompile(constants.EmailPattern)
)

// FormatError runs the service-boundary format checks and returns the
// first failure message, or "". Presence is assumed already checked.
func (r *CreateApplicationRequest) FormatError() string {
	if !phoneRegex.MatchString(r.Phone) {
		return "Invalid phone number format"
	}
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		return "Invalid email format"
	}
	if !constants.ValidGender(r.Gender) {
		return "Invalid gender value"
	}
	dob, err := r.ParseDateOfBirth()
	if err != nil {
		return "Invalid dateOfBirth value"
	}
	if age := ageAt(dob, time.Now()); age < constants.MinApplicantAge || age > constants.MaxApplicantAge {
		return fmt.Sprintf("Applicant must be between %d and %d years old", constants.MinApplicantAge, constants.MaxApplicantAge)
	}
	if !constants.ValidLGA(r.LGA) {
		return "Unknown LGA"
	}
	if !constants.ValidQualification(r.Qualification) {
		return "Unknown qualification"
	}
	for _, b := range r.Branches {
		if !constants.ValidBranch(b) {
			return "Unknown branch: " + b
		}
	}
	for _, s := range r.Skills {
		if !constants.ValidSkill(s) {
			return "Unknown skill: " + s
		}
	}
	return ""
}

// ParseDateOfBirth accepts the form's YYYY-MM-DD shape or a full RFC3339 stamp.
func (r *CreateApplicationRequest) ParseDateOfBirth() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", r.DateOfBirth); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, r.DateOfBirth)
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	return age
}

// ToModel builds the persistable record. The reference ID and status are
// set by the controller / model hook.
func (r *CreateApplicationRequest) ToModel() (model.ApplicationModel, error) {
	dob, err := r.ParseDateOfBirth()
	if err != nil {
		return model.ApplicationModel{}, err
	}
	branchesJSON, err := json.Marshal(r.Branches)
	if err != nil {
		return model.ApplicationModel{}, err
	}
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return model.ApplicationModel{}, err
	}

	return model.ApplicationModel{
		ApplicationFirstName:        strings.TrimSpace(r.FirstName),
		ApplicationLastName:         strings.TrimSpace(r.LastName),
		ApplicationMiddleName:       strptr(strings.TrimSpace(r.MiddleName)),
		ApplicationPhone:            strings.TrimSpace(r.Phone),
		ApplicationEmail:            strptr(strings.TrimSpace(r.Email)),
		ApplicationGender:           r.Gender,
		ApplicationDateOfBirth:      dob,
		ApplicationLGA:              r.LGA,
		ApplicationPlaceOfOrigin:    strings.TrimSpace(r.PlaceOfOrigin),
		ApplicationHomeAddress:      strings.TrimSpace(r.HomeAddress),
		ApplicationCurrentAddress:   strings.TrimSpace(r.CurrentAddress),
		ApplicationQualification:    r.Qualification,
		ApplicationNumberOfPasses:   r.NumberOfPasses,
		ApplicationNumberOfSittings: r.NumberOfSittings,
		ApplicationYearOfExam:       strptr(strings.TrimSpace(r.YearOfExam)),
		ApplicationBranches:         datatypes.JSON(branchesJSON),
		ApplicationSkills:           datatypes.JSON(skillsJSON),
	}, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ============================
// Status patch DTO
// ============================

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ============================
// Response DTO (display shape)
// ============================

type ApplicationResponse struct {
	ID                   string  `json:"id"`
	ReferenceID          string  `json:"referenceId"`
	FullName             string  `json:"fullName"`
	Phone                string  `json:"phone"`
	Email                string  `json:"email"`
	DateOfBirth          string  `json:"dateOfBirth"`
	Gender               string  `json:"gender"`
	LGA                  string  `json:"lga"`
	CurrentAddress       string  `json:"currentAddress"`
	PermanentAddress     string  `json:"permanentAddress"`
	HighestQualification string  `json:"highestQualification"`
	NumberOfPasses       int     `json:"numberOfPasses"`
	ExamYear             string  `json:"examYear"`
	Branches             string  `json:"branches"`
	PreferredSkills      *string `json:"preferredSkills"`
	Status               string  `json:"status"`
	CreatedAt            string  `json:"createdAt"`
}

// ToApplicationResponse unpacks the stored row into the admin display
// shape: joined full name and human-readable branch/skill strings.
func ToApplicationResponse(m model.ApplicationModel) ApplicationResponse {
	fullName := m.ApplicationFirstName
	if m.ApplicationMiddleName != nil && *m.ApplicationMiddleName != "" {
		fullName += " " + *m.ApplicationMiddleName
	}
	fullName += " " + m.ApplicationLastName

	email := ""
	if m.ApplicationEmail != nil {
		email = *m.ApplicationEmail
	}
	passes := 0
	if m.ApplicationNumberOfPasses != nil {
		passes = *m.ApplicationNumberOfPasses
	}
	examYear := ""
	if m.ApplicationYearOfExam != nil {
		examYear = *m.ApplicationYearOfExam
	}

	return ApplicationResponse{
		ID:                   m.ApplicationID.String(),
		ReferenceID:          m.ApplicationReferenceID,
		FullName:             fullName,
		Phone:                m.ApplicationPhone,
		Email:                email,
		DateOfBirth:          m.ApplicationDateOfBirth.UTC().Format(time.RFC3339),
		Gender:               m.ApplicationGender,
		LGA:                  m.ApplicationLGA,
		CurrentAddress:       m.ApplicationCurrentAddress,
		PermanentAddress:     m.ApplicationHomeAddress,
		HighestQualification: m.ApplicationQualification,
		NumberOfPasses:       passes,
		ExamYear:             examYear,
		Branches:             joinJSONList(m.ApplicationBranches),
		PreferredSkills:      joinJSONListPtr(m.ApplicationSkills),
		Status:               m.ApplicationStatus,
		CreatedAt:            m.ApplicationCreatedAt.UTC().Format(time.RFC3339),
	}
}

func joinJSONList(raw datatypes.JSON) string {
	var list []string
	if len(raw) == 0 {
		return ""
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return ""
	}
	return strings.Join(list, ", ")
}

// joinJSONListPtr returns nil for an empty list so the display layer can
// tell "no skills" apart from an empty string.
func joinJSONListPtr(raw datatypes.JSON) *string {
	s := joinJSONList(raw)
	if s == "" {
		return nil
	}
	return &s
}
