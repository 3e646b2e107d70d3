package dto

import (
	"strings"
	"testing"
	"time"
)

func validRequest() CreateApplicationRequest {
	return CreateApplicationRequest{
		FirstName:      "Ade",
		LastName:       "Bello",
		Phone:          "08012345678",
		Email:          "ade@example.com",
		Gender:         "MALE",
		DateOfBirth:    time.Now().AddDate(-25, 0, 0).Format("2006-01-02"),
		LGA:            "Ikeja",
		PlaceOfOrigin:  "Ikeja",
		HomeAddress:    "12 Allen Avenue, Ikeja, Lagos",
		CurrentAddress: "12 Allen Avenue, Ikeja, Lagos",
		Qualification:  "WAEC/NECO",
		Branches:       []string{"army"},
	}
}

func TestMissingFieldOrder(t *testing.T) {
	r := CreateApplicationRequest{}
	if got := r.MissingField(); got != "firstName" {
		t.Errorf("empty request: MissingField() = %q, want firstName", got)
	}

	r = validRequest()
	r.Phone = "   "
	if got := r.MissingField(); got != "phone" {
		t.Errorf("blank phone: MissingField() = %q, want phone", got)
	}

	r = validRequest()
	r.Branches = nil
	if got := r.MissingField(); got != "branches" {
		t.Errorf("no branches: MissingField() = %q, want branches", got)
	}

	r = validRequest()
	if got := r.MissingField(); got != "" {
		t.Errorf("valid request: MissingField() = %q, want empty", got)
	}
}

func TestFormatErrorPhoneShapes(t *testing.T) {
	valid := []string{"08012345678", "07012345678", "09112345678", "+2348012345678"}
	for _, phone := range valid {
		r := validRequest()
		r.Phone = phone
		if msg := r.FormatError(); msg != "" {
			t.Errorf("phone %q: FormatError() = %q, want ok", phone, msg)
		}
	}

	invalid := []string{"0601234567", "8012345678", "0801234567", "080123456789", "+23408012345678"}
	for _, phone := range invalid {
		r := validRequest()
		r.Phone = phone
		if msg := r.FormatError(); msg != "Invalid phone number format" {
			t.Errorf("phone %q: FormatError() = %q, want format error", phone, msg)
		}
	}
}

func TestFormatErrorAgeBand(t *testing.T) {
	now := time.Now()

	r := validRequest()
	r.DateOfBirth = now.AddDate(-18, 0, -1).Format("2006-01-02")
	if msg := r.FormatError(); msg != "" {
		t.Errorf("just turned 18: FormatError() = %q, want ok", msg)
	}

	r.DateOfBirth = now.AddDate(-17, 0, 0).Format("2006-01-02")
	if msg := r.FormatError(); !strings.Contains(msg, "18 and 35") {
		t.Errorf("17 years: FormatError() = %q, want age-band error", msg)
	}

	r.DateOfBirth = now.AddDate(-36, 0, -1).Format("2006-01-02")
	if msg := r.FormatError(); !strings.Contains(msg, "18 and 35") {
		t.Errorf("over 35: FormatError() = %q, want age-band error", msg)
	}
}

func TestParseDateOfBirthAcceptsBothShapes(t *testing.T) {
	r := validRequest()

	r.DateOfBirth = "2000-06-15"
	if _, err := r.ParseDateOfBirth(); err != nil {
		t.Errorf("plain date: %v", err)
	}

	r.DateOfBirth = "2000-06-15T00:00:00Z"
	if _, err := r.ParseDateOfBirth(); err != nil {
		t.Errorf("rfc3339: %v", err)
	}

	r.DateOfBirth = "15/06/2000"
	if _, err := r.ParseDateOfBirth(); err == nil {
		t.Errorf("slash date parsed, want error")
	}
}

func TestToModelTrimsAndEncodesLists(t *testing.T) {
	r := validRequest()
	r.FirstName = "  Ade "
	r.Email = ""
	r.Branches = []string{"army", "navy"}
	r.Skills = nil

	m, err := r.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ApplicationFirstName != "Ade" {
		t.Errorf("firstName = %q, want trimmed", m.ApplicationFirstName)
	}
	if m.ApplicationEmail != nil {
		t.Errorf("empty email must map to nil")
	}
	if string(m.ApplicationBranches) != `["army","navy"]` {
		t.Errorf("branches = %s", m.ApplicationBranches)
	}
	if string(m.ApplicationSkills) != `[]` {
		t.Errorf("nil skills must encode as [], got %s", m.ApplicationSkills)
	}
}
