package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "lagos_eoi_backend/internals/databases"
	applicationRoute "lagos_eoi_backend/internals/features/applications/route"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// in-memory sqlite lives per connection
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	api := app.Group("/api")
	applicationRoute.ApplicationPublicRoutes(api, db)
	applicationRoute.ApplicationAdminRoutes(api, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func validPayload() map[string]interface{} {
	dob := time.Now().AddDate(-25, 0, 0).Format("2006-01-02")
	return map[string]interface{}{
		"firstName":        "Ade",
		"lastName":         "Bello",
		"phone":            "08012345678",
		"email":            "ade.bello@example.com",
		"gender":           "MALE",
		"dateOfBirth":      dob,
		"lga":              "Ikeja",
		"placeOfOrigin":    "Ikeja",
		"homeAddress":      "12 Allen Avenue, Ikeja, Lagos",
		"currentAddress":   "12 Allen Avenue, Ikeja, Lagos",
		"qualification":    "WAEC/NECO",
		"numberOfPasses":   6,
		"numberOfSittings": 1,
		"yearOfExam":       "2019",
		"branches":         []string{"army", "navy"},
		"skills":           []string{"Cybersecurity"},
	}
}

func TestCreateApplicationReturnsReference(t *testing.T) {
	app := newTestApp(t)

	resp, data := doJSON(t, app, http.MethodPost, "/api/applications", validPayload())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", resp.StatusCode, data)
	}

	var body struct {
		Success     bool   `json:"success"`
		ReferenceID string `json:"referenceId"`
		Message     string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success {
		t.Errorf("success = false, want true")
	}
	if !strings.HasPrefix(body.ReferenceID, "LAGOS-") {
		t.Errorf("referenceId = %q, want LAGOS- prefix", body.ReferenceID)
	}
	if body.Message == "" {
		t.Errorf("message is empty")
	}
}

func TestCreateApplicationDuplicatePhone(t *testing.T) {
	app := newTestApp(t)

	_, data := doJSON(t, app, http.MethodPost, "/api/applications", validPayload())
	var first struct {
		ReferenceID string `json:"referenceId"`
	}
	if err := json.Unmarshal(data, &first); err != nil {
		t.Fatalf("unmarshal first: %v", err)
	}

	// same phone, different name: the phone is the duplicate key
	payload := validPayload()
	payload["firstName"] = "Tunde"
	payload["lastName"] = "Okafor"

	resp, data := doJSON(t, app, http.MethodPost, "/api/applications", payload)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (body %s)", resp.StatusCode, data)
	}

	var dup struct {
		Error       string `json:"error"`
		ReferenceID string `json:"referenceId"`
	}
	if err := json.Unmarshal(data, &dup); err != nil {
		t.Fatalf("unmarshal conflict: %v", err)
	}
	if dup.Error == "" {
		t.Errorf("conflict body has no error message")
	}
	if dup.ReferenceID != first.ReferenceID {
		t.Errorf("conflict referenceId = %q, want original %q", dup.ReferenceID, first.ReferenceID)
	}
}

func TestCreateApplicationMissingBranches(t *testing.T) {
	app := newTestApp(t)

	payload := validPayload()
	payload["branches"] = []string{}

	resp, data := doJSON(t, app, http.MethodPost, "/api/applications", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", resp.StatusCode, data)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(body.Error, "branches") {
		t.Errorf("error = %q, want it to name branches", body.Error)
	}
}

func TestCreateApplicationRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]interface{})
		wantErr string
	}{
		{
			name:    "bad phone",
			mutate:  func(p map[string]interface{}) { p["phone"] = "12345" },
			wantErr: "Invalid phone number format",
		},
		{
			name:    "bad email",
			mutate:  func(p map[string]interface{}) { p["email"] = "not-an-email" },
			wantErr: "Invalid email format",
		},
		{
			name:    "unknown lga",
			mutate:  func(p map[string]interface{}) { p["lga"] = "Abuja" },
			wantErr: "Unknown LGA",
		},
		{
			name: "underage",
			mutate: func(p map[string]interface{}) {
				p["dateOfBirth"] = time.Now().AddDate(-16, 0, 0).Format("2006-01-02")
			},
			wantErr: "between 18 and 35",
		},
		{
			name: "too old",
			mutate: func(p map[string]interface{}) {
				p["dateOfBirth"] = time.Now().AddDate(-40, 0, 0).Format("2006-01-02")
			},
			wantErr: "between 18 and 35",
		},
		{
			name:    "unknown branch",
			mutate:  func(p map[string]interface{}) { p["branches"] = []string{"space_force"} },
			wantErr: "Unknown branch",
		},
		{
			name:    "three sittings",
			mutate:  func(p map[string]interface{}) { p["numberOfSittings"] = 3 },
			wantErr: "numberOfSittings",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			payload := validPayload()
			tc.mutate(payload)

			resp, data := doJSON(t, app, http.MethodPost, "/api/applications", payload)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", resp.StatusCode, data)
			}
			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(data, &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !strings.Contains(body.Error, tc.wantErr) {
				t.Errorf("error = %q, want substring %q", body.Error, tc.wantErr)
			}
		})
	}
}

func TestListApplicationsDisplayShape(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/applications", validPayload())

	second := validPayload()
	second["phone"] = "08098765432"
	second["middleName"] = "Chike"
	second["skills"] = []string{}
	doJSON(t, app, http.MethodPost, "/api/applications", second)

	resp, data := doJSON(t, app, http.MethodGet, "/api/applications", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", resp.StatusCode, data)
	}

	var list []struct {
		FullName        string  `json:"fullName"`
		Phone           string  `json:"phone"`
		Branches        string  `json:"branches"`
		PreferredSkills *string `json:"preferredSkills"`
		Status          string  `json:"status"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}

	for _, item := range list {
		switch item.Phone {
		case "08012345678":
			if item.FullName != "Ade Bello" {
				t.Errorf("fullName = %q, want %q", item.FullName, "Ade Bello")
			}
			if item.Branches != "army, navy" {
				t.Errorf("branches = %q, want %q", item.Branches, "army, navy")
			}
			if item.PreferredSkills == nil || *item.PreferredSkills != "Cybersecurity" {
				t.Errorf("preferredSkills = %v, want Cybersecurity", item.PreferredSkills)
			}
		case "08098765432":
			if item.FullName != "Ade Chike Bello" {
				t.Errorf("fullName = %q, want %q", item.FullName, "Ade Chike Bello")
			}
			if item.PreferredSkills != nil {
				t.Errorf("preferredSkills = %v, want nil for empty list", *item.PreferredSkills)
			}
		default:
			t.Errorf("unexpected phone %q", item.Phone)
		}
		if item.Status != "NEW" {
			t.Errorf("status = %q, want NEW", item.Status)
		}
	}
}

func TestGetApplicationNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/applications/"+uuid.NewString(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/api/applications/not-a-uuid", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("malformed id: status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/applications", validPayload())

	_, data := doJSON(t, app, http.MethodGet, "/api/applications", nil)
	var list []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &list); err != nil || len(list) != 1 {
		t.Fatalf("unexpected list (%v): %s", err, data)
	}
	id := list[0].ID

	resp, data := doJSON(t, app, http.MethodPatch, "/api/applications/"+id,
		map[string]string{"status": "SHORTLISTED"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", resp.StatusCode, data)
	}

	_, data = doJSON(t, app, http.MethodGet, "/api/applications/"+id, nil)
	var detail struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &detail); err != nil {
		t.Fatalf("unmarshal detail: %v", err)
	}
	if detail.Status != "SHORTLISTED" {
		t.Errorf("stored status = %q, want SHORTLISTED", detail.Status)
	}
}

func TestUpdateApplicationStatusInvalidValue(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/applications", validPayload())
	_, data := doJSON(t, app, http.MethodGet, "/api/applications", nil)
	var list []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &list); err != nil || len(list) != 1 {
		t.Fatalf("unexpected list (%v): %s", err, data)
	}
	id := list[0].ID

	resp, data := doJSON(t, app, http.MethodPatch, "/api/applications/"+id,
		map[string]string{"status": "APPROVED"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", resp.StatusCode, data)
	}

	// rejected patch must not touch the stored row
	_, data = doJSON(t, app, http.MethodGet, "/api/applications/"+id, nil)
	var detail struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &detail); err != nil {
		t.Fatalf("unmarshal detail: %v", err)
	}
	if detail.Status != "NEW" {
		t.Errorf("stored status = %q, want NEW", detail.Status)
	}
}
