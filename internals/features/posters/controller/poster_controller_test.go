package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "lagos_eoi_backend/internals/databases"
	posterRoute "lagos_eoi_backend/internals/features/posters/route"
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
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	api := app.Group("/api")
	posterRoute.PosterPublicRoutes(api, db)
	posterRoute.PosterAdminRoutes(api, db)
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

func createPoster(t *testing.T, app *fiber.App, title string, sortOrder int) string {
	t.Helper()

	resp, data := doJSON(t, app, http.MethodPost, "/api/posters", map[string]interface{}{
		"title":     title,
		"imageUrl":  "https://cdn.example.com/" + uuid.NewString() + ".webp",
		"sortOrder": sortOrder,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create poster: status = %d (body %s)", resp.StatusCode, data)
	}
	var body struct {
		Poster struct {
			ID string `json:"id"`
		} `json:"poster"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return body.Poster.ID
}

func TestPosterCarouselShowsActiveInOrder(t *testing.T) {
	app := newTestApp(t)

	createPoster(t, app, "Second banner", 2)
	first := createPoster(t, app, "First banner", 1)
	hidden := createPoster(t, app, "Hidden banner", 3)

	// deactivate one
	resp, _ := doJSON(t, app, http.MethodPatch, "/api/posters/"+hidden,
		map[string]bool{"active": false})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deactivate: status = %d", resp.StatusCode)
	}

	_, data := doJSON(t, app, http.MethodGet, "/api/posters", nil)
	var feed []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &feed); err != nil {
		t.Fatalf("unmarshal feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed len = %d, want 2", len(feed))
	}
	if feed[0].ID != first {
		t.Errorf("feed[0] = %q, want the sortOrder=1 poster", feed[0].Title)
	}

	// the admin list still shows all three
	_, data = doJSON(t, app, http.MethodGet, "/api/posters/all", nil)
	var all []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &all); err != nil {
		t.Fatalf("unmarshal all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("admin list len = %d, want 3", len(all))
	}
}

func TestCreatePosterValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/posters", map[string]interface{}{
		"title": "No image",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing imageUrl: status = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/posters", map[string]interface{}{
		"title":    "Bad image",
		"imageUrl": "not-a-url",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed imageUrl: status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdatePoster(t *testing.T) {
	app := newTestApp(t)
	id := createPoster(t, app, "Old title", 1)

	resp, data := doJSON(t, app, http.MethodPatch, "/api/posters/"+id,
		map[string]string{"title": "New title"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d (body %s)", resp.StatusCode, data)
	}

	_, data = doJSON(t, app, http.MethodGet, "/api/posters/all", nil)
	var all []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &all); err != nil || len(all) != 1 {
		t.Fatalf("unexpected list (%v): %s", err, data)
	}
	if all[0].Title != "New title" {
		t.Errorf("title = %q, want updated", all[0].Title)
	}

	// empty patch body has nothing to apply
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/posters/"+id, map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty patch: status = %d, want 400", resp.StatusCode)
	}
}

func TestDeletePoster(t *testing.T) {
	app := newTestApp(t)
	id := createPoster(t, app, "Short lived", 1)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/posters/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/posters/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", resp.StatusCode)
	}
}
