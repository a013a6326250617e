package catalog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/OpenShelf/library-backend/internal/auth"
	"github.com/OpenShelf/library-backend/internal/catalog"
	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var dbAvailable bool

var testServer *httptest.Server

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env.local")

	if os.Getenv("DATABASE_URL") == "" {
		os.Exit(m.Run())
	}
	os.Setenv("PORT", "")

	db.Connect()
	dbAvailable = true

	auth.Init()
	catalog.Init()

	r := chi.NewRouter()
	catalog.RegisterRoutes(r)

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// sessionCookieFor mints an in-memory session for a throwaway account with the
// given role.
func sessionCookieFor(t *testing.T, role string) *http.Cookie {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	suffix := uuid.New().String()[:8]
	user := auth.User{
		UserID:         utils.GenerateUUID(),
		FullName:       "Catalog Tester " + suffix,
		Email:          fmt.Sprintf("catalog_%s@example.com", suffix),
		Mobile:         "06" + suffix,
		HashedPassword: "not-used-here",
		Role:           role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	session := auth.Sessions.Create(user)

	t.Cleanup(func() {
		auth.Sessions.Delete(session.SessionID)
		db.DB.Where("user_id = ?", user.UserID).Delete(&auth.User{})
	})
	return &http.Cookie{Name: "session_id", Value: session.SessionID}
}

func doJSON(t *testing.T, method, path string, cookie *http.Cookie, payload interface{}) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, testServer.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(b)
}

// TestBookCRUD drives a book through create, filtered listing, edit, and
// delete through the admin endpoints.
func TestBookCRUD(t *testing.T) {
	adminCookie := sessionCookieFor(t, "admin")
	marker := uuid.New().String()[:8]

	resp, body := doJSON(t, http.MethodPost, "/admin/add-book", adminCookie, map[string]interface{}{
		"title":  "Integration Title " + marker,
		"author": "Integration Author",
		"type":   "IntegrationTest",
		"price":  9.99,
		"image":  "https://example.com/cover.jpg",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var created catalog.Book
	if err := json.Unmarshal([]byte(body), &created); err != nil {
		t.Fatalf("invalid book JSON: %s", body)
	}
	t.Cleanup(func() {
		db.DB.Where("id = ?", created.ID).Delete(&catalog.Book{})
	})

	// Free-text filter matches on title.
	resp, body = doJSON(t, http.MethodGet, "/admin/books?q="+marker, adminCookie, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var listing struct {
		Books      []catalog.Book `json:"books"`
		Categories []string       `json:"categories"`
	}
	if err := json.Unmarshal([]byte(body), &listing); err != nil {
		t.Fatalf("invalid listing JSON: %s", body)
	}
	if len(listing.Books) != 1 || listing.Books[0].ID != created.ID {
		t.Fatalf("expected the created book in filtered listing, got %s", body)
	}

	// Edit.
	resp, body = doJSON(t, http.MethodPut, "/admin/edit-book/"+created.ID, adminCookie, map[string]interface{}{
		"title":  "Updated Title " + marker,
		"author": "Integration Author",
		"type":   "IntegrationTest",
		"price":  14.99,
		"image":  "https://example.com/cover.jpg",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("edit: expected 200, got %d: %s", resp.StatusCode, body)
	}

	// Editing a missing id is a 404.
	resp, _ = doJSON(t, http.MethodPut, "/admin/edit-book/"+utils.GenerateUUID(), adminCookie, map[string]interface{}{
		"title": "x", "author": "y", "type": "z",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("edit unknown id: expected 404, got %d", resp.StatusCode)
	}

	// Delete, then delete again.
	resp, _ = doJSON(t, http.MethodDelete, "/admin/delete-book/"+created.ID, adminCookie, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, "/admin/delete-book/"+created.ID, adminCookie, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", resp.StatusCode)
	}
}

// TestUserBooksReadOnly verifies users can browse but the admin endpoints
// refuse a user-role session.
func TestUserBooksReadOnly(t *testing.T) {
	userCookie := sessionCookieFor(t, "user")

	resp, body := doJSON(t, http.MethodGet, "/user/books", userCookie, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("user listing: expected 200, got %d: %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodPost, "/admin/add-book", userCookie, map[string]interface{}{
		"title": "Sneaky", "author": "User", "type": "Nope",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("user on admin mutation: expected 403, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, "/admin/books", userCookie, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("user on admin listing: expected 403, got %d", resp.StatusCode)
	}
}
