package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*chi.Mux, string) {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "users.json")
	handler := New(dataFile, zap.NewNop())

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, dataFile
}

func postUser(t *testing.T, r *chi.Mux, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func johnBody() map[string]string {
	return map[string]string{"n": "John", "s": "Doe", "e": "john@example.com", "p": "5551234"}
}

func TestListUsersEmpty(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != "[]" {
		t.Fatalf("expected empty list, got %s", body)
	}
}

func TestAddAndGetUser(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postUser(t, r, johnBody())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != 0 {
		t.Fatalf("expected first id 0, got %d", created.ID)
	}

	req := httptest.NewRequest(http.MethodGet, "/users/0", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"n":"John"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/3", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetUserInvalidID(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/-1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAddUserRejectsInvalidPayload(t *testing.T) {
	r, _ := setupRouter(t)

	// Missing email.
	resp := postUser(t, r, map[string]string{"n": "John", "s": "Doe", "p": "5551234"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", resp.Code)
	}

	// Phone must look numeric even though it is stored as text.
	resp = postUser(t, r, map[string]string{"n": "John", "s": "Doe", "e": "john@example.com", "p": "call-me"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric phone, got %d", resp.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	r, _ := setupRouter(t)
	postUser(t, r, johnBody())

	req := httptest.NewRequest(http.MethodDelete, "/users/0", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/users/0", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", resp.Code)
	}
}

func TestReset(t *testing.T) {
	r, _ := setupRouter(t)
	postUser(t, r, johnBody())

	req := httptest.NewRequest(http.MethodPost, "/users/reset", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"cleared":true`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/users/reset", nil))
	if !strings.Contains(resp.Body.String(), `"cleared":false`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestCorruptDataFileIsServerError(t *testing.T) {
	r, dataFile := setupRouter(t)
	if err := os.WriteFile(dataFile, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
