package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shoplist/shoplist-go/internal/crypto"
)

const testSecret = "test-secret"

func newGuardedRouter() chi.Router {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(SessionAuth(testSecret))
		handler := func(w http.ResponseWriter, req *http.Request) {
			userID, _ := UserIDFromContext(req.Context())
			w.Write([]byte(userID))
		}
		r.Get("/api/items", handler)
		r.Post("/api/items", handler)
		r.Put("/api/items/{id}", handler)
		r.Delete("/api/items/{id}", handler)
	})
	return r
}

func TestSessionAuth_MissingToken(t *testing.T) {
	router := newGuardedRouter()

	// Every item method must reject an unauthenticated request the same way.
	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/items"},
		{http.MethodPost, "/api/items"},
		{http.MethodPut, "/api/items/some-id"},
		{http.MethodDelete, "/api/items/some-id"},
	}

	for _, tc := range requests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, http.StatusUnauthorized)
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s %s: invalid JSON body: %v", tc.method, tc.path, err)
		}
		if body["error"] != "Authentication required" {
			t.Errorf("%s %s: error = %q, want %q", tc.method, tc.path, body["error"], "Authentication required")
		}
	}
}

func TestSessionAuth_MalformedHeader(t *testing.T) {
	router := newGuardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	router := newGuardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Invalid token" {
		t.Errorf("error = %q, want %q", body["error"], "Invalid token")
	}
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	token, err := crypto.GenerateToken("user-1", "a@x.com", testSecret, time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	router := newGuardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSessionAuth_ValidToken(t *testing.T) {
	token, err := crypto.GenerateToken("user-1", "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	router := newGuardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "user-1" {
		t.Errorf("resolved user = %q, want %q", rec.Body.String(), "user-1")
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("expected no user ID in bare context")
	}
}

func TestRedact(t *testing.T) {
	if got := redact("short"); got != "********" {
		t.Errorf("redact() = %q, want fully masked", got)
	}
	if got := redact("eyJhbGciOiJIUzI1NiJ9"); got != "eyJhbGci..." {
		t.Errorf("redact() = %q, want 8-char prefix", got)
	}
}
