package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alfagnish/userbook/internal/config"
	"github.com/alfagnish/userbook/internal/render"
	"github.com/alfagnish/userbook/internal/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	rn, err := render.New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	h, err := New(cfg, store.NewMemoryStore(), rn)
	if err != nil {
		t.Fatalf("create server: %v", err)
	}
	return h
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", 200, "Welcome to Userbook!"},
		{"/users", 200, "Listing Users"},
		{"/users/1", 200, "José"},
		{"/users/999", 404, "No user with id 999"},
		{"/api/users", 200, `"username":"josevalim"`},
		{"/api/system/health", 200, `"status":"ok"`},
		{"/static/app.css", 200, "font-family"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", c.path, nil))
		if rec.Code != c.wantStatus {
			t.Errorf("GET %s: status = %d, want %d", c.path, rec.Code, c.wantStatus)
			continue
		}
		if !strings.Contains(rec.Body.String(), c.wantBody) {
			t.Errorf("GET %s: body missing %q", c.path, c.wantBody)
		}
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}
