package render

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alfagnish/userbook/internal/store"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	rn, err := New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	return rn
}

func TestRenderShow(t *testing.T) {
	rn := newRenderer(t)
	rec := httptest.NewRecorder()

	rn.HTML(rec, 200, "users/show.html", ShowData{
		User: store.User{ID: "1", Name: "José", Username: "josevalim"},
	})

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "José") {
		t.Errorf("detail view missing name token:\n%s", body)
	}
	if !strings.Contains(body, "(1)") {
		t.Errorf("detail view missing id:\n%s", body)
	}
	if !strings.Contains(body, "josevalim") {
		t.Errorf("detail view missing username:\n%s", body)
	}
}

func TestRenderIndex(t *testing.T) {
	rn := newRenderer(t)
	rec := httptest.NewRecorder()

	users := []store.User{
		{ID: "1", Name: "José Valim", Username: "josevalim"},
		{ID: "2", Name: "Bruce Tate", Username: "redrapids"},
	}
	rn.HTML(rec, 200, "users/index.html", IndexData{Users: users})

	body := rec.Body.String()
	for _, u := range users {
		if !strings.Contains(body, "<td>"+u.FirstName()+"</td>") {
			t.Errorf("listing missing first name %q:\n%s", u.FirstName(), body)
		}
		if !strings.Contains(body, `href="/users/`+u.ID+`"`) {
			t.Errorf("listing missing link for id %s:\n%s", u.ID, body)
		}
	}
	// Only the first name token is shown.
	if strings.Contains(body, "Valim") {
		t.Errorf("listing should show first name only:\n%s", body)
	}
}

func TestRenderWrapsLayout(t *testing.T) {
	rn := newRenderer(t)
	rec := httptest.NewRecorder()

	rn.HTML(rec, 200, "home.html", nil)

	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Errorf("layout missing doctype:\n%s", body)
	}
	if !strings.Contains(body, "Welcome to Userbook!") {
		t.Errorf("home content not nested in layout:\n%s", body)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
}

func TestRenderErrorPage(t *testing.T) {
	rn := newRenderer(t)
	rec := httptest.NewRecorder()

	rn.HTML(rec, 404, "error.html", ErrorData{Status: 404, Message: "user not found"})

	if rec.Code != 404 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user not found") {
		t.Errorf("error page missing message:\n%s", rec.Body.String())
	}
}

func TestRenderUnknownPage(t *testing.T) {
	rn := newRenderer(t)
	rec := httptest.NewRecorder()

	rn.HTML(rec, 200, "nope.html", nil)

	if rec.Code != 500 {
		t.Fatalf("expected 500 for unknown page, got %d", rec.Code)
	}
}
