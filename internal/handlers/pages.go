package handlers

import (
	"net/http"

	"github.com/alfagnish/userbook/internal/render"
	"github.com/go-chi/chi/v5"
)

// PagesHandler serves the static site pages.
type PagesHandler struct {
	render *render.Renderer
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(rn *render.Renderer) *PagesHandler {
	return &PagesHandler{render: rn}
}

// Routes registers the static page routes on the given chi router.
func (h *PagesHandler) Routes(r chi.Router) {
	r.Get("/", h.Home)
}

// Home renders the welcome page.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "home.html", nil)
}
