package handlers

import (
	"log"
	"net/http"

	"github.com/alfagnish/userbook/internal/render"
	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
)

// UsersHandler serves the HTML user pages: the listing and the detail view.
type UsersHandler struct {
	store  store.UserStore
	render *render.Renderer
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(st store.UserStore, rn *render.Renderer) *UsersHandler {
	return &UsersHandler{store: st, render: rn}
}

// Routes registers the user page routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/{id}", h.Show)
}

// Index renders the listing page with one row per user.
func (h *UsersHandler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("list users: %v", err)
		h.render.HTML(w, http.StatusInternalServerError, "error.html", render.ErrorData{
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong.",
		})
		return
	}
	h.render.HTML(w, http.StatusOK, "users/index.html", render.IndexData{Users: users})
}

// Show renders the detail page for one user. An unknown id gets the error
// page with a 404 status.
func (h *UsersHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.store.Get(r.Context(), id)
	if err != nil {
		log.Printf("get user %s: %v", id, err)
		h.render.HTML(w, http.StatusInternalServerError, "error.html", render.ErrorData{
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong.",
		})
		return
	}
	if u == nil {
		h.render.HTML(w, http.StatusNotFound, "error.html", render.ErrorData{
			Status:  http.StatusNotFound,
			Message: "No user with id " + id + ".",
		})
		return
	}
	h.render.HTML(w, http.StatusOK, "users/show.html", render.ShowData{User: *u})
}
