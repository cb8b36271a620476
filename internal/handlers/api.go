package handlers

import (
	"net/http"

	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
)

// APIUsersHandler exposes the user directory as JSON for API clients.
type APIUsersHandler struct {
	store store.UserStore
}

// NewAPIUsersHandler creates a new APIUsersHandler.
func NewAPIUsersHandler(st store.UserStore) *APIUsersHandler {
	return &APIUsersHandler{store: st}
}

// Routes registers the JSON user routes on the given chi router.
func (h *APIUsersHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Get("/{id}", h.GetUser)
}

// ListUsers returns all users. With id/name/username query parameters it
// instead returns the first user matching every parameter, or 404. A
// parameter given with an empty value is still a criterion; no user has an
// empty field, so it matches nothing.
func (h *APIUsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := map[string]string{}
	for _, field := range []string{"id", "name", "username"} {
		if q.Has(field) {
			criteria[field] = q.Get(field)
		}
	}

	if len(criteria) > 0 {
		u, err := h.store.GetBy(r.Context(), criteria)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if u == nil {
			writeError(w, http.StatusNotFound, "no user matches the given criteria")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"user": u})
		return
	}

	users, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// GetUser returns a single user by id, or a JSON 404.
func (h *APIUsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "no user with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": u})
}
