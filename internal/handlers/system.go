package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
)

// SystemHandler provides health and status endpoints.
type SystemHandler struct {
	store   store.UserStore
	driver  string
	started time.Time
}

// NewSystemHandler creates a new SystemHandler. driver names the configured
// store backend so health reports can include it.
func NewSystemHandler(st store.UserStore, driver string) *SystemHandler {
	return &SystemHandler{
		store:   st,
		driver:  driver,
		started: time.Now(),
	}
}

// Routes registers all system routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health checks that the user store answers queries and reports basic
// process status.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "degraded",
			"store":  h.driver,
			"error":  fmt.Sprintf("store error: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"store":  h.driver,
		"users":  len(users),
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
