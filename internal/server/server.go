package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/alfagnish/userbook/internal/config"
	"github.com/alfagnish/userbook/internal/handlers"
	appmw "github.com/alfagnish/userbook/internal/middleware"
	"github.com/alfagnish/userbook/internal/render"
	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a fully-configured chi router with all route groups,
// middleware, and handlers wired together.
func New(cfg *config.Config, st store.UserStore, rn *render.Renderer) (http.Handler, error) {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(appmw.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// ── Handlers ────────────────────────────────────────────
	pagesH := handlers.NewPagesHandler(rn)
	usersH := handlers.NewUsersHandler(st, rn)
	apiUsersH := handlers.NewAPIUsersHandler(st)
	systemH := handlers.NewSystemHandler(st, cfg.Store.Driver)

	// ── Route groups ────────────────────────────────────────
	r.Get("/", pagesH.Home)
	r.Route("/users", usersH.Routes)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", apiUsersH.Routes)
		r.Route("/system", systemH.Routes)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", assetServer()))

	return r, nil
}

// requestLogger is a simple middleware that logs each HTTP request with
// method, path, status code, duration, and request id.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// Skip static assets to reduce noise.
		if strings.HasPrefix(r.URL.Path, "/static/") {
			return
		}

		duration := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = 200
		}
		log.Printf("%s %s %d %s rid=%s",
			r.Method,
			r.URL.Path,
			status,
			duration.Round(time.Millisecond),
			appmw.RequestIDFromContext(r.Context()),
		)
	})
}
