package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	// ContextKeyRequestID carries the request id through the request context.
	ContextKeyRequestID contextKey = "request_id"

	// HeaderRequestID is echoed on every response and honored on inbound
	// requests so upstream proxies can correlate logs.
	HeaderRequestID = "X-Request-ID"
)

// RequestID tags every request with a UUID. An inbound X-Request-ID header is
// kept; otherwise a new id is generated. The id is stored in the request
// context and echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), ContextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request id from the request context.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ContextKeyRequestID).(string)
	return v
}
