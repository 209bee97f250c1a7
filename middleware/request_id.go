package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestID tags each request with a uuid under RequestIDKey in the request context.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
