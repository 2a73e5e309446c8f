package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vaughan-dsouza/goposts/internal/utils"
)

const RequestIDHeader = "X-Request-Id"

// RequestID keeps an inbound X-Request-Id or assigns a new UUID, and exposes
// it through the request context and the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), utils.CtxRequestIDKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
