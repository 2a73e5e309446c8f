package middleware

import (
	"log"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaughan-dsouza/goposts/internal/utils"
)

// Logger logs every request once on arrival and once when the response is done.
func Logger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := utils.RequestID(r.Context())

			logger.Printf("[%s] %s %s", reqID, r.Method, r.URL.RequestURI())

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				logger.Printf("[%s] %s %s - %d %s - %dms",
					reqID, r.Method, r.URL.RequestURI(),
					status, http.StatusText(status),
					time.Since(start).Milliseconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
