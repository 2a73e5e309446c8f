package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/vaughan-dsouza/goposts/internal/utils"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// ErrorHandler turns errors returned by handlers (and panics) into error
// envelopes. Build one per router.
type ErrorHandler struct {
	logger *log.Logger
}

func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle adapts fn to an http.HandlerFunc that forwards fn's error here.
func (e *ErrorHandler) Handle(fn utils.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			e.ServeError(w, r, err)
		}
	}
}

// ServeError answers with the status carried by err (anything in the chain
// with a StatusCode() int method), or 500.
func (e *ErrorHandler) ServeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) && coded.StatusCode() >= 400 {
		status = coded.StatusCode()
	}

	msg := err.Error()
	if msg == "" {
		msg = unexpectedErrorMessage
	}

	e.logger.Printf("[%s] error: %s %s: %v", utils.RequestID(r.Context()), r.Method, r.URL.Path, err)
	utils.JSONError(w, status, msg)
}

// Recover converts a panic in next into a 500 error envelope.
func (e *ErrorHandler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			e.ServeError(w, r, fmt.Errorf("panic: %w", err))
		}()

		next.ServeHTTP(w, r)
	})
}

// NotFound serves unknown routes.
func (e *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	e.ServeError(w, r, utils.NewHTTPError(http.StatusNotFound, "Route not found", nil))
}

// MethodNotAllowed serves known routes hit with the wrong verb.
func (e *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	e.ServeError(w, r, utils.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed", nil))
}
