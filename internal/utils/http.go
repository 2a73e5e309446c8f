package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HandlerFunc is an http.HandlerFunc that hands failures back to the caller
// instead of writing them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// JSONError writes an error envelope with the given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Error(msg, status, nil))
}

// DecodeJSON parses the JSON body into v. The body is capped at limit bytes
// when limit > 0. Failures come back as *HTTPError so the error handler can
// answer with the right status.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, limit int64) error {
	if r.Body == nil || r.Body == http.NoBody {
		return NewHTTPError(http.StatusBadRequest, "empty request body", nil)
	}

	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewHTTPError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
		}
		return NewHTTPError(http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
	}

	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return NewHTTPError(http.StatusBadRequest, "invalid JSON: unexpected data after top-level value", err)
	}

	return nil
}
