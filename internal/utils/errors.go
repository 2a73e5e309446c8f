package utils

// HTTPError carries the status a failure should be answered with.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func NewHTTPError(status int, msg string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: msg, Err: err}
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func (e *HTTPError) Unwrap() error { return e.Err }

func (e *HTTPError) StatusCode() int { return e.Status }
