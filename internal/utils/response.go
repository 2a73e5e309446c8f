package utils

import "net/http"

const (
	DefaultSuccessMessage = "Success"
	DefaultErrorMessage   = "Error"
)

// APIResponse is the envelope every /api endpoint answers with. StatusCode
// mirrors the HTTP status for clients that only look at the body.
type APIResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"statusCode"`
}

// Success wraps data in a success envelope. An empty message becomes
// "Success" and a zero status becomes 200.
func Success(data any, message string, statusCode int) APIResponse {
	if message == "" {
		message = DefaultSuccessMessage
	}
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	return APIResponse{Success: true, Message: message, Data: data, StatusCode: statusCode}
}

// Error builds a failure envelope. An empty message becomes "Error" and a
// zero status becomes 500.
func Error(message string, statusCode int, data any) APIResponse {
	if message == "" {
		message = DefaultErrorMessage
	}
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return APIResponse{Success: false, Message: message, Data: data, StatusCode: statusCode}
}
