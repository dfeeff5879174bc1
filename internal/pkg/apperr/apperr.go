package apperr

import "net/http"

// FieldError is one violated constraint in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a domain failure carrying the HTTP status it maps to. The error
// boundary middleware renders it; everything it does not recognize becomes a
// generic 500.
type Error struct {
	Status  int
	Code    string
	Message string
	Details []FieldError
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func Validation(details []FieldError) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "Validation error",
		Details: details,
	}
}

func Conflict(message string) *Error {
	return New(http.StatusBadRequest, "CONFLICT", message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, "NOT_FOUND", message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "INTERNAL", message)
}
