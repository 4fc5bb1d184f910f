package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a business-rule or dependency failure so transports
// can map it to a status without inspecting message text.
type ErrorCode string

const (
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeNotFound          ErrorCode = "not_found"
	CodeForbidden         ErrorCode = "forbidden"
	CodeInvalidTransition ErrorCode = "invalid_transition"
	CodeInvalidState      ErrorCode = "invalid_state"
	CodeInvalidInput      ErrorCode = "invalid_input"
	CodeConflict          ErrorCode = "conflict"
	CodeUnavailable       ErrorCode = "unavailable"
)

// AppError carries an ErrorCode alongside a caller-facing message.
type AppError struct {
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Code: CodeNotFound, Message: msg}
}

func NewForbidden(msg string) *AppError {
	return &AppError{Code: CodeForbidden, Message: msg}
}

func NewInvalidTransition(msg string) *AppError {
	return &AppError{Code: CodeInvalidTransition, Message: msg}
}

func NewInvalidState(msg string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: msg}
}

func NewInvalidInput(msg string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: msg}
}

func NewConflict(msg string) *AppError {
	return &AppError{Code: CodeConflict, Message: msg}
}

func NewUnavailable(msg string) *AppError {
	return &AppError{Code: CodeUnavailable, Message: msg}
}

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
func CodeOf(err error) (ErrorCode, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code, true
	}
	return "", false
}

// HTTPStatus maps an error to the status the API surfaces it with.
// Unclassified errors are treated as internal.
func HTTPStatus(err error) int {
	code, ok := CodeOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch code {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidTransition, CodeInvalidState, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
