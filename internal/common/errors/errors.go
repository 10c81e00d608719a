// Package errors provides standardized error handling for the HTTP surface.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidJSON        ErrorCode = "INVALID_JSON"
	ErrCodeApplicantNotFound  ErrorCode = "APPLICANT_NOT_FOUND"
	ErrCodeStorageInitFailed  ErrorCode = "STORAGE_INIT_FAILED"
	ErrCodeStorageWriteFailed ErrorCode = "STORAGE_WRITE_FAILED"
	ErrCodeStorageReadFailed  ErrorCode = "STORAGE_READ_FAILED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// InternalErrorMessage is the only message a caller ever sees for a
// server-side failure.
const InternalErrorMessage = "Internal server error"

// FieldViolation identifies one violated input constraint.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code       ErrorCode        `json:"code"`
	Message    string           `json:"message"`
	Details    string           `json:"details,omitempty"`
	Violations []FieldViolation `json:"errors,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// Is matches another *StandardError by code, so sentinel-style checks
// such as errors.Is(err, &StandardError{Code: ErrCodeStorageWriteFailed}) work.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// HTTPStatus returns the response status for this error.
func (e *StandardError) HTTPStatus() int {
	return HTTPStatus(e.Code)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a client error listing every violated constraint.
func NewValidationError(violations []FieldViolation) *StandardError {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return &StandardError{
		Code:       ErrCodeValidationFailed,
		Message:    "Request validation failed",
		Details:    "invalid fields: " + strings.Join(fields, ", "),
		Violations: violations,
		Timestamp:  time.Now().UTC(),
	}
}

// NewInvalidJSONError reports a body that could not be parsed at all.
func NewInvalidJSONError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJSON,
		Message:   "Request body is not valid JSON",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewApplicantNotFoundError reports a lookup miss.
func NewApplicantNotFoundError(id int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicantNotFound,
		Message:   "Applicant not found",
		Details:   fmt.Sprintf("applicantId: %d", id),
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageInitError is fatal at startup.
func NewStorageInitError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageInitFailed,
		Message:   "Storage schema initialization failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewStorageWriteError wraps a failed insert.
func NewStorageWriteError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageWriteFailed,
		Message:   "Storage write failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewStorageReadError wraps a failed lookup.
func NewStorageReadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageReadFailed,
		Message:   "Storage read failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewUnexpectedError wraps anything else that went wrong while serving.
func NewUnexpectedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 3. Classification
// ==========================

var statusByCode = map[ErrorCode]int{
	ErrCodeValidationFailed:   http.StatusUnprocessableEntity,
	ErrCodeInvalidJSON:        http.StatusBadRequest,
	ErrCodeApplicantNotFound:  http.StatusNotFound,
	ErrCodeStorageInitFailed:  http.StatusInternalServerError,
	ErrCodeStorageWriteFailed: http.StatusInternalServerError,
	ErrCodeStorageReadFailed:  http.StatusInternalServerError,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// HTTPStatus maps an error code to a response status.
func HTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the code is the caller's fault.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewUnexpectedError(err)
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Code    ErrorCode        `json:"code"`
	Message string           `json:"message"`
	Errors  []FieldViolation `json:"errors,omitempty"`
}

// ToResponse returns the caller-facing body. Server-side failures are
// reduced to an opaque message.
func (e *StandardError) ToResponse() ErrorResponse {
	if !IsClientError(e.Code) {
		return ErrorResponse{
			Code:    ErrCodeInternal,
			Message: InternalErrorMessage,
		}
	}
	return ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Violations,
	}
}
