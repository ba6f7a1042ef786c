package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Configuration (CFG) ----

// ErrConfiguration signals a missing required endpoint or credential.
// Fatal at startup, never retried.
func ErrConfiguration(detail string) *AppError {
	return New("CFG_001", fmt.Sprintf("Configuration error: %s", detail), http.StatusInternalServerError)
}

// ---- External collaborators (EXT) ----

// ErrExternalUnavailable wraps a network or timeout failure talking to a collaborator.
func ErrExternalUnavailable(collaborator string, err error) *AppError {
	return Wrap("EXT_001", fmt.Sprintf("%s unavailable", collaborator), http.StatusBadGateway, err)
}

// ErrExternalRejected wraps a non-collision rejection from the academic system.
func ErrExternalRejected(reason string) *AppError {
	return New("EXT_002", fmt.Sprintf("Academic system rejected the request: %s", reason), http.StatusBadGateway)
}

// ErrCodeInUse signals the academic system reported the registration code as taken.
// Retry-worthy inside the allocation bound, terminal beyond it.
func ErrCodeInUse(code string) *AppError {
	return New("EXT_003", fmt.Sprintf("Registration code %s already in use", code), http.StatusConflict)
}

// ---- Enrollment pipeline (ENR) ----

// ErrAllocationExhausted signals the bounded allocation loop ran out of attempts.
// Fatal for the enrollment attempt; requires operator attention.
func ErrAllocationExhausted(attempts int) *AppError {
	return New("ENR_001", fmt.Sprintf("Registration code allocation exhausted after %d attempts", attempts), http.StatusConflict)
}

// ErrPartialRegistration signals the student record exists but discipline
// enrollment failed. Distinct from both success and full failure.
func ErrPartialRegistration(studentID string, err error) *AppError {
	return Wrap("ENR_002", fmt.Sprintf("Student %s created but discipline enrollment failed", studentID), http.StatusBadGateway, err)
}

// ErrNotFound reports a missing entity (intent, course, student).
func ErrNotFound(entity string) *AppError {
	return New("ENR_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrDuplicateEvent marks a webhook delivery already claimed by another handler.
// Internal signal only: the transport acknowledges it as success.
func ErrDuplicateEvent(resourceID string) *AppError {
	return New("ENR_004", fmt.Sprintf("Event %s already processed", resourceID), http.StatusOK)
}

// ---- Validation (VAL) ----

// Validation reports an invalid intent before any external call is made.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ErrCourseNotFound reports an unresolvable course name.
func ErrCourseNotFound(name string) *AppError {
	return New("VAL_002", fmt.Sprintf("Course %q not found in catalog", name), http.StatusNotFound)
}

// ---- Operator authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ErrInvalidWebhookSignature rejects an unauthenticated webhook delivery.
func ErrInvalidWebhookSignature() *AppError {
	return New("AUTH_003", "Invalid webhook signature", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
