package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ValidationErrorResponse carries the full list of field-level failures.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError returns an AppError for a missing resource.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewValidationError returns an AppError for a single validation failure.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewValidationErrors wraps a collected list of field-level failures.
func NewValidationErrors(fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// NewUnauthorizedError returns an AppError for a missing or invalid credential.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewForbiddenError returns an AppError for an authenticated but unentitled actor.
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

// NewInternalError wraps an unexpected failure. The wrapped error is logged
// but never serialized to clients.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal Server Error",
		Err:     err,
	}
}

// RespondWithError writes a standardized JSON error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok {
		return c.Status(status).JSON(ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		})
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

// RespondWithFieldErrors writes the body-carried validation failure list.
// Callers pick the status; some legacy create/update paths deliberately use
// 200 here (see DESIGN.md).
func RespondWithFieldErrors(c *fiber.Ctx, status int, fields []FieldError) error {
	return c.Status(status).JSON(ValidationErrorResponse{Errors: fields})
}
