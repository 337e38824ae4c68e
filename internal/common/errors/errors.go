// Package errors provides standardized error handling for the content pipeline.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeLocaleDocumentMissing   ErrorCode = "LOCALE_DOCUMENT_MISSING"
	ErrCodeLocaleDocumentMalformed ErrorCode = "LOCALE_DOCUMENT_MALFORMED"
	ErrCodeLocaleStoreUnavailable  ErrorCode = "LOCALE_STORE_UNAVAILABLE"

	ErrCodeTemplateNotFound      ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeUnresolvedPlaceholder ErrorCode = "UNRESOLVED_PLACEHOLDER"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeDuplicateSubscriber      ErrorCode = "DUPLICATE_SUBSCRIBER"
	ErrCodeSubscriberNotFound       ErrorCode = "SUBSCRIBER_NOT_FOUND"

	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeEmailSendFailed  ErrorCode = "EMAIL_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewLocaleDocumentMissingError marks an absent locale document. Non-retryable:
// the fallback chain takes over, retries would refetch the same missing key.
func NewLocaleDocumentMissingError(locale, brand string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLocaleDocumentMissing,
		Message:   "Locale document not found in store",
		Details:   fmt.Sprintf("locale: %s, brand: %s", locale, brand),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLocaleDocumentMalformedError marks a document that failed JSON decoding.
func NewLocaleDocumentMalformedError(locale string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLocaleDocumentMalformed,
		Message:   "Locale document failed to decode",
		Details:   fmt.Sprintf("locale: %s, error: %s", locale, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLocaleStoreUnavailableError creates a retryable store error.
func NewLocaleStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLocaleStoreUnavailable,
		Message:   "Locale store read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template catalog error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Prompt template not found in catalog",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable database insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateSubscriberError creates a non-retryable duplicate signup error.
func NewDuplicateSubscriberError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateSubscriber,
		Message:   "Subscriber already exists",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubscriberNotFoundError creates a non-retryable lookup error.
func NewSubscriberNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubscriberNotFound,
		Message:   "Subscriber not found",
		Details:   fmt.Sprintf("id: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable email delivery error.
func NewEmailSendFailedError(messageType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Email delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", messageType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// IsRetryable reports whether an error is a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}

// CodeOf extracts the ErrorCode of a StandardError, or INTERNAL_ERROR.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return "INTERNAL_ERROR"
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
