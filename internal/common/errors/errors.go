// Package errors provides standardized error handling for BPMN workflow integration.
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
	// Malformed-format rejections: the first failing field aborts the
	// request with a field-specific message. Never retried.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Boundary rejections of a brief that fails schema validation before
	// the scoring core runs.
	ErrCodeBriefParseFailed      ErrorCode = "BRIEF_PARSE_FAILED"
	ErrCodeBriefValidationFailed ErrorCode = "BRIEF_VALIDATION_FAILED"

	// Catalog provisioning and lookup failures. These are infrastructure
	// errors and may be retried.
	ErrCodeCatalogLoadFailed  ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogQueryFailed ErrorCode = "CATALOG_QUERY_FAILED"

	// Zeebe transport failures.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	ErrCodeTimeout         ErrorCode = "TIMEOUT_ERROR"
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
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewInvalidFormatError creates a non-retryable format rejection for a
// billing or payout field. Message carries the exact user-facing detail
// string ("Invalid GSTIN format." etc.).
func NewInvalidFormatError(field, message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidFormat,
		Message:   message,
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewBriefParseFailedError creates a non-retryable error for variables that
// are not even valid JSON for a brief.
func NewBriefParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBriefParseFailed,
		Message:   "Brand brief could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBriefValidationFailedError creates a non-retryable boundary rejection
// for a brief that fails schema validation.
func NewBriefValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBriefValidationFailed,
		Message:   "Brand brief failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a retryable catalog provisioning error.
func NewCatalogLoadFailedError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   fmt.Sprintf("Creator catalog could not be loaded from %s", source),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogQueryFailedError creates a retryable catalog lookup error.
func NewCatalogQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogQueryFailed,
		Message:   "Creator catalog lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewExternalServiceError creates a retryable external service error.
func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExternalService,
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTimeoutError creates a retryable timeout error.
func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimeout,
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCatalogLoadFailed,
		ErrCodeCatalogQueryFailed,
		ErrCodeExternalService:
		return 3 // Retryable technical errors

	case ErrCodeTimeout:
		return 2

	default:
		return 0 // Format and validation rejections: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	return &BPMNError{
		Code:           string(stdErr.Code),
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        GetRetryCount(stdErr.Code),
		ErrorVariables: stdErr.Metadata,
	}
}

// IsRetryableErrorCode reports whether jobs failing with this code should
// be retried rather than thrown as BPMN errors.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory groups codes for logging and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeInvalidFormat:
		return "format"
	case ErrCodeBriefParseFailed, ErrCodeBriefValidationFailed:
		return "boundary"
	case ErrCodeCatalogLoadFailed, ErrCodeCatalogQueryFailed:
		return "catalog"
	case ErrCodeExternalService, ErrCodeTimeout:
		return "infrastructure"
	default:
		return "internal"
	}
}
