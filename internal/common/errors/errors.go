// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeDogNotFound         ErrorCode = "DOG_NOT_FOUND"

	ErrCodeElasticsearchConnectionFailed ErrorCode = "ELASTICSEARCH_CONNECTION_FAILED"
	ErrCodeSearchQueryFailed             ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout                 ErrorCode = "SEARCH_TIMEOUT"
	ErrCodeIndexNotFound                 ErrorCode = "INDEX_NOT_FOUND"

	ErrCodeClassifierUnavailable ErrorCode = "CLASSIFIER_UNAVAILABLE"
	ErrCodeClassifierTimeout     ErrorCode = "CLASSIFIER_TIMEOUT"

	ErrCodeInvalidRankLimit       ErrorCode = "INVALID_RANK_LIMIT"
	ErrCodeInvalidPredictionInput ErrorCode = "INVALID_PREDICTION_INPUT"

	ErrCodeCompatibilityFailed ErrorCode = "COMPATIBILITY_FAILED"
	ErrCodeRankingFailed       ErrorCode = "RANKING_FAILED"
	ErrCodePredictionFailed    ErrorCode = "PREDICTION_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodePredictionLogFailed      ErrorCode = "PREDICTION_LOG_FAILED"
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

// NewApplicationNotFoundError creates a non-retryable missing-record error.
func NewApplicationNotFoundError(applicationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationNotFound,
		Message:   "Application record not found",
		Details:   fmt.Sprintf("applicationId: %s", applicationID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDogNotFoundError creates a non-retryable missing-record error.
func NewDogNotFoundError(dogID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDogNotFound,
		Message:   "Dog profile not found",
		Details:   fmt.Sprintf("dogId: %s", dogID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewElasticsearchConnectionFailedError creates a retryable Elasticsearch connection error.
func NewElasticsearchConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeElasticsearchConnectionFailed,
		Message:   "Elasticsearch connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError creates a retryable search query error.
func NewSearchQueryFailedError(index string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Elasticsearch query error",
		Details:   fmt.Sprintf("index: %s, error: %s", index, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a retryable search timeout error.
func NewSearchTimeoutError(index string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "Elasticsearch query timeout",
		Details:   fmt.Sprintf("index: %s", index),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewIndexNotFoundError creates a non-retryable index not found error.
func NewIndexNotFoundError(indexName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndexNotFound,
		Message:   "Elasticsearch index not found",
		Details:   fmt.Sprintf("indexName: %s", indexName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassifierTimeoutError marks a trained model call that ran out of time.
func NewClassifierTimeoutError(endpoint string) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierTimeout,
		Message:   "Outcome classifier timeout",
		Details:   fmt.Sprintf("endpoint: %s", endpoint),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassifierUnavailableError marks the trained model endpoint as unreachable.
// Callers recover from this by switching to similarity voting, so it is not retryable.
func NewClassifierUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierUnavailable,
		Message:   "Outcome classifier unavailable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRankLimitError creates a non-retryable input validation error.
func NewInvalidRankLimitError(limit int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRankLimit,
		Message:   "Rank limit must be within [1,100]",
		Details:   fmt.Sprintf("limit: %d", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPredictionInputError creates a non-retryable input validation error.
func NewInvalidPredictionInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPredictionInput,
		Message:   "Prediction input validation failed",
		Details:   details,
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

// NewPredictionLogFailedError wraps a failed prediction audit insert.
func NewPredictionLogFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePredictionLogFailed,
		Message:   "Failed to record prediction",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (identical by convention).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeApplicationNotFound:           "APPLICATION_NOT_FOUND",
	ErrCodeDogNotFound:                   "DOG_NOT_FOUND",
	ErrCodeElasticsearchConnectionFailed: "ELASTICSEARCH_CONNECTION_FAILED",
	ErrCodeSearchQueryFailed:             "SEARCH_QUERY_FAILED",
	ErrCodeSearchTimeout:                 "SEARCH_TIMEOUT",
	ErrCodeIndexNotFound:                 "INDEX_NOT_FOUND",
	ErrCodeClassifierUnavailable:         "CLASSIFIER_UNAVAILABLE",
	ErrCodeClassifierTimeout:             "CLASSIFIER_TIMEOUT",
	ErrCodeInvalidRankLimit:              "INVALID_RANK_LIMIT",
	ErrCodeInvalidPredictionInput:        "INVALID_PREDICTION_INPUT",
	ErrCodeCompatibilityFailed:           "COMPATIBILITY_FAILED",
	ErrCodeRankingFailed:                 "RANKING_FAILED",
	ErrCodePredictionFailed:              "PREDICTION_FAILED",
	ErrCodeDatabaseConnectionFailed:      "DATABASE_CONNECTION_FAILED",
	ErrCodePredictionLogFailed:           "PREDICTION_LOG_FAILED",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeElasticsearchConnectionFailed,
		ErrCodeSearchQueryFailed,
		ErrCodeDatabaseConnectionFailed:
		return 3 // Retryable technical errors

	case ErrCodeSearchTimeout:
		return 2 // Partial retry for timeouts

	default:
		return 0 // Business errors and recovered failures: no retry
	}
}

// GetErrorCategory buckets an error code for logging and metrics.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeApplicationNotFound, ErrCodeDogNotFound:
		return "not_found"
	case ErrCodeInvalidRankLimit, ErrCodeInvalidPredictionInput:
		return "validation"
	case ErrCodeClassifierUnavailable, ErrCodeClassifierTimeout:
		return "classifier"
	case ErrCodeElasticsearchConnectionFailed, ErrCodeSearchQueryFailed,
		ErrCodeSearchTimeout, ErrCodeIndexNotFound:
		return "search"
	case ErrCodeDatabaseConnectionFailed, ErrCodePredictionLogFailed:
		return "database"
	default:
		return "internal"
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	code, ok := BPMNErrorMapping[stdErr.Code]
	if !ok {
		code = string(stdErr.Code)
	}
	if code == "" {
		code = "INTERNAL_ERROR"
	}

	return &BPMNError{
		Code:           code,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        GetRetryCount(stdErr.Code),
		ErrorVariables: stdErr.Metadata,
	}
}

// IsNotFound reports whether err is a missing-record StandardError.
func IsNotFound(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == ErrCodeApplicationNotFound || stdErr.Code == ErrCodeDogNotFound
	}
	return false
}
