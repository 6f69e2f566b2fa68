package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of AI-related error
type ErrorType string

const (
	ErrTypeProvider         ErrorType = "provider"
	ErrTypeConfiguration    ErrorType = "configuration"
	ErrTypeAuthentication   ErrorType = "authentication"
	ErrTypeRateLimit        ErrorType = "rate_limit"
	ErrTypeQuota            ErrorType = "quota"
	ErrTypeNetwork          ErrorType = "network"
	ErrTypeTimeout          ErrorType = "timeout"
	ErrTypeCanceled         ErrorType = "canceled"
	ErrTypeValidation       ErrorType = "validation"
	ErrTypeRegistration     ErrorType = "registration"
	ErrTypeNotFound         ErrorType = "not_found"
	ErrTypeEmptyResponse    ErrorType = "empty_response"
	ErrTypeModelUnavailable ErrorType = "model_unavailable"
	ErrTypeInternal         ErrorType = "internal"
)

// ProviderError represents errors specific to AI providers
type ProviderError struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// Provider indicates which provider caused the error
	Provider string `json:"provider,omitempty"`

	// StatusCode for HTTP-related errors
	StatusCode int `json:"status_code,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`

	// Retryable indicates if the operation can be retried
	Retryable bool `json:"retryable"`

	// RetryAfter suggests when to retry, in seconds
	RetryAfter int `json:"retry_after,omitempty"`
}

func (e *ProviderError) Error() string {
	var parts []string

	if e.Provider != "" {
		parts = append(parts, fmt.Sprintf("provider=%s", e.Provider))
	}

	parts = append(parts, fmt.Sprintf("type=%s", e.Type))

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Is matches another *ProviderError of the same type
func (e *ProviderError) Is(target error) bool {
	if pe, ok := target.(*ProviderError); ok {
		return e.Type == pe.Type
	}
	return false
}

// IsRetryable returns whether the error is retryable
func (e *ProviderError) IsRetryable() bool {
	return e.Retryable
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Provider string `json:"provider"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for provider '%s', field '%s': %s",
		e.Provider, e.Field, e.Message)
}

// NewProviderError creates a new provider error
func NewProviderError(errType ErrorType, message, provider string) *ProviderError {
	return &ProviderError{
		Type:      errType,
		Message:   message,
		Provider:  provider,
		Retryable: isRetryableError(errType),
	}
}

// NewProviderErrorWithCause creates a provider error with an underlying cause
func NewProviderErrorWithCause(errType ErrorType, message, provider string, cause error) *ProviderError {
	return &ProviderError{
		Type:      errType,
		Message:   message,
		Provider:  provider,
		Cause:     cause,
		Retryable: isRetryableError(errType),
	}
}

// NewStatusError builds a provider error from a non-2xx HTTP status
func NewStatusError(provider string, status int, message string) *ProviderError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	errType := ErrTypeProvider
	switch {
	case status == 401 || status == 403:
		errType = ErrTypeAuthentication
	case status == 404:
		errType = ErrTypeModelUnavailable
	case status == 429:
		errType = ErrTypeRateLimit
	case status == 400:
		errType = ErrTypeValidation
	case status == 408 || status == 504:
		errType = ErrTypeTimeout
	}
	e := NewProviderError(errType, message, provider)
	e.StatusCode = status
	return e
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(provider, field, message string) *ConfigurationError {
	return &ConfigurationError{
		Provider: provider,
		Field:    field,
		Message:  message,
	}
}

// FromContext wraps a transport failure, keeping deadline and cancellation
// distinguishable from plain network errors.
func FromContext(ctx context.Context, provider, message string, cause error) *ProviderError {
	switch {
	case errors.Is(ctx.Err(), context.Canceled) || errors.Is(cause, context.Canceled):
		return NewProviderErrorWithCause(ErrTypeCanceled, message, provider, cause)
	case errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(cause, context.DeadlineExceeded):
		return NewProviderErrorWithCause(ErrTypeTimeout, message, provider, cause)
	default:
		return NewProviderErrorWithCause(ErrTypeNetwork, message, provider, cause)
	}
}

func isRetryableError(errType ErrorType) bool {
	switch errType {
	case ErrTypeRateLimit, ErrTypeTimeout, ErrTypeNetwork:
		return true
	default:
		return false
	}
}

// TypeOf returns the ErrorType carried by err, or ErrTypeInternal
func TypeOf(err error) ErrorType {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Type
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ErrTypeConfiguration
	}
	switch {
	case errors.Is(err, context.Canceled):
		return ErrTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTypeTimeout
	}
	return ErrTypeInternal
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.IsRetryable()
}

// IsRateLimitError checks if an error is a rate limit error
func IsRateLimitError(err error) bool {
	return TypeOf(err) == ErrTypeRateLimit
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return TypeOf(err) == ErrTypeConfiguration
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return TypeOf(err) == ErrTypeValidation
}
