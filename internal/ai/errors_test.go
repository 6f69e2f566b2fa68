package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewStatusError(t *testing.T) {
	tests := []struct {
		status    int
		wantType  ErrorType
		retryable bool
	}{
		{401, ErrTypeAuthentication, false},
		{403, ErrTypeAuthentication, false},
		{404, ErrTypeModelUnavailable, false},
		{429, ErrTypeRateLimit, true},
		{400, ErrTypeValidation, false},
		{504, ErrTypeTimeout, true},
		{500, ErrTypeProvider, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := NewStatusError("ollama", tt.status, "")
			if err.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", err.Type, tt.wantType)
			}
			if err.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.status)
			}
			if err.IsRetryable() != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", err.IsRetryable(), tt.retryable)
			}
		})
	}
}

func TestProviderErrorMessage(t *testing.T) {
	err := NewProviderErrorWithCause(ErrTypeNetwork, "request failed", "openai", errors.New("connection refused"))
	err.StatusCode = 502

	want := "provider=openai: type=network: status=502: request failed: cause=connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("ask: %w", NewProviderError(ErrTypeRateLimit, "slow down", "gemini"))

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"wrapped provider error", wrapped, ErrTypeRateLimit},
		{"configuration", NewConfigurationError("openai", "api_key", "required"), ErrTypeConfiguration},
		{"deadline", context.DeadlineExceeded, ErrTypeTimeout},
		{"canceled", fmt.Errorf("x: %w", context.Canceled), ErrTypeCanceled},
		{"plain", errors.New("boom"), ErrTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.err); got != tt.want {
				t.Errorf("TypeOf() = %s, want %s", got, tt.want)
			}
		})
	}

	if !IsRateLimitError(wrapped) {
		t.Error("IsRateLimitError should see through wrapping")
	}
	if !IsRetryableError(wrapped) {
		t.Error("rate limit errors are retryable")
	}
	if !errors.Is(wrapped, &ProviderError{Type: ErrTypeRateLimit}) {
		t.Error("errors.Is should match on type")
	}
}

func TestFromContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := FromContext(ctx, "ollama", "request", ctx.Err()); got.Type != ErrTypeCanceled {
		t.Errorf("cancelled context gave %s", got.Type)
	}

	if got := FromContext(context.Background(), "ollama", "request", context.DeadlineExceeded); got.Type != ErrTypeTimeout {
		t.Errorf("deadline gave %s", got.Type)
	}

	if got := FromContext(context.Background(), "ollama", "request", errors.New("dial tcp")); got.Type != ErrTypeNetwork {
		t.Errorf("dial error gave %s", got.Type)
	}
}
