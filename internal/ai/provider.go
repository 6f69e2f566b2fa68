package ai

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

// Provider is a completion backend the assistant can ask
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// HealthCheck confirms the backend answers and the configured model exists
	HealthCheck(ctx context.Context) error

	io.Closer
}

// RateLimiter paces asks to a provider
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Limits are the per-provider rules Validate applies to a ProviderConfig
type Limits struct {
	RequireAPIKey  bool
	RequireBaseURL bool
	MaxTemperature float64
}

// WithDefaults returns a copy of defaults overlaid with every field set in c.
// Zero numbers count as unset.
func (c *ProviderConfig) WithDefaults(defaults *ProviderConfig) *ProviderConfig {
	out := *defaults
	if c == nil {
		return &out
	}
	if c.Type != "" {
		out.Type = c.Type
	}
	if c.APIKey != "" {
		out.APIKey = c.APIKey
	}
	if c.BaseURL != "" {
		out.BaseURL = c.BaseURL
	}
	if c.DefaultModel != "" {
		out.DefaultModel = c.DefaultModel
	}
	if c.MaxTokens > 0 {
		out.MaxTokens = c.MaxTokens
	}
	if c.DefaultTemperature > 0 {
		out.DefaultTemperature = c.DefaultTemperature
	}
	if c.Timeout > 0 {
		out.Timeout = c.Timeout
	}
	if c.MaxRetries > 0 {
		out.MaxRetries = c.MaxRetries
	}
	return &out
}

// Validate checks c against the limits of provider and reports the first
// offending field as a ConfigurationError
func (c *ProviderConfig) Validate(provider string, limits Limits) error {
	if c == nil {
		return NewConfigurationError(provider, "config", "configuration is required")
	}
	if limits.RequireAPIKey && c.APIKey == "" {
		return NewConfigurationError(provider, "api_key", "API key is required (set ai.api_key)")
	}
	if c.BaseURL == "" {
		if limits.RequireBaseURL {
			return NewConfigurationError(provider, "base_url", "base URL is required")
		}
	} else if _, err := url.Parse(c.BaseURL); err != nil {
		return NewConfigurationError(provider, "base_url", "invalid base URL: "+err.Error())
	}
	switch {
	case c.DefaultModel == "":
		return NewConfigurationError(provider, "default_model", "default model is required")
	case c.MaxTokens <= 0:
		return NewConfigurationError(provider, "max_tokens", "max tokens must be positive")
	case c.Timeout <= 0:
		return NewConfigurationError(provider, "timeout", "timeout must be positive")
	case c.MaxRetries < 0:
		return NewConfigurationError(provider, "max_retries", "max retries cannot be negative")
	case c.DefaultTemperature < 0 || c.DefaultTemperature > limits.MaxTemperature:
		return NewConfigurationError(provider, "default_temperature",
			"temperature must be between 0 and "+trimFloat(limits.MaxTemperature))
	}
	return nil
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
