package ai

import (
	"time"
)

// CompletionRequest represents a request for text completion
type CompletionRequest struct {
	// Prompt is the user turn
	Prompt string `json:"prompt"`

	// Context is additional material the model should ground on
	Context string `json:"context,omitempty"`

	// MaxTokens caps the response length
	MaxTokens int `json:"max_tokens,omitempty"`

	// Temperature controls randomness (0.0 to 2.0)
	Temperature float64 `json:"temperature,omitempty"`

	// SystemPrompt sets the assistant persona
	SystemPrompt string `json:"system_prompt,omitempty"`

	// Model overrides the provider's default model
	Model string `json:"model,omitempty"`

	RequestID string            `json:"request_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// CompletionResponse represents the response from a completion request
type CompletionResponse struct {
	// Content is the generated text
	Content string `json:"content"`

	// FinishReason indicates why generation stopped
	FinishReason string `json:"finish_reason"`

	// Usage reports token consumption
	Usage *TokenUsage `json:"usage"`

	// Model is the model that produced the answer
	Model string `json:"model"`

	RequestID string    `json:"request_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenUsage tracks token consumption
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ProviderConfig holds the settings every provider understands. Unset
// fields are filled from the provider's defaults by WithDefaults.
type ProviderConfig struct {
	// Type names the registered provider (ollama, openai, gemini)
	Type string `json:"type"`

	APIKey string `json:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint
	BaseURL string `json:"base_url,omitempty"`

	DefaultModel       string  `json:"default_model,omitempty"`
	MaxTokens          int     `json:"max_tokens,omitempty"`
	DefaultTemperature float64 `json:"default_temperature,omitempty"`

	// Timeout bounds a single request
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries is the number of transport retries on 429 and network errors
	MaxRetries int `json:"max_retries,omitempty"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained request rate
	RequestsPerMinute float64 `json:"requests_per_minute"`

	// BurstSize is the number of requests allowed at once
	BurstSize int `json:"burst_size"`
}
