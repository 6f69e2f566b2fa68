package openai

import (
	"time"

	"github.com/yildizm/datagov/internal/ai"
)

const (
	providerName = "openai"

	DefaultBaseURL     = "https://api.openai.com"
	DefaultModel       = "gpt-4o-mini"
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.2
	DefaultTimeout     = 30 * time.Second
	DefaultMaxRetries  = 2
)

var limits = ai.Limits{RequireAPIKey: true, RequireBaseURL: true, MaxTemperature: 2}

// DefaultConfig has everything but the API key
func DefaultConfig() *ai.ProviderConfig {
	return &ai.ProviderConfig{
		Type:               providerName,
		BaseURL:            DefaultBaseURL,
		DefaultModel:       DefaultModel,
		MaxTokens:          DefaultMaxTokens,
		DefaultTemperature: DefaultTemperature,
		Timeout:            DefaultTimeout,
		MaxRetries:         DefaultMaxRetries,
	}
}

// Open is the registry opener. Any OpenAI-compatible endpoint works through BaseURL.
func Open(config *ai.ProviderConfig) (ai.Provider, error) {
	p, err := New(config.WithDefaults(DefaultConfig()))
	if err != nil {
		return nil, err
	}
	return p, nil
}
