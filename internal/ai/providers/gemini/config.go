package gemini

import (
	"time"

	"github.com/yildizm/datagov/internal/ai"
)

const (
	providerName = "gemini"

	DefaultModel       = "gemini-2.5-flash"
	DefaultMaxTokens   = 8192
	DefaultTemperature = 0.2
	DefaultTimeout     = 30 * time.Second
)

// BaseURL is optional; empty uses the SDK endpoint
var limits = ai.Limits{RequireAPIKey: true, MaxTemperature: 2}

func DefaultConfig() *ai.ProviderConfig {
	return &ai.ProviderConfig{
		Type:               providerName,
		DefaultModel:       DefaultModel,
		MaxTokens:          DefaultMaxTokens,
		DefaultTemperature: DefaultTemperature,
		Timeout:            DefaultTimeout,
	}
}

// Open is the registry opener
func Open(config *ai.ProviderConfig) (ai.Provider, error) {
	p, err := New(config.WithDefaults(DefaultConfig()))
	if err != nil {
		return nil, err
	}
	return p, nil
}
