package ollama

import (
	"time"

	"github.com/yildizm/datagov/internal/ai"
)

const providerName = "ollama"

// a local server needs no key, and generate clamps temperature at 1
var limits = ai.Limits{RequireBaseURL: true, MaxTemperature: 1}

// DefaultConfig targets a stock local install
func DefaultConfig() *ai.ProviderConfig {
	return &ai.ProviderConfig{
		Type:               providerName,
		BaseURL:            "http://localhost:11434",
		DefaultModel:       "llama3.2",
		Timeout:            30 * time.Second,
		MaxTokens:          4096,
		DefaultTemperature: 0.2,
	}
}

// Open is the registry opener. Fields left unset in config take DefaultConfig values.
func Open(config *ai.ProviderConfig) (ai.Provider, error) {
	p, err := New(config.WithDefaults(DefaultConfig()))
	if err != nil {
		return nil, err
	}
	return p, nil
}
