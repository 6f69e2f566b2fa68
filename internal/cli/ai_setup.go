package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yildizm/datagov/internal/ai"
	"github.com/yildizm/datagov/internal/ai/providers/gemini"
	"github.com/yildizm/datagov/internal/ai/providers/ollama"
	"github.com/yildizm/datagov/internal/ai/providers/openai"
	"github.com/yildizm/datagov/internal/assistant"
	"github.com/yildizm/datagov/internal/config"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/monitor"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerProviders adds the built-in backends to ai.Providers
func registerProviders() error {
	registerOnce.Do(func() {
		builtin := map[string]ai.Opener{
			"ollama": ollama.Open,
			"openai": openai.Open,
			"gemini": gemini.Open,
		}
		for name, open := range builtin {
			if err := ai.Providers.Register(name, open); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

// providerConfig maps the ai config section onto the generic provider config.
// Provider defaults fill whatever is left empty.
func providerConfig(aiConfig *config.AIConfig) *ai.ProviderConfig {
	return &ai.ProviderConfig{
		Type:               strings.ToLower(aiConfig.Provider),
		APIKey:             aiConfig.APIKey,
		BaseURL:            aiConfig.Endpoint,
		DefaultModel:       aiConfig.Model,
		MaxTokens:          aiConfig.MaxTokens,
		DefaultTemperature: aiConfig.Temperature,
		Timeout:            aiConfig.Timeout,
		MaxRetries:         aiConfig.MaxRetries,
	}
}

// createAIProvider creates an AI provider based on configuration.
func createAIProvider(aiConfig *config.AIConfig) (ai.Provider, error) {
	if err := registerProviders(); err != nil {
		return nil, fmt.Errorf("failed to register providers: %w", err)
	}

	provider, err := ai.Providers.Open(providerConfig(aiConfig))
	if ai.TypeOf(err) == ai.ErrTypeNotFound {
		return nil, fmt.Errorf("unsupported AI provider: %s (available: %s)",
			aiConfig.Provider, strings.Join(ai.Providers.Names(), ", "))
	}
	return provider, err
}

// newAssistant builds the assistant over the configured provider with the
// configured rate limit. The provider is closed through the registry.
func newAssistant(cfg *config.Config, metrics *monitor.Collector) (*assistant.Assistant, error) {
	provider, err := createAIProvider(&cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	limiter := ai.NewTokenBucket(provider.Name(), &ai.RateLimitConfig{
		RequestsPerMinute: cfg.AI.RateLimit,
	})
	options := assistant.Options{
		Timeout:     cfg.AI.Timeout,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
	}
	return assistant.New(provider, limiter, options, metrics).WithLogger(logger.New("assistant")), nil
}

// closeProviders releases provider connections at exit
func closeProviders(log *logger.Logger) {
	if err := ai.Providers.Close(); err != nil {
		log.Debug("closing providers: %v", err)
	}
}
