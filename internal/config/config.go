package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	AI      AIConfig      `yaml:"ai" json:"ai"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// AIConfig configures the data assistant's provider
type AIConfig struct {
	Provider    string        `yaml:"provider" json:"provider"`       // ollama|openai|gemini
	Model       string        `yaml:"model" json:"model"`             // model name/identifier
	Endpoint    string        `yaml:"endpoint" json:"endpoint"`       // API endpoint URL
	APIKey      string        `yaml:"api_key" json:"api_key"`         // API key
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`         // per-ask timeout
	MaxRetries  int           `yaml:"max_retries" json:"max_retries"` // provider transport retries
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens"`
	Temperature float64       `yaml:"temperature" json:"temperature"`
	RateLimit   float64       `yaml:"rate_limit" json:"rate_limit"` // asks per minute, 0 disables
}

// UIConfig configures the interactive dashboard
type UIConfig struct {
	Theme            string `yaml:"theme" json:"theme"`                         // default|high-contrast|minimal
	StartView        string `yaml:"start_view" json:"start_view"`               // view key shown at startup
	SidebarMinimized bool   `yaml:"sidebar_minimized" json:"sidebar_minimized"` // start with a collapsed sidebar
	User             string `yaml:"user" json:"user"`
	Role             string `yaml:"role" json:"role"`
}

// CatalogConfig configures where fixtures come from
type CatalogConfig struct {
	Path        string `yaml:"path" json:"path"`                 // external catalog YAML, empty uses the built-in one
	Watch       bool   `yaml:"watch" json:"watch"`               // reload the catalog when the file changes
	ActivityLog string `yaml:"activity_log" json:"activity_log"` // stewardship audit log shown on the dashboard
}

// OutputConfig configures plain (non-interactive) output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // terminal|json|csv|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
}

// LoggingConfig configures the log sink
type LoggingConfig struct {
	File  string `yaml:"file" json:"file"`
	Level string `yaml:"level" json:"level"` // debug|info|warn|error
}

// MetricsConfig configures the prometheus endpoint
type MetricsConfig struct {
	Addr string `yaml:"addr" json:"addr"` // listen address for /metrics, empty disables
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		AI: AIConfig{
			Provider:    "ollama",
			Model:       "llama3.2",
			Endpoint:    "http://localhost:11434",
			Timeout:     30 * time.Second,
			MaxRetries:  2,
			MaxTokens:   1024,
			Temperature: 0.2,
			RateLimit:   20,
		},
		UI: UIConfig{
			Theme:     "default",
			StartView: "dashboard",
			User:      "Sarah Jenkins",
			Role:      "Lead Data Steward",
		},
		Output: OutputConfig{
			DefaultFormat: "terminal",
			ColorMode:     "auto",
		},
		Logging: LoggingConfig{
			File:  "~/.local/state/datagov/datagov.log",
			Level: "warn",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateAIConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateLoggingConfig(); err != nil {
		return err
	}
	return nil
}

// validateAIConfig validates AI-related configuration
func (c *Config) validateAIConfig() error {
	if c.AI.Provider != "" {
		validProviders := map[string]bool{
			"ollama": true,
			"openai": true,
			"gemini": true,
		}
		if !validProviders[c.AI.Provider] {
			return fmt.Errorf("invalid AI provider: %s (must be one of: ollama, openai, gemini)", c.AI.Provider)
		}
	}
	if c.AI.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("ai timeout must be non-negative")
	}
	if c.AI.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be non-negative")
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	return nil
}

// validateUIConfig validates dashboard configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"terminal": true,
			"json":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: terminal, json, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateLoggingConfig validates the log level
func (c *Config) validateLoggingConfig() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}
}
