package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.datagov.yaml",               // Project-specific config (highest priority)
	"~/.config/datagov/config.yaml", // User config
	"/etc/datagov/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	getenv      func(string) string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		getenv:      os.Getenv,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.datagov.yaml
// 4. ~/.config/datagov/config.yaml
// 5. /etc/datagov/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := ExpandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// AI Config
		"DATAGOV_AI_PROVIDER":    func(v string) error { config.AI.Provider = v; return nil },
		"DATAGOV_AI_MODEL":       func(v string) error { config.AI.Model = v; return nil },
		"DATAGOV_AI_ENDPOINT":    func(v string) error { config.AI.Endpoint = v; return nil },
		"DATAGOV_AI_API_KEY":     func(v string) error { config.AI.APIKey = v; return nil },
		"DATAGOV_AI_TIMEOUT":     func(v string) error { return parseDuration(v, &config.AI.Timeout) },
		"DATAGOV_AI_MAX_RETRIES": func(v string) error { return parseInt(v, &config.AI.MaxRetries) },
		"DATAGOV_AI_RATE_LIMIT":  func(v string) error { return parseFloat(v, &config.AI.RateLimit) },

		// UI Config
		"DATAGOV_UI_THEME":             func(v string) error { config.UI.Theme = v; return nil },
		"DATAGOV_UI_START_VIEW":        func(v string) error { config.UI.StartView = v; return nil },
		"DATAGOV_UI_SIDEBAR_MINIMIZED": func(v string) error { return parseBool(v, &config.UI.SidebarMinimized) },
		"DATAGOV_UI_USER":              func(v string) error { config.UI.User = v; return nil },

		// Catalog Config
		"DATAGOV_CATALOG_PATH":         func(v string) error { config.Catalog.Path = v; return nil },
		"DATAGOV_CATALOG_WATCH":        func(v string) error { return parseBool(v, &config.Catalog.Watch) },
		"DATAGOV_CATALOG_ACTIVITY_LOG": func(v string) error { config.Catalog.ActivityLog = v; return nil },

		// Output, logging and metrics
		"DATAGOV_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"DATAGOV_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"DATAGOV_LOG_FILE":              func(v string) error { config.Logging.File = v; return nil },
		"DATAGOV_LOG_LEVEL":             func(v string) error { config.Logging.Level = v; return nil },
		"DATAGOV_METRICS_ADDR":          func(v string) error { config.Metrics.Addr = v; return nil },
	}

	// Gemini's own variable is honoured when nothing more specific is set
	if config.AI.APIKey == "" && config.AI.Provider == "gemini" {
		if key := l.getenv("GEMINI_API_KEY"); key != "" {
			config.AI.APIKey = key
		}
	}

	for envVar, setter := range envMappings {
		if value := l.getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, ExpandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := ExpandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeAIConfig(&dst.AI, &src.AI)
	mergeUIConfig(&dst.UI, &src.UI)
	mergeCatalogConfig(&dst.Catalog, &src.Catalog)

	if src.Output.DefaultFormat != "" {
		dst.Output.DefaultFormat = src.Output.DefaultFormat
	}
	if src.Output.ColorMode != "" {
		dst.Output.ColorMode = src.Output.ColorMode
	}
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Metrics.Addr != "" {
		dst.Metrics.Addr = src.Metrics.Addr
	}
}

// mergeAIConfig merges AI configuration
func mergeAIConfig(dst, src *AIConfig) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.MaxRetries != 0 {
		dst.MaxRetries = src.MaxRetries
	}
	if src.MaxTokens != 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.Temperature != 0 {
		dst.Temperature = src.Temperature
	}
	if src.RateLimit != 0 {
		dst.RateLimit = src.RateLimit
	}
}

// mergeUIConfig merges dashboard configuration
func mergeUIConfig(dst, src *UIConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.StartView != "" {
		dst.StartView = src.StartView
	}
	if src.User != "" {
		dst.User = src.User
	}
	if src.Role != "" {
		dst.Role = src.Role
	}
	// Zero value cannot be told apart from "unset"; use the env var to force false
	if src.SidebarMinimized {
		dst.SidebarMinimized = true
	}
}

// mergeCatalogConfig merges catalog configuration
func mergeCatalogConfig(dst, src *CatalogConfig) {
	if src.Path != "" {
		dst.Path = src.Path
	}
	if src.ActivityLog != "" {
		dst.ActivityLog = src.ActivityLog
	}
	if src.Watch {
		dst.Watch = true
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseFloat(s string, dst *float64) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
