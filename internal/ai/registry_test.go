package ai

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

type stubProvider struct {
	name     string
	closed   bool
	closeErr error
}

func (s *stubProvider) Name() string { return s.name }
func (s *stubProvider) Complete(context.Context, *CompletionRequest) (*CompletionResponse, error) {
	return &CompletionResponse{Content: "ok"}, nil
}
func (s *stubProvider) HealthCheck(context.Context) error { return nil }
func (s *stubProvider) Close() error {
	s.closed = true
	return s.closeErr
}

var stubDefaults = &ProviderConfig{
	Type:         "stub",
	BaseURL:      "http://localhost:1",
	DefaultModel: "m",
	MaxTokens:    1024,
	Timeout:      time.Second,
}

// stubOpener records the merged config it was given
func stubOpener(seen *[]*ProviderConfig) Opener {
	return func(config *ProviderConfig) (Provider, error) {
		merged := config.WithDefaults(stubDefaults)
		if err := merged.Validate("stub", Limits{MaxTemperature: 1}); err != nil {
			return nil, err
		}
		*seen = append(*seen, merged)
		return &stubProvider{name: merged.Type}, nil
	}
}

func TestRegistryOpen(t *testing.T) {
	r := NewRegistry()
	var seen []*ProviderConfig

	if err := r.Register("Ollama", stubOpener(&seen)); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("gemini", stubOpener(&seen)); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("ollama", stubOpener(&seen)); TypeOf(err) != ErrTypeRegistration {
		t.Errorf("duplicate registration = %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"gemini", "ollama"}) {
		t.Errorf("Names() = %v", got)
	}

	p, err := r.Open(&ProviderConfig{Type: "OLLAMA", DefaultModel: "mistral"})
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if p.Name() != "OLLAMA" {
		t.Errorf("Name() = %q", p.Name())
	}
	if seen[0].DefaultModel != "mistral" || seen[0].BaseURL != stubDefaults.BaseURL {
		t.Errorf("opener got %+v, want the model overridden and defaults elsewhere", seen[0])
	}

	if _, err := r.Open(&ProviderConfig{Type: "gemini", DefaultTemperature: 1.5}); !IsConfigurationError(err) {
		t.Errorf("out-of-range temperature accepted: %v", err)
	}

	_, err = r.Open(&ProviderConfig{Type: "llamafile"})
	if TypeOf(err) != ErrTypeNotFound {
		t.Fatalf("Open(unknown) = %v", err)
	}
	if !strings.Contains(err.Error(), "available: gemini, ollama") {
		t.Errorf("error should list the registered providers: %v", err)
	}

	if _, err := r.Open(nil); !IsConfigurationError(err) {
		t.Errorf("Open(nil) = %v", err)
	}
}

func TestRegistryCloseReleasesOpenedProviders(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	var opened []*stubProvider
	err := r.Register("stub", func(*ProviderConfig) (Provider, error) {
		p := &stubProvider{name: "stub"}
		if len(opened) == 1 {
			p.closeErr = boom
		}
		opened = append(opened, p)
		return p, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := r.Open(&ProviderConfig{Type: "stub"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := r.Close(); !errors.Is(err, boom) {
		t.Errorf("Close() = %v, want the close failure joined", err)
	}
	for i, p := range opened {
		if !p.closed {
			t.Errorf("provider %d was not closed", i)
		}
	}

	// a second Close has nothing left to release
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestProviderConfigWithDefaults(t *testing.T) {
	var unset *ProviderConfig
	if got := unset.WithDefaults(stubDefaults); !reflect.DeepEqual(got, stubDefaults) {
		t.Errorf("nil config = %+v", got)
	}

	got := (&ProviderConfig{APIKey: "k", MaxRetries: 3, Timeout: 5 * time.Second}).WithDefaults(stubDefaults)
	want := *stubDefaults
	want.APIKey = "k"
	want.MaxRetries = 3
	want.Timeout = 5 * time.Second
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("WithDefaults() = %+v, want %+v", *got, want)
	}
	if stubDefaults.APIKey != "" {
		t.Error("WithDefaults mutated the defaults")
	}
}

func TestProviderConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ProviderConfig)
		limits Limits
		field  string
	}{
		{"valid", func(c *ProviderConfig) {}, Limits{MaxTemperature: 1}, ""},
		{"missing key", func(c *ProviderConfig) {}, Limits{RequireAPIKey: true, MaxTemperature: 1}, "api_key"},
		{"missing url", func(c *ProviderConfig) { c.BaseURL = "" }, Limits{RequireBaseURL: true, MaxTemperature: 1}, "base_url"},
		{"optional url", func(c *ProviderConfig) { c.BaseURL = "" }, Limits{MaxTemperature: 1}, ""},
		{"bad url", func(c *ProviderConfig) { c.BaseURL = "http://[::1]:namedport" }, Limits{MaxTemperature: 1}, "base_url"},
		{"no model", func(c *ProviderConfig) { c.DefaultModel = "" }, Limits{MaxTemperature: 1}, "default_model"},
		{"no tokens", func(c *ProviderConfig) { c.MaxTokens = 0 }, Limits{MaxTemperature: 1}, "max_tokens"},
		{"no timeout", func(c *ProviderConfig) { c.Timeout = 0 }, Limits{MaxTemperature: 1}, "timeout"},
		{"negative retries", func(c *ProviderConfig) { c.MaxRetries = -1 }, Limits{MaxTemperature: 1}, "max_retries"},
		{"hot", func(c *ProviderConfig) { c.DefaultTemperature = 1.5 }, Limits{MaxTemperature: 1}, "default_temperature"},
		{"hot but allowed", func(c *ProviderConfig) { c.DefaultTemperature = 1.5 }, Limits{MaxTemperature: 2}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *stubDefaults
			tt.mutate(&c)
			err := c.Validate("stub", tt.limits)
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			var ce *ConfigurationError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("Validate() = %v, want a %s error", err, tt.field)
			}
		})
	}
}
