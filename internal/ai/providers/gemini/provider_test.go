package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/datagov/internal/ai"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := DefaultConfig()
	config.APIKey = "test-key"
	config.BaseURL = server.URL + "/"

	p, err := New(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestComplete(t *testing.T) {
	var body map[string]any
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Email is unverified."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 4, "totalTokenCount": 16},
			"modelVersion": "gemini-2.5-flash-001"
		}`))
	})

	resp, err := p.Complete(context.Background(), &ai.CompletionRequest{
		SystemPrompt: "You are a data governance expert.",
		Context:      "Object: Customer Master.",
		Prompt:       "Explain.",
		RequestID:    "r-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Email is unverified.", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, "gemini-2.5-flash-001", resp.Model)
	assert.Equal(t, "r-1", resp.RequestID)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 16, resp.Usage.TotalTokens)

	raw, _ := json.Marshal(body)
	assert.Contains(t, string(raw), "Context: Object: Customer Master.")
	assert.Contains(t, string(raw), "You are a data governance expert.")
}

func TestCompleteMapsAPIErrors(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "API key not valid.", "status": "PERMISSION_DENIED"}}`))
	})

	_, err := p.Complete(context.Background(), &ai.CompletionRequest{Prompt: "q"})
	require.Error(t, err)
	assert.Equal(t, ai.ErrTypeAuthentication, ai.TypeOf(err))
}

func TestCompleteRejectsEmptyPrompt(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	_, err := p.Complete(context.Background(), &ai.CompletionRequest{})
	assert.True(t, ai.IsValidationError(err))
}

func TestHealthCheckFetchesDefaultModel(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": 404, "message": "model not found", "status": "NOT_FOUND"}}`))
	})

	err := p.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Equal(t, ai.ErrTypeModelUnavailable, ai.TypeOf(err))
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	err := c.Validate(providerName, limits)
	require.Error(t, err)
	assert.True(t, ai.IsConfigurationError(err))

	c.APIKey = "k"
	assert.NoError(t, c.Validate(providerName, limits), "base URL is optional")

	c.DefaultTemperature = 3
	assert.Error(t, c.Validate(providerName, limits))
}

func TestOpen(t *testing.T) {
	p, err := Open(&ai.ProviderConfig{Type: "gemini", APIKey: "k", DefaultModel: "gemini-2.5-pro"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	got := p.(*Provider).config
	assert.Equal(t, "gemini-2.5-pro", got.DefaultModel)
	assert.Equal(t, DefaultTimeout, got.Timeout)

	_, err = Open(&ai.ProviderConfig{Type: "gemini"})
	assert.True(t, ai.IsConfigurationError(err))
}
