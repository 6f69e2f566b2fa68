package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yildizm/datagov/internal/ai"
)

// Provider implements the AI provider interface for Ollama
type Provider struct {
	config  *ai.ProviderConfig
	client  *http.Client
	baseURL *url.URL
}

// New creates a provider from a complete config
func New(config *ai.ProviderConfig) (*Provider, error) {
	if err := config.Validate(providerName, limits); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, ai.NewConfigurationError(providerName, "base_url", "invalid base URL: "+err.Error())
	}

	return &Provider{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: baseURL,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return providerName
}

// Complete performs a non-streaming /api/generate call. The request
// context, when present, is prepended to the prompt.
func (p *Provider) Complete(ctx context.Context, req *ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ai.NewProviderError(ai.ErrTypeValidation, "prompt is required", providerName)
	}

	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = p.config.DefaultModel
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.config.DefaultTemperature
	}

	options := &Options{Temperature: temperature}
	if req.MaxTokens > 0 {
		options.NumPredict = req.MaxTokens
	}

	prompt := req.Prompt
	if req.Context != "" {
		prompt = "Context: " + req.Context + "\n\n" + prompt
	}

	resp, err := p.generate(ctx, &GenerateRequest{
		Model:   model,
		Prompt:  prompt,
		System:  req.SystemPrompt,
		Stream:  false,
		Options: options,
	})
	if err != nil {
		return nil, err
	}

	finish := resp.DoneReason
	if finish == "" {
		finish = "stop"
	}

	return &ai.CompletionResponse{
		Content:      resp.Response,
		FinishReason: finish,
		Usage: &ai.TokenUsage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
		Model:     resp.Model,
		RequestID: req.RequestID,
		CreatedAt: startTime,
	}, nil
}

// Close releases idle connections
func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

// HealthCheck lists local models and fails when the default model is missing
func (p *Provider) HealthCheck(ctx context.Context) error {
	models, err := p.ListModels(ctx)
	if err != nil {
		return err
	}

	for _, m := range models {
		if m.Name == p.config.DefaultModel || strings.HasPrefix(m.Name, p.config.DefaultModel+":") {
			return nil
		}
	}

	return ai.NewProviderError(ai.ErrTypeModelUnavailable,
		fmt.Sprintf("model %q is not installed; run `ollama pull %s`", p.config.DefaultModel, p.config.DefaultModel), providerName)
}

// ListModels returns the locally installed models
func (p *Provider) ListModels(ctx context.Context) ([]Model, error) {
	endpoint := p.baseURL.JoinPath("/api/tags")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to create request", providerName, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, ai.FromContext(ctx, providerName, "list models failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, p.errorFromResponse(resp)
	}

	var tagsResp TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to decode response", providerName, err)
	}

	return tagsResp.Models, nil
}

func (p *Provider) generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	endpoint := p.baseURL.JoinPath("/api/generate")

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to marshal request", providerName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(jsonData))
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to create request", providerName, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, ai.FromContext(ctx, providerName, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, p.errorFromResponse(resp)
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to decode response", providerName, err)
	}

	return &result, nil
}

func (p *Provider) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var errorResp ErrorResponse
	if json.Unmarshal(body, &errorResp) == nil && errorResp.Error != "" {
		return ai.NewStatusError(providerName, resp.StatusCode, errorResp.Error)
	}
	return ai.NewStatusError(providerName, resp.StatusCode, "")
}
