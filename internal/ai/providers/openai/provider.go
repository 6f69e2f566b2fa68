package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yildizm/datagov/internal/ai"
)

type Provider struct {
	config  *ai.ProviderConfig
	client  *http.Client
	baseURL *url.URL

	// baseDelay is the first backoff step between retries
	baseDelay time.Duration
}

// New creates a provider from a complete config. A nil config fails on the
// missing API key.
func New(config *ai.ProviderConfig) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(providerName, limits); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, ai.NewConfigurationError(providerName, "base_url", fmt.Sprintf("invalid base URL: %v", err))
	}

	return &Provider{
		config:    config,
		client:    &http.Client{Timeout: config.Timeout},
		baseURL:   baseURL,
		baseDelay: time.Second,
	}, nil
}

func (p *Provider) Name() string {
	return providerName
}

func (p *Provider) Complete(ctx context.Context, req *ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ai.NewProviderError(ai.ErrTypeValidation, "prompt is required", providerName)
	}

	response, err := p.sendChatRequest(ctx, p.buildChatRequest(req))
	if err != nil {
		return nil, err
	}

	return response.completion(req.RequestID), nil
}

func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

// HealthCheck lists models, which proves the key is accepted
func (p *Provider) HealthCheck(ctx context.Context) error {
	endpoint := p.baseURL.JoinPath("/v1/models")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to create health check request", providerName, err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return ai.FromContext(ctx, providerName, "health check request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	return p.handleErrorResponse(resp)
}

func (p *Provider) buildChatRequest(req *ai.CompletionRequest) *chatRequest {
	model := req.Model
	if model == "" {
		model = p.config.DefaultModel
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.config.DefaultTemperature
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens / 2
	}

	chatReq := &chatRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		User:        req.RequestID,
		Messages:    chatMessages(req),
	}

	return chatReq
}

func (p *Provider) sendChatRequest(ctx context.Context, req *chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to marshal request", providerName, err)
	}

	resp, err := p.doRequestWithRetry(ctx, p.baseURL.JoinPath("/v1/chat/completions").String(), body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, p.handleErrorResponse(resp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to decode response", providerName, err)
	}

	return &chatResp, nil
}

func (p *Provider) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
}

// doRequestWithRetry retries 429 and transport failures with exponential
// backoff. Waits are cut short by ctx.
func (p *Provider) doRequestWithRetry(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	attempts := p.config.MaxRetries + 1

	for attempt := 0; attempt < attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, ai.NewProviderErrorWithCause(ai.ErrTypeInternal, "failed to create request", providerName, err)
		}
		p.setHeaders(req)

		delay := time.Duration(math.Pow(2, float64(attempt))) * p.baseDelay

		resp, err := p.client.Do(req)
		if err != nil {
			if ctx.Err() != nil || attempt == attempts-1 {
				return nil, ai.FromContext(ctx, providerName, "request failed", err)
			}
		} else if resp.StatusCode == http.StatusTooManyRequests && attempt < attempts-1 {
			if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
				delay = time.Duration(seconds) * time.Second
			}
			_ = resp.Body.Close()
		} else {
			return resp, nil
		}

		if err := sleep(ctx, delay); err != nil {
			return nil, ai.FromContext(ctx, providerName, "request abandoned during backoff", err)
		}
	}

	return nil, ai.NewProviderError(ai.ErrTypeNetwork, "max retries exceeded", providerName)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Provider) handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return ai.NewStatusError(providerName, resp.StatusCode, "")
	}

	var errorResp apiError
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return ai.NewStatusError(providerName, resp.StatusCode, "")
	}

	perr := ai.NewStatusError(providerName, resp.StatusCode, errorResp.Error.Message)
	if errorResp.Error.Code == "insufficient_quota" {
		perr.Type = ai.ErrTypeQuota
		perr.Retryable = false
	}
	if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
		perr.RetryAfter = seconds
	}
	return perr
}
