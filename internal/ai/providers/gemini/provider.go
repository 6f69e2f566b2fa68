// Package gemini implements ai.Provider over the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/yildizm/datagov/internal/ai"
)

type Provider struct {
	config *ai.ProviderConfig
	client *genai.Client
	http   *http.Client
}

// New builds a Gemini client. No request is made until Complete or
// HealthCheck is called.
func New(config *ai.ProviderConfig) (*Provider, error) {
	if err := config.Validate(providerName, limits); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: config.Timeout}
	cc := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if config.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, ai.NewProviderErrorWithCause(ai.ErrTypeConfiguration, "failed to create GenAI client", providerName, err)
	}

	return &Provider{
		config: config,
		client: client,
		http:   httpClient,
	}, nil
}

func (p *Provider) Name() string {
	return providerName
}

// Complete sends the prompt as a single user turn, with the request context
// ahead of it and the system prompt as the system instruction.
func (p *Provider) Complete(ctx context.Context, req *ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ai.NewProviderError(ai.ErrTypeValidation, "prompt is required", providerName)
	}

	started := time.Now()

	model := req.Model
	if model == "" {
		model = p.config.DefaultModel
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.config.DefaultTemperature
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	text := req.Prompt
	if req.Context != "" {
		text = "Context: " + req.Context + "\n\n" + text
	}
	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, p.wrapError(ctx, err)
	}

	out := &ai.CompletionResponse{
		Content:   resp.Text(),
		Model:     model,
		RequestID: req.RequestID,
		CreatedAt: started,
	}
	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}
	if len(resp.Candidates) > 0 {
		out.FinishReason = strings.ToLower(string(resp.Candidates[0].FinishReason))
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &ai.TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}

	return out, nil
}

func (p *Provider) Close() error {
	p.http.CloseIdleConnections()
	return nil
}

// HealthCheck fetches the configured model's metadata
func (p *Provider) HealthCheck(ctx context.Context) error {
	if _, err := p.client.Models.Get(ctx, p.config.DefaultModel, nil); err != nil {
		return p.wrapError(ctx, err)
	}
	return nil
}

// wrapError maps SDK failures onto typed provider errors
func (p *Provider) wrapError(ctx context.Context, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		perr := ai.NewStatusError(providerName, apiErr.Code, apiErr.Message)
		if apiErr.Status == "RESOURCE_EXHAUSTED" && strings.Contains(strings.ToLower(apiErr.Message), "quota") {
			perr.Type = ai.ErrTypeQuota
			perr.Retryable = false
		}
		perr.Cause = err
		return perr
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return p.wrapError(ctx, *apiErrPtr)
	}
	return ai.FromContext(ctx, providerName, fmt.Sprintf("generate content with %s failed", p.config.DefaultModel), err)
}
