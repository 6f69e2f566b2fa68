// Package assistant answers steward questions through an LLM provider.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yildizm/datagov/internal/ai"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/monitor"
)

// FallbackAnswer is shown whenever an ask fails or comes back empty
const FallbackAnswer = "Error getting response."

// ErrEmptyAnswer is returned by Ask when the provider produced no text
var ErrEmptyAnswer = ai.NewProviderError(ai.ErrTypeEmptyResponse, "provider returned an empty answer", "")

// Asker is the contract the dashboard depends on
type Asker interface {
	Ask(ctx context.Context, question, askContext string) (string, error)
}

// Options tune a single ask
type Options struct {
	// Timeout bounds one ask including the rate limiter wait. Zero disables it.
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// Assistant sends questions to a provider
type Assistant struct {
	provider ai.Provider
	limiter  ai.RateLimiter
	options  Options
	metrics  *monitor.Collector
	log      *logger.Logger
}

// New creates an assistant. limiter and metrics may be nil.
func New(provider ai.Provider, limiter ai.RateLimiter, options Options, metrics *monitor.Collector) *Assistant {
	if limiter == nil {
		limiter = ai.NewTokenBucket(provider.Name(), nil)
	}
	return &Assistant{
		provider: provider,
		limiter:  limiter,
		options:  options,
		metrics:  metrics,
		log:      logger.New("assistant"),
	}
}

// WithLogger replaces the component logger
func (a *Assistant) WithLogger(l *logger.Logger) *Assistant {
	a.log = l
	return a
}

// Provider returns the backing provider's name
func (a *Assistant) Provider() string {
	return a.provider.Name()
}

// Ask sends question with context and returns the answer text. An empty
// answer is an error.
func (a *Assistant) Ask(ctx context.Context, question, askContext string) (string, error) {
	answer, _, err := a.ask(ctx, question, askContext)
	return answer, err
}

func (a *Assistant) ask(ctx context.Context, question, askContext string) (string, *ai.TokenUsage, error) {
	if a.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.options.Timeout)
		defer cancel()
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", nil, err
	}

	prompt := NewAskPattern(question, askContext).Build()
	req := &ai.CompletionRequest{
		Prompt:       prompt.String(),
		SystemPrompt: prompt.SystemPrompt,
		MaxTokens:    a.options.MaxTokens,
		Temperature:  a.options.Temperature,
		RequestID:    uuid.NewString(),
	}

	a.log.DebugWithFields("sending ask", []logger.Field{
		logger.F("request_id", req.RequestID),
		logger.F("provider", a.provider.Name()),
		logger.F("prompt_chars", len(req.Prompt)),
	})

	resp, err := a.provider.Complete(ctx, req)
	if err != nil {
		return "", nil, err
	}

	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		return "", resp.Usage, ErrEmptyAnswer
	}
	return answer, resp.Usage, nil
}

// Answer runs Ask and maps every failure to FallbackAnswer. A cancelled
// ask also yields the fallback, but callers that cancelled are expected
// to drop the result.
func (a *Assistant) Answer(ctx context.Context, question, askContext string) string {
	start := time.Now()
	answer, usage, err := a.ask(ctx, question, askContext)

	tokens := 0
	if usage != nil {
		tokens = usage.TotalTokens
	}

	outcome := monitor.AskAnswered
	switch {
	case err == nil:
	case errors.Is(ctx.Err(), context.Canceled):
		outcome = monitor.AskCanceled
		a.log.Debug("ask canceled")
	default:
		outcome = monitor.AskFallback
		a.log.WarnWithFields("ask failed", []logger.Field{
			logger.F("provider", a.provider.Name()),
			logger.F("error_type", string(ai.TypeOf(err))),
			logger.Error(err),
		})
	}

	if a.metrics != nil {
		a.metrics.Observe(monitor.OperationAsk, time.Since(start), err)
		a.metrics.RecordAsk(a.provider.Name(), outcome, tokens)
	}

	if err != nil {
		return FallbackAnswer
	}
	return answer
}
