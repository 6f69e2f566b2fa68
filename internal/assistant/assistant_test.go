package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yildizm/datagov/internal/ai"
	"github.com/yildizm/datagov/internal/ai/providers/ollama"
	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/monitor"
)

type fakeProvider struct {
	mu      sync.Mutex
	answer  string
	err     error
	delay   time.Duration
	lastReq *ai.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req *ai.CompletionRequest) (*ai.CompletionResponse, error) {
	f.mu.Lock()
	f.lastReq = req
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ai.FromContext(ctx, "fake", "request failed", ctx.Err())
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &ai.CompletionResponse{Content: f.answer, Usage: &ai.TokenUsage{TotalTokens: 7}}, nil
}

func (f *fakeProvider) HealthCheck(context.Context) error { return nil }
func (f *fakeProvider) Close() error                      { return nil }

func TestBuildObjectContext(t *testing.T) {
	obj := catalog.DataObject{
		Name:        "CDM_Sales_Order_Header",
		Description: "Canonical sales order.",
		Schema: []catalog.SchemaField{
			{Name: "Order_ID", Type: "Varchar(50)", Source: "JDE.F4211.SDDOCO", Description: "Unique id."},
		},
	}

	got := BuildObjectContext(obj)
	want := `Object: CDM_Sales_Order_Header. Description: Canonical sales order. Schema: [{"name":"Order_ID","type":"Varchar(50)","sourceField":"JDE.F4211.SDDOCO","description":"Unique id."}]`
	assert.Equal(t, want, got)

	assert.Equal(t, "Object: X. Description: . Schema: []", BuildObjectContext(catalog.DataObject{Name: "X"}))
}

func TestAskSendsPromptAndRequestID(t *testing.T) {
	p := &fakeProvider{answer: "  Source fields look healthy.\n"}
	a := New(p, nil, Options{MaxTokens: 256, Temperature: 0.1}, nil)

	answer, err := a.Ask(context.Background(), HealthQuestion, "Object: Orders.")
	require.NoError(t, err)
	assert.Equal(t, "Source fields look healthy.", answer)

	require.NotNil(t, p.lastReq)
	assert.Contains(t, p.lastReq.Prompt, HealthQuestion)
	assert.Contains(t, p.lastReq.Prompt, "Object: Orders.")
	assert.Contains(t, p.lastReq.SystemPrompt, "data governance expert")
	assert.Len(t, p.lastReq.RequestID, 36)
	assert.Equal(t, 256, p.lastReq.MaxTokens)
}

func TestAnswerFallback(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		want     string
	}{
		{"answer", &fakeProvider{answer: "ok"}, "ok"},
		{"empty answer", &fakeProvider{answer: "   "}, FallbackAnswer},
		{"network error", &fakeProvider{err: ai.NewProviderError(ai.ErrTypeNetwork, "dial", "fake")}, FallbackAnswer},
		{"auth error", &fakeProvider{err: ai.NewProviderError(ai.ErrTypeAuthentication, "bad key", "fake")}, FallbackAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.provider, nil, Options{}, nil)
			assert.Equal(t, tt.want, a.Answer(context.Background(), "q", "c"))
		})
	}
}

func TestAnswerLogsTypedFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := monitor.New()
	p := &fakeProvider{err: ai.NewProviderError(ai.ErrTypeRateLimit, "slow down", "fake")}
	a := New(p, nil, Options{}, metrics).WithLogger(logger.FromZap("assistant", zap.New(core)))

	assert.Equal(t, FallbackAnswer, a.Answer(context.Background(), "q", "c"))

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, "rate_limit", warns[0].ContextMap()["error_type"])

	snap, err := metrics.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Asks[monitor.AskFallback])
}

func TestAnswerTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &fakeProvider{answer: "late", delay: time.Second}
	a := New(p, nil, Options{Timeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	assert.Equal(t, FallbackAnswer, a.Answer(context.Background(), "q", "c"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestAnswerCanceledIsCounted(t *testing.T) {
	defer goleak.VerifyNone(t)

	metrics := monitor.New()
	p := &fakeProvider{answer: "late", delay: time.Second}
	a := New(p, nil, Options{}, metrics)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	a.Answer(ctx, "q", "c")

	snap, err := metrics.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Asks[monitor.AskCanceled])
	assert.Zero(t, snap.Asks[monitor.AskAnswered])
}

func TestRateLimitedAskFallsBack(t *testing.T) {
	p := &fakeProvider{answer: "ok"}
	limiter := ai.NewTokenBucket("fake", &ai.RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	a := New(p, limiter, Options{Timeout: 20 * time.Millisecond}, nil)

	assert.Equal(t, "ok", a.Answer(context.Background(), "q", "c"))
	assert.Equal(t, FallbackAnswer, a.Answer(context.Background(), "q", "c"))
}

func TestAskOverOllama(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollama.GenerateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Prompt, HealthQuestion) {
			t.Errorf("question missing from prompt: %q", req.Prompt)
		}
		_ = json.NewEncoder(w).Encode(ollama.GenerateResponse{Model: req.Model, Response: "Mostly fine.", Done: true})
	}))
	defer server.Close()

	config := ollama.DefaultConfig()
	config.BaseURL = server.URL
	p, err := ollama.New(config)
	require.NoError(t, err)

	a := New(p, nil, Options{Timeout: time.Second}, nil)
	assert.Equal(t, "Mostly fine.", a.Answer(context.Background(), HealthQuestion, "Object: Orders."))
	assert.Equal(t, "ollama", a.Provider())
}
