package ai

import (
	"context"

	"golang.org/x/time/rate"
)

// TokenBucket is a RateLimiter over golang.org/x/time/rate. Each call
// costs one request.
type TokenBucket struct {
	provider string
	limiter  *rate.Limiter
}

// NewTokenBucket builds a limiter for cfg. A nil config or a non-positive
// rate means unlimited.
func NewTokenBucket(provider string, cfg *RateLimitConfig) *TokenBucket {
	var c RateLimitConfig
	if cfg != nil {
		c = *cfg
	}
	return &TokenBucket{provider: provider, limiter: newLimiter(c)}
}

func newLimiter(cfg RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60), burst)
}

// Allow fails fast with a rate limit error when no request is available
func (tb *TokenBucket) Allow(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return FromContext(ctx, tb.provider, "rate limiter", err)
	}
	if !tb.limiter.Allow() {
		return NewProviderError(ErrTypeRateLimit, "request rate exceeded", tb.provider)
	}
	return nil
}

// Wait blocks until a request is available or ctx is done
func (tb *TokenBucket) Wait(ctx context.Context) error {
	if err := tb.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return FromContext(ctx, tb.provider, "waiting for rate limiter", err)
		}
		// the wait would outlast the deadline
		return NewProviderErrorWithCause(ErrTypeRateLimit, "request rate exceeded", tb.provider, err)
	}
	return nil
}
