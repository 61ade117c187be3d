package llm

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/akolanti/CatalystAPI/internal/config"
	"github.com/akolanti/CatalystAPI/pkg/logger_i"
)

// IsRateLimitError matches 429 status codes and RESOURCE_EXHAUSTED / quota
// errors from the Gemini API.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(errStr), "quota")
}

// matches the "Please retry in 45.387061394s" hint inside 429 messages
var retryDelayPattern = regexp.MustCompile(`Please retry in ([\d.]+)s`)

// ExtractRetryDelay parses the API-suggested retry delay out of a rate
// limit error, 0 when the message carries none.
func ExtractRetryDelay(err error) time.Duration {
	if err == nil {
		return 0
	}
	matches := retryDelayPattern.FindStringSubmatch(err.Error())
	if len(matches) < 2 {
		return 0
	}
	seconds, parseErr := strconv.ParseFloat(matches[1], 64)
	if parseErr != nil {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// RetryingProvider wraps a Provider with the shared rate gate and
// rate-limit retries. Non-rate-limit errors surface immediately; rate
// limits back off by the server-suggested delay plus a buffer, or
// exponentially when the error carries no hint.
type RetryingProvider struct {
	inner      Provider
	gate       *Gate
	maxRetries int
	baseDelay  time.Duration
	logger     *logger_i.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

func WithRetry(inner Provider, gate *Gate) *RetryingProvider {
	return &RetryingProvider{
		inner:      inner,
		gate:       gate,
		maxRetries: config.LLMMaxRetries,
		baseDelay:  config.LLMBaseRetryDelay,
		logger:     logger_i.NewLogger("llm_retry"),
		sleep:      sleepCtx,
	}
}

func (p *RetryingProvider) Generate(ctx context.Context, parts []string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if p.gate != nil {
			if err := p.gate.Wait(ctx); err != nil {
				return "", err
			}
		}

		out, err := p.inner.Generate(ctx, parts)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !IsRateLimitError(err) || attempt == p.maxRetries {
			return "", err
		}

		delay := p.baseDelay * (1 << attempt)
		if suggested := ExtractRetryDelay(err); suggested > 0 {
			delay = suggested + config.LLMRetryBuffer
		}
		p.logger.Warn("rate limit hit, backing off",
			"attempt", attempt+1, "maxAttempts", p.maxRetries+1, "delay", delay)
		if err := p.sleep(ctx, delay); err != nil {
			return "", err
		}
	}
	return "", lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
