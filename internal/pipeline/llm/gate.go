package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate spaces outbound LLM calls. One gate is shared by every call site, so
// even parallel chunk summarization cannot burst past the provider quota.
type Gate struct {
	limiter *rate.Limiter
}

func NewGate(minInterval time.Duration) *Gate {
	return &Gate{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Wait blocks until the next call slot or until ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
