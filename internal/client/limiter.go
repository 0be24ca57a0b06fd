package client

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter spaces outgoing requests to the product service.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter allows rps requests per second with the given burst. A
// non-positive rps never blocks.
func NewLimiter(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request may be sent or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Unlimited reports whether the limiter never blocks.
func (l *Limiter) Unlimited() bool {
	return l.limiter.Limit() == rate.Inf
}
