package adapter

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// limiter paces outbound calls with a token bucket shared by every request
// made through one adapter.
type limiter struct {
	lim *rate.Limiter
}

// newLimiter returns a limiter allowing rps requests per second with the
// given burst. rps <= 0 disables pacing. A burst below 1 is raised to 1.
func newLimiter(rps float64, burst int) *limiter {
	if rps <= 0 {
		return &limiter{lim: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &limiter{lim: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request may be sent or ctx is done. When the next
// slot lies beyond ctx's deadline it fails at once; that error, like a
// cancelled ctx, matches the corresponding context error.
func (l *limiter) Wait(ctx context.Context) error {
	err := l.lim.Wait(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}
