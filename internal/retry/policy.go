package retry

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultMaxAttempts is the attempt ceiling, including the first attempt.
	DefaultMaxAttempts = 3
	// DefaultBackoff is used after a 429 without a usable Retry-After.
	DefaultBackoff = 10 * time.Second
)

// Outcome classifies one attempt's response.
type Outcome int

const (
	// Succeeded is any 2xx status.
	Succeeded Outcome = iota
	// RateLimited is a 429; retried after the Retry-After backoff.
	RateLimited
	// ServerError is any 5xx; retried with a linearly growing wait.
	ServerError
	// Fatal is every non-2xx status other than 429 and 5xx. It is never retried.
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case RateLimited:
		return "rate_limited"
	case ServerError:
		return "server_error"
	default:
		return "fatal"
	}
}

// Classify maps an HTTP status code to an [Outcome].
func Classify(status int) Outcome {
	switch {
	case status >= 200 && status < 300:
		return Succeeded
	case status == http.StatusTooManyRequests:
		return RateLimited
	case status >= 500 && status < 600:
		return ServerError
	default:
		return Fatal
	}
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy configures retries of a single submission.
type Policy struct {
	// MaxAttempts caps the number of attempts, the first one included.
	MaxAttempts int
	// DefaultBackoff is the initial rate-limit backoff.
	DefaultBackoff time.Duration
	// ServerErrorBackoff is the linear base for 5xx waits. Zero means the
	// current rate-limit backoff is used as the base.
	ServerErrorBackoff time.Duration
	// Sleep performs the waits. Nil means [Sleep].
	Sleep SleepFunc
}

// DefaultPolicy returns a policy with 3 attempts and a 10s backoff.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    DefaultMaxAttempts,
		DefaultBackoff: DefaultBackoff,
		Sleep:          Sleep,
	}
}

// NewState returns fresh per-submission state.
func (p Policy) NewState() *State {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	backoff := p.DefaultBackoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	return &State{
		maxAttempts:        maxAttempts,
		serverErrorBackoff: p.ServerErrorBackoff,
		Backoff:            backoff,
	}
}

// Wait sleeps through the policy's SleepFunc.
func (p Policy) Wait(ctx context.Context, d time.Duration) error {
	if p.Sleep == nil {
		return Sleep(ctx, d)
	}
	return p.Sleep(ctx, d)
}

// State is the mutable retry state of one submission. It is not safe for
// concurrent use.
type State struct {
	// Attempts counts failed attempts recorded so far.
	Attempts int
	// Backoff is the current rate-limit backoff.
	Backoff time.Duration

	maxAttempts        int
	serverErrorBackoff time.Duration
}

// OnRateLimited records a 429. A Retry-After header holding whole seconds
// replaces the backoff, anything else keeps the previous one. It returns
// the wait before the next attempt and whether another attempt is allowed.
func (s *State) OnRateLimited(retryAfter string) (time.Duration, bool) {
	s.Attempts++
	if secs, err := strconv.ParseInt(strings.TrimSpace(retryAfter), 10, 64); err == nil && secs >= 0 {
		s.Backoff = time.Duration(secs) * time.Second
	}

	return s.Backoff, s.Attempts < s.maxAttempts
}

// OnServerError records a 5xx. The wait grows linearly with the number of
// failed attempts.
func (s *State) OnServerError() (time.Duration, bool) {
	s.Attempts++
	base := s.serverErrorBackoff
	if base <= 0 {
		base = s.Backoff
	}

	return base * time.Duration(s.Attempts), s.Attempts < s.maxAttempts
}

// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
// latter case. A non-positive d only checks ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
