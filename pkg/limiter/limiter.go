package limiter

import (
	"context"
	"time"
)

// Algorithm identifies a rate limiting policy.
type Algorithm string

const (
	// LeakyBucket queues accepted callers and releases them at a fixed
	// cadence, rejecting requests once the queue is full.
	LeakyBucket Algorithm = "leaky_bucket"

	// TokenBucket serves bursts from a replenishing token pool, rejecting
	// requests when the pool is empty.
	TokenBucket Algorithm = "token_bucket"
)

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a == LeakyBucket || a == TokenBucket
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// Limiter is the uniform admission surface implemented by both bucket
// variants. A Limiter instance is safe for concurrent use; internally all
// operations are serialized through the instance's own event loop.
type Limiter interface {
	// Wait requests one admission. For a leaky bucket it blocks until a
	// tick releases the caller, the context is done, or the instance is
	// stopped; for a token bucket it returns without blocking. Rejections
	// surface as ErrBucketFull or ErrNoToken from pkg/common/errors.
	Wait(ctx context.Context) error

	// Stats returns a point-in-time snapshot without mutating state.
	Stats() Stats

	// Algorithm returns the policy this instance runs.
	Algorithm() Algorithm

	// Stop terminates the instance: the tick timer is stopped and any
	// still-queued waiters fail with ErrClosed. Stop is idempotent.
	Stop()
}

// Stats is a snapshot of a limiter's configuration and current state.
// Queued is meaningful for leaky buckets, Rate and Tokens for token buckets.
type Stats struct {
	Algorithm Algorithm
	Capacity  int
	Interval  time.Duration
	Rate      int
	Tokens    int
	Queued    int
}

// Ticker delivers periodic tick events to a limiter's event loop.
// It can be replaced in tests to drive ticks manually.
type Ticker interface {
	// C returns the channel on which ticks are delivered.
	C() <-chan time.Time

	// Stop shuts down the ticker. No more ticks are delivered after Stop.
	Stop()
}

// TickerFactory creates the Ticker for a limiter instance. The period is
// the instance's derived tick interval.
type TickerFactory func(period time.Duration) Ticker

// NewTicker is the default TickerFactory, backed by time.Ticker.
func NewTicker(period time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(period)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time {
	return s.t.C
}

func (s *systemTicker) Stop() {
	s.t.Stop()
}
