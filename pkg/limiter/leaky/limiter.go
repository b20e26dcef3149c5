package leaky

import (
	"sync"
	"time"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/limiter"
)

// Config holds configuration options for creating a leaky bucket limiter.
type Config struct {
	// Capacity is the maximum number of callers that may be queued.
	// It is required; there is no default.
	Capacity int

	// Interval is the window over which Capacity callers drain. The tick
	// period between successive releases is Interval / Capacity.
	// If zero, defaults to one second.
	Interval time.Duration

	// Ticker creates the periodic tick source. If nil, a time.Ticker
	// backed implementation is used. Mainly useful for testing.
	Ticker limiter.TickerFactory
}

// leakyLimiter implements limiter.Limiter. A single goroutine started by
// the constructor owns the waiter queue; requests, ticks and stats queries
// reach it through channels and are processed strictly in arrival order.
type leakyLimiter struct {
	capacity int
	interval time.Duration
	perTick  time.Duration

	requests chan waiter
	statsCh  chan chan limiter.Stats
	stop     chan struct{}
	stopOnce sync.Once

	ticker limiter.Ticker
}

// waiter is one queued caller. done is buffered so the event loop can
// resolve a waiter without blocking even if the caller already gave up.
type waiter struct {
	done chan error
}

// NewSafe creates a leaky bucket limiter that admits capacity callers per
// interval, validating the configuration.
func NewSafe(capacity int, interval time.Duration) (limiter.Limiter, error) {
	return NewWithConfigSafe(Config{
		Capacity: capacity,
		Interval: interval,
	})
}

// NewWithConfigSafe creates a leaky bucket limiter from config, validating
// it and returning an error instead of panicking.
func NewWithConfigSafe(config Config) (limiter.Limiter, error) {
	if config.Capacity <= 0 {
		return nil, ggerrors.NewValidationError("leaky", "capacity", config.Capacity, "must be positive").
			WithHint("capacity bounds how many callers may be queued")
	}

	interval := config.Interval
	if interval == 0 {
		interval = time.Second
	}
	if interval < 0 {
		return nil, ggerrors.NewValidationError("leaky", "interval", interval, "must be positive").
			WithHint("interval is the window over which capacity requests drain")
	}

	// Duration division keeps nanosecond resolution, so a non-divisible
	// interval/capacity pair loses at most 1ns per tick. A period that
	// truncates to zero cannot be represented at all and is rejected.
	perTick := interval / time.Duration(config.Capacity)
	if perTick <= 0 {
		return nil, ggerrors.NewValidationError("leaky", "interval", interval, "tick period truncates to zero").
			WithHint("interval must be at least capacity nanoseconds")
	}

	factory := config.Ticker
	if factory == nil {
		factory = limiter.NewTicker
	}

	l := &leakyLimiter{
		capacity: config.Capacity,
		interval: interval,
		perTick:  perTick,
		requests: make(chan waiter),
		statsCh:  make(chan chan limiter.Stats),
		stop:     make(chan struct{}),
		ticker:   factory(perTick),
	}

	go l.run()
	return l, nil
}
