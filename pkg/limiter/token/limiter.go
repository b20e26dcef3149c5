package token

import (
	"sync"
	"time"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/limiter"
)

// Config holds configuration options for creating a token bucket limiter.
type Config struct {
	// Capacity is the maximum number of tokens the bucket holds.
	// If zero, defaults to 5.
	Capacity int

	// Rate is the number of tokens added per interval.
	// If zero, defaults to 1.
	Rate int

	// Interval is the refill period. If zero, defaults to one second.
	Interval time.Duration

	// Ticker creates the periodic tick source. If nil, a time.Ticker
	// backed implementation is used. Mainly useful for testing.
	Ticker limiter.TickerFactory
}

// tokenBucket implements limiter.Limiter. A single goroutine started by
// the constructor owns the token count; requests, refill ticks and stats
// queries reach it through channels and are processed one at a time.
type tokenBucket struct {
	capacity int
	rate     int
	interval time.Duration

	requests chan chan error
	statsCh  chan chan limiter.Stats
	stop     chan struct{}
	stopOnce sync.Once

	ticker limiter.Ticker
}

// NewSafe creates a token bucket limiter with the given capacity, refill
// rate and interval, validating the configuration.
func NewSafe(capacity, rate int, interval time.Duration) (limiter.Limiter, error) {
	return NewWithConfigSafe(Config{
		Capacity: capacity,
		Rate:     rate,
		Interval: interval,
	})
}

// NewWithConfigSafe creates a token bucket limiter from config, applying
// defaults and validating. The bucket starts full.
func NewWithConfigSafe(config Config) (limiter.Limiter, error) {
	capacity := config.Capacity
	if capacity == 0 {
		capacity = 5
	}
	if capacity < 0 {
		return nil, ggerrors.NewValidationError("token", "capacity", capacity, "must be positive").
			WithHint("capacity is the maximum burst size")
	}

	rate := config.Rate
	if rate == 0 {
		rate = 1
	}
	if rate < 0 {
		return nil, ggerrors.NewValidationError("token", "rate", rate, "must be positive").
			WithHint("rate is the number of tokens added per interval")
	}

	interval := config.Interval
	if interval == 0 {
		interval = time.Second
	}
	if interval < 0 {
		return nil, ggerrors.NewValidationError("token", "interval", interval, "must be positive").
			WithHint("interval is the refill period")
	}

	factory := config.Ticker
	if factory == nil {
		factory = limiter.NewTicker
	}

	tb := &tokenBucket{
		capacity: capacity,
		rate:     rate,
		interval: interval,
		requests: make(chan chan error),
		statsCh:  make(chan chan limiter.Stats),
		stop:     make(chan struct{}),
		ticker:   factory(interval),
	}

	go tb.run()
	return tb, nil
}
