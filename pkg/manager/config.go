package manager

import (
	"time"

	"go.uber.org/zap"

	"github.com/vnykmshr/gogate/pkg/limiter"
	"github.com/vnykmshr/gogate/pkg/metrics"
)

// Config holds configuration options for creating a Manager.
type Config struct {
	// Logger receives lifecycle events (create, destroy, evict, shutdown).
	// If nil, logging is disabled.
	Logger *zap.Logger

	// Metrics is the metric registry to record against. If nil,
	// metrics.DefaultRegistry is used.
	Metrics *metrics.Registry

	// SweepSchedule is a cron expression (robfig/cron format, including
	// @every shorthands) for the idle-instance janitor. Empty disables
	// the janitor.
	SweepSchedule string

	// MaxIdle is how long an instance may go without a request before the
	// janitor destroys it. If zero, defaults to 10 minutes. Only relevant
	// when SweepSchedule is set.
	MaxIdle time.Duration

	// Ticker is passed to created limiters as their tick source factory.
	// If nil, real time.Ticker based ticks are used. Mainly for testing.
	Ticker limiter.TickerFactory
}

// LimiterConfig describes one limiter instance to create.
type LimiterConfig struct {
	// Algorithm selects the policy: limiter.LeakyBucket or
	// limiter.TokenBucket. Required.
	Algorithm limiter.Algorithm

	// Capacity is the queue bound (leaky bucket, required) or the maximum
	// token count (token bucket, default 5).
	Capacity int

	// Rate is the number of tokens added per interval. Token bucket only;
	// default 1.
	Rate int

	// Interval is the drain window (leaky bucket) or refill period (token
	// bucket). Default one second.
	Interval time.Duration
}

const defaultMaxIdle = 10 * time.Minute
