package manager

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/common/validation"
	"github.com/vnykmshr/gogate/pkg/limiter"
	"github.com/vnykmshr/gogate/pkg/limiter/leaky"
	"github.com/vnykmshr/gogate/pkg/limiter/token"
	"github.com/vnykmshr/gogate/pkg/metrics"
	"github.com/vnykmshr/gogate/pkg/registry"
)

// Manager creates, routes to, and destroys named limiter instances.
// All methods are safe for concurrent use.
type Manager struct {
	registry *registry.Registry
	logger   *zap.Logger
	metrics  *metrics.Registry
	ticker   limiter.TickerFactory
	maxIdle  time.Duration

	janitor *janitor

	shutdownOnce sync.Once
}

// New creates a Manager with default configuration: no logging, the
// default metric registry, and no idle-instance janitor.
func New() *Manager {
	m, _ := NewWithConfigSafe(Config{})
	return m
}

// NewWithConfigSafe creates a Manager from config, validating it. The only
// invalid configuration is an unparseable SweepSchedule.
func NewWithConfigSafe(config Config) (*Manager, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := config.Metrics
	if reg == nil {
		reg = metrics.DefaultRegistry
	}

	maxIdle := config.MaxIdle
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}

	m := &Manager{
		registry: registry.New(),
		logger:   logger,
		metrics:  reg,
		ticker:   config.Ticker,
		maxIdle:  maxIdle,
	}

	if config.SweepSchedule != "" {
		j, err := newJanitor(m, config.SweepSchedule)
		if err != nil {
			return nil, err
		}
		m.janitor = j
		j.start()
	}

	return m, nil
}

// CreateLimiter constructs a limiter instance for the given algorithm and
// parameters, starts its tick timer, and registers it under name. At most
// one live instance exists per name; a collision fails with
// ErrAlreadyRegistered and the new instance is not leaked. Names become
// reusable once the instance is destroyed.
func (m *Manager) CreateLimiter(name string, config LimiterConfig) (limiter.Limiter, error) {
	if err := validation.ValidateNotEmpty("manager", "name", name); err != nil {
		return nil, err
	}

	lim, err := m.buildLimiter(config)
	if err != nil {
		return nil, err
	}

	if _, err := m.registry.Register(name, lim, config.Algorithm); err != nil {
		lim.Stop()
		return nil, err
	}

	m.metrics.Created.Inc()
	m.metrics.Instances.WithLabelValues(config.Algorithm.String()).Inc()
	m.logger.Info("limiter created",
		zap.String("name", name),
		zap.String("algorithm", config.Algorithm.String()))

	return lim, nil
}

// buildLimiter constructs the state machine selected by config.Algorithm.
func (m *Manager) buildLimiter(config LimiterConfig) (limiter.Limiter, error) {
	switch config.Algorithm {
	case limiter.LeakyBucket:
		// Capacity has no default for leaky buckets: a missing value is a
		// configuration error rather than a guess about queue depth.
		if config.Capacity == 0 {
			return nil, ggerrors.NewValidationError("manager", "capacity", config.Capacity, "required for leaky bucket").
				WithHint("set the maximum number of queued callers")
		}
		return leaky.NewWithConfigSafe(leaky.Config{
			Capacity: config.Capacity,
			Interval: config.Interval,
			Ticker:   m.ticker,
		})

	case limiter.TokenBucket:
		return token.NewWithConfigSafe(token.Config{
			Capacity: config.Capacity,
			Rate:     config.Rate,
			Interval: config.Interval,
			Ticker:   m.ticker,
		})

	default:
		return nil, fmt.Errorf("%w: %q", ggerrors.ErrUnknownAlgorithm, config.Algorithm)
	}
}

// RequestTurn requests one admission from the limiter registered under
// name. It blocks only for leaky bucket instances, until a tick releases
// the caller or ctx ends. An unknown name fails with ErrNotFound and has
// no side effects.
func (m *Manager) RequestTurn(ctx context.Context, name string) error {
	entry, err := m.registry.Lookup(name)
	if err != nil {
		return err
	}

	entry.Touch()

	algorithm := entry.Algorithm.String()
	m.metrics.Requests.WithLabelValues(algorithm, name).Inc()

	start := time.Now()
	err = entry.Handle.Wait(ctx)
	m.metrics.WaitDuration.WithLabelValues(algorithm, name).Observe(time.Since(start).Seconds())

	if err != nil {
		m.metrics.Denied.WithLabelValues(algorithm, name).Inc()
	} else {
		m.metrics.Allowed.WithLabelValues(algorithm, name).Inc()
	}

	m.observeState(name, entry)
	return err
}

// observeState refreshes the per-instance gauges from a stats snapshot.
func (m *Manager) observeState(name string, entry *registry.Entry) {
	stats := entry.Handle.Stats()
	switch entry.Algorithm {
	case limiter.LeakyBucket:
		m.metrics.QueueDepth.WithLabelValues(name).Set(float64(stats.Queued))
	case limiter.TokenBucket:
		m.metrics.Tokens.WithLabelValues(name).Set(float64(stats.Tokens))
	}
}

// GetStats returns a snapshot of the named limiter's state without
// mutating it, or ErrNotFound for unknown names.
func (m *Manager) GetStats(name string) (limiter.Stats, error) {
	entry, err := m.registry.Lookup(name)
	if err != nil {
		return limiter.Stats{}, err
	}
	return entry.Handle.Stats(), nil
}

// DestroyLimiter deregisters the named instance, stops its tick timer,
// and fails any still-queued waiters with ErrClosed. It returns
// ErrNotFound if the name is not live.
func (m *Manager) DestroyLimiter(name string) error {
	entry, ok := m.registry.Deregister(name)
	if !ok {
		return ggerrors.ErrNotFound
	}

	entry.Handle.Stop()

	m.metrics.Destroyed.Inc()
	m.metrics.Instances.WithLabelValues(entry.Algorithm.String()).Dec()
	m.logger.Info("limiter destroyed",
		zap.String("name", name),
		zap.String("algorithm", entry.Algorithm.String()))

	return nil
}

// Names returns the names of all live limiters, sorted.
func (m *Manager) Names() []string {
	names := m.registry.Names()
	sort.Strings(names)
	return names
}

// Len returns the number of live limiters.
func (m *Manager) Len() int {
	return m.registry.Len()
}

// Shutdown stops the janitor and destroys every live limiter. It is
// idempotent and safe to call concurrently with other operations.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		if m.janitor != nil {
			m.janitor.stop()
		}

		for _, name := range m.registry.Names() {
			if entry, ok := m.registry.Deregister(name); ok {
				entry.Handle.Stop()
				m.metrics.Destroyed.Inc()
				m.metrics.Instances.WithLabelValues(entry.Algorithm.String()).Dec()
			}
		}

		m.logger.Info("manager shut down")
	})
}
