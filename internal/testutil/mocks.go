package testutil

import (
	"sync"
	"time"
)

// ManualTicker implements the limiter Ticker interface with ticks driven
// explicitly by the test. This avoids real timer delays and makes release
// and refill order deterministic.
type ManualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	period  time.Duration
	stopped bool
}

// NewManualTicker creates a ManualTicker recording the requested period.
func NewManualTicker(period time.Duration) *ManualTicker {
	return &ManualTicker{
		ch:     make(chan time.Time),
		period: period,
	}
}

// C returns the tick channel.
func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

// Stop marks the ticker stopped. Subsequent Tick calls are no-ops.
func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

// Stopped reports whether Stop has been called.
func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Period returns the tick period the limiter requested at creation.
func (m *ManualTicker) Period() time.Duration {
	return m.period
}

// Tick delivers one tick, blocking until the limiter's event loop
// receives it. Calling Tick on a stopped ticker is a no-op.
func (m *ManualTicker) Tick() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.ch <- time.Now()
}
