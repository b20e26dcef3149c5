package manager

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
)

// janitor destroys limiter instances that have gone without a request for
// longer than the manager's MaxIdle, on a cron schedule.
type janitor struct {
	manager *Manager
	cron    *cron.Cron
}

func newJanitor(m *Manager, schedule string) (*janitor, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { m.sweep(time.Now()) }); err != nil {
		return nil, ggerrors.NewValidationError("manager", "sweepSchedule", schedule, err.Error()).
			WithHint("use a cron expression or an @every duration")
	}
	return &janitor{manager: m, cron: c}, nil
}

func (j *janitor) start() {
	j.cron.Start()
}

func (j *janitor) stop() {
	<-j.cron.Stop().Done()
}

// sweep evicts every instance idle for at least maxIdle. Exposed on the
// Manager so tests can trigger a sweep without waiting on the schedule.
func (m *Manager) sweep(now time.Time) {
	for _, name := range m.registry.Names() {
		entry, err := m.registry.Lookup(name)
		if err != nil {
			continue // destroyed since Names()
		}
		if entry.IdleFor(now) < m.maxIdle {
			continue
		}

		entry, ok := m.registry.Deregister(name)
		if !ok {
			continue
		}
		entry.Handle.Stop()

		m.metrics.Evicted.Inc()
		m.metrics.Instances.WithLabelValues(entry.Algorithm.String()).Dec()
		m.logger.Info("idle limiter evicted",
			zap.String("name", name),
			zap.Duration("idle", entry.IdleFor(now)))
	}
}
