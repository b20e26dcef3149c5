/*
Package manager owns limiter instance lifecycle and routes admission calls.

A Manager creates named limiter instances on demand, selecting the leaky
bucket or token bucket policy from configuration, registers them in a
concurrency-safe registry, and dispatches each RequestTurn call to the
owning instance. Destroying an instance stops its tick timer and frees its
name for reuse.

Basic usage:

	m := manager.New()
	defer m.Shutdown()

	_, err := m.CreateLimiter("uploads", manager.LimiterConfig{
		Algorithm: limiter.LeakyBucket,
		Capacity:  10,
		Interval:  time.Second,
	})

	if err := m.RequestTurn(ctx, "uploads"); err != nil {
		// ErrBucketFull, ErrNotFound, ErrClosed, or a context error
	}

An optional janitor sweeps idle instances on a cron schedule:

	m, err := manager.NewWithConfigSafe(manager.Config{
		SweepSchedule: "@every 1m",
		MaxIdle:       10 * time.Minute,
	})
*/
package manager
