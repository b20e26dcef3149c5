/*
Package leaky provides a queueing leaky bucket rate limiter.

A leaky bucket admits callers into a FIFO queue up to a fixed capacity and
releases exactly one caller per tick, enforcing a steady output rate of
capacity requests per interval. Callers beyond capacity fail immediately
with ErrBucketFull.

Basic usage:

	lim, err := leaky.NewSafe(10, time.Second) // 10 admissions per second
	if err != nil {
		// invalid configuration
	}
	defer lim.Stop()

	if err := lim.Wait(ctx); err != nil {
		// ErrBucketFull, ErrClosed, or a context error
	}
	// admitted: proceed

Key Characteristics:

  - Accepted callers block until a periodic tick releases them
  - Strict FIFO release order, one release per tick
  - Requests beyond capacity are rejected immediately, never queued
  - Stopping the limiter fails all queued waiters with ErrClosed

Comparison with Token Bucket:

	// Token bucket: allows bursts, rejects without blocking
	lim, _ := token.NewSafe(5, 1, time.Second)

	// Leaky bucket: smooth flow, accepted callers block until released
	lim, _ := leaky.NewSafe(5, time.Second)

Thread Safety:

All operations are safe for concurrent use. A single goroutine owns the
queue and processes requests, ticks and stats queries strictly one at a
time, so no operation ever observes a partially updated queue.
*/
package leaky
