/*
Package token provides a token bucket rate limiter.

A token bucket starts full and serves bursts up to its capacity instantly:
each request consumes one token and returns without blocking, or fails
immediately with ErrNoToken when the pool is empty. A periodic tick adds
rate tokens per interval, capped at capacity, so sustained throughput
averages rate per interval.

Basic usage:

	lim, err := token.NewSafe(5, 1, time.Second) // burst 5, refill 1/sec
	if err != nil {
		// invalid configuration
	}
	defer lim.Stop()

	if err := lim.Wait(ctx); err != nil {
		// ErrNoToken: reject or back off, the call never blocks
	}

Unlike the leaky bucket there is no waiter queue; rejection is always
immediate. All operations are serialized through the instance's own event
loop and are safe for concurrent use.
*/
package token
