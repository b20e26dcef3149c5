/*
Package gogate provides named, independently configured rate limiter
instances behind one uniform admission call.

Each limiter is addressed by a process-unique name and runs one of two
interchangeable policies:

  - leaky bucket (pkg/limiter/leaky): fixed-cadence queueing; accepted
    callers block until a periodic tick releases them in FIFO order,
    and requests beyond capacity fail immediately
  - token bucket (pkg/limiter/token): burst-tolerant quota; requests
    consume a token or fail immediately, tokens refill on a periodic tick

The manager (pkg/manager) owns instance lifecycle and routing: it creates
limiters on demand, registers them by name, dispatches RequestTurn calls
to the owning instance, and destroys instances on request or after a
configurable idle period.

Example usage:

	import (
		"github.com/vnykmshr/gogate/pkg/limiter"
		"github.com/vnykmshr/gogate/pkg/manager"
	)

	m := manager.New()
	defer m.Shutdown()

	m.CreateLimiter("api", manager.LimiterConfig{
		Algorithm: limiter.TokenBucket,
		Capacity:  20,
		Rate:      10,
	})

	if err := m.RequestTurn(ctx, "api"); err != nil {
		// rejected: back off or fail the request
	}
*/
package gogate
