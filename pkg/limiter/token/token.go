package token

import (
	"context"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/limiter"
)

// Wait requests one admission. It consumes a token and returns nil, or
// fails immediately with ErrNoToken when the bucket is empty. It never
// blocks waiting for a refill.
func (tb *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-tb.stop:
		return ggerrors.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	reply := make(chan error, 1)

	select {
	case tb.requests <- reply:
		return <-reply
	case <-tb.stop:
		return ggerrors.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns a snapshot of the limiter's configuration and current
// token count. It never mutates state.
func (tb *tokenBucket) Stats() limiter.Stats {
	reply := make(chan limiter.Stats, 1)

	select {
	case tb.statsCh <- reply:
		return <-reply
	case <-tb.stop:
		return tb.snapshot(0)
	}
}

// Algorithm returns limiter.TokenBucket.
func (tb *tokenBucket) Algorithm() limiter.Algorithm {
	return limiter.TokenBucket
}

// Stop terminates the limiter and its refill timer. Stop is idempotent
// and safe to call concurrently with Wait.
func (tb *tokenBucket) Stop() {
	tb.stopOnce.Do(func() {
		close(tb.stop)
	})
}

// run is the event loop that exclusively owns the token count. The bucket
// starts full; refill ticks run unconditionally, independent of requests.
func (tb *tokenBucket) run() {
	defer tb.ticker.Stop()

	tokens := tb.capacity

	for {
		select {
		case <-tb.stop:
			tb.drain()
			return

		case reply := <-tb.requests:
			if tokens > 0 {
				tokens--
				reply <- nil
				continue
			}
			reply <- ggerrors.ErrNoToken

		case <-tb.ticker.C():
			tokens += tb.rate
			if tokens > tb.capacity {
				tokens = tb.capacity
			}

		case reply := <-tb.statsCh:
			reply <- tb.snapshot(tokens)
		}
	}
}

// drain answers requests that raced with shutdown before the loop exits.
func (tb *tokenBucket) drain() {
	for {
		select {
		case reply := <-tb.requests:
			reply <- ggerrors.ErrClosed
		case reply := <-tb.statsCh:
			reply <- tb.snapshot(0)
		default:
			return
		}
	}
}

func (tb *tokenBucket) snapshot(tokens int) limiter.Stats {
	return limiter.Stats{
		Algorithm: limiter.TokenBucket,
		Capacity:  tb.capacity,
		Rate:      tb.rate,
		Interval:  tb.interval,
		Tokens:    tokens,
	}
}
