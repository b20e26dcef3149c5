package leaky

import (
	"context"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/limiter"
)

// Wait requests one admission. If the queue has room the caller is queued
// and blocks until a tick releases it in FIFO order. If the queue is full
// it fails immediately with ErrBucketFull.
//
// A caller whose context ends while queued stops waiting and returns the
// context error, but its queue slot is not withdrawn: it still drains on
// its own tick. Stopping the limiter fails all queued waiters with
// ErrClosed.
func (l *leakyLimiter) Wait(ctx context.Context) error {
	select {
	case <-l.stop:
		return ggerrors.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	w := waiter{done: make(chan error, 1)}

	select {
	case l.requests <- w:
	case <-l.stop:
		return ggerrors.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-w.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns a snapshot of the limiter's configuration and queue length.
// It never mutates state.
func (l *leakyLimiter) Stats() limiter.Stats {
	reply := make(chan limiter.Stats, 1)

	select {
	case l.statsCh <- reply:
		return <-reply
	case <-l.stop:
		return l.snapshot(0)
	}
}

// Algorithm returns limiter.LeakyBucket.
func (l *leakyLimiter) Algorithm() limiter.Algorithm {
	return limiter.LeakyBucket
}

// Stop terminates the limiter. The tick timer is stopped and every queued
// waiter fails with ErrClosed. Stop is idempotent and safe to call
// concurrently with Wait.
func (l *leakyLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// run is the event loop that exclusively owns the waiter queue. Exactly
// one waiter is released per tick, in strict arrival order.
func (l *leakyLimiter) run() {
	defer l.ticker.Stop()

	queue := make([]waiter, 0, l.capacity)

	for {
		select {
		case <-l.stop:
			for _, w := range queue {
				w.done <- ggerrors.ErrClosed
			}
			l.drain()
			return

		case w := <-l.requests:
			if len(queue) == l.capacity {
				w.done <- ggerrors.ErrBucketFull
				continue
			}
			queue = append(queue, w)

		case <-l.ticker.C():
			if len(queue) == 0 {
				continue
			}
			head := queue[0]
			queue[0] = waiter{}
			queue = queue[1:]
			head.done <- nil

		case reply := <-l.statsCh:
			reply <- l.snapshot(len(queue))
		}
	}
}

// drain answers requests that raced with shutdown before the loop exits.
func (l *leakyLimiter) drain() {
	for {
		select {
		case w := <-l.requests:
			w.done <- ggerrors.ErrClosed
		case reply := <-l.statsCh:
			reply <- l.snapshot(0)
		default:
			return
		}
	}
}

func (l *leakyLimiter) snapshot(queued int) limiter.Stats {
	return limiter.Stats{
		Algorithm: limiter.LeakyBucket,
		Capacity:  l.capacity,
		Interval:  l.interval,
		Queued:    queued,
	}
}
