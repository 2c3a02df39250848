// Package fetch sequences repeated loads so that only the newest request
// may publish its result.
package fetch

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned by Load when a newer request was issued before
// this one completed. Its result has been discarded.
var ErrSuperseded = errors.New("fetch: superseded by a newer request")

// Func produces a result for a query.
type Func[Q, R any] func(ctx context.Context, q Q) (R, error)

// Loader runs a Func and applies its result only if no newer request has
// been issued in the meantime. Every Load takes a generation token; issuing
// a token cancels the context of the previous in-flight load.
type Loader[Q, R any] struct {
	fn Func[Q, R]

	mu      sync.Mutex
	issued  uint64
	applied uint64
	cancel  context.CancelFunc
	latest  R
}

func NewLoader[Q, R any](fn Func[Q, R]) *Loader[Q, R] {
	return &Loader[Q, R]{fn: fn}
}

// Load runs the query. It returns ErrSuperseded if a later Load was started
// before this one finished, even when the underlying Func succeeded.
func (l *Loader[Q, R]) Load(ctx context.Context, q Q) (R, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	l.issued++
	token := l.issued
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = cancel
	l.mu.Unlock()

	res, err := l.fn(ctx, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	var zero R
	if token != l.issued {
		return zero, ErrSuperseded
	}
	l.cancel = nil
	if err != nil {
		return zero, err
	}
	l.latest = res
	l.applied = token
	return res, nil
}

// Latest returns the last applied result and its token. A zero token means
// nothing has been applied yet.
func (l *Loader[Q, R]) Latest() (R, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.latest, l.applied
}

// Delay wraps fn with an artificial latency, honouring cancellation.
func Delay[Q, R any](d time.Duration, fn Func[Q, R]) Func[Q, R] {
	if d <= 0 {
		return fn
	}
	return func(ctx context.Context, q Q) (R, error) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			var zero R
			return zero, ctx.Err()
		}
		return fn(ctx, q)
	}
}
