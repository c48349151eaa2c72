package observe

import (
	"context"
	"sync"
)

// Value is an observable state container: it holds a current value of type T
// and fans every Set out to all subscribers. Delivery is non-blocking; a
// subscriber whose buffer is full misses that update but keeps its
// subscription, so consumers always converge on a recent value by re-reading
// Get. All methods are safe for concurrent use.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	subs    map[chan T]struct{}
	buffer  int
	closed  bool

	done      chan struct{}
	cleanupWg sync.WaitGroup
}

// Option configures a Value at construction.
type Option func(*options)

type options struct {
	buffer int
}

// WithBuffer sets the per-subscriber channel buffer. A minimum of 1 is
// enforced so sends are never unconditionally dropped.
func WithBuffer(n int) Option {
	return func(o *options) {
		o.buffer = n
	}
}

// NewValue creates an observable container holding initial.
func NewValue[T any](initial T, opts ...Option) *Value[T] {
	o := options{buffer: 1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Value[T]{
		current: initial,
		subs:    make(map[chan T]struct{}),
		buffer:  max(o.buffer, 1),
		done:    make(chan struct{}),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set stores next as the current value and notifies subscribers. After Close
// it still stores the value but notifies no one.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = next
	if v.closed {
		return
	}

	for ch := range v.subs {
		select {
		case ch <- next:
		default:
			// Full buffer: drop this update for the slow subscriber.
		}
	}
}

// Subscribe returns a channel of subsequent values. The subscription ends,
// and the channel closes, when ctx is cancelled or the container is closed.
// Subscribing to a closed container yields an already-closed channel.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch := make(chan T, v.buffer)
	if v.closed {
		close(ch)
		return ch
	}

	v.subs[ch] = struct{}{}

	v.cleanupWg.Add(1)
	go func() {
		defer v.cleanupWg.Done()
		select {
		case <-ctx.Done():
			v.unsubscribe(ch)
		case <-v.done:
			// Close drained the subscriber map already.
		}
	}()

	return ch
}

// Close ends all subscriptions. Idempotent. Get and Set remain usable.
func (v *Value[T]) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	for ch := range v.subs {
		close(ch)
	}
	clear(v.subs)
	close(v.done)
	v.mu.Unlock()

	v.cleanupWg.Wait()
}

func (v *Value[T]) unsubscribe(ch chan T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.subs[ch]; !ok {
		return
	}
	delete(v.subs, ch)
	close(ch)
}
