// Package observe provides a generic observable state container: a current
// value plus a non-blocking change stream. It decouples state owners from the
// reactivity mechanism of whatever renders them, so the same engine can drive
// different front ends.
//
// Basic usage:
//
//	rev := observe.NewValue(uint64(0), observe.WithBuffer(4))
//	defer rev.Close()
//
//	updates := rev.Subscribe(ctx)
//	rev.Set(1)
//
//	for r := range updates {
//	    render(r)
//	}
//
// Delivery is lossy by design: a subscriber that cannot keep up misses
// intermediate values but never blocks the writer, and can always re-read the
// latest value with Get. Subscriptions are cleaned up automatically when
// their context is cancelled or the container is closed.
package observe
