// Package debounce collapses bursts of calls into the last one.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSuperseded = errors.New("superseded by a later call")

// Debouncer has a single pending slot. Every Wait replaces whatever call is
// pending, so of a burst of calls closer together than delay only the last
// one returns nil.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending chan struct{}
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Wait blocks for the delay. It returns ErrSuperseded when a later Wait
// started in the meantime, or ctx.Err() when ctx ends first.
func (d *Debouncer) Wait(ctx context.Context) error {
	slot := make(chan struct{})

	d.mu.Lock()
	if d.pending != nil {
		close(d.pending)
	}
	d.pending = slot
	d.mu.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-slot:
		return ErrSuperseded
	case <-ctx.Done():
		d.release(slot)
		return ctx.Err()
	case <-timer.C:
		if !d.release(slot) {
			return ErrSuperseded
		}
		return nil
	}
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		close(d.pending)
		d.pending = nil
	}
}

// release frees the slot if it still belongs to the caller.
func (d *Debouncer) release(slot chan struct{}) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != slot {
		return false
	}
	d.pending = nil
	return true
}
