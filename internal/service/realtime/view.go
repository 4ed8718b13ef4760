package realtime

import (
	"sync"

	"github.com/s21platform/quickchat/internal/model"
)

type Status string

const (
	Loading Status = "loading"
	Error   Status = "error"
	Ready   Status = "ready"
)

type Snapshot[T any] struct {
	Status Status
	Data   T
	Err    error
}

// View is a live query result. Every store change yields a full snapshot in
// store order; a slow reader of Updates only sees the newest one.
type View[T any] struct {
	mu      sync.Mutex
	current Snapshot[T]
	updates chan Snapshot[T]
	closed  bool

	sub     model.Subscription
	onClose func()
}

func newView[T any]() *View[T] {
	return &View[T]{
		current: Snapshot[T]{Status: Loading},
		updates: make(chan Snapshot[T], 1),
	}
}

func (v *View[T]) Current() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

// Updates delivers snapshots until the view is closed, then is closed itself.
func (v *View[T]) Updates() <-chan Snapshot[T] {
	return v.updates
}

func (v *View[T]) publish(data T, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	if err != nil {
		v.current = Snapshot[T]{Status: Error, Err: err}
	} else {
		v.current = Snapshot[T]{Status: Ready, Data: data}
	}

	// drop the undelivered snapshot, if any
	select {
	case <-v.updates:
	default:
	}
	v.updates <- v.current
}

// Close releases the store listener. Calling it again is a no-op.
func (v *View[T]) Close() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	close(v.updates)
	sub := v.sub
	v.mu.Unlock()

	if v.onClose != nil {
		v.onClose()
	}
	if sub == nil {
		return nil
	}
	return sub.Close()
}
