// Package feed fans store change notifications out to live subscriptions.
//
// A subscription owns one goroutine. It loads a snapshot when it starts and
// again every time a matching topic is published. Notifications arriving while
// a load is running are coalesced into one more load, so a subscriber always
// ends up with the latest state but may skip intermediate ones.
package feed

import (
	"context"
	"sync"
)

type Kind int

const (
	// All matches every subscription. Published after a listener reconnect.
	All Kind = iota
	Conversations
	Messages
	Users
)

type Topic struct {
	Kind Kind
	// Key is the conversation id for Conversations and Messages, the uid for Users.
	Key string
}

type Hub struct {
	mu   sync.RWMutex
	next uint64
	subs map[uint64]*Subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*Subscription)}
}

type Subscription struct {
	hub    *Hub
	id     uint64
	match  func(Topic) bool
	dirty  chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Subscribe registers a subscription and starts its loader. load is called
// from the subscription goroutine only, never concurrently with itself.
func (h *Hub) Subscribe(ctx context.Context, match func(Topic) bool, load func(ctx context.Context)) *Subscription {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	h.mu.Lock()
	h.next++
	s := &Subscription{
		hub:    h,
		id:     h.next,
		match:  match,
		dirty:  make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	h.subs[s.id] = s
	h.mu.Unlock()

	s.dirty <- struct{}{}
	go s.run(ctx, load)

	return s
}

// Publish marks every matching subscription as stale. It never blocks.
func (h *Hub) Publish(t Topic) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.subs {
		if t.Kind == All || s.match(t) {
			select {
			case s.dirty <- struct{}{}:
			default:
			}
		}
	}
}

// Len returns the number of open subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (s *Subscription) run(ctx context.Context, load func(ctx context.Context)) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.dirty:
			if ctx.Err() != nil {
				return
			}
			load(ctx)
		}
	}
}

// Close detaches the subscription from the hub and stops its goroutine. A load
// already in progress may still finish.
func (s *Subscription) Close() error {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
		s.cancel()
	})
	return nil
}

// Done is closed once the subscription goroutine has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func MatchKind(kind Kind) func(Topic) bool {
	return func(t Topic) bool {
		return t.Kind == kind
	}
}

func MatchKey(kind Kind, key string) func(Topic) bool {
	return func(t Topic) bool {
		return t.Kind == kind && t.Key == key
	}
}

func MatchKeys(kind Kind, keys []string) func(Topic) bool {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(t Topic) bool {
		if t.Kind != kind {
			return false
		}
		_, ok := set[t.Key]
		return ok
	}
}
