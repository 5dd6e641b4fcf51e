// Package bus carries commands from external surfaces (the HTTP API) to the
// X event loop without coupling the packages.
package bus

import (
	"context"
	"sync"
)

// LayoutCommand asks the event loop to route a message to the active layout.
type LayoutCommand struct {
	Message any
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[*chan T]struct{}),
	}
}

// Hub is a typed broadcast channel: every subscriber receives every published
// event.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[*chan T]struct{}
}

func (h *Hub[T]) Publish(ctx context.Context, event T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case <-ctx.Done():
			return
		case *sub <- event:
		}
	}
}

// Subscribe returns a channel of future events and a function that cancels
// the subscription.
func (h *Hub[T]) Subscribe() (<-chan T, func()) {
	h.mu.Lock()
	c := make(chan T)
	key := &c
	h.subs[key] = struct{}{}
	h.mu.Unlock()

	return c, func() {
		h.mu.Lock()
		delete(h.subs, key)
		h.mu.Unlock()
	}
}
