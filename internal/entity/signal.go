// Package entity provides the observer and container primitives that bricks
// and balls are built on. Everything here is meant to be driven from a single
// simulation goroutine and does no locking.
package entity

// Subscription identifies a handler registered on a Signal.
type Subscription uint64

// Signal is a typed notification channel with explicit subscribe and
// unsubscribe. Handlers run synchronously in subscription order.
type Signal[T any] struct {
	next     Subscription
	handlers []handler[T]
}

type handler[T any] struct {
	id Subscription
	fn func(T)
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	s.next++
	s.handlers = append(s.handlers, handler[T]{id: s.next, fn: fn})
	return s.next
}

// Unsubscribe removes the handler registered under id.
// Unknown ids are ignored.
func (s *Signal[T]) Unsubscribe(id Subscription) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Emit delivers v to every handler subscribed when Emit was called.
// Handlers may subscribe or unsubscribe while the emission is in progress.
func (s *Signal[T]) Emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	handlers := make([]handler[T], len(s.handlers))
	copy(handlers, s.handlers)
	for _, h := range handlers {
		h.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}

// Clear drops every subscription.
func (s *Signal[T]) Clear() {
	s.handlers = nil
}
