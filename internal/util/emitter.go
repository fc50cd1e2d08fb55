package util

import (
	"context"
	"sync"
)

// Emitter is a typed listener registry. Listeners run in registration order,
// synchronously, and never while the registry lock is held, so a listener may
// subscribe or unsubscribe from inside a callback.
type Emitter[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []emitterEntry[T]
}

type emitterEntry[T any] struct {
	id uint64
	fn func(context.Context, T)
}

// NewEmitter returns an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe registers fn and returns its disposer. Calling the disposer more
// than once is a no-op.
func (e *Emitter[T]) Subscribe(fn func(context.Context, T)) func() {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, emitterEntry[T]{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Emitter[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, entry := range e.listeners {
		if entry.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)

			return
		}
	}
}

// Emit delivers value to a snapshot of the current listeners.
func (e *Emitter[T]) Emit(ctx context.Context, value T) {
	e.mu.Lock()
	snapshot := make([]emitterEntry[T], len(e.listeners))
	copy(snapshot, e.listeners)
	e.mu.Unlock()

	for _, entry := range snapshot {
		entry.fn(ctx, value)
	}
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.listeners)
}
