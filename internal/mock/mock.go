// Package mock provides a manually driven task runner for deterministic
// tests: spawned functions do not run until the test says so.
package mock

import (
	"context"
	"sync"

	"github.com/rowsync/rowsync/pkg/tasks"
)

// Runner records every spawned task without executing it. Tests resolve
// handles by hand with [Handle.Resolve], or run the captured function
// synchronously with [Handle.Run].
type Runner[T any] struct {
	mu      sync.Mutex
	handles []*Handle[T]
}

func NewRunner[T any]() *Runner[T] {
	return &Runner[T]{}
}

func (r *Runner[T]) Spawn(ctx context.Context, fn func(context.Context) (T, error)) tasks.Handle[T] {
	h := &Handle[T]{ctx: ctx, fn: fn}
	r.mu.Lock()
	r.handles = append(r.handles, h)
	r.mu.Unlock()
	return h
}

// Handles returns every handle spawned so far, in spawn order.
func (r *Runner[T]) Handles() []*Handle[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Handle[T](nil), r.handles...)
}

// Handle is a task frozen at spawn time.
type Handle[T any] struct {
	ctx context.Context
	fn  func(context.Context) (T, error)

	mu       sync.Mutex
	resolved bool
	val      T
	err      error
}

// Resolve completes the task with the given result, without running the
// captured function.
func (h *Handle[T]) Resolve(val T, err error) {
	h.mu.Lock()
	h.val, h.err, h.resolved = val, err, true
	h.mu.Unlock()
}

// Run executes the captured function synchronously and stores its result.
func (h *Handle[T]) Run() {
	val, err := h.fn(h.ctx)
	h.Resolve(val, err)
}

func (h *Handle[T]) Poll() (T, error, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.resolved {
		var zero T
		return zero, nil, false
	}
	return h.val, h.err, true
}
