// Package tasks runs functions to completion on background goroutines and
// hands back pollable handles.
//
// Handles are polled, never awaited: a caller driving a tick loop asks each
// handle once per tick whether its result has arrived and moves on
// immediately either way. A spawned task always runs to completion; there
// is no cancellation of an in-flight task beyond whatever the task's own
// function observes through its context.
package tasks

import (
	"context"
)

// Handle is a pollable reference to an in-flight task.
type Handle[T any] interface {
	// Poll returns the task's result if it has resolved. The third return
	// is false while the task is still running. Poll never blocks and may
	// be called any number of times; after resolution it keeps returning
	// the same result.
	Poll() (T, error, bool)
}

// Runner schedules a function for background execution.
type Runner[T any] interface {
	Spawn(ctx context.Context, fn func(context.Context) (T, error)) Handle[T]
}

// Pool is the default [Runner]: one goroutine per task, with an optional
// cap on how many run at once.
type Pool[T any] struct {
	sem chan struct{}
}

// NewPool returns a Pool running at most workers tasks concurrently.
// workers <= 0 means no limit.
func NewPool[T any](workers int) *Pool[T] {
	p := &Pool[T]{}
	if workers > 0 {
		p.sem = make(chan struct{}, workers)
	}
	return p
}

func (p *Pool[T]) Spawn(ctx context.Context, fn func(context.Context) (T, error)) Handle[T] {
	t := &task[T]{done: make(chan struct{})}
	go func() {
		if p.sem != nil {
			p.sem <- struct{}{}
			defer func() { <-p.sem }()
		}
		t.val, t.err = fn(ctx)
		close(t.done)
	}()
	return t
}

type task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func (t *task[T]) Poll() (T, error, bool) {
	select {
	case <-t.done:
		return t.val, t.err, true
	default:
		var zero T
		return zero, nil, false
	}
}
