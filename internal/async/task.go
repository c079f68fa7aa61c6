// Package async runs the remote half of an optimistic operation. A Task settles
// once the remote call returned and its settle callback finished.
package async

import (
	"context"
	"sync"
	"time"
)

type Task struct {
	done chan struct{}
	err  error
}

// Resolved returns a task that has already settled with err.
func Resolved(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task settles and returns the remote error, if any.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Group starts tasks on their own goroutines and tracks them for shutdown.
type Group struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewGroup(timeout time.Duration) *Group {
	return &Group{timeout: timeout}
}

// Go runs fn detached from any request context, bounded by the group timeout,
// then hands its error to settle before the task completes. settle gets a fresh
// context with its own timeout, since fn's context may already have expired.
func (g *Group) Go(fn func(ctx context.Context) error, settle func(ctx context.Context, err error)) *Task {
	t := &Task{done: make(chan struct{})}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer close(t.done)

		ctx, cancel := g.context()
		t.err = fn(ctx)
		cancel()

		if settle != nil {
			settleCtx, settleCancel := g.context()
			defer settleCancel()
			settle(settleCtx, t.err)
		}
	}()

	return t
}

func (g *Group) context() (context.Context, context.CancelFunc) {
	if g.timeout > 0 {
		return context.WithTimeout(context.Background(), g.timeout)
	}
	return context.WithCancel(context.Background())
}

// Wait blocks until every started task has settled.
func (g *Group) Wait() {
	g.wg.Wait()
}
