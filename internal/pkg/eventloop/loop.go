// Package eventloop provides the single logical thread the storefront runs on.
// Every store mutation, route change and render executes as a task on one
// goroutine, so the state they share needs no locking.
package eventloop

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStopped is returned by Call and Settle once the loop has exited.
var ErrStopped = errors.New("eventloop: stopped")

// maxSettleRounds bounds Settle so a redirect cycle cannot spin forever.
const maxSettleRounds = 64

// Loop is an unbounded FIFO task queue drained by Run.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	done    chan struct{}
	stopped bool
}

func New() *Loop {
	return &Loop{
		queue: make([]func(), 0),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Post enqueues fn. It never blocks, so tasks may post follow-up tasks.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending reports how many tasks are queued and not yet started.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

// Run drains tasks until ctx is cancelled. It must be called from exactly one
// goroutine.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.queue = nil
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			fn()
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settle waits until the tasks posted by earlier work (route changes,
// redirects) have drained.
func (l *Loop) Settle(ctx context.Context) error {
	for i := 0; i < maxSettleRounds; i++ {
		pending := 0
		if err := l.Call(ctx, func() { pending = l.Pending() }); err != nil {
			return err
		}
		if pending == 0 {
			return nil
		}
	}
	return nil
}

// AfterFunc schedules fn to run on the loop after d. The returned cancel
// function prevents fn from running if it has not been posted yet.
func (l *Loop) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	var (
		mu       sync.Mutex
		canceled bool
	)
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			mu.Lock()
			c := canceled
			mu.Unlock()
			if !c {
				fn()
			}
		})
	})
	return func() {
		mu.Lock()
		canceled = true
		mu.Unlock()
		t.Stop()
	}
}
