package eventloop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) *Loop {
	t.Helper()
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = l.Run(ctx) }()
	t.Cleanup(cancel)
	return l
}

func TestLoop_RunsTasksInOrder(t *testing.T) {
	l := startLoop(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	require.NoError(t, l.Settle(ctx))

	var snapshot []int
	require.NoError(t, l.Call(ctx, func() { snapshot = append(snapshot, got...) }))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, snapshot)
}

func TestLoop_SettleWaitsForFollowUps(t *testing.T) {
	l := startLoop(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	steps := 0
	require.NoError(t, l.Call(ctx, func() {
		steps++
		l.Post(func() {
			steps++
			l.Post(func() { steps++ })
		})
	}))
	require.NoError(t, l.Settle(ctx))

	var got int
	require.NoError(t, l.Call(ctx, func() { got = steps }))
	assert.Equal(t, 3, got)
}

func TestLoop_AfterFuncCancel(t *testing.T) {
	l := startLoop(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fired := make(chan string, 2)
	stop := l.AfterFunc(20*time.Millisecond, func() { fired <- "first" })
	stop()
	l.AfterFunc(10*time.Millisecond, func() { fired <- "second" })

	select {
	case v := <-fired:
		assert.Equal(t, "second", v)
	case <-ctx.Done():
		t.Fatal("timer never fired")
	}

	select {
	case v := <-fired:
		t.Fatalf("cancelled timer fired: %s", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLoop_CallAfterStop(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = l.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	err := l.Call(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrStopped)
}
