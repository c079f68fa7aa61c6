package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolved(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	assert.NoError(t, Resolved(nil).Wait())
	assert.ErrorIs(t, Resolved(errBoom).Wait(), errBoom)

	select {
	case <-Resolved(nil).Done():
	default:
		t.Fatal("resolved task is not done")
	}
}

func TestGroup_SettleRunsBeforeDone(t *testing.T) {
	t.Parallel()

	g := NewGroup(time.Second)
	errRemote := errors.New("remote down")

	var settled atomic.Value
	task := g.Go(func(ctx context.Context) error {
		return errRemote
	}, func(ctx context.Context, err error) {
		settled.Store(err)
	})

	require.ErrorIs(t, task.Wait(), errRemote)
	assert.Equal(t, errRemote, settled.Load())
}

func TestGroup_Timeout(t *testing.T) {
	t.Parallel()

	g := NewGroup(20 * time.Millisecond)
	task := g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, nil)

	assert.ErrorIs(t, task.Wait(), context.DeadlineExceeded)
}

func TestGroup_SettleAfterTimeoutHasLiveContext(t *testing.T) {
	t.Parallel()

	g := NewGroup(20 * time.Millisecond)

	var live, bounded atomic.Bool
	task := g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, func(ctx context.Context, err error) {
		live.Store(ctx.Err() == nil)
		_, ok := ctx.Deadline()
		bounded.Store(ok)
	})

	require.ErrorIs(t, task.Wait(), context.DeadlineExceeded)
	assert.True(t, live.Load())
	assert.True(t, bounded.Load())
}

func TestGroup_Wait(t *testing.T) {
	t.Parallel()

	g := NewGroup(0)
	var n int32
	for i := 0; i < 10; i++ {
		g.Go(func(ctx context.Context) error {
			atomic.AddInt32(&n, 1)
			return nil
		}, nil)
	}
	g.Wait()

	assert.Equal(t, int32(10), atomic.LoadInt32(&n))
}
