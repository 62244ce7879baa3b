package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadResult struct {
	value []string
	err   error
}

func TestReadThrough_StoresLoadedValue(t *testing.T) {
	c := newMemCache()
	rc := newReadCache(c, time.Minute)
	var calls atomic.Int32
	load := func(ctx context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"science"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := readThrough(context.Background(), rc, "k", load)
		require.NoError(t, err)
		assert.Equal(t, []string{"science"}, got)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, c.has("k"))
}

func TestReadThrough_LoadErrorIsNotCached(t *testing.T) {
	c := newMemCache()
	rc := newReadCache(c, time.Minute)

	_, err := readThrough(context.Background(), rc, "k", func(ctx context.Context) ([]string, error) {
		return nil, errors.New("db down")
	})

	assert.EqualError(t, err, "db down")
	assert.False(t, c.has("k"))
}

func TestReadThrough_SharedLoadSurvivesFirstCallerCancel(t *testing.T) {
	rc := newReadCache(nil, 0)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	load := func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []string{"science"}, nil
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	resA := make(chan loadResult, 1)
	go func() {
		v, err := readThrough(ctxA, rc, "k", load)
		resA <- loadResult{v, err}
	}()
	<-started

	resB := make(chan loadResult, 1)
	go func() {
		v, err := readThrough(context.Background(), rc, "k", load)
		resB <- loadResult{v, err}
	}()
	// Give B time to join A's flight.
	time.Sleep(20 * time.Millisecond)

	cancelA()
	close(release)

	b := <-resB
	require.NoError(t, b.err, "a caller with a live context must not inherit another caller's cancellation")
	assert.Equal(t, []string{"science"}, b.value)

	a := <-resA
	if a.err != nil {
		assert.ErrorIs(t, a.err, context.Canceled)
	}
}

func TestReadThrough_CallerStopsWaitingOnOwnCancel(t *testing.T) {
	rc := newReadCache(nil, 0)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := readThrough(ctx, rc, "k", func(ctx context.Context) ([]string, error) {
		<-release
		return []string{"late"}, nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReadThrough_InvalidateDuringLoad(t *testing.T) {
	c := newMemCache()
	rc := newReadCache(c, time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	load := func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	}

	stale := make(chan loadResult, 1)
	go func() {
		v, err := readThrough(context.Background(), rc, "k", load)
		stale <- loadResult{v, err}
	}()
	<-started

	rc.invalidate(context.Background(), "k")

	// Later callers do not join the load that began before the invalidation.
	fresh, err := readThrough(context.Background(), rc, "k", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, fresh)

	close(release)
	old := <-stale
	require.NoError(t, old.err)
	assert.Equal(t, []string{"old"}, old.value)

	cached, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.JSONEq(t, `["new"]`, cached, "the older load must not overwrite the cache")
}

func TestReadThrough_InvalidateBeforeStaleWrite(t *testing.T) {
	c := newMemCache()
	rc := newReadCache(c, time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) ([]string, error) {
		close(started)
		<-release
		return []string{"old"}, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := readThrough(context.Background(), rc, "k", load)
		done <- err
	}()
	<-started

	rc.invalidate(context.Background(), "k")
	close(release)
	require.NoError(t, <-done)

	assert.False(t, c.has("k"))
}
