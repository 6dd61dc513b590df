package tasks_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowsync/rowsync/pkg/tasks"
)

func TestPollReportsPendingThenResult(t *testing.T) {
	p := tasks.NewPool[int](0)
	release := make(chan struct{})

	h := p.Spawn(context.Background(), func(context.Context) (int, error) {
		<-release
		return 42, nil
	})

	_, _, done := h.Poll()
	assert.False(t, done)

	close(release)
	require.Eventually(t, func() bool {
		_, _, done := h.Poll()
		return done
	}, time.Second, time.Millisecond)

	v, err, done := h.Poll()
	require.True(t, done)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Poll after resolution keeps returning the same result.
	v, err, done = h.Poll()
	require.True(t, done)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestPollReportsError(t *testing.T) {
	p := tasks.NewPool[int](0)
	boom := errors.New("boom")

	h := p.Spawn(context.Background(), func(context.Context) (int, error) {
		return 0, boom
	})

	require.Eventually(t, func() bool {
		_, _, done := h.Poll()
		return done
	}, time.Second, time.Millisecond)

	_, err, _ := h.Poll()
	assert.ErrorIs(t, err, boom)
}

func TestWorkerCapLimitsConcurrency(t *testing.T) {
	p := tasks.NewPool[int](1)
	var running atomic.Int32
	var peak atomic.Int32
	release := make(chan struct{})

	var handles []tasks.Handle[int]
	for i := 0; i < 4; i++ {
		handles = append(handles, p.Spawn(context.Background(), func(context.Context) (int, error) {
			n := running.Add(1)
			if n > peak.Load() {
				peak.Store(n)
			}
			<-release
			running.Add(-1)
			return 0, nil
		}))
	}

	close(release)
	require.Eventually(t, func() bool {
		for _, h := range handles {
			if _, _, done := h.Poll(); !done {
				return false
			}
		}
		return true
	}, time.Second, time.Millisecond)

	assert.LessOrEqual(t, peak.Load(), int32(1))
}

func TestContextReachesTheFunction(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "tick")

	p := tasks.NewPool[string](0)
	h := p.Spawn(ctx, func(ctx context.Context) (string, error) {
		v, _ := ctx.Value(key{}).(string)
		return v, nil
	})

	require.Eventually(t, func() bool {
		_, _, done := h.Poll()
		return done
	}, time.Second, time.Millisecond)

	v, _, _ := h.Poll()
	assert.Equal(t, "tick", v)
}
