package livequery_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"aristobox/internal/livequery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func waitUpdate(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("no update within timeout")
	}
}

func TestWatch_InitialValue(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	release := make(chan struct{})

	l := livequery.Watch(context.Background(), hub, func(ctx context.Context) (int, error) {
		<-release
		return 42, nil
	}, livequery.Orders)
	defer l.Close()

	_, ok := l.Value()
	assert.False(t, ok, "value must be absent before the first evaluation")

	close(release)
	v, err := l.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestWatch_ReevaluatesOnNotify(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	var n atomic.Int64

	l := livequery.Watch(context.Background(), hub, func(ctx context.Context) (int64, error) {
		return n.Load(), nil
	}, livequery.Orders)
	defer l.Close()

	waitUpdate(t, l.Updates())

	n.Store(5)
	hub.Notify(livequery.Orders)
	waitUpdate(t, l.Updates())

	v, ok := l.Value()
	require.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestWatch_IgnoresOtherTables(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	var calls atomic.Int64

	l := livequery.Watch(context.Background(), hub, func(ctx context.Context) (int64, error) {
		return calls.Add(1), nil
	}, livequery.Orders)
	defer l.Close()

	waitUpdate(t, l.Updates())
	hub.Notify(livequery.Kits, livequery.Customers)

	select {
	case <-l.Updates():
		t.Fatalf("unexpected re-evaluation for unrelated table")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, int64(1), calls.Load())
}

func TestWatch_ErrorKeepsLastValue(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	boom := errors.New("boom")
	var fail atomic.Bool

	l := livequery.Watch(context.Background(), hub, func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", boom
		}
		return "ok", nil
	}, livequery.Orders)
	defer l.Close()

	waitUpdate(t, l.Updates())
	fail.Store(true)
	hub.Notify(livequery.Orders)
	waitUpdate(t, l.Updates())

	v, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, "ok", v)
	assert.ErrorIs(t, l.Err(), boom)

	fail.Store(false)
	hub.Notify(livequery.Orders)
	waitUpdate(t, l.Updates())
	assert.NoError(t, l.Err())
}

func TestWatch_FirstEvaluationError(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	boom := errors.New("boom")

	l := livequery.Watch(context.Background(), hub, func(ctx context.Context) (int, error) {
		return 0, boom
	}, livequery.Orders)
	defer l.Close()

	_, err := l.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
	_, ok := l.Value()
	assert.False(t, ok)
}

func TestWatch_CloseUnsubscribes(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())

	l := livequery.Watch(context.Background(), hub, func(ctx context.Context) (int, error) {
		return 1, nil
	}, livequery.Orders, livequery.Kits)
	waitUpdate(t, l.Updates())
	assert.Equal(t, 1, hub.Subscribers(livequery.Orders))
	assert.Equal(t, 1, hub.Subscribers(livequery.Kits))

	l.Close()
	l.Close()
	assert.Equal(t, 0, hub.Subscribers(livequery.Orders))
	assert.Equal(t, 0, hub.Subscribers(livequery.Kits))

	_, err := l.Wait(context.Background())
	// значение уже было получено до закрытия
	assert.NoError(t, err)
}

func TestWatch_ContextCancelStops(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	l := livequery.Watch(ctx, hub, func(ctx context.Context) (int, error) {
		return 1, nil
	}, livequery.Orders)

	cancel()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("live query did not stop on context cancel")
	}
	assert.Equal(t, 0, hub.Subscribers(livequery.Orders))
}

func TestHub_StopAll(t *testing.T) {
	hub := livequery.NewHub(zap.NewNop())
	q := func(ctx context.Context) (int, error) { return 1, nil }

	a := livequery.Watch(context.Background(), hub, q, livequery.Orders)
	b := livequery.Watch(context.Background(), hub, q, livequery.Orders)

	hub.StopAll()

	for _, l := range []*livequery.Live[int]{a, b} {
		select {
		case <-l.Done():
		case <-time.After(2 * time.Second):
			t.Fatalf("StopAll left a live query running")
		}
	}
	assert.Equal(t, 0, hub.Subscribers(livequery.Orders))
}
