package eventlog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDurableStore records appends in memory and can be told to fail, which
// exercises the sink's retry-from-cursor behavior.
type fakeDurableStore struct {
	mu      sync.Mutex
	entries map[int64]Entry
	failing bool
}

func newFakeDurableStore() *fakeDurableStore {
	return &fakeDurableStore{entries: make(map[int64]Entry)}
}

func (f *fakeDurableStore) Append(_ context.Context, e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("store unavailable")
	}
	f.entries[e.Index] = e
	return nil
}

func (f *fakeDurableStore) LastIndex(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var max int64
	for idx := range f.entries {
		if idx > max {
			max = idx
		}
	}
	return max, nil
}

func (f *fakeDurableStore) setFailing(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = v
}

func (f *fakeDurableStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func TestSinkDrainsInOrder(t *testing.T) {
	log := New(nil)
	store := newFakeDurableStore()
	sink := NewSink(log, store, slog.New(slog.DiscardHandler))
	sink.PollInterval = 10 * time.Millisecond

	for i := 0; i < 7; i++ {
		log.Append(TypeCreditsIssued, CreditsIssued{To: "owner", Amount: "5"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sink.Run(ctx) }()

	require.Eventually(t, func() bool { return store.count() == 7 }, 2*time.Second, 10*time.Millisecond)

	// Entries appended while the sink is live are picked up too.
	log.Append(TypeCreditsRetired, CreditsRetired{Account: "owner", Amount: "5"})
	require.Eventually(t, func() bool { return store.count() == 8 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestSinkRetriesAfterStoreFailure(t *testing.T) {
	log := New(nil)
	store := newFakeDurableStore()
	store.setFailing(true)
	sink := NewSink(log, store, slog.New(slog.DiscardHandler))
	sink.PollInterval = 10 * time.Millisecond

	log.Append(TypeSystemPaused, SystemPaused{By: "admin"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sink.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, store.count())

	store.setFailing(false)
	require.Eventually(t, func() bool { return store.count() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestSinkResumesFromDurableHighWaterMark(t *testing.T) {
	log := New(nil)
	store := newFakeDurableStore()

	e1 := log.Append(TypeSystemPaused, SystemPaused{By: "admin"})
	log.Append(TypeSystemUnpaused, SystemUnpaused{By: "admin"})

	// Simulate a previous run having delivered the first entry.
	require.NoError(t, store.Append(context.Background(), e1))

	sink := NewSink(log, store, slog.New(slog.DiscardHandler))
	sink.PollInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sink.Run(ctx) }()

	require.Eventually(t, func() bool { return store.count() == 2 }, 2*time.Second, 10*time.Millisecond)
}
