package eventlog

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Log is the in-process authoritative chain. The core appends under its
// single-writer lock; relays (postgres sink, Kafka publisher, read-model
// projector) read concurrently through ListAfter or Watch, so the log keeps
// its own lock around the entry slice.
type Log struct {
	mu       sync.RWMutex
	entries  []Entry
	lastHash string
	watchers []chan Entry

	now func() time.Time
}

// New builds an empty log. clock may be nil, in which case time.Now is used.
func New(clock func() time.Time) *Log {
	if clock == nil {
		clock = time.Now
	}
	return &Log{now: clock}
}

// Append commits one entry and notifies watchers. The payload structs in
// this package marshal unconditionally, and the in-memory chain has no
// failure mode, so Append returns the committed entry directly; this is
// what lets the core's commit phase stay infallible.
func (l *Log) Append(typ EntryType, payload any) Entry {
	raw, _ := json.Marshal(payload)

	l.mu.Lock()
	index := int64(len(l.entries)) + 1
	e := Entry{
		ID:         uuid.New(),
		Index:      index,
		Type:       typ,
		PrevHash:   l.lastHash,
		Payload:    raw,
		RecordedAt: l.now(),
	}
	e.Hash = entryHash(e.PrevHash, e.Index, e.Type, e.RecordedAt, e.Payload)
	l.entries = append(l.entries, e)
	l.lastHash = e.Hash
	watchers := l.watchers
	l.mu.Unlock()

	for _, w := range watchers {
		select {
		case w <- e:
		default:
			// A slow watcher loses live delivery but can always catch up
			// with ListAfter; the chain itself never drops entries.
		}
	}
	return e
}

// ListAfter returns up to limit entries with index greater than after,
// ordered by index. limit <= 0 means no limit.
func (l *Log) ListAfter(after int64, limit int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if after < 0 {
		after = 0
	}
	if after >= int64(len(l.entries)) {
		return nil
	}
	tail := l.entries[after:]
	if limit > 0 && len(tail) > limit {
		tail = tail[:limit]
	}
	out := make([]Entry, len(tail))
	copy(out, tail)
	return out
}

// Len returns the index of the newest entry.
func (l *Log) Len() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int64(len(l.entries))
}

// Watch registers a buffered live feed of committed entries. Delivery is
// best-effort; consumers needing completeness replay via ListAfter.
func (l *Log) Watch() <-chan Entry {
	ch := make(chan Entry, 256)
	l.mu.Lock()
	l.watchers = append(l.watchers, ch)
	l.mu.Unlock()
	return ch
}
