package eventlog

import (
	"context"
	"log/slog"
	"time"
)

// DurableStore is the destination a Sink drains committed entries into.
// Appends must be idempotent so redelivery after a crash is harmless.
type DurableStore interface {
	Append(ctx context.Context, e Entry) error
	LastIndex(ctx context.Context) (int64, error)
}

// Sink is the outbox-style relay between the in-process chain and a durable
// store. It resumes from the store's own high-water mark, so delivery is
// at-least-once and ordering follows the chain index.
type Sink struct {
	log    *Log
	store  DurableStore
	logger *slog.Logger

	// PollInterval bounds how stale the durable copy can get when the live
	// feed drops notifications under load.
	PollInterval time.Duration
}

// NewSink wires a relay from log into store.
func NewSink(log *Log, store DurableStore, logger *slog.Logger) *Sink {
	return &Sink{log: log, store: store, logger: logger, PollInterval: time.Second}
}

// Run drains entries until ctx is cancelled. Store errors are logged and
// retried on the next tick rather than crashing the relay; the chain keeps
// everything, so nothing is lost.
func (s *Sink) Run(ctx context.Context) error {
	cursor, err := s.store.LastIndex(ctx)
	if err != nil {
		return err
	}

	wake := s.log.Watch()
	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()

	for {
		cursor = s.drain(ctx, cursor)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
		case <-ticker.C:
		}
	}
}

func (s *Sink) drain(ctx context.Context, cursor int64) int64 {
	for {
		batch := s.log.ListAfter(cursor, 128)
		if len(batch) == 0 {
			return cursor
		}
		for _, e := range batch {
			if err := s.store.Append(ctx, e); err != nil {
				s.logger.ErrorContext(ctx, "durable log append failed",
					"index", e.Index,
					"error", err,
				)
				return cursor
			}
			cursor = e.Index
		}
	}
}
