// Package readmodel projects the append-only ledger log into Redis so query
// traffic (dashboards, public explorers) never touches the registry core.
// The projection is a downstream consumer: it lags the log by design and can
// be rebuilt from scratch by deleting its keys and restarting.
package readmodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"bluecarbon/internal/eventlog"
	"bluecarbon/pkg/domain"
)

const (
	keyPrefix = "bluecarbon:"
	keyCursor = keyPrefix + "cursor"

	applyBatch = 128
	pollEvery  = 500 * time.Millisecond
)

// Projection tails the event log and maintains the Redis read model.
type Projection struct {
	client *redis.Client
	log    *eventlog.Log
	logger *slog.Logger
}

func New(client *redis.Client, log *eventlog.Log, logger *slog.Logger) *Projection {
	return &Projection{client: client, log: log, logger: logger}
}

// Run tails the log until ctx is cancelled, resuming from the cursor stored
// in Redis. Apply errors are logged and retried; the cursor only advances
// past entries that were fully applied.
func (p *Projection) Run(ctx context.Context) error {
	cursor, err := p.loadCursor(ctx)
	if err != nil {
		return fmt.Errorf("load read model cursor: %w", err)
	}

	wake := p.log.Watch()
	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()

	for {
		p.drain(ctx, &cursor)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
		case <-ticker.C:
		}
	}
}

// drain applies entries until the log is exhausted or an apply fails.
func (p *Projection) drain(ctx context.Context, cursor *int64) {
	for {
		entries := p.log.ListAfter(*cursor, applyBatch)
		if len(entries) == 0 {
			return
		}
		for _, entry := range entries {
			if err := p.apply(ctx, entry); err != nil {
				p.logger.ErrorContext(ctx, "read model apply failed, will retry",
					"index", entry.Index,
					"type", entry.Type,
					"error", err,
				)
				return
			}
			*cursor = entry.Index
			if err := p.client.Set(ctx, keyCursor, *cursor, 0).Err(); err != nil {
				p.logger.ErrorContext(ctx, "read model cursor write failed", "error", err)
			}
		}
	}
}

func (p *Projection) loadCursor(ctx context.Context) (int64, error) {
	val, err := p.client.Get(ctx, keyCursor).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (p *Projection) apply(ctx context.Context, entry eventlog.Entry) error {
	switch entry.Type {
	case eventlog.TypeProjectRegistered:
		var ev eventlog.ProjectRegistered
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		return p.client.HSet(ctx, projectKey(ev.ProjectID),
			"name", ev.Name,
			"owner", string(ev.Owner),
			"active", "1",
		).Err()

	case eventlog.TypeMRVSubmitted:
		var ev eventlog.MRVSubmitted
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		if err := p.client.HSet(ctx, submissionKey(ev.SubmissionID),
			"project_id", strconv.FormatUint(uint64(ev.ProjectID), 10),
			"status", "submitted",
			"claimed_tonnes", strconv.FormatUint(ev.ClaimedQuantity, 10),
			"package_locator", ev.PackageLocator,
		).Err(); err != nil {
			return err
		}
		return p.client.SAdd(ctx, projectSubmissionsKey(ev.ProjectID),
			strconv.FormatUint(uint64(ev.SubmissionID), 10)).Err()

	case eventlog.TypeMRVApproved:
		var ev eventlog.MRVApproved
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		return p.client.HSet(ctx, submissionKey(ev.SubmissionID),
			"status", "approved",
			"verifier", string(ev.Verifier),
		).Err()

	case eventlog.TypeMRVRejected:
		var ev eventlog.MRVRejected
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		return p.client.HSet(ctx, submissionKey(ev.SubmissionID),
			"status", "rejected",
			"verifier", string(ev.Verifier),
		).Err()

	case eventlog.TypeCreditsIssued:
		var ev eventlog.CreditsIssued
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		return p.adjust(ctx, balanceKey(string(ev.To)), ev.Amount, add)

	case eventlog.TypeCreditsTransferred:
		var ev eventlog.CreditsTransferred
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		if err := p.adjust(ctx, balanceKey(string(ev.From)), ev.Amount, sub); err != nil {
			return err
		}
		return p.adjust(ctx, balanceKey(string(ev.To)), ev.Amount, add)

	case eventlog.TypeCreditsRetired:
		var ev eventlog.CreditsRetired
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		if err := p.adjust(ctx, balanceKey(string(ev.Account)), ev.Amount, sub); err != nil {
			return err
		}
		if err := p.adjust(ctx, retiredKey(string(ev.Account)), ev.Amount, add); err != nil {
			return err
		}
		return p.adjust(ctx, keyPrefix+"retired:total", ev.Amount, add)

	case eventlog.TypeRoleGranted:
		var ev eventlog.RoleGranted
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		return p.client.SAdd(ctx, roleKey(string(ev.Role)), string(ev.Account)).Err()

	case eventlog.TypeRoleRevoked:
		var ev eventlog.RoleRevoked
		if err := json.Unmarshal(entry.Payload, &ev); err != nil {
			return err
		}
		return p.client.SRem(ctx, roleKey(string(ev.Role)), string(ev.Account)).Err()

	case eventlog.TypeSystemPaused:
		return p.client.Set(ctx, keyPrefix+"paused", "1", 0).Err()

	case eventlog.TypeSystemUnpaused:
		return p.client.Set(ctx, keyPrefix+"paused", "0", 0).Err()
	}

	// Unknown entry types are skipped so old projections survive new entry
	// kinds.
	p.logger.WarnContext(ctx, "read model skipping unknown entry type", "type", entry.Type)
	return nil
}

type direction int

const (
	add direction = iota
	sub
)

// adjust applies a big-integer delta to a decimal-string counter. Amounts
// exceed int64 at credit scale, so INCRBY is not an option.
func (p *Projection) adjust(ctx context.Context, key, amount string, dir direction) error {
	delta, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return fmt.Errorf("malformed amount %q for %s", amount, key)
	}

	current := new(big.Int)
	val, err := p.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return err
	default:
		if _, ok := current.SetString(val, 10); !ok {
			return fmt.Errorf("corrupt counter %s: %q", key, val)
		}
	}

	if dir == sub {
		current.Sub(current, delta)
	} else {
		current.Add(current, delta)
	}
	return p.client.Set(ctx, key, current.String(), 0).Err()
}

// Balance reads a projected balance, zero when absent.
func (p *Projection) Balance(ctx context.Context, account string) (*big.Int, error) {
	return p.counter(ctx, balanceKey(account))
}

// Retired reads a projected retirement counter, zero when absent.
func (p *Projection) Retired(ctx context.Context, account string) (*big.Int, error) {
	return p.counter(ctx, retiredKey(account))
}

// TotalRetired reads the projected global retirement counter.
func (p *Projection) TotalRetired(ctx context.Context) (*big.Int, error) {
	return p.counter(ctx, keyPrefix+"retired:total")
}

func (p *Projection) counter(ctx context.Context, key string) (*big.Int, error) {
	val, err := p.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(val, 10)
	if !ok {
		return nil, fmt.Errorf("corrupt counter %s: %q", key, val)
	}
	return n, nil
}

func projectKey(id domain.ProjectID) string {
	return keyPrefix + "project:" + strconv.FormatUint(uint64(id), 10)
}

func projectSubmissionsKey(id domain.ProjectID) string {
	return keyPrefix + "project:" + strconv.FormatUint(uint64(id), 10) + ":submissions"
}

func submissionKey(id domain.SubmissionID) string {
	return keyPrefix + "submission:" + strconv.FormatUint(uint64(id), 10)
}

func balanceKey(account string) string {
	return keyPrefix + "balance:" + account
}

func retiredKey(account string) string {
	return keyPrefix + "retired:" + account
}

func roleKey(role string) string {
	return keyPrefix + "role:" + role
}
