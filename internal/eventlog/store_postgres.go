package eventlog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore persists committed entries so the chain survives restarts
// and auditors can replay it from SQL. Writes are idempotent by index,
// which lets the sink worker re-deliver safely.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the log table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ledger_log (
			entry_index BIGINT PRIMARY KEY,
			entry_id    UUID NOT NULL,
			entry_type  TEXT NOT NULL,
			prev_hash   TEXT NOT NULL DEFAULT '',
			entry_hash  TEXT NOT NULL,
			payload     JSONB NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure ledger_log schema: %w", err)
	}
	return nil
}

// Append inserts an entry, ignoring duplicates already delivered.
func (s *PostgresStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ledger_log (entry_index, entry_id, entry_type, prev_hash, entry_hash, payload, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entry_index) DO NOTHING`,
		e.Index, e.ID, string(e.Type), e.PrevHash, e.Hash, []byte(e.Payload), e.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert log entry %d: %w", e.Index, err)
	}
	return nil
}

// ListAfter returns up to limit entries with index greater than after,
// ordered by index. limit <= 0 means no limit.
func (s *PostgresStore) ListAfter(ctx context.Context, after int64, limit int) ([]Entry, error) {
	query := `
		SELECT entry_index, entry_id, entry_type, prev_hash, entry_hash, payload, recorded_at
		FROM ledger_log
		WHERE entry_index > $1
		ORDER BY entry_index`
	args := []any{after}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var typ string
		var payload []byte
		if err := rows.Scan(&e.Index, &e.ID, &typ, &e.PrevHash, &e.Hash, &payload, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		e.Type = EntryType(typ)
		e.Payload = payload
		out = append(out, e)
	}
	return out, rows.Err()
}

// LastIndex returns the highest persisted index, 0 for an empty table.
func (s *PostgresStore) LastIndex(ctx context.Context) (int64, error) {
	var idx sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(entry_index) FROM ledger_log`).Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("query last log index: %w", err)
	}
	return idx.Int64, nil
}
