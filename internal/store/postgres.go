package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/event-registry-api/internal/database"
	"github.com/rs/zerolog"
)

// postgresStore persists collection snapshots in a single jsonb table.
type postgresStore struct {
	db         *database.DB
	log        zerolog.Logger
	maxRetries int
	backoff    time.Duration
}

// NewPostgres creates a CollectionStore backed by the collections table.
// Each call is wrapped in a bounded retry so a flaky connection surfaces
// as a failure instead of a hang.
func NewPostgres(db *database.DB, maxRetries int, backoff time.Duration, log zerolog.Logger) CollectionStore {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &postgresStore{
		db:         db,
		log:        log.With().Str("component", "store").Logger(),
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// GetCollection returns the snapshot stored under key, or nil if the
// collection has never been written.
func (s *postgresStore) GetCollection(ctx context.Context, key string) ([]byte, error) {
	var records []byte
	err := s.withRetry(ctx, "get", key, func() error {
		err := s.db.QueryRowContext(ctx,
			"SELECT records FROM collections WHERE key = $1", key,
		).Scan(&records)
		if err == sql.ErrNoRows {
			records = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	return records, nil
}

// PutCollection replaces the snapshot stored under key.
func (s *postgresStore) PutCollection(ctx context.Context, key string, records []byte) error {
	query := `
		INSERT INTO collections (key, records, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			records = EXCLUDED.records,
			updated_at = EXCLUDED.updated_at
	`
	err := s.withRetry(ctx, "put", key, func() error {
		_, err := s.db.ExecContext(ctx, query, key, records, time.Now())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// withRetry runs op up to maxRetries times with a fixed backoff between
// attempts, giving up early when the context is done.
func (s *postgresStore) withRetry(ctx context.Context, op, key string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if attempt < s.maxRetries {
			s.log.Warn().
				Err(lastErr).
				Str("op", op).
				Str("key", key).
				Int("attempt", attempt).
				Msg("Store call failed, retrying")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.backoff):
			}
		}
	}
	return lastErr
}
