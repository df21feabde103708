package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// Counter rows in id_sequences, one per entity type.
const (
	providerSequence = "providers"
	articleSequence  = "articles"
)

// The upsert row-locks the counter until the surrounding transaction ends,
// so concurrent creators of the same type are serialised.
const nextSequenceValueQuery = `
	INSERT INTO id_sequences (name, last_value)
	VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE SET last_value = id_sequences.last_value + 1
	RETURNING last_value;
`

// insertFunc writes one entity under the allocated sequence value.
type insertFunc func(ctx context.Context, tx pgx.Tx, value int64) error

// insertWithSequence allocates the next value of the named counter, first
// when the counter has never been used, and runs insert with it in one
// transaction. A primary-key collision on pkConstraint discards the value
// and tries the next one; any other failure aborts.
func (r *BaseRepository) insertWithSequence(ctx context.Context, name string, first int64, pkConstraint string, insert insertFunc) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	for {
		var value int64
		if err := tx.QueryRow(ctx, nextSequenceValueQuery, name, first).Scan(&value); err != nil {
			return 0, fmt.Errorf("failed to allocate %s sequence value: %w", name, err)
		}

		savepoint, err := tx.Begin(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to open savepoint for %s: %w", name, err)
		}

		err = insert(ctx, savepoint, value)
		if err == nil {
			if err := savepoint.Commit(ctx); err != nil {
				return 0, fmt.Errorf("failed to release savepoint for %s: %w", name, err)
			}
			if err := r.Commit(ctx, tx); err != nil {
				return 0, err
			}
			return value, nil
		}

		if rbErr := savepoint.Rollback(ctx); rbErr != nil {
			return 0, fmt.Errorf("failed to roll back savepoint for %s: %w", name, rbErr)
		}
		if !isUniqueViolationOn(err, pkConstraint) {
			return 0, err
		}
		slog.Default().WarnContext(ctx, "Sequence value already in use, trying next",
			slog.String("sequence", name),
			slog.Int64("value", value))
	}
}
