package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/dictgen/internal/domain"
)

// MapError wraps a pgx error with the operation that failed.
// context.DeadlineExceeded and context.Canceled pass through untouched
// underneath the wrap.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01", "42703": // undefined_table, undefined_column
			return fmt.Errorf("%s: %w: %s", op, domain.ErrSourceSchema, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
