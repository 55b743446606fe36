package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the read-only subset of *pgxpool.Pool and pgx.Tx the sources
// need. pgxmock pools satisfy it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
