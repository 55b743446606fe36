// Package refentry reads dictionary headwords from the reference catalog
// table ref_entries.
package refentry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/dictgen/internal/adapter/postgres"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Options narrows which catalog rows are read.
type Options struct {
	CoreOnly bool // only rows with is_core_lexicon = true
	Limit    int  // 0 means no limit
}

// Source streams ref_entries.text ordered by text. Each row is treated like
// the first column of a TSV record.
type Source struct {
	q    postgres.Querier
	opts Options
}

// NewSource creates a new reference catalog source.
func NewSource(q postgres.Querier, opts Options) *Source {
	return &Source{q: q, opts: opts}
}

// Name identifies the source in logs.
func (s *Source) Name() string { return "postgres:ref_entries" }

func (s *Source) query() (string, []any, error) {
	b := psql.Select("text").From("ref_entries")
	if s.opts.CoreOnly {
		b = b.Where(sq.Eq{"is_core_lexicon": true})
	}
	b = b.OrderBy("text")
	if s.opts.Limit > 0 {
		b = b.Limit(uint64(s.opts.Limit))
	}
	return b.ToSql()
}

// Each calls fn with the text of every selected row.
func (s *Source) Each(ctx context.Context, fn func(record string) error) error {
	sql, args, err := s.query()
	if err != nil {
		return fmt.Errorf("build ref_entries query: %w", err)
	}

	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "query ref_entries")
	}
	defer rows.Close()

	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return postgres.MapError(err, "scan ref_entries")
		}
		if err := fn(text); err != nil {
			return err
		}
	}
	return postgres.MapError(rows.Err(), "read ref_entries")
}
