package testhelper

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueSuffix returns a short lowercase letter string for non-conflicting
// test data. Letters only, so seeded words survive the padded filter.
func UniqueSuffix() string {
	id := uuid.New()
	var b strings.Builder
	for _, c := range id[:6] {
		b.WriteByte('a' + c%26)
	}
	return b.String()
}

// SeedRefEntry inserts one ref_entries row and returns its id.
func SeedRefEntry(t *testing.T, pool *pgxpool.Pool, text string, core *bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO ref_entries (id, text, text_normalized, is_core_lexicon)
		 VALUES ($1, $2, $3, $4)`,
		id, text, strings.ToLower(strings.TrimSpace(text)), core,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefEntry %q: %v", text, err)
	}
	return id
}
