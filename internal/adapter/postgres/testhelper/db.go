// Package testhelper provides a migrated reference catalog in a throwaway
// PostgreSQL container for integration tests of the database sources.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres "github.com/heartmarshall/dictgen/internal/adapter/postgres"
	"github.com/heartmarshall/dictgen/internal/config"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// Catalog is a migrated ref_entries database shared by every test in the
// binary. Writer is only for seeding; sources under test use Reader.
type Catalog struct {
	DSN    string
	Writer *pgxpool.Pool
}

// SetupCatalog starts the shared container on first use and returns a
// catalog whose writer pool is closed via t.Cleanup.
func SetupCatalog(t *testing.T) *Catalog {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startCatalog()
	})
	if initErr != nil {
		t.Fatalf("testhelper: catalog unavailable: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	writer, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: writer pool: %v", err)
	}
	t.Cleanup(writer.Close)

	return &Catalog{DSN: sharedDSN, Writer: writer}
}

// Reader opens the same read-only pool the postgres source gets in
// production.
func (c *Catalog) Reader(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reader, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: c.DSN, MaxConns: 2})
	if err != nil {
		t.Fatalf("testhelper: reader pool: %v", err)
	}
	t.Cleanup(reader.Close)
	return reader
}

func startCatalog() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	dsn, err := startContainer(ctx)
	if err != nil {
		return "", err
	}
	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "dictgen",
				"POSTGRES_PASSWORD": "dictgen",
				"POSTGRES_DB":       "catalog",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("postgres endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://dictgen:dictgen@%s/catalog?sslmode=disable", endpoint), nil
}

// migrate applies migrations/ with goose, which needs a *sql.DB.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsDir()))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// migrationsDir resolves <repo>/migrations from this file's location
// (.../internal/adapter/postgres/testhelper/db.go).
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}
