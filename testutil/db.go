// Package testutil provides shared helpers for database integration tests.
// Every helper keys off the TEST_DATABASE_URL environment variable and skips
// the calling test when it is unset, so the unit suite runs clean on
// machines without Postgres.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

const envVar = "TEST_DATABASE_URL"

// NewPool opens a *pgxpool.Pool against the test database, pings it, and
// registers a cleanup that closes it when the test (and its subtests) end.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB against the test database via the pgx stdlib
// driver. goose wants database/sql, not a pgx pool, so migration tests use
// this instead of NewPool. Closed automatically when the test ends.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given DSN and panics on failure.
// For TestMain, where no *testing.T exists. The caller closes it.
func MustOpenSQLDB(dataSourceName string) *sql.DB {
	db, err := sql.Open("pgx", dataSourceName)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

// dsn returns TEST_DATABASE_URL, skipping the test when it is unset.
func dsn(t *testing.T) string {
	t.Helper()
	v := os.Getenv(envVar)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", envVar)
	}
	return v
}
