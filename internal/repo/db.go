// Package repo contains all database access logic for the GlobeTrotter API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Repos bundles one repository of each kind, all bound to the same
// connection. Bind them to a pool for standalone reads, or to a transaction
// via Atomic.InTx for check-then-write sequences.
type Repos struct {
	Users      UserRepo
	Trips      TripRepo
	Stops      StopRepo
	Activities ActivityRepo
}

// NewRepos constructs one repository of each kind over the given connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRepos(d db) Repos {
	return Repos{
		Users:      NewUserRepo(d),
		Trips:      NewTripRepo(d),
		Stops:      NewStopRepo(d),
		Activities: NewActivityRepo(d),
	}
}

// Atomic runs a function against repositories bound to a single database
// transaction. The service layer uses it to keep an ownership check and the
// write it guards from interleaving with a concurrent delete of the same
// trip, which could otherwise orphan a freshly inserted child row.
type Atomic interface {
	// InTx begins a transaction, calls fn with Repos bound to it, and
	// commits. Any error from fn rolls the transaction back and is returned.
	InTx(ctx context.Context, fn func(Repos) error) error
}

// pgAtomic is the pgxpool-backed Atomic implementation.
type pgAtomic struct {
	pool *pgxpool.Pool
}

// NewAtomic constructs an Atomic backed by the given pool.
func NewAtomic(pool *pgxpool.Pool) Atomic {
	return &pgAtomic{pool: pool}
}

func (a *pgAtomic) InTx(ctx context.Context, fn func(Repos) error) error {
	err := pgx.BeginFunc(ctx, a.pool, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
	if err != nil {
		return fmt.Errorf("repo.Atomic.InTx: %w", err)
	}
	return nil
}
