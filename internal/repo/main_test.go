package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter-app/backend/internal/domain"
	"github.com/globetrotter-app/backend/internal/repo"
	"github.com/globetrotter-app/backend/migrations"
	"github.com/globetrotter-app/backend/testutil"
)

// TestMain runs before any test in the repo_test package.
// It applies all pending migrations to the test database so individual tests
// never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured — skip all tests in this package cleanly.
		os.Exit(m.Run())
	}

	// goose needs database/sql, not a pgx pool. Constructed manually because
	// TestMain has no *testing.T to pass to the testutil helpers.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// newTestRepos opens a transaction against the test database and returns the
// full Repos bundle bound to it. The transaction is rolled back when the
// test finishes, giving free per-test isolation.
func newTestRepos(t *testing.T) repo.Repos {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewRepos(tx)
}

// createUser inserts a user with a unique email and returns it. Most fixtures
// need one because trips carry a NOT NULL owner FK.
func createUser(t *testing.T, r repo.Repos) domain.User {
	t.Helper()
	user, err := r.Users.Create(context.Background(), domain.User{
		Email:        "owner-" + uuid.NewString() + "@example.com",
		Name:         "Owner",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	})
	require.NoError(t, err, "create fixture user")
	return user
}
