// Package testdb starts a throwaway Postgres for repository tests.
//
// Without a container provider the repository tests skip, which checks none of
// the adapter behavior. Set TESTDB_REQUIRE_DOCKER=1 in CI to fail instead.
package testdb

import (
	"context"
	"os"
	"testing"

	"github.com/Astemirdum/library-borrowing/migrations"
	"github.com/Astemirdum/library-borrowing/pkg/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresTC "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	image = "postgres:16-alpine"

	requireDockerEnv = "TESTDB_REQUIRE_DOCKER"
)

// New skips the test when no container provider is reachable, unless
// TESTDB_REQUIRE_DOCKER is set.
func New(t *testing.T) *sqlx.DB {
	t.Helper()
	if os.Getenv(requireDockerEnv) == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}

	ctx := context.Background()
	ctr, err := postgresTC.Run(ctx, image,
		postgresTC.WithDatabase("library"),
		postgresTC.WithUsername("postgres"),
		postgresTC.WithPassword("postgres"),
		postgresTC.BasicWaitStrategies(),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		_ = ctr.Terminate(ctx)
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, postgres.Migrate(db, migrations.MigrationFiles))
	return db
}

func InsertUser(t *testing.T, db *sqlx.DB, id int64, email string) {
	t.Helper()
	_, err := db.Exec(`insert into public."user" (id, email_address) values ($1, $2)`, id, email)
	require.NoError(t, err)
}

func InsertBook(t *testing.T, db *sqlx.DB, id int64, title string) {
	t.Helper()
	_, err := db.Exec(`insert into book (id, title) values ($1, $2)`, id, title)
	require.NoError(t, err)
}

func Count(t *testing.T, db *sqlx.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, query, args...))
	return n
}
