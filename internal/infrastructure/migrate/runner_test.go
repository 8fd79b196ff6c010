package migrate_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/infrastructure/migrate"
)

const migrationsPath = "../../../migrations"

func startPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("migratedb"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return dsn
}

func tableExists(t *testing.T, dsn, table string) bool {
	t.Helper()

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	var exists bool
	err = db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, table,
	).Scan(&exists)
	require.NoError(t, err)

	return exists
}

func TestRunner(t *testing.T) {
	dsn := startPostgres(t)

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    dsn,
		MigrationsPath: migrationsPath,
	}, zap.NewNop())

	version, dirty, err := runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)

	require.NoError(t, runner.Run())

	version, dirty, err = runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
	assert.True(t, tableExists(t, dsn, "users"))
	assert.True(t, tableExists(t, dsn, "messages"))

	// Second run is a no-op.
	require.NoError(t, runner.Run())

	require.NoError(t, runner.Rollback())

	version, _, err = runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, tableExists(t, dsn, "messages"))
	assert.True(t, tableExists(t, dsn, "users"))

	require.NoError(t, runner.Steps(1))

	version, _, err = runner.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
}

func TestRunner_BadMigrationsPath(t *testing.T) {
	dsn := startPostgres(t)

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    dsn,
		MigrationsPath: "./does-not-exist",
	}, zap.NewNop())

	err := runner.Run()
	assert.Error(t, err)
}
