package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	var (
		pgContainer *postgres.PostgresContainer
		err         error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(Migrations(), ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(Migrations(), e.Name())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "-- +goose Up"), e.Name())
		assert.Contains(t, string(data), "-- +goose Down", e.Name())
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not a url", 5, time.Minute, time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestMigrateAndPool_Integration(t *testing.T) {
	connStr := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, connStr))
	// running again is a no-op
	require.NoError(t, Migrate(ctx, connStr))

	pool, err := NewPool(ctx, connStr, 3, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	var tables int
	err = pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_name IN ('production_lines', 'recipe_instances')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)

	_, err = pool.Exec(ctx, `INSERT INTO production_lines (slug, name) VALUES ('l', 'L')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO recipe_instances (line_slug, position, recipe_id, clock_speed, machine_count, recipe)
		VALUES ('l', 0, 'recipe_x', 300, 1, '{}')`)
	assert.Error(t, err, "clock speed above 250 violates the check constraint")

	for i := 0; i < 5; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		conn.Release()
	}
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}
