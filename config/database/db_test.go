package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a48zhang/AIditor/config"
)

func TestOpenSQLiteAndMigrateTwice(t *testing.T) {
	db, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db), "migration must be idempotent")

	for _, table := range []string{"materials", "to_publish"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

func TestConnectSQLiteFile(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "aiditor.db"),
	}

	db, dialect, err := Connect(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, SQLite, dialect)
	require.NoError(t, Migrate(context.Background(), db))
}

func TestOpenRejectsUnknownDialect(t *testing.T) {
	_, err := Open(Dialect("oracle"), "x")
	require.Error(t, err)
}

func TestDialectPlaceholders(t *testing.T) {
	cols := []string{"id"}

	query, _, err := Postgres.Builder().GetByID("materials", cols, "1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM materials WHERE id = $1", query)

	query, _, err = SQLite.Builder().GetByID("materials", cols, "1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM materials WHERE id = ?", query)
}
