package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesMetadataTable(t *testing.T) {
	ctx := context.Background()
	database, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('token', 'tok')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, database.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'token'`).Scan(&value))
	require.Equal(t, "tok", value)
}

func TestOpen_MigrationsAreIdempotentAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/roomatch.db"

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
