package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Init(t *testing.T) {
	ctx := context.Background()

	storage, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	// When: the schema is applied twice
	require.NoError(t, storage.Init(ctx))
	require.NoError(t, storage.Init(ctx))

	// Then: the foreign keys pragma is on
	var foreignKeys int
	require.NoError(t, storage.Connection.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()

	storage, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	require.NoError(t, storage.Init(ctx))

	insert := `INSERT INTO players (id, name, symbol, is_computer) VALUES ('p1', 'Alice', 'X', 0)`
	_, err = storage.Connection.ExecContext(ctx, insert)
	require.NoError(t, err)

	_, err = storage.Connection.ExecContext(ctx, insert)

	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
