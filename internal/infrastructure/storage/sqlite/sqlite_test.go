package sqlite

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"todolist/internal/infrastructure/migration"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStorage поднимает отдельную in-memory базу с примененной схемой.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	st, err := New(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, migration.NewMigration(migration.SQLiteEngine(st.DB()), testLogger()).Up())
	return st
}
