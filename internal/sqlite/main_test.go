package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// TestMain fails the package if any *sql.DB opened by withConnection is left
// open: an unclosed handle keeps its connection-opener goroutine alive.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestStore returns a store on a fresh database file with the schema
// applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	require.NoError(t, s.InitializeSchema(context.Background()))
	return s
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()

	return countWhere(t, s, "SELECT COUNT(*) FROM "+table)
}

// countWhere runs a COUNT(*) query and returns the count.
func countWhere(t *testing.T, s *Store, query string, args ...any) int {
	t.Helper()

	var n int
	err := s.withConnection(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(query, args...).Scan(&n)
	})
	require.NoError(t, err)
	return n
}

// execSQL runs a raw statement against the store's file.
func execSQL(t *testing.T, s *Store, query string, args ...any) {
	t.Helper()

	err := s.withConnection(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(query, args...)
		return err
	})
	require.NoError(t, err)
}
