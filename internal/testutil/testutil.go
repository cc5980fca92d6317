package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"codequest/internal/db"
)

var dbCounter int64

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The DSN is uniquely named and shared-cache so every pooled connection sees
// the same database; a bare ":memory:" would give each connection its own.
func NewTestDB(t *testing.T) *sql.DB {
	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&dbCounter, 1))
	conn, err := db.Open(dsn)
	require.NoError(t, err)
	return conn
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
