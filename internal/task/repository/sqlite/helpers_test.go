package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"voice-task-tracker/pkg/database"
	"voice-task-tracker/pkg/log"
)

// newTestDB returns a migrated in-memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := NewMigrator(db, log.NewNop())
	require.NoError(t, err)
	_, err = m.Migrate(context.Background())
	require.NoError(t, err)
	return db
}

// tickingClock advances by one second on every call.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	return &implRepository{
		db:  newTestDB(t),
		l:   log.NewNop(),
		now: tickingClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
	}
}
