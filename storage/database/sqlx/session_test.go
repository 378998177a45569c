//go:build integration

package sqlxrepos_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
	"github.com/sujalpowar2903-sys/studenthub123/storage/database"
	sqlxrepos "github.com/sujalpowar2903-sys/studenthub123/storage/database/sqlx"
	"github.com/sujalpowar2903-sys/studenthub123/tests"
)

// openDB connects to the TEST_DB* database, migrates it and empties the session table.
func openDB(t *testing.T) *sqlx.DB {
	t.Setenv("ENV", "TEST")
	conf := core.NewConfig()

	require.NoError(t, database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db.DB))
	_, err = db.Exec(`TRUNCATE session`)
	require.NoError(t, err)
	return db
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlxrepos.NewSessionRepository(openDB(t))

	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s1 := testutil.CreateSession(t, repo, session.RoleStudent, t0.Add(2*time.Minute))
	s2 := testutil.CreateSession(t, repo, session.RoleFaculty, t0)
	s3 := testutil.CreateSession(t, repo, session.RoleStudent, t0.Add(time.Minute))

	got, err := repo.GetSession(ctx, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, s1, got)

	_, err = repo.GetSession(ctx, uuid.New().String())
	assert.Equal(t, session.ErrNotFound, err)

	all, err := repo.QuerySessions(ctx, session.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []session.Session{s2, s3, s1}, all, "oldest first")

	students, err := repo.QuerySessions(ctx, session.QueryFilter{Role: session.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, []session.Session{s3, s1}, students)

	cnt, err := repo.EndSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, cnt)

	cnt, err = repo.EndSessions(ctx, s1.ID, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, 1, cnt, "unknown ids are not counted")

	cnt, err = repo.EndSessions(ctx, s1.ID, s2.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt, "ended sessions are not counted twice")

	_, err = repo.GetSession(ctx, s1.ID)
	assert.Equal(t, session.ErrNotFound, err)

	all, err = repo.QuerySessions(ctx, session.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []session.Session{s3}, all)
}
