package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

type sessionRow struct {
	ID        string    `db:"id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	EndedAt   null.Time `db:"ended_at"`
}

type sessionRepository struct {
	db *sqlx.DB
}

var _ session.Repository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *sqlx.DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (repo sessionRepository) unrow(r sessionRow) session.Session {
	return session.Session{
		ID:        r.ID,
		Role:      session.Role(r.Role),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// trapNoRowsErr maps psql "no rows" err to session.ErrNotFound
func (repo sessionRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return session.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo sessionRepository) CreateSession(ctx context.Context, sess session.Session) (session.Session, error) {
	row := sessionRow{
		ID:        sess.ID,
		Role:      string(sess.Role),
		CreatedAt: sess.CreatedAt.UTC(),
	}
	q := `INSERT INTO session (id, role, created_at, ended_at) VALUES (:id, :role, :created_at, :ended_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, row); err != nil {
		return session.Session{}, errors.Wrap(err, "inserting session")
	}
	return repo.unrow(row), nil
}

func (repo sessionRepository) GetSession(ctx context.Context, id string) (session.Session, error) {
	var row sessionRow
	q := `SELECT id, role, created_at, ended_at FROM session WHERE id = $1 AND ended_at IS NULL`
	if err := repo.db.GetContext(ctx, &row, q, id); err != nil {
		return session.Session{}, repo.trapNoRowsErr(err, "finding session by ID")
	}
	return repo.unrow(row), nil
}

func (repo sessionRepository) QuerySessions(ctx context.Context, filter session.QueryFilter) ([]session.Session, error) {
	var rows []sessionRow
	q := `SELECT id, role, created_at, ended_at FROM session
		WHERE ended_at IS NULL AND ($1 = '' OR role = $1)
		ORDER BY created_at ASC, id ASC`
	if err := repo.db.SelectContext(ctx, &rows, q, string(filter.Role)); err != nil {
		return nil, errors.Wrap(err, "querying sessions")
	}
	sessions := make([]session.Session, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, repo.unrow(r))
	}
	return sessions, nil
}

func (repo sessionRepository) EndSessions(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := `UPDATE session SET ended_at = $1 WHERE ended_at IS NULL AND id = ANY($2)`
	res, err := repo.db.ExecContext(ctx, q, null.TimeFrom(session.NowFunc().UTC()), pq.Array(ids))
	if err != nil {
		return 0, errors.Wrap(err, "ending sessions")
	}
	cnt, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "counting ended sessions")
	}
	return int(cnt), nil
}
