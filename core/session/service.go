package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("session not found")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateSession(ctx context.Context, sess Session) (Session, error)
		GetSession(ctx context.Context, id string) (Session, error)
		// QuerySessions returns active sessions, oldest first.
		QuerySessions(ctx context.Context, filter QueryFilter) ([]Session, error)
		// EndSessions ends the active sessions among ids and returns how many were ended.
		EndSessions(ctx context.Context, ids ...string) (int, error)
	}

	// EndHook runs after a session has ended, e.g. to discard what it owned.
	EndHook func(sessionID string)

	Service struct {
		repo     Repository
		validate *validator.Validate
		onEnd    []EndHook
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

// OnEnd registers hooks that run whenever a session ends.
func (svc *Service) OnEnd(hooks ...EndHook) {
	svc.onEnd = append(svc.onEnd, hooks...)
}

// Login records the selected role in a new Session. Credentials are not checked.
func (svc *Service) Login(ctx context.Context, lr LoginRequest) (Session, error) {
	if err := lr.Validate(svc.validate); err != nil {
		return Session{}, err
	}
	sess := Session{
		ID:        uuid.New().String(),
		Role:      lr.Role,
		CreatedAt: NowFunc().UTC(),
	}
	sess, err := svc.repo.CreateSession(ctx, sess)
	if err != nil {
		return Session{}, pkgerrors.Wrap(err, "creating session")
	}
	return sess, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Session{}, ErrNotFound
	}
	return svc.repo.GetSession(ctx, id)
}

// Logout ends the session; it cannot be used afterwards.
func (svc *Service) Logout(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	n, err := svc.repo.EndSessions(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(err, "ending session")
	}
	if n == 0 {
		return ErrNotFound
	}
	svc.ended(id)
	return nil
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Session, error) {
	return svc.repo.QuerySessions(ctx, filter)
}

// EndAll ends every active session and returns how many were ended.
func (svc *Service) EndAll(ctx context.Context) (int, error) {
	sessions, err := svc.repo.QuerySessions(ctx, QueryFilter{})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "querying sessions")
	}
	if len(sessions) == 0 {
		return 0, nil
	}
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	n, err := svc.repo.EndSessions(ctx, ids...)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "ending sessions")
	}
	for _, id := range ids {
		svc.ended(id)
	}
	return n, nil
}

func (svc *Service) ended(id string) {
	for _, hook := range svc.onEnd {
		hook(id)
	}
}
