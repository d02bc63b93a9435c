package auth

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type fakeJWTConfig struct{}

func (fakeJWTConfig) AccessTokenSecretKey() []byte { return []byte("test-secret") }
func (fakeJWTConfig) AccessTokenDuration() time.Duration { return time.Minute }
func (fakeJWTConfig) RefreshTokenDuration() time.Duration { return time.Hour }

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fakeBowlerRepo struct {
	mu      sync.Mutex
	bowlers []model.Bowler
}

func (r *fakeBowlerRepo) CreateBowler(_ context.Context, bowler *model.Bowler) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bowlers {
		if b.Login == bowler.Login {
			return 0, repository.ErrAlreadyExists
		}
	}
	b := *bowler
	b.ID = len(r.bowlers) + 1
	r.bowlers = append(r.bowlers, b)
	return b.ID, nil
}

func (r *fakeBowlerRepo) GetBowlerByLogin(_ context.Context, login string) (*model.Bowler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bowlers {
		if b.Login == login {
			bowler := b
			return &bowler, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBowlerRepo) GetBowler(_ context.Context, id int) (*model.Bowler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 1 || id > len(r.bowlers) {
		return nil, repository.ErrNotFound
	}
	bowler := r.bowlers[id-1]
	return &bowler, nil
}

func (r *fakeBowlerRepo) RecordGame(context.Context, int, int) error {
	return nil
}

type fakeAuthRepo struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	bowlers  *fakeBowlerRepo
}

func newFakeAuthRepo(bowlers *fakeBowlerRepo) *fakeAuthRepo {
	return &fakeAuthRepo{sessions: make(map[string]model.Session), bowlers: bowlers}
}

func (r *fakeAuthRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeAuthRepo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.Expired(time.Now()) {
		return "", repository.ErrNotFound
	}
	return s.RefreshToken, nil
}

func (r *fakeAuthRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeAuthRepo) GetBowlerBySessionID(ctx context.Context, sessionID string) (*model.Bowler, error) {
	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	r.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.bowlers.GetBowler(ctx, s.BowlerID)
}
