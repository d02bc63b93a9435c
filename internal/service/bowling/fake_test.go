package bowling

import (
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"golang.org/x/time/rate"
)

type fakeScoringConfig struct {
	strict bool
}

func (c fakeScoringConfig) Strict() bool { return c.strict }
func (c fakeScoringConfig) StatsWindowSize() int { return 10 }
func (c fakeScoringConfig) RateLimit() rate.Limit { return rate.Inf }
func (c fakeScoringConfig) RateBurst() int { return 1 }

// fakeTxManager runs fn directly and counts calls.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func (m *fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fakeGameRepo struct {
	mu        sync.Mutex
	games     []model.Game
	createErr error
	lastLimit uint64
}

func (r *fakeGameRepo) CreateGame(_ context.Context, game *model.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.games = append(r.games, *game)
	return nil
}

func (r *fakeGameRepo) GetGame(_ context.Context, bowlerID int, id string) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.games {
		if g.ID == id && g.BowlerID == bowlerID {
			game := g
			return &game, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGameRepo) ListGames(_ context.Context, bowlerID int, limit uint64) ([]model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit

	out := make([]model.Game, 0)
	for i := len(r.games) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		if r.games[i].BowlerID == bowlerID {
			out = append(out, r.games[i])
		}
	}
	return out, nil
}

type fakeBowlerRepo struct {
	mu      sync.Mutex
	bowlers map[int]*model.Bowler
}

func newFakeBowlerRepo(ids ...int) *fakeBowlerRepo {
	r := &fakeBowlerRepo{bowlers: make(map[int]*model.Bowler)}
	for _, id := range ids {
		r.bowlers[id] = &model.Bowler{ID: id}
	}
	return r
}

func (r *fakeBowlerRepo) CreateBowler(_ context.Context, bowler *model.Bowler) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.bowlers) + 1
	b := *bowler
	b.ID = id
	r.bowlers[id] = &b
	return id, nil
}

func (r *fakeBowlerRepo) GetBowlerByLogin(_ context.Context, login string) (*model.Bowler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bowlers {
		if b.Login == login {
			bowler := *b
			return &bowler, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBowlerRepo) GetBowler(_ context.Context, id int) (*model.Bowler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bowlers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	bowler := *b
	return &bowler, nil
}

func (r *fakeBowlerRepo) RecordGame(_ context.Context, id int, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bowlers[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.GamesPlayed++
	if score > b.BestScore {
		b.BestScore = score
	}
	return nil
}
