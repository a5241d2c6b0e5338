package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/totals-api/internal/models"
)

// MockProvider implements logic.StatsProvider
type MockProvider struct {
	GetTeamStatsFunc         func(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error)
	GetRecentGamesFunc       func(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error)
	GetLeagueReferenceFunc   func(ctx context.Context, season string) (*models.LeagueReference, error)
	GetTeamTierProfileFunc   func(ctx context.Context, teamID, season string) (*models.TeamTierProfile, error)
	GetBackToBackProfileFunc func(ctx context.Context, teamID, season string) (*models.BackToBackProfile, error)
	ListTeamIDsFunc          func(ctx context.Context, season string) ([]string, error)
}

func (m *MockProvider) GetTeamStats(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
	if m.GetTeamStatsFunc != nil {
		return m.GetTeamStatsFunc(ctx, teamID, season)
	}
	return nil, nil
}

func (m *MockProvider) GetRecentGames(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error) {
	if m.GetRecentGamesFunc != nil {
		return m.GetRecentGamesFunc(ctx, teamID, season, n)
	}
	return nil, nil
}

func (m *MockProvider) GetLeagueReference(ctx context.Context, season string) (*models.LeagueReference, error) {
	if m.GetLeagueReferenceFunc != nil {
		return m.GetLeagueReferenceFunc(ctx, season)
	}
	return nil, nil
}

func (m *MockProvider) GetTeamTierProfile(ctx context.Context, teamID, season string) (*models.TeamTierProfile, error) {
	if m.GetTeamTierProfileFunc != nil {
		return m.GetTeamTierProfileFunc(ctx, teamID, season)
	}
	return nil, nil
}

func (m *MockProvider) GetBackToBackProfile(ctx context.Context, teamID, season string) (*models.BackToBackProfile, error) {
	if m.GetBackToBackProfileFunc != nil {
		return m.GetBackToBackProfileFunc(ctx, teamID, season)
	}
	return nil, nil
}

func (m *MockProvider) ListTeamIDs(ctx context.Context, season string) ([]string, error) {
	if m.ListTeamIDsFunc != nil {
		return m.ListTeamIDsFunc(ctx, season)
	}
	return nil, nil
}

// MockPg implements logic.PgPool and records Exec calls.
type MockPg struct {
	mu    sync.Mutex
	Execs [][]any
}

func (m *MockPg) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *MockPg) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *MockPg) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Execs = append(m.Execs, args)
	return pgconn.CommandTag{}, nil
}

func (m *MockPg) ExecCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Execs)
}

// MockRedis implements logic.RedisClient with an in-memory hash store.
type MockRedis struct {
	mu     sync.Mutex
	Hashes map[string]map[string]string
}

func NewMockRedis() *MockRedis {
	return &MockRedis{Hashes: make(map[string]map[string]string)}
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (m *MockRedis) HGet(ctx context.Context, key string, field string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.Hashes[key]; ok {
		if v, ok := h[field]; ok {
			return redis.NewStringResult(v, nil)
		}
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Hashes[key] == nil {
		m.Hashes[key] = make(map[string]string)
	}
	for i := 0; i+1 < len(values); i += 2 {
		field, _ := values[i].(string)
		switch v := values[i+1].(type) {
		case string:
			m.Hashes[key][field] = v
		case []byte:
			m.Hashes[key][field] = string(v)
		}
	}
	return redis.NewIntResult(1, nil)
}

func (m *MockRedis) HashField(key, field string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.Hashes[key]
	if !ok {
		return "", false
	}
	v, ok := h[field]
	return v, ok
}
