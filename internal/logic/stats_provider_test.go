package logic

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/models"
)

// mockRedis backs the tier-profile and league-reference cache paths with an
// in-memory map.
type mockRedis struct {
	strings map[string]string
	hashes  map[string]map[string]string
}

func newMockRedis() *mockRedis {
	return &mockRedis{
		strings: make(map[string]string),
		hashes:  make(map[string]map[string]string),
	}
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := m.strings[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *mockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case string:
		m.strings[key] = v
	case []byte:
		m.strings[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *mockRedis) HGet(ctx context.Context, key string, field string) *redis.StringCmd {
	if h, ok := m.hashes[key]; ok {
		if v, ok := h[field]; ok {
			return redis.NewStringResult(v, nil)
		}
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *mockRedis) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	if m.hashes[key] == nil {
		m.hashes[key] = make(map[string]string)
	}
	for i := 0; i+1 < len(values); i += 2 {
		field, _ := values[i].(string)
		switch v := values[i+1].(type) {
		case string:
			m.hashes[key][field] = v
		case []byte:
			m.hashes[key][field] = string(v)
		}
	}
	return redis.NewIntResult(1, nil)
}

func TestGetTeamTierProfile(t *testing.T) {
	rds := newMockRedis()

	cached := models.TeamTierProfile{
		TeamID:   "BOS",
		Season:   "2025-26",
		Pace:     models.PaceFast,
		Variance: models.VarianceLow,
	}
	data, _ := json.Marshal(cached)
	rds.HSet(context.Background(), "tier_profiles:2025-26", "BOS", data)
	rds.HSet(context.Background(), "tier_profiles:2025-26", "BAD", "{not json")

	provider := NewStatsProvider(nil, nil, rds, zap.NewNop())

	t.Run("Cached profile", func(t *testing.T) {
		got, err := provider.GetTeamTierProfile(context.Background(), "BOS", "2025-26")
		if err != nil {
			t.Fatalf("GetTeamTierProfile: %v", err)
		}
		if got == nil || got.Pace != models.PaceFast || got.Variance != models.VarianceLow {
			t.Errorf("profile = %+v, want cached fast/low", got)
		}
	})

	t.Run("Absent team is nil without error", func(t *testing.T) {
		got, err := provider.GetTeamTierProfile(context.Background(), "MEM", "2025-26")
		if err != nil {
			t.Fatalf("GetTeamTierProfile: %v", err)
		}
		if got != nil {
			t.Errorf("profile = %+v, want nil", got)
		}
	})

	t.Run("Corrupt entry treated as absent", func(t *testing.T) {
		got, err := provider.GetTeamTierProfile(context.Background(), "BAD", "2025-26")
		if err != nil {
			t.Fatalf("GetTeamTierProfile: %v", err)
		}
		if got != nil {
			t.Errorf("profile = %+v, want nil for corrupt JSON", got)
		}
	})
}

func TestGetLeagueReferenceCacheHit(t *testing.T) {
	rds := newMockRedis()
	want := models.LeagueReference{
		Season: "2025-26",
		Pace:   models.MetricDistribution{Mean: 99, StdDev: 4},
	}
	data, _ := json.Marshal(want)
	rds.Set(context.Background(), "league_ref:2025-26", data, 0)

	// ClickHouse is nil: a hit must be served entirely from the cache.
	provider := NewStatsProvider(nil, nil, rds, zap.NewNop())

	got, err := provider.GetLeagueReference(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("GetLeagueReference: %v", err)
	}
	if got.Pace.Mean != 99 || got.Pace.StdDev != 4 {
		t.Errorf("reference = %+v, want cached distributions", got)
	}
}
