package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/totals-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	HGet(ctx context.Context, key string, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// StatsProvider supplies the immutable per-request snapshots the resolver
// consumes. All "not found" cases return nil values with a nil error; only
// infrastructure failures surface as errors.
type StatsProvider interface {
	GetTeamStats(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error)
	GetRecentGames(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error)
	GetLeagueReference(ctx context.Context, season string) (*models.LeagueReference, error)
	GetTeamTierProfile(ctx context.Context, teamID, season string) (*models.TeamTierProfile, error)
	GetBackToBackProfile(ctx context.Context, teamID, season string) (*models.BackToBackProfile, error)
	ListTeamIDs(ctx context.Context, season string) ([]string, error)
}

// PredictionService resolves a game total from two team identifiers.
type PredictionService interface {
	ResolveGameTotal(ctx context.Context, homeTeamID, awayTeamID, season string, line *float64) (*models.PredictionResult, error)
}
