package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/models"
)

const (
	leagueRefCacheTTL = 15 * time.Minute
	tierProfileKey    = "tier_profiles:" // + season, hash keyed by team id
	leagueRefKey      = "league_ref:"    // + season
)

type statsProvider struct {
	pg     PgPool
	ch     driver.Conn
	redis  RedisClient
	logger *zap.SugaredLogger
}

// NewStatsProvider builds the production StatsProvider: season aggregates and
// back-to-back profiles from Postgres, per-game logs and league distributions
// from ClickHouse, precomputed tier profiles from Redis.
func NewStatsProvider(pg PgPool, ch driver.Conn, rdb RedisClient, logger *zap.Logger) StatsProvider {
	return &statsProvider{pg: pg, ch: ch, redis: rdb, logger: logger.Sugar()}
}

func (s *statsProvider) GetTeamStats(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
	p := &models.TeamStatProfile{TeamID: teamID, Season: season}

	err := s.pg.QueryRow(ctx, `
		SELECT
			games_played,
			ppg, opp_ppg,
			home_games, home_ppg, home_opp_ppg,
			away_games, away_ppg, away_opp_ppg,
			fga, fgm, three_pa, three_pm, fta, ftm,
			oreb, dreb, assists, turnovers,
			pace, off_rating, def_rating,
			rank_offense, rank_defense, rank_pace,
			rank_fga_volume, rank_three_pa_volume, rank_forced_tov
		FROM team_season_stats
		WHERE team_id = $1 AND season = $2
	`, teamID, season).Scan(
		&p.GamesPlayed,
		&p.Overall.PointsPerGame, &p.Overall.OppPerGame,
		&p.Home.GamesPlayed, &p.Home.PointsPerGame, &p.Home.OppPerGame,
		&p.Away.GamesPlayed, &p.Away.PointsPerGame, &p.Away.OppPerGame,
		&p.Shooting.FGA, &p.Shooting.FGM, &p.Shooting.ThreePA, &p.Shooting.ThreePM,
		&p.Shooting.FTA, &p.Shooting.FTM,
		&p.OffensiveRebounds, &p.DefensiveRebounds, &p.Assists, &p.Turnovers,
		&p.Pace, &p.OffensiveRating, &p.DefensiveRating,
		&p.Ranks.Offense, &p.Ranks.Defense, &p.Ranks.Pace,
		&p.Ranks.FGAVolume, &p.Ranks.ThreePAVolume, &p.Ranks.ForcedTurnovers,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("team stats query failed: %w", err)
	}
	p.Overall.GamesPlayed = p.GamesPlayed
	return p, nil
}

func (s *statsProvider) GetRecentGames(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.ch.Query(ctx, `
		SELECT
			game_id, game_date, is_home,
			points_for, points_against,
			fga, fta, oreb, tov, three_pa, three_pm,
			opp_defense_rank, days_rest
		FROM game_logs
		WHERE team_id = ? AND season = ? AND completed = 1
		ORDER BY game_date DESC
		LIMIT ?
	`, teamID, season, n)
	if err != nil {
		return nil, fmt.Errorf("recent games query failed: %w", err)
	}
	defer rows.Close()

	var games []models.GameLine
	for rows.Next() {
		var g models.GameLine
		var isHome uint8
		var oppRank int32
		var daysRest int32
		if err := rows.Scan(
			&g.GameID, &g.Date, &isHome,
			&g.PointsFor, &g.PointsAgainst,
			&g.FGA, &g.FTA, &g.OREB, &g.TOV, &g.ThreePA, &g.ThreePM,
			&oppRank, &daysRest,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game line: %w", err)
		}
		g.Home = isHome == 1
		g.OppDefenseRank = int(oppRank)
		g.DaysRest = int(daysRest)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("game line iteration failed: %w", err)
	}
	return games, nil
}

func (s *statsProvider) GetLeagueReference(ctx context.Context, season string) (*models.LeagueReference, error) {
	// Cheap cache: the distributions move once a day at most.
	if data, err := s.redis.Get(ctx, leagueRefKey+season).Bytes(); err == nil {
		var ref models.LeagueReference
		if json.Unmarshal(data, &ref) == nil {
			return &ref, nil
		}
	}

	ref := &models.LeagueReference{Season: season}
	err := s.ch.QueryRow(ctx, `
		SELECT
			avg(pace), stddevPop(pace),
			avg(ppg), stddevPop(ppg),
			avg(scoring_cv), stddevPop(scoring_cv),
			avg(turnovers), stddevPop(turnovers),
			avg(three_pa), stddevPop(three_pa),
			avg(three_pct), stddevPop(three_pct),
			avg(def_rating), stddevPop(def_rating)
		FROM team_season_rollup
		WHERE season = ?
	`, season).Scan(
		&ref.Pace.Mean, &ref.Pace.StdDev,
		&ref.PointsPerGame.Mean, &ref.PointsPerGame.StdDev,
		&ref.ScoringCV.Mean, &ref.ScoringCV.StdDev,
		&ref.Turnovers.Mean, &ref.Turnovers.StdDev,
		&ref.ThreePA.Mean, &ref.ThreePA.StdDev,
		&ref.ThreePointPct.Mean, &ref.ThreePointPct.StdDev,
		&ref.DefensiveRating.Mean, &ref.DefensiveRating.StdDev,
	)
	if err != nil {
		return nil, fmt.Errorf("league reference query failed: %w", err)
	}

	if data, err := json.Marshal(ref); err == nil {
		if err := s.redis.Set(ctx, leagueRefKey+season, data, leagueRefCacheTTL).Err(); err != nil {
			s.logger.Warnw("Failed to cache league reference", "season", season, "error", err)
		}
	}
	return ref, nil
}

func (s *statsProvider) GetTeamTierProfile(ctx context.Context, teamID, season string) (*models.TeamTierProfile, error) {
	data, err := s.redis.HGet(ctx, tierProfileKey+season, teamID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // absent: resolver substitutes neutral defaults
	}
	if err != nil {
		return nil, fmt.Errorf("tier profile lookup failed: %w", err)
	}
	var profile models.TeamTierProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Warnw("Corrupt tier profile in cache, treating as absent",
			"team", teamID, "season", season, "error", err)
		return nil, nil
	}
	return &profile, nil
}

func (s *statsProvider) GetBackToBackProfile(ctx context.Context, teamID, season string) (*models.BackToBackProfile, error) {
	b2b := &models.BackToBackProfile{TeamID: teamID, Season: season}
	err := s.pg.QueryRow(ctx, `
		SELECT b2b_games, b2b_ppg_delta, b2b_opp_ppg_delta
		FROM team_b2b_profiles
		WHERE team_id = $1 AND season = $2
	`, teamID, season).Scan(&b2b.Games, &b2b.PPGDelta, &b2b.OppPPGDelta)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("back-to-back profile query failed: %w", err)
	}
	return b2b, nil
}

func (s *statsProvider) ListTeamIDs(ctx context.Context, season string) ([]string, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT team_id FROM team_season_stats WHERE season = $1 ORDER BY team_id
	`, season)
	if err != nil {
		return nil, fmt.Errorf("team list query failed: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan team id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
