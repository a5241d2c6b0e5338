package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/totals-api/internal/models"
	"github.com/courtside/totals-api/internal/resolver"
)

func testStats(teamID string) *models.TeamStatProfile {
	return &models.TeamStatProfile{
		TeamID:      teamID,
		Season:      "2025-26",
		GamesPlayed: 40,
		Overall:     models.SplitStats{GamesPlayed: 40, PointsPerGame: 112, OppPerGame: 112},
		Home:        models.SplitStats{GamesPlayed: 20, PointsPerGame: 112, OppPerGame: 112},
		Away:        models.SplitStats{GamesPlayed: 20, PointsPerGame: 112, OppPerGame: 112},
		Shooting: models.ShootingStats{
			FGA: 88, FGM: 41, ThreePA: 35, ThreePM: 12.6, FTA: 22, FTM: 17.2,
		},
		OffensiveRebounds: 10.2,
		Turnovers:         13.5,
		Pace:              99,
		OffensiveRating:   112,
		DefensiveRating:   112,
		Ranks:             models.TeamRanks{Offense: 15, Defense: 15, Pace: 15, FGAVolume: 15, ThreePAVolume: 15, ForcedTurnovers: 15},
	}
}

func testService(provider StatsProvider) PredictionService {
	res := resolver.New(resolver.DefaultTuning(), nil)
	return NewPredictionService(provider, res, 10, zap.NewNop())
}

func TestResolveGameTotalValidation(t *testing.T) {
	called := false
	svc := testService(&MockStatsProvider{
		GetTeamStatsFunc: func(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
			called = true
			return nil, nil
		},
	})

	tests := []struct {
		name   string
		home   string
		away   string
		season string
	}{
		{"Empty home id", "", "MEM", "2025-26"},
		{"Home id too short", "B", "MEM", "2025-26"},
		{"Home id with symbols", "BOS!", "MEM", "2025-26"},
		{"Away id too long", "BOS", "THIRTEENCHARS", "2025-26"},
		{"Team playing itself", "BOS", "BOS", "2025-26"},
		{"Malformed season", "BOS", "MEM", "2025/26"},
		{"Season missing suffix", "BOS", "MEM", "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ResolveGameTotal(context.Background(), tt.home, tt.away, tt.season, nil)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
	if called {
		t.Error("provider was called for rejected input")
	}
}

func TestResolveGameTotalSuccess(t *testing.T) {
	provider := &MockStatsProvider{
		GetTeamStatsFunc: func(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
			return testStats(teamID), nil
		},
		GetRecentGamesFunc: func(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error) {
			games := make([]models.GameLine, n)
			for i := range games {
				games[i] = models.GameLine{
					PointsFor: 112, PointsAgainst: 112,
					Date:           time.Now().Add(-time.Duration(3+2*i) * 24 * time.Hour),
					OppDefenseRank: 15,
				}
			}
			return games, nil
		},
		GetLeagueReferenceFunc: func(ctx context.Context, season string) (*models.LeagueReference, error) {
			return &models.LeagueReference{
				Season:          season,
				Pace:            models.MetricDistribution{Mean: 99, StdDev: 4},
				PointsPerGame:   models.MetricDistribution{Mean: 112, StdDev: 5},
				ScoringCV:       models.MetricDistribution{Mean: 0.075, StdDev: 0.02},
				Turnovers:       models.MetricDistribution{Mean: 13.5, StdDev: 1.5},
				ThreePA:         models.MetricDistribution{Mean: 35, StdDev: 4},
				ThreePointPct:   models.MetricDistribution{Mean: 0.36, StdDev: 0.015},
				DefensiveRating: models.MetricDistribution{Mean: 112, StdDev: 3},
			}, nil
		},
	}

	line := 210.0
	res, err := testService(provider).ResolveGameTotal(context.Background(), "BOS", "MEM", "2025-26", &line)
	if err != nil {
		t.Fatalf("ResolveGameTotal: %v", err)
	}
	if res.PredictedTotal <= 0 {
		t.Errorf("predicted total = %v, want positive", res.PredictedTotal)
	}
	if res.HomeTeamID != "BOS" || res.AwayTeamID != "MEM" {
		t.Errorf("teams = %s/%s", res.HomeTeamID, res.AwayTeamID)
	}
	if res.Line == nil || *res.Line != 210.0 {
		t.Error("line not carried into the result")
	}
	if res.Recommendation == "" {
		t.Error("no recommendation despite a line")
	}
	// Stats and recent games were present; only the tier profile was
	// missing, which neutral classification covers.
	if res.DataQuality.Home != models.QualityPartial {
		t.Errorf("home quality = %s, want partial", res.DataQuality.Home)
	}
}

func TestResolveGameTotalStatsError(t *testing.T) {
	boom := errors.New("pg down")
	svc := testService(&MockStatsProvider{
		GetTeamStatsFunc: func(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
			return nil, boom
		},
	})

	_, err := svc.ResolveGameTotal(context.Background(), "BOS", "MEM", "2025-26", nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped provider error", err)
	}
}

func TestResolveGameTotalDegradesOnOptionalFailures(t *testing.T) {
	svc := testService(&MockStatsProvider{
		GetTeamStatsFunc: func(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
			return testStats(teamID), nil
		},
		GetRecentGamesFunc: func(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error) {
			return nil, errors.New("clickhouse timeout")
		},
		GetLeagueReferenceFunc: func(ctx context.Context, season string) (*models.LeagueReference, error) {
			return nil, errors.New("redis down")
		},
	})

	res, err := svc.ResolveGameTotal(context.Background(), "BOS", "MEM", "2025-26", nil)
	if err != nil {
		t.Fatalf("optional fetch failures must not fail resolution: %v", err)
	}
	if res.DataQuality.Home != models.QualityPartial {
		t.Errorf("home quality = %s, want partial", res.DataQuality.Home)
	}
}

func TestResolveGameTotalMissingTeamIsFallback(t *testing.T) {
	svc := testService(&MockStatsProvider{}) // every lookup returns nil, nil

	res, err := svc.ResolveGameTotal(context.Background(), "BOS", "MEM", "2025-26", nil)
	if err != nil {
		t.Fatalf("ResolveGameTotal: %v", err)
	}
	if res.DataQuality.Home != models.QualityFallback || res.DataQuality.Away != models.QualityFallback {
		t.Errorf("quality = %+v, want fallback for both teams", res.DataQuality)
	}
}

func TestOnShortRest(t *testing.T) {
	now := time.Date(2026, 2, 10, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		want bool
	}{
		{"Last night", now.Add(-22 * time.Hour), true},
		{"Two nights ago", now.Add(-46 * time.Hour), false},
		{"Just inside the window", now.Add(-35 * time.Hour), true},
		{"Future date is ignored", now.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := []models.GameLine{{Date: tt.last}}
			if got := onShortRest(games, now); got != tt.want {
				t.Errorf("onShortRest = %v, want %v", got, tt.want)
			}
		})
	}

	if onShortRest(nil, now) {
		t.Error("no games must never read as short rest")
	}
}
