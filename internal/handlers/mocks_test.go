package handlers

import (
	"context"

	"github.com/courtside/totals-api/internal/models"
)

// MockPredictionService
type MockPredictionService struct {
	ResolveGameTotalFunc func(ctx context.Context, homeTeamID, awayTeamID, season string, line *float64) (*models.PredictionResult, error)
}

func (m *MockPredictionService) ResolveGameTotal(ctx context.Context, homeTeamID, awayTeamID, season string, line *float64) (*models.PredictionResult, error) {
	if m.ResolveGameTotalFunc != nil {
		return m.ResolveGameTotalFunc(ctx, homeTeamID, awayTeamID, season, line)
	}
	return &models.PredictionResult{ID: "mock", PredictedTotal: 224.5}, nil
}

// MockStatsProvider
type MockStatsProvider struct {
	GetTeamStatsFunc         func(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error)
	GetRecentGamesFunc       func(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error)
	GetLeagueReferenceFunc   func(ctx context.Context, season string) (*models.LeagueReference, error)
	GetTeamTierProfileFunc   func(ctx context.Context, teamID, season string) (*models.TeamTierProfile, error)
	GetBackToBackProfileFunc func(ctx context.Context, teamID, season string) (*models.BackToBackProfile, error)
	ListTeamIDsFunc          func(ctx context.Context, season string) ([]string, error)
}

func (m *MockStatsProvider) GetTeamStats(ctx context.Context, teamID, season string) (*models.TeamStatProfile, error) {
	if m.GetTeamStatsFunc != nil {
		return m.GetTeamStatsFunc(ctx, teamID, season)
	}
	return nil, nil
}

func (m *MockStatsProvider) GetRecentGames(ctx context.Context, teamID, season string, n int) ([]models.GameLine, error) {
	if m.GetRecentGamesFunc != nil {
		return m.GetRecentGamesFunc(ctx, teamID, season, n)
	}
	return nil, nil
}

func (m *MockStatsProvider) GetLeagueReference(ctx context.Context, season string) (*models.LeagueReference, error) {
	if m.GetLeagueReferenceFunc != nil {
		return m.GetLeagueReferenceFunc(ctx, season)
	}
	return nil, nil
}

func (m *MockStatsProvider) GetTeamTierProfile(ctx context.Context, teamID, season string) (*models.TeamTierProfile, error) {
	if m.GetTeamTierProfileFunc != nil {
		return m.GetTeamTierProfileFunc(ctx, teamID, season)
	}
	return nil, nil
}

func (m *MockStatsProvider) GetBackToBackProfile(ctx context.Context, teamID, season string) (*models.BackToBackProfile, error) {
	if m.GetBackToBackProfileFunc != nil {
		return m.GetBackToBackProfileFunc(ctx, teamID, season)
	}
	return nil, nil
}

func (m *MockStatsProvider) ListTeamIDs(ctx context.Context, season string) ([]string, error) {
	if m.ListTeamIDsFunc != nil {
		return m.ListTeamIDsFunc(ctx, season)
	}
	return nil, nil
}

// MockTierSyncer
type MockTierSyncer struct {
	Depth int
}

func (m *MockTierSyncer) QueueDepth() int { return m.Depth }
