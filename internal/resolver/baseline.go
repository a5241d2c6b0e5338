package resolver

import "github.com/courtside/totals-api/internal/models"

// ProjectBaseline blends season scoring with recent form using the team's
// variance-tier blend weights, then applies a small correction from the
// offensive/defensive rating trend. This is the per-team expected score
// before any possession or contextual stage runs.
func ProjectBaseline(stats *models.TeamStatProfile, games []models.GameLine, tiers *models.TeamTierProfile, league *models.LeagueReference, t Tuning) float64 {
	if stats == nil {
		// No season data at all: league-average scoring is the only anchor.
		if league != nil && league.PointsPerGame.Mean > 0 {
			return league.PointsPerGame.Mean
		}
		return 0
	}

	season := stats.Overall.PointsPerGame

	seasonW, recentW := t.BlendSeasonMedVar, t.BlendRecentMedVar
	if tiers != nil {
		seasonW, recentW = tiers.SeasonWeight, tiers.RecentWeight
	}

	recent, ok := recentAverage(games, t.RecentWindow)
	if !ok {
		// Nothing recent to blend against; season carries full weight.
		recent, recentW, seasonW = season, 0, 1
	}

	base := seasonW*season + recentW*recent

	// Net-rating trend nudges the blend a little in the direction the team
	// is actually producing, clamped so a hot week cannot swamp the blend.
	if stats.OffensiveRating > 0 && stats.DefensiveRating > 0 {
		trend := (stats.OffensiveRating - stats.DefensiveRating) * t.RatingTrendScale
		base += clamp(trend, -t.RatingTrendClamp, t.RatingTrendClamp)
	}

	return base
}

func recentAverage(games []models.GameLine, window int) (float64, bool) {
	if len(games) == 0 {
		return 0, false
	}
	n := len(games)
	if window > 0 && n > window {
		n = window
	}
	var sum float64
	for _, g := range games[:n] {
		sum += g.PointsFor
	}
	return sum / float64(n), true
}
