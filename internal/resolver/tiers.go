package resolver

import (
	"math"
	"time"

	"github.com/courtside/totals-api/internal/models"
)

// ClassifyTeam derives the four tier labels for one team against the league
// reference distributions and maps each label to its numeric weight.
//
// It never fails: a team below the minimum game count, or a nil league
// reference, yields the all-neutral profile with every weight at its
// midpoint so downstream stages behave as if the team were league average.
func ClassifyTeam(stats *models.TeamStatProfile, games []models.GameLine, league *models.LeagueReference, t Tuning) *models.TeamTierProfile {
	p := neutralProfile(stats, t)
	if stats == nil || league == nil || stats.GamesPlayed < t.MinGamesForTiers {
		return p
	}

	p.Pace = classifyPace(stats.Pace, league.Pace, t)
	p.Variance = classifyVariance(games, league.ScoringCV, t)
	p.HomeAway = classifyHomeAway(stats, t)
	p.Matchup = classifyMatchup(games, t)

	p.PaceWeight = paceWeight(p.Pace, t)
	p.SeasonWeight, p.RecentWeight = blendWeights(p.Variance, t)
	p.MatchupWeight = matchupWeight(p.Matchup, t)
	p.HomeAwayWeight = homeAwayWeight(p.HomeAway, t)
	return p
}

func neutralProfile(stats *models.TeamStatProfile, t Tuning) *models.TeamTierProfile {
	p := &models.TeamTierProfile{
		Pace:           models.PaceMedium,
		Variance:       models.VarianceMedium,
		HomeAway:       models.HomeAwayNeutral,
		Matchup:        models.MatchupMedium,
		PaceWeight:     t.PaceWeightMedium,
		MatchupWeight:  t.MatchupWeightMedium,
		HomeAwayWeight: t.HomeAwayWeightNeutral,
		ComputedAt:     time.Now().UTC(),
	}
	p.SeasonWeight, p.RecentWeight = blendWeights(models.VarianceMedium, t)
	if stats != nil {
		p.TeamID = stats.TeamID
		p.Season = stats.Season
	}
	return p
}

func classifyPace(pace float64, ref models.MetricDistribution, t Tuning) models.PaceTier {
	if ref.StdDev <= 0 {
		return models.PaceMedium
	}
	switch {
	case pace <= ref.Mean-t.PaceTierZ*ref.StdDev:
		return models.PaceSlow
	case pace >= ref.Mean+t.PaceTierZ*ref.StdDev:
		return models.PaceFast
	default:
		return models.PaceMedium
	}
}

// classifyVariance buckets the coefficient of variation of game-to-game
// scoring against the league CV distribution.
func classifyVariance(games []models.GameLine, ref models.MetricDistribution, t Tuning) models.VarianceTier {
	cv, ok := scoringCV(games)
	if !ok || ref.StdDev <= 0 {
		return models.VarianceMedium
	}
	switch {
	case cv <= ref.Mean-t.VarianceTierZ*ref.StdDev:
		return models.VarianceLow
	case cv >= ref.Mean+t.VarianceTierZ*ref.StdDev:
		return models.VarianceHigh
	default:
		return models.VarianceMedium
	}
}

func classifyHomeAway(stats *models.TeamStatProfile, t Tuning) models.HomeAwayTier {
	switch {
	case stats.Home.PointsPerGame-stats.Overall.PointsPerGame >= t.HomeAwayEdge:
		return models.HomeAwayHomeStrong
	case stats.Away.PointsPerGame-stats.Overall.PointsPerGame >= t.HomeAwayEdge:
		return models.HomeAwayRoadStrong
	default:
		return models.HomeAwayNeutral
	}
}

// classifyMatchup compares scoring against elite defenses to scoring against
// bottom-tier defenses. A wide spread means the team's output is sensitive to
// who it plays; a narrow spread means it gets its points regardless.
func classifyMatchup(games []models.GameLine, t Tuning) models.MatchupTier {
	var eliteSum, badSum float64
	var eliteN, badN int
	for _, g := range games {
		switch {
		case g.OppDefenseRank == 0:
			// opponent strength unknown, skip
		case g.OppDefenseRank <= t.DefenseEliteMaxRank:
			eliteSum += g.PointsFor
			eliteN++
		case g.OppDefenseRank >= t.DefenseBadMinRank:
			badSum += g.PointsFor
			badN++
		}
	}
	if eliteN < t.MatchupMinGames || badN < t.MatchupMinGames {
		return models.MatchupMedium
	}
	spread := badSum/float64(badN) - eliteSum/float64(eliteN)
	switch {
	case spread >= t.MatchupHighSpread:
		return models.MatchupHigh
	case spread <= t.MatchupLowSpread:
		return models.MatchupLow
	default:
		return models.MatchupMedium
	}
}

// scoringCV returns the coefficient of variation of points scored across the
// supplied games. ok is false with fewer than two games or a zero mean.
func scoringCV(games []models.GameLine) (float64, bool) {
	if len(games) < 2 {
		return 0, false
	}
	var sum float64
	for _, g := range games {
		sum += g.PointsFor
	}
	mean := sum / float64(len(games))
	if mean == 0 {
		return 0, false
	}
	var ss float64
	for _, g := range games {
		d := g.PointsFor - mean
		ss += d * d
	}
	return math.Sqrt(ss/float64(len(games))) / mean, true
}

func paceWeight(tier models.PaceTier, t Tuning) float64 {
	switch tier {
	case models.PaceSlow:
		return t.PaceWeightSlow
	case models.PaceFast:
		return t.PaceWeightFast
	default:
		return t.PaceWeightMedium
	}
}

func blendWeights(tier models.VarianceTier, t Tuning) (season, recent float64) {
	switch tier {
	case models.VarianceLow:
		return t.BlendSeasonLowVar, t.BlendRecentLowVar
	case models.VarianceHigh:
		return t.BlendSeasonHighVar, t.BlendRecentHighVar
	default:
		return t.BlendSeasonMedVar, t.BlendRecentMedVar
	}
}

func matchupWeight(tier models.MatchupTier, t Tuning) float64 {
	switch tier {
	case models.MatchupLow:
		return t.MatchupWeightLow
	case models.MatchupHigh:
		return t.MatchupWeightHigh
	default:
		return t.MatchupWeightMedium
	}
}

func homeAwayWeight(tier models.HomeAwayTier, t Tuning) float64 {
	if tier == models.HomeAwayNeutral {
		return t.HomeAwayWeightNeutral
	}
	return t.HomeAwayWeightStrong
}
