package resolver

import "github.com/courtside/totals-api/internal/models"

// Possessions estimates a team's true possessions per game from box-score
// counting stats: FGA + 0.44*FTA - OREB + TOV. Offensive rebounds extend a
// possession rather than starting one, which is why they subtract.
//
// The boolean is false when the inputs were missing and the league-average
// pace was substituted; callers record that as a fallback.
func Possessions(p *models.TeamStatProfile, t Tuning) (float64, bool) {
	if !p.HasPossessionInputs() {
		return t.LeagueAveragePace, false
	}
	return p.Shooting.FGA + t.FTAPossessionWeight*p.Shooting.FTA - p.OffensiveRebounds + p.Turnovers, true
}

// GamePossessions estimates possessions for a single game line.
func GamePossessions(g models.GameLine, t Tuning) float64 {
	return g.FGA + t.FTAPossessionWeight*g.FTA - g.OREB + g.TOV
}

// GamePace normalizes the combined possessions of both teams to a
// 48-minute-equivalent rate for a regulation-length game.
func GamePace(homePossessions, awayPossessions float64, t Tuning) float64 {
	return (homePossessions + awayPossessions) / t.GamePaceDivisor
}
