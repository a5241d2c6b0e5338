package resolver

import (
	"time"

	"github.com/courtside/totals-api/internal/models"
)

// Shared synthetic fixtures. Values are chosen so the default fixture is a
// league-average team: most stages should be near-zero against it.

func testLeague() *models.LeagueReference {
	return &models.LeagueReference{
		Season:          "2025-26",
		Pace:            models.MetricDistribution{Mean: 99.0, StdDev: 4.0},
		PointsPerGame:   models.MetricDistribution{Mean: 112.0, StdDev: 5.0},
		ScoringCV:       models.MetricDistribution{Mean: 0.075, StdDev: 0.02},
		Turnovers:       models.MetricDistribution{Mean: 13.5, StdDev: 1.5},
		ThreePA:         models.MetricDistribution{Mean: 35.0, StdDev: 4.0},
		ThreePointPct:   models.MetricDistribution{Mean: 0.360, StdDev: 0.015},
		DefensiveRating: models.MetricDistribution{Mean: 112.0, StdDev: 3.0},
	}
}

// averageProfile returns a team pinned to league average: neutral splits,
// rank 15 everywhere, possessions close to the league pace.
func averageProfile(id string) *models.TeamStatProfile {
	return &models.TeamStatProfile{
		TeamID:      id,
		Season:      "2025-26",
		GamesPlayed: 40,
		Overall:     models.SplitStats{GamesPlayed: 40, PointsPerGame: 112.0, OppPerGame: 112.0},
		Home:        models.SplitStats{GamesPlayed: 20, PointsPerGame: 112.0, OppPerGame: 112.0},
		Away:        models.SplitStats{GamesPlayed: 20, PointsPerGame: 112.0, OppPerGame: 112.0},
		Shooting: models.ShootingStats{
			FGA: 88.0, FGM: 41.0,
			ThreePA: 35.0, ThreePM: 12.6,
			FTA: 22.0, FTM: 17.2,
		},
		OffensiveRebounds: 10.2,
		DefensiveRebounds: 33.0,
		Assists:           26.0,
		Turnovers:         13.5,
		Pace:              99.0,
		OffensiveRating:   112.0,
		DefensiveRating:   112.0,
		Ranks: models.TeamRanks{
			Offense: 15, Defense: 15, Pace: 15,
			FGAVolume: 15, ThreePAVolume: 15, ForcedTurnovers: 15,
		},
	}
}

func steadyGames(n int, ppg float64) []models.GameLine {
	games := make([]models.GameLine, n)
	date := time.Date(2026, 1, 20, 19, 0, 0, 0, time.UTC)
	for i := range games {
		games[i] = models.GameLine{
			GameID:        "g",
			Date:          date.AddDate(0, 0, -2*i),
			PointsFor:     ppg,
			PointsAgainst: ppg,
			FGA:           88, FTA: 22, OREB: 10, TOV: 13.5,
			ThreePA: 35, ThreePM: 12.6,
			OppDefenseRank: 15,
			DaysRest:       2,
		}
	}
	return games
}

func averageInput(id string) TeamInput {
	return TeamInput{
		Stats:  averageProfile(id),
		Recent: steadyGames(10, 112.0),
	}
}

func neutralState() *State {
	tuning := DefaultTuning()
	st := &State{
		Home:   Side{Input: averageInput("HOME")},
		Away:   Side{Input: averageInput("AWAY")},
		League: testLeague(),
		Tuning: tuning,
	}
	st.Home.Possessions, _ = Possessions(st.Home.Input.Stats, tuning)
	st.Away.Possessions, _ = Possessions(st.Away.Input.Stats, tuning)
	ensureTiers(&st.Home, st.League, tuning)
	ensureTiers(&st.Away, st.League, tuning)
	st.Home.Projected = 112.0
	st.Away.Projected = 112.0
	return st
}
