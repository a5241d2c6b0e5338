package resolver

import "github.com/courtside/totals-api/internal/models"

// TeamInput bundles everything the pipeline may consume for one team. Any
// field except Stats may be nil/empty; stages degrade rather than fail.
type TeamInput struct {
	Stats  *models.TeamStatProfile
	Recent []models.GameLine
	Tiers  *models.TeamTierProfile
	B2B    *models.BackToBackProfile

	// OnShortRest marks the upcoming game as the second night of a
	// back-to-back, derived from the recent log by the caller.
	OnShortRest bool
}

// Side is the running projection state for one team during resolution.
type Side struct {
	Input     TeamInput
	Projected float64

	Possessions        float64
	PossessionFallback bool

	Quality models.DataQuality
}

// Opponent tier convenience accessors; all return neutral values when the
// tier profile is absent so stages never branch on nil.

func (s *Side) paceTier() models.PaceTier {
	if s.Input.Tiers == nil {
		return models.PaceMedium
	}
	return s.Input.Tiers.Pace
}

func (s *Side) matchupTier() models.MatchupTier {
	if s.Input.Tiers == nil {
		return models.MatchupMedium
	}
	return s.Input.Tiers.Matchup
}

func (s *Side) matchupWeight(t Tuning) float64 {
	if s.Input.Tiers == nil {
		return t.MatchupWeightMedium
	}
	return s.Input.Tiers.MatchupWeight
}

// State is the mutable working set threaded through the stage pipeline.
// It lives for exactly one resolution; nothing in it is shared.
type State struct {
	Home Side
	Away Side

	League *models.LeagueReference
	Tuning Tuning

	TotalDelta float64
}

// StageDelta is a stage's signed contribution, split by target.
type StageDelta struct {
	Home  float64
	Away  float64
	Total float64
}

func (d StageDelta) isZero() bool {
	return d.Home == 0 && d.Away == 0 && d.Total == 0
}

// apply folds a stage delta into the running projections.
func (st *State) apply(d StageDelta) {
	st.Home.Projected += d.Home
	st.Away.Projected += d.Away
	st.TotalDelta += d.Total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp interpolates linearly between lo and hi as pos moves 0..1.
func lerp(lo, hi, pos float64) float64 {
	return lo + (hi-lo)*pos
}
