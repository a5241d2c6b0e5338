package models

import "time"

// Tier labels. Every classified team resolves to exactly one label per tier;
// teams below the minimum game count get the neutral defaults.
type (
	PaceTier     string
	VarianceTier string
	HomeAwayTier string
	MatchupTier  string
)

const (
	PaceSlow   PaceTier = "slow"
	PaceMedium PaceTier = "medium"
	PaceFast   PaceTier = "fast"

	VarianceLow    VarianceTier = "low"
	VarianceMedium VarianceTier = "medium"
	VarianceHigh   VarianceTier = "high"

	HomeAwayNeutral    HomeAwayTier = "neutral"
	HomeAwayHomeStrong HomeAwayTier = "home_strong"
	HomeAwayRoadStrong HomeAwayTier = "road_strong"

	MatchupLow    MatchupTier = "low"
	MatchupMedium MatchupTier = "medium"
	MatchupHigh   MatchupTier = "high"
)

// TeamTierProfile is the derived classification for one team and season,
// recomputed daily by the sync worker and read-only to the resolver.
type TeamTierProfile struct {
	TeamID string `json:"team_id"`
	Season string `json:"season"`

	Pace     PaceTier     `json:"pace"`
	Variance VarianceTier `json:"variance"`
	HomeAway HomeAwayTier `json:"home_away"`
	Matchup  MatchupTier  `json:"matchup"`

	PaceWeight     float64 `json:"pace_weight"`
	SeasonWeight   float64 `json:"season_weight"` // variance blend, season share
	RecentWeight   float64 `json:"recent_weight"` // variance blend, recent share
	MatchupWeight  float64 `json:"matchup_weight"`
	HomeAwayWeight float64 `json:"home_away_weight"`

	ComputedAt time.Time `json:"computed_at"`
}

// MetricDistribution is a league-wide mean/stdev pair for one metric.
type MetricDistribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdev"`
}

// LeagueReference holds the league distributions tiers are classified against.
type LeagueReference struct {
	Season string `json:"season"`

	Pace            MetricDistribution `json:"pace"`
	PointsPerGame   MetricDistribution `json:"points_per_game"`
	ScoringCV       MetricDistribution `json:"scoring_cv"`
	Turnovers       MetricDistribution `json:"turnovers"`
	ThreePA         MetricDistribution `json:"three_pa"`
	ThreePointPct   MetricDistribution `json:"three_point_pct"`
	DefensiveRating MetricDistribution `json:"defensive_rating"`
}
